// Package server serves both engines over HTTP and streams benchmark measurements to websocket
// clients as they are taken.
package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlbench"
)

type Server struct {
	benchmarks *gqlbench.ExecutorBenchmarks
	logger     logrus.FieldLogger
	mux        *http.ServeMux

	// If given, this is used to check the origin of websocket requests. By default, only same-origin
	// requests are allowed.
	WebSocketOriginCheck func(r *http.Request) bool

	subscribersMutex sync.Mutex
	subscribers      map[*subscriber]struct{}
}

func New(benchmarks *gqlbench.ExecutorBenchmarks, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{
		benchmarks:  benchmarks,
		logger:      logger,
		mux:         http.NewServeMux(),
		subscribers: map[*subscriber]struct{}{},
	}
	s.mux.HandleFunc("/graphql/"+gqlbench.EngineAPIFu, benchmarks.APIFu().ServeGraphQL)
	s.mux.Handle("/graphql/"+gqlbench.EngineGraphQLGo, benchmarks.GraphQLGo().Handler())
	s.mux.HandleFunc("/results", s.serveResults)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Publish sends the measurement to every connected results client. It never blocks on slow clients
// and can be used as a gqlbench.Config Observer.
func (s *Server) Publish(m *gqlbench.Measurement) {
	data, err := jsoniter.Marshal(m)
	if err != nil {
		s.logger.Error(errors.Wrap(err, "unable to marshal measurement"))
		return
	}
	msg, err := websocket.NewPreparedMessage(websocket.TextMessage, data)
	if err != nil {
		s.logger.Error(errors.Wrap(err, "error preparing message"))
		return
	}

	s.subscribersMutex.Lock()
	defer s.subscribersMutex.Unlock()
	for sub := range s.subscribers {
		if err := sub.send(msg); err != nil {
			s.logger.WithError(err).Warn("dropping results client")
		}
	}
}

// NumSubscribers returns the number of connected results clients.
func (s *Server) NumSubscribers() int {
	s.subscribersMutex.Lock()
	defer s.subscribersMutex.Unlock()
	return len(s.subscribers)
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.subscribersMutex.Lock()
	defer s.subscribersMutex.Unlock()
	delete(s.subscribers, sub)
}

func (s *Server) serveResults(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin:       s.WebSocketOriginCheck,
		EnableCompression: true,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already responded.
		return
	}

	sub := newSubscriber(s.logger, s.removeSubscriber)

	s.subscribersMutex.Lock()
	s.subscribers[sub] = struct{}{}
	s.subscribersMutex.Unlock()

	sub.serve(conn)
}

// CloseHijackedConnections closes all results clients.
func (s *Server) CloseHijackedConnections() {
	s.subscribersMutex.Lock()
	subscribers := make([]*subscriber, 0, len(s.subscribers))
	for sub := range s.subscribers {
		subscribers = append(subscribers, sub)
	}
	s.subscribers = map[*subscriber]struct{}{}
	s.subscribersMutex.Unlock()

	for _, sub := range subscribers {
		if err := sub.Close(); err != nil {
			s.logger.Error(errors.Wrap(err, "error closing connection"))
		}
	}
}
