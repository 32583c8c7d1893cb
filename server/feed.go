package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	subscriberSendBufferSize = 100
	subscriberPingInterval   = 15 * time.Second
	subscriberWriteTimeout   = 5 * time.Second
)

// subscriber is a websocket connection that receives every published measurement. Anything the
// client sends is discarded.
type subscriber struct {
	logger  logrus.FieldLogger
	onClose func(*subscriber)

	conn              *websocket.Conn
	readLoopDone      chan struct{}
	writeLoopDone     chan struct{}
	outgoing          chan *websocket.PreparedMessage
	close             chan struct{}
	beginClosingOnce  sync.Once
	finishClosingOnce sync.Once
}

func newSubscriber(logger logrus.FieldLogger, onClose func(*subscriber)) *subscriber {
	return &subscriber{
		logger:        logger,
		onClose:       onClose,
		readLoopDone:  make(chan struct{}),
		writeLoopDone: make(chan struct{}),
		outgoing:      make(chan *websocket.PreparedMessage, subscriberSendBufferSize),
		close:         make(chan struct{}),
	}
}

// serve takes ownership of conn. Messages sent before serve is invoked are queued.
func (s *subscriber) serve(conn *websocket.Conn) {
	s.conn = conn
	go s.readLoop()
	go s.writeLoop()
}

// send queues msg without blocking. If the subscriber's buffer is full it is too slow to keep up and
// the connection is closed.
func (s *subscriber) send(msg *websocket.PreparedMessage) error {
	select {
	case s.outgoing <- msg:
		return nil
	default:
		s.beginClosing()
		return errors.New("send buffer full")
	}
}

func (s *subscriber) Close() error {
	s.beginClosing()
	s.finishClosing()
	return nil
}

func (s *subscriber) readLoop() {
	defer close(s.readLoopDone)
	defer s.beginClosing()

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure, websocket.CloseGoingAway) {
				select {
				case <-s.close:
				default:
					s.logger.Error(errors.Wrap(err, "websocket read error"))
				}
			}
			return
		}
	}
}

func (s *subscriber) writeLoop() {
	defer s.finishClosing()
	defer close(s.writeLoopDone)

	defer s.conn.Close()

	pingTicker := time.NewTicker(subscriberPingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case msg := <-s.outgoing:
			s.conn.SetWriteDeadline(time.Now().Add(subscriberWriteTimeout))
			if err := s.conn.WritePreparedMessage(msg); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseAbnormalClosure, websocket.CloseGoingAway) && err != websocket.ErrCloseSent {
					s.logger.Error(errors.Wrap(err, "websocket write error"))
				}
				return
			}
		case <-pingTicker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(subscriberWriteTimeout)); err != nil {
				return
			}
		case <-s.close:
			s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(subscriberWriteTimeout))
			return
		}
	}
}

func (s *subscriber) beginClosing() {
	s.beginClosingOnce.Do(func() {
		close(s.close)
	})
}

func (s *subscriber) finishClosing() {
	<-s.readLoopDone
	<-s.writeLoopDone
	invokeOnClose := false
	s.finishClosingOnce.Do(func() {
		invokeOnClose = true
	})
	if invokeOnClose && s.onClose != nil {
		s.onClose(s)
	}
}
