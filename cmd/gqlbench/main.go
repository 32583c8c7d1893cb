package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ccbrown/gqlbench"
	"github.com/ccbrown/gqlbench/server"
)

// Run parses args, runs the benchmarks, and writes the report. It blocks until ctx is done if
// --listen is given.
func Run(ctx context.Context, stdout io.Writer, args ...string) error {
	flags := pflag.NewFlagSet("gqlbench", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	benchTime := flags.Duration("benchtime", gqlbench.DefaultBenchTime, "the minimum time spent measuring each case")
	warmup := flags.Int("warmup", gqlbench.DefaultWarmupIterations, "unmeasured executions before each case")
	minIterations := flags.Int("min-iterations", gqlbench.DefaultMinIterations, "the minimum number of measured executions per case")
	filter := flags.StringP("filter", "f", "", "only run cases whose names match this regular expression")
	format := flags.String("format", string(gqlbench.FormatTable), "the report format: table, json, msgpack, or csv")
	output := flags.StringP("output", "o", "", "write the report to this file instead of stdout")
	verify := flags.Bool("verify", false, "check that both engines agree before benchmarking")
	listen := flags.String("listen", "", "serve both engines and live results at this address. server traffic is included in allocation counts")
	logLevel := flags.String("log-level", "info", "the log level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)

	reportFormat, err := gqlbench.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg := &gqlbench.Config{
		Logger:           logger,
		BenchTime:        *benchTime,
		WarmupIterations: *warmup,
		MinIterations:    *minIterations,
	}
	if *filter != "" {
		if cfg.Filter, err = regexp.Compile(*filter); err != nil {
			return errors.Wrap(err, "invalid filter")
		}
	}

	benchmarks, err := gqlbench.NewExecutorBenchmarks(cfg)
	if err != nil {
		return err
	}

	if *verify {
		if err := benchmarks.Verify(ctx); err != nil {
			return errors.Wrap(err, "verification failed")
		}
		logger.Info("verification passed")
	}

	var httpServer *http.Server
	var srv *server.Server
	serveErr := make(chan error, 1)
	if *listen != "" {
		srv = server.New(benchmarks, logger)
		cfg.Observer = srv.Publish
		httpServer = &http.Server{
			Addr:        *listen,
			Handler:     srv,
			ReadTimeout: 2 * time.Minute,
		}
		go func() {
			logger.Infof("listening at %v", *listen)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				serveErr <- err
			}
			close(serveErr)
		}()
	}

	report, err := benchmarks.Run(ctx)
	if err != nil {
		return err
	}

	if *output != "" {
		if err := writeReportFile(*output, report, reportFormat); err != nil {
			return err
		}
	} else if err := gqlbench.WriteReport(stdout, report, reportFormat); err != nil {
		return err
	}

	if httpServer != nil {
		select {
		case <-ctx.Done():
		case err := <-serveErr:
			if err != nil {
				return err
			}
		}
		srv.CloseHijackedConnections()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Error(err)
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%v of %v cases failed", len(failed), len(report.Measurements))
	}
	return nil
}

// writeReportFile writes the report to path. Errors closing the file are returned since they may
// indicate that the report was not completely written.
func writeReportFile(path string, report *gqlbench.Report, format gqlbench.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gqlbench.WriteReport(f, report, format); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "unable to close report file")
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		logrus.Info("signal caught. shutting down...")
		cancel()
	}()

	if err := Run(ctx, os.Stdout, os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
