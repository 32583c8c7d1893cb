package gqlbench

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gqlbench/store"
)

const (
	DefaultBenchTime        = time.Second
	DefaultWarmupIterations = 3
	DefaultMinIterations    = 1
)

// Config defines the services and run parameters for a set of benchmarks.
type Config struct {
	Logger logrus.FieldLogger

	// If given, these services are used by both engines. Otherwise a new service container is
	// built.
	Services *store.Services `validate:"-"`

	// The minimum amount of time spent measuring each case. If zero, DefaultBenchTime is used.
	BenchTime time.Duration `validate:"gte=0"`

	// Unmeasured executions performed before each case is measured.
	WarmupIterations int `validate:"gte=0"`

	// The minimum number of measured executions per case. If zero, DefaultMinIterations is used.
	MinIterations int `validate:"gte=0"`

	// If given, only cases with matching names are run.
	Filter *regexp.Regexp `validate:"-"`

	// If given, this is invoked with each measurement as soon as its case completes. Ranks are not
	// yet assigned at that point.
	Observer func(*Measurement) `validate:"-"`

	initOnce sync.Once
}

var validate = validator.New()

func (cfg *Config) init() {
	cfg.initOnce.Do(func() {
		if cfg.BenchTime == 0 {
			cfg.BenchTime = DefaultBenchTime
		}
		if cfg.MinIterations == 0 {
			cfg.MinIterations = DefaultMinIterations
		}
		if cfg.Logger == nil {
			cfg.Logger = logrus.StandardLogger()
		}
	})
}

// Validate checks the configuration, applying defaults first.
func (cfg *Config) Validate() error {
	cfg.init()
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
