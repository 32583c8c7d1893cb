package gqlbench

import (
	"context"
	"runtime"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/segmentio/ksuid"
)

// Latencies above this are recorded as this.
const maxRecordableLatency = time.Minute

// Run measures every case matching the configured filter, one after another. A failing case is
// recorded with its error and does not stop the run. An error is only returned if ctx is done.
func (b *ExecutorBenchmarks) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunId:     ksuid.New(),
		StartTime: time.Now().UTC(),
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}

	logger := b.logger.WithField("run_id", report.RunId.String())
	for _, c := range b.Cases() {
		if b.config.Filter != nil && !b.config.Filter.MatchString(c.Name) {
			continue
		}
		m, err := b.measure(ctx, c)
		if err != nil {
			return nil, err
		}
		if m.Error != "" {
			logger.WithField("case", c.Name).Warn(m.Error)
		} else {
			logger.WithField("case", c.Name).WithField("iterations", m.Iterations).Infof("mean %v", m.Mean)
		}
		report.Measurements = append(report.Measurements, m)
		if b.config.Observer != nil {
			b.config.Observer(m)
		}
	}

	assignRanks(report.Measurements)
	return report, nil
}

func (b *ExecutorBenchmarks) measure(ctx context.Context, c Case) (*Measurement, error) {
	m := &Measurement{
		Case:     c.Name,
		Engine:   c.Engine,
		Category: c.Fixture.Name,
	}

	for i := 0; i < b.config.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := c.Run(ctx); err != nil {
			m.Error = err.Error()
			return m, nil
		}
	}

	hist := hdrhistogram.New(1, int64(maxRecordableLatency), 3)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	for m.Iterations < b.config.MinIterations || time.Since(start) < b.config.BenchTime {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterationStart := time.Now()
		_, err := c.Run(ctx)
		elapsed := time.Since(iterationStart)
		if err != nil {
			m.Error = err.Error()
			return m, nil
		}
		if elapsed < 1 {
			elapsed = 1
		} else if elapsed > maxRecordableLatency {
			elapsed = maxRecordableLatency
		}
		hist.RecordValue(int64(elapsed))
		m.Iterations++
	}

	runtime.ReadMemStats(&after)

	m.Mean = time.Duration(hist.Mean())
	m.Median = time.Duration(hist.ValueAtQuantile(50))
	m.P99 = time.Duration(hist.ValueAtQuantile(99))
	m.StdDev = time.Duration(hist.StdDev())
	m.AllocsPerOp = (after.Mallocs - before.Mallocs) / uint64(m.Iterations)
	m.BytesPerOp = (after.TotalAlloc - before.TotalAlloc) / uint64(m.Iterations)
	return m, nil
}
