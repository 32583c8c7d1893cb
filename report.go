package gqlbench

import (
	"sort"
	"time"

	"github.com/segmentio/ksuid"
)

// Measurement holds the statistics for one case. Durations are per execution.
//
// AllocsPerOp and BytesPerOp are derived from process-wide allocation counters, so anything else
// running in the process during the measurement, such as a results server, is counted too.
type Measurement struct {
	Case     string `json:"case" msgpack:"case"`
	Engine   string `json:"engine" msgpack:"engine"`
	Category string `json:"category" msgpack:"category"`

	Iterations  int           `json:"iterations" msgpack:"iterations"`
	Mean        time.Duration `json:"mean" msgpack:"mean"`
	Median      time.Duration `json:"median" msgpack:"median"`
	P99         time.Duration `json:"p99" msgpack:"p99"`
	StdDev      time.Duration `json:"stddev" msgpack:"stddev"`
	AllocsPerOp uint64        `json:"allocs_per_op" msgpack:"allocs_per_op"`
	BytesPerOp  uint64        `json:"bytes_per_op" msgpack:"bytes_per_op"`

	// Rank within the category, starting at 1 for the lowest mean. Cases with equal means share a
	// rank. Zero for failed cases.
	Rank int `json:"rank" msgpack:"rank"`

	// Non-empty if the case failed.
	Error string `json:"error,omitempty" msgpack:"error,omitempty"`
}

type Report struct {
	RunId        ksuid.KSUID    `json:"run_id" msgpack:"run_id"`
	StartTime    time.Time      `json:"start_time" msgpack:"start_time"`
	GoVersion    string         `json:"go_version" msgpack:"go_version"`
	GOOS         string         `json:"goos" msgpack:"goos"`
	GOARCH       string         `json:"goarch" msgpack:"goarch"`
	NumCPU       int            `json:"num_cpu" msgpack:"num_cpu"`
	Measurements []*Measurement `json:"measurements" msgpack:"measurements"`
}

// Failed returns the measurements of the cases that failed.
func (r *Report) Failed() []*Measurement {
	var ret []*Measurement
	for _, m := range r.Measurements {
		if m.Error != "" {
			ret = append(ret, m)
		}
	}
	return ret
}

func assignRanks(measurements []*Measurement) {
	byCategory := map[string][]*Measurement{}
	for _, m := range measurements {
		m.Rank = 0
		if m.Error == "" {
			byCategory[m.Category] = append(byCategory[m.Category], m)
		}
	}
	for _, ms := range byCategory {
		sort.SliceStable(ms, func(i, j int) bool {
			return ms[i].Mean < ms[j].Mean
		})
		for i, m := range ms {
			if i > 0 && m.Mean == ms[i-1].Mean {
				m.Rank = ms[i-1].Rank
			} else {
				m.Rank = i + 1
			}
		}
	}
}
