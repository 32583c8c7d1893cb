package gqlbench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatCSV     Format = "csv"
)

var Formats = []Format{FormatTable, FormatJSON, FormatMsgpack, FormatCSV}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// WriteReport writes the report to w in the given format.
func WriteReport(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatTable:
		return writeTable(w, r)
	case FormatJSON:
		enc := jsoniter.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "unable to encode json report")
	case FormatMsgpack:
		return errors.Wrap(msgpack.NewEncoder(w).Encode(r), "unable to encode msgpack report")
	case FormatCSV:
		return writeCSV(w, r)
	}
	return fmt.Errorf("unknown format %q", f)
}

var columns = []string{"Case", "Engine", "Category", "Rank", "Iterations", "Mean", "Median", "P99", "StdDev", "Allocs/op", "Bytes/op", "Error"}

func rank(m *Measurement) string {
	if m.Rank == 0 {
		return "-"
	}
	return strconv.Itoa(m.Rank)
}

func writeTable(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "run %v, %v %v/%v, %v cpus\n\n", r.RunId, r.GoVersion, r.GOOS, r.GOARCH, r.NumCPU)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, m := range r.Measurements {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			m.Case, m.Engine, m.Category, rank(m), m.Iterations,
			m.Mean, m.Median, m.P99, m.StdDev,
			m.AllocsPerOp, m.BytesPerOp, m.Error)
	}
	return tw.Flush()
}

// CSV durations are in nanoseconds.
func writeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	cw.Write(columns)
	for _, m := range r.Measurements {
		cw.Write([]string{
			m.Case,
			m.Engine,
			m.Category,
			strconv.Itoa(m.Rank),
			strconv.Itoa(m.Iterations),
			strconv.FormatInt(int64(m.Mean), 10),
			strconv.FormatInt(int64(m.Median), 10),
			strconv.FormatInt(int64(m.P99), 10),
			strconv.FormatInt(int64(m.StdDev), 10),
			strconv.FormatUint(m.AllocsPerOp, 10),
			strconv.FormatUint(m.BytesPerOp, 10),
			m.Error,
		})
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "unable to write csv report")
}
