package gqlbench

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/vmihailenco/msgpack"
)

func testReport(t *testing.T) *Report {
	id, err := ksuid.Parse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
	require.NoError(t, err)
	r := &Report{
		RunId:     id,
		StartTime: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		GoVersion: "go1.21.0",
		GOOS:      "linux",
		GOARCH:    "amd64",
		NumCPU:    8,
		Measurements: []*Measurement{
			{
				Case:        "APIFu_ThreeFields",
				Engine:      EngineAPIFu,
				Category:    "ThreeFields",
				Iterations:  1000,
				Mean:        12 * time.Microsecond,
				Median:      11 * time.Microsecond,
				P99:         30 * time.Microsecond,
				StdDev:      2 * time.Microsecond,
				AllocsPerOp: 120,
				BytesPerOp:  8192,
			},
			{
				Case:        "GraphQLGo_ThreeFields",
				Engine:      EngineGraphQLGo,
				Category:    "ThreeFields",
				Iterations:  800,
				Mean:        25 * time.Microsecond,
				Median:      24 * time.Microsecond,
				P99:         60 * time.Microsecond,
				StdDev:      4 * time.Microsecond,
				AllocsPerOp: 310,
				BytesPerOp:  20480,
			},
			{
				Case:     "GraphQLGo_Introspection",
				Engine:   EngineGraphQLGo,
				Category: "Introspection",
				Error:    "graphql-go: boom: result has errors",
			},
		},
	}
	assignRanks(r.Measurements)
	return r
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestReport_Failed(t *testing.T) {
	failed := testReport(t).Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "GraphQLGo_Introspection", failed[0].Case)
}

func TestWriteReport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, testReport(t), FormatCSV))

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden.csv"))
	g.Assert(t, "report", buf.Bytes())
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, testReport(t), FormatJSON))

	body := buf.Bytes()
	assert.Equal(t, "0ujtsYcgvSTl8PAuAdqWYSMnLOv", gjson.GetBytes(body, "run_id").String())
	assert.Equal(t, int64(3), gjson.GetBytes(body, "measurements.#").Int())
	assert.Equal(t, int64(2), gjson.GetBytes(body, "measurements.1.rank").Int())
	assert.Equal(t, int64(12000), gjson.GetBytes(body, "measurements.0.mean").Int())
	assert.False(t, gjson.GetBytes(body, "measurements.0.error").Exists())
}

func TestWriteReport_Msgpack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, testReport(t), FormatMsgpack))

	var decoded struct {
		GoVersion    string         `msgpack:"go_version"`
		Measurements []*Measurement `msgpack:"measurements"`
	}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "go1.21.0", decoded.GoVersion)
	require.Len(t, decoded.Measurements, 3)
	assert.Equal(t, 25*time.Microsecond, decoded.Measurements[1].Mean)
}

func TestWriteReport_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, testReport(t), FormatTable))
	assert.Contains(t, buf.String(), "APIFu_ThreeFields")
	assert.Contains(t, buf.String(), "12µs")
	assert.Contains(t, buf.String(), "result has errors")
}
