package gqlbench

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ccbrown/gqlbench/queries"
)

// normalize round-trips v through JSON so that results from both engines compare as plain maps,
// slices, and scalars.
func normalize(v interface{}) (interface{}, error) {
	b, err := jsoniter.Marshal(v)
	if err != nil {
		return nil, err
	}
	var ret interface{}
	if err := jsoniter.Unmarshal(b, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Verify executes every fixture once with each engine. Any reported error fails verification. For
// fixtures that don't introspect, both engines must also produce the same data.
func (b *ExecutorBenchmarks) Verify(ctx context.Context) error {
	for _, f := range queries.All {
		resp, err := b.ExecuteAPIFu(ctx, f.Query)
		if err != nil {
			return errors.Wrapf(err, "%v", f.Name)
		}
		result, err := b.ExecuteGraphQLGo(ctx, f.Query)
		if err != nil {
			return errors.Wrapf(err, "%v", f.Name)
		}
		if f.Introspects {
			continue
		}

		var apifuData interface{}
		if resp.Data != nil {
			apifuData = *resp.Data
		}
		want, err := normalize(apifuData)
		if err != nil {
			return errors.Wrapf(err, "unable to normalize %v api-fu data", f.Name)
		}
		got, err := normalize(result.Data)
		if err != nil {
			return errors.Wrapf(err, "unable to normalize %v graphql-go data", f.Name)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Errorf("%v: engines disagree (-%v +%v):\n%v", f.Name, EngineAPIFu, EngineGraphQLGo, diff)
		}
		b.logger.WithField("fixture", f.Name).Debug("engines agree")
	}
	return nil
}
