package apifuengine

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ccbrown/gqlbench/queries"
	"github.com/ccbrown/gqlbench/store"
)

func newTestEngine(t *testing.T) *Engine {
	services, err := store.NewServices()
	require.NoError(t, err)
	e, err := New(services, nil)
	require.NoError(t, err)
	return e
}

func (e *Engine) execJSON(t *testing.T, query string) []byte {
	resp := e.Execute(e.NewRequest(context.Background(), query))
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Data)
	body, err := jsoniter.Marshal(resp)
	require.NoError(t, err)
	return body
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestFixtures(t *testing.T) {
	e := newTestEngine(t)
	for _, f := range queries.All {
		t.Run(f.Name, func(t *testing.T) {
			e.execJSON(t, f.Query)
		})
	}
}

func TestThreeFields(t *testing.T) {
	body := newTestEngine(t).execJSON(t, queries.ThreeFields)
	assert.Equal(t, "1000", gjson.GetBytes(body, "data.hero.id").String())
	assert.Equal(t, "Luke Skywalker", gjson.GetBytes(body, "data.hero.name").String())
	assert.Equal(t, `["NEWHOPE","EMPIRE","JEDI"]`, gjson.GetBytes(body, "data.hero.appearsIn").Raw)
}

func TestMediumQuery(t *testing.T) {
	body := newTestEngine(t).execJSON(t, queries.MediumQuery)
	assert.Equal(t, "R2-D2", gjson.GetBytes(body, "data.jediHero.name").String())
	assert.Equal(t, int64(3), gjson.GetBytes(body, "data.jediHero.friendsConnection.totalCount").Int())
	assert.True(t, gjson.GetBytes(body, "data.jediHero.friendsConnection.pageInfo.hasNextPage").Bool())
	assert.Equal(t, int64(2), gjson.GetBytes(body, "data.jediHero.friendsConnection.edges.#").Int())
	assert.Equal(t, "Han Solo", gjson.GetBytes(body, "data.human.name").String())
	assert.Equal(t, "Protocol", gjson.GetBytes(body, "data.droid.primaryFunction").String())
	assert.Equal(t, int64(2), gjson.GetBytes(body, "data.reviews.#").Int())
	assert.Equal(t, "Starship", gjson.GetBytes(body, "data.search.2.__typename").String())
}

func TestDefaults(t *testing.T) {
	body := newTestEngine(t).execJSON(t, `{
		hero {
			name
		}
		human(id: "1004") {
			mass
			height
		}
		missing: character(id: "9999") {
			name
		}
	}`)
	assert.Equal(t, "R2-D2", gjson.GetBytes(body, "data.hero.name").String())
	assert.Equal(t, gjson.Null, gjson.GetBytes(body, "data.human.mass").Type)
	assert.Equal(t, 1.8, gjson.GetBytes(body, "data.human.height").Float())
	assert.Equal(t, gjson.Null, gjson.GetBytes(body, "data.missing").Type)
}

func TestMalformedQuery(t *testing.T) {
	e := newTestEngine(t)
	resp := e.Execute(e.NewRequest(context.Background(), `{ hero { name `))
	assert.NotEmpty(t, resp.Errors)

	resp = e.Execute(e.NewRequest(context.Background(), `{ hero { nope } }`))
	assert.NotEmpty(t, resp.Errors)
}

func TestServeGraphQL(t *testing.T) {
	e := newTestEngine(t)

	body, err := json.Marshal(struct {
		Query string `json:"query"`
	}{
		Query: queries.SmallQuery,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r, err := http.NewRequest("POST", "http://example.com/graphql", bytes.NewReader(body))
	require.NoError(t, err)
	r.Header.Set("Content-Type", "application/json")
	e.ServeGraphQL(w, r)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))
	assert.Equal(t, "Luke Skywalker", gjson.GetBytes(w.Body.Bytes(), "data.hero.name").String())
	assert.Equal(t, 77.0, gjson.GetBytes(w.Body.Bytes(), "data.hero.mass").Float())

	w = httptest.NewRecorder()
	r, err = http.NewRequest("PUT", "http://example.com/graphql", nil)
	require.NoError(t, err)
	e.ServeGraphQL(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Result().StatusCode)
}
