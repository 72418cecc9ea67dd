package collections

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/filters"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

func i64Ptr(n int64) *int64     { return &n }
func f64Ptr(f float64) *float64 { return &f }

func TestAggregateUsesGRPCOnNewServers(t *testing.T) {
	fake := &fakeDataPlane{aggReply: &proto.AggregateReply{
		SingleResult: &proto.AggregateGroup{
			ObjectsCount: i64Ptr(42),
			Properties: []*proto.AggregatedProperty{
				{Property: "wordCount", Count: i64Ptr(42), Mean: f64Ptr(310.5)},
			},
		},
	}}
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("servers with the Aggregate RPC must not fall back to GraphQL")
	}), "1.29.0")
	c.deps.GRPC = fake

	res, err := c.Aggregate(context.Background(), AggregateRequest{
		ObjectsCount: true,
		Metrics:      []Metric{{Property: "wordCount", Count: true, Mean: true}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.TotalCount)
	assert.EqualValues(t, 42, *res.TotalCount)
	require.Contains(t, res.Properties, "wordCount")
	assert.Equal(t, 310.5, *res.Properties["wordCount"].Mean)

	require.NotNil(t, fake.aggReq)
	assert.Equal(t, "Article", fake.aggReq.Collection)
	assert.True(t, fake.aggReq.ObjectsCount)
}

func TestAggregateGraphQLFallback(t *testing.T) {
	var gql string
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/graphql", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gql = body["query"]
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"Aggregate": map[string]any{
					"Article": []any{map[string]any{
						"meta":      map[string]any{"count": 7},
						"wordCount": map[string]any{"mean": 120.25, "maximum": 900.0},
					}},
				},
			},
		})
	}), "1.27.0")
	c.deps.GRPC = &fakeDataPlane{}

	res, err := c.WithTenant("acme").Aggregate(context.Background(), AggregateRequest{
		ObjectsCount: true,
		Filter:       filters.ByProperty("published").Equal(true),
		Metrics:      []Metric{{Property: "wordCount", Mean: true, Max: true}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.TotalCount)
	assert.EqualValues(t, 7, *res.TotalCount)
	assert.Equal(t, 120.25, *res.Properties["wordCount"].Mean)
	assert.Equal(t, 900.0, *res.Properties["wordCount"].Max)
	assert.Nil(t, res.Properties["wordCount"].Count)

	assert.Contains(t, gql, "Aggregate { Article(")
	assert.Contains(t, gql, `operator: Equal`)
	assert.Contains(t, gql, `path: ["published"]`, "filter renders in GraphQL argument syntax")
	assert.Contains(t, gql, "valueBoolean: true")
	assert.Contains(t, gql, `tenant: "acme"`)
	assert.Contains(t, gql, "meta { count }")
	assert.Contains(t, gql, "wordCount { mean maximum }")
}

func TestAggregateGraphQLErrorEnvelope(t *testing.T) {
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "no such property: wordCont"}},
		})
	}), "1.27.0")

	_, err := c.Aggregate(context.Background(), AggregateRequest{
		Metrics: []Metric{{Property: "wordCont", Mean: true}},
	})
	var qerr *errors.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Contains(t, qerr.Messages[0], "wordCont")
}

func TestAggregateRejectsEmptySelection(t *testing.T) {
	c := New("article", Deps{Version: version.Parse("1.29.0")})
	_, err := c.Aggregate(context.Background(), AggregateRequest{})
	require.Error(t, err)

	_, err = c.Aggregate(context.Background(), AggregateRequest{
		Metrics: []Metric{{Property: "wordCount"}},
	})
	require.Error(t, err, "a metric selecting no aggregations is rejected")
}
