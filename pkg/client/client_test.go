package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// newTestClient connects a client against an httptest control plane. The
// data plane is dialed lazily and never reached by these tests.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/meta", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Meta{Hostname: "node1", Version: "1.29.0"})
	})
	if handler != nil {
		mux.HandleFunc("/", handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := New(Config{
		Host:           strings.TrimPrefix(srv.URL, "http://"),
		Scheme:         "http",
		GRPCHost:       "127.0.0.1:50051",
		SkipInitChecks: true,
	})
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func TestConnectIsIdempotent(t *testing.T) {
	var metaCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/meta", func(w http.ResponseWriter, r *http.Request) {
		metaCalls.Add(1)
		_ = json.NewEncoder(w).Encode(Meta{Version: "1.27.3"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(Config{
		Host:           strings.TrimPrefix(srv.URL, "http://"),
		GRPCHost:       "127.0.0.1:50051",
		SkipInitChecks: true,
	})
	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close(context.Background())

	assert.EqualValues(t, 1, metaCalls.Load(), "reconnecting a connected client is a no-op")
	assert.Equal(t, "1.27.3", c.ServerVersion().String())
}

func TestCloseBlocksFurtherUse(t *testing.T) {
	c := newTestClient(t, nil)
	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()), "close is idempotent")

	err := c.Connect(context.Background())
	var closed *errors.ClosedClientError
	require.ErrorAs(t, err, &closed)

	_, err = c.Meta(context.Background())
	require.ErrorAs(t, err, &closed)
}

func TestUseBeforeConnectFails(t *testing.T) {
	c := New(Local())
	_, err := c.Meta(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestProbes(t *testing.T) {
	live := true
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/.well-known/ready" {
			if live {
				w.WriteHeader(http.StatusOK)
			} else {
				w.WriteHeader(http.StatusServiceUnavailable)
			}
			return
		}
		http.NotFound(w, r)
	})

	ok, err := c.IsReady(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	live = false
	ok, err = c.IsReady(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "503 is a negative probe result, not an error")
}

func TestCollectionsLifecycle(t *testing.T) {
	var (
		mu      sync.Mutex
		deleted []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/schema" && r.Method == http.MethodPost:
			var got map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "Article", got["class"])
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/v1/schema" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"classes": []map[string]any{
					{"class": "Article"},
					{"class": "Publisher"},
				},
			})
		case r.URL.Path == "/v1/schema/Article" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"class": "Article"})
		case strings.HasPrefix(r.URL.Path, "/v1/schema/") && r.Method == http.MethodDelete:
			mu.Lock()
			deleted = append(deleted, strings.TrimPrefix(r.URL.Path, "/v1/schema/"))
			mu.Unlock()
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	handle, err := c.Collections().Create(context.Background(), &types.CollectionConfig{Name: "article"})
	require.NoError(t, err)
	assert.Equal(t, "Article", handle.Name())

	all, err := c.Collections().List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	ok, err := c.Collections().Exists(context.Background(), "article")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Collections().Exists(context.Background(), "Missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Collections().DeleteAll(context.Background()))
	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"Article", "Publisher"}, deleted)
}

func TestBatchStatsSumsAcrossNodes(t *testing.T) {
	q1, r1 := int64(100), int64(500)
	q2, r2 := int64(50), int64(300)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/nodes", r.URL.Path)
		require.Equal(t, "verbose", r.URL.Query().Get("output"))
		_ = json.NewEncoder(w).Encode(nodesReply{Nodes: []types.NodeStatus{
			{Name: "n1", BatchStats: &types.BatchStats{QueueLength: &q1, RatePerSecond: &r1}},
			{Name: "n2", BatchStats: &types.BatchStats{QueueLength: &q2, RatePerSecond: &r2}},
		}})
	})

	stats, err := c.batchStats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats.QueueLength)
	require.NotNil(t, stats.RatePerSecond)
	assert.EqualValues(t, 150, *stats.QueueLength)
	assert.EqualValues(t, 800, *stats.RatePerSecond)
}

func TestBatchStatsWithoutRatesTriggersFallbackShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(nodesReply{Nodes: []types.NodeStatus{
			{Name: "n1", Status: "HEALTHY"},
		}})
	})

	stats, err := c.batchStats(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats.RatePerSecond, "absent node rates surface as a nil rate")
}

func TestPermissionWireShape(t *testing.T) {
	tests := []struct {
		name string
		perm types.Permission
		want string
	}{
		{
			name: "collection action nests under collections",
			perm: types.Permission{Action: types.ActionReadCollections, Collection: "Article"},
			want: `{"action": "read_collections", "collections": {"collection": "Article"}}`,
		},
		{
			name: "empty selector widens to star",
			perm: types.Permission{Action: types.ActionCreateData},
			want: `{"action": "create_data", "data": {"collection": "*"}}`,
		},
		{
			name: "cluster action carries no selector",
			perm: types.Permission{Action: types.ActionReadCluster},
			want: `{"action": "read_cluster"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(encodePermission(tt.perm))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestPermissionRoundTripFlattens(t *testing.T) {
	in := types.Permission{Action: types.ActionReadCollections, Collection: "Article"}
	back := decodePermission(encodePermission(in))
	assert.Equal(t, in, back)

	// A starred wire selector flattens to the empty "all" form.
	wide := decodePermission(encodePermission(types.Permission{Action: types.ActionDeleteData}))
	assert.Empty(t, wide.Collection)
}

func TestDebugObjectOnNode(t *testing.T) {
	id := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/nodes" {
			// Background batch-stats poll; not under test here.
			_ = json.NewEncoder(w).Encode(nodesReply{})
			return
		}
		require.Equal(t, "/v1/objects/Article/"+id.String(), r.URL.Path)
		assert.Equal(t, "ONE", r.URL.Query().Get("consistency_level"))
		assert.Equal(t, "node2", r.URL.Query().Get("node_name"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"class":            "Article",
			"id":               id.String(),
			"properties":       map[string]any{"title": "hello"},
			"vector":           []float32{0.1, 0.2},
			"creationTimeUnix": 1700000000000,
		})
	})

	obj, found, err := c.Debug().ObjectOnNode(context.Background(), "article", id, "node2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Article", obj.Collection)
	assert.Equal(t, "hello", obj.Properties["title"])
	assert.False(t, obj.CreatedAt.IsZero())
}

func TestDebugObjectOnNodeMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, found, err := c.Debug().ObjectOnNode(context.Background(), "Article", uuid.New(), "node1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCloudConfigDerivesGRPCHost(t *testing.T) {
	cfg := Cloud("https://my-cluster.weaviate.network", "key123")
	assert.Equal(t, "my-cluster.weaviate.network", cfg.Host)
	assert.Equal(t, "grpc-my-cluster.weaviate.network:443", cfg.GRPCHost)
	assert.True(t, cfg.GRPCSecure)
	assert.Equal(t, "https", cfg.Scheme)
}
