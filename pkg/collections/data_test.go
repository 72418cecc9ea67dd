package collections

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/pkg/filters"
	"github.com/cuemby/weaviate-client-go/pkg/transport"
	"github.com/cuemby/weaviate-client-go/pkg/types"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

func newRESTCollection(t *testing.T, handler http.Handler, ver string) (*Collection, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rest, err := transport.NewHTTP(transport.HTTPConfig{BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	t.Cleanup(rest.Close)
	return New("article", Deps{REST: rest, Version: version.Parse(ver)}), srv
}

func TestDataInsertGeneratesID(t *testing.T) {
	var got restObject
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/objects", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(got)
	}), "1.27.0")

	when := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	id, err := c.Data().Insert(context.Background(), &types.Object{
		Properties: types.Properties{"title": "hello", "publishedAt": when},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	assert.Equal(t, "Article", got.Class, "collection name is capitalized")
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "hello", got.Properties["title"])
	assert.Equal(t, "2023-05-01T12:00:00Z", got.Properties["publishedAt"], "dates travel as RFC 3339")
}

func TestDataInsertEncodesReferencesAsBeacons(t *testing.T) {
	target := uuid.New()
	var got restObject
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(got)
	}), "1.27.0")

	_, err := c.Data().Insert(context.Background(), &types.Object{
		Properties: types.Properties{"title": "x"},
		References: map[string]types.Reference{
			"writesFor": types.ReferenceToUUIDs(target),
		},
	})
	require.NoError(t, err)

	refs, ok := got.Properties["writesFor"].([]any)
	require.True(t, ok, "reference property became a beacon list")
	require.Len(t, refs, 1)
	beacon := refs[0].(map[string]any)["beacon"]
	assert.Equal(t, "weaviate://localhost/"+target.String(), beacon)
}

func TestDataGetByIDMissingIsNotAnError(t *testing.T) {
	known := uuid.New()
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/objects/Article/"+known.String() {
			assert.Equal(t, "vector", r.URL.Query().Get("include"))
			_ = json.NewEncoder(w).Encode(restObject{
				Class:            "Article",
				ID:               known.String(),
				Properties:       map[string]any{"title": "found"},
				Vector:           []float32{0.1, 0.2},
				CreationTimeUnix: 1700000000000,
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}), "1.27.0")

	obj, found, err := c.Data().GetByID(context.Background(), known)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, known, obj.UUID)
	assert.Equal(t, "found", obj.Properties["title"])
	assert.Equal(t, []float32{0.1, 0.2}, obj.Vector)
	require.NotNil(t, obj.Metadata.CreationTimeUnix)
	assert.EqualValues(t, 1700000000000, *obj.Metadata.CreationTimeUnix)

	obj, found, err = c.Data().GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, obj)
}

func TestDataDeleteReportsExistence(t *testing.T) {
	known := uuid.New()
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/v1/objects/Article/"+known.String() {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}), "1.27.0")

	existed, err := c.Data().Delete(context.Background(), known)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = c.Data().Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, existed, "deleting a missing object is not an error")
}

func TestDataTenantAndConsistencyParams(t *testing.T) {
	var query string
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}), "1.27.0")

	scoped := c.WithTenant("acme").WithConsistencyLevel(types.ConsistencyLevelQuorum)
	_, err := scoped.Data().Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Contains(t, query, "tenant=acme")
	assert.Contains(t, query, "consistency_level=QUORUM")

	// The base handle is untouched.
	assert.Empty(t, c.tenant)
	assert.Empty(t, c.consistency)
}

func TestDataDeleteMany(t *testing.T) {
	var got map[string]any
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/batch/objects", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]any{"matches": 12, "successful": 11, "failed": 1},
		})
	}), "1.27.0")

	res, err := c.Data().DeleteMany(context.Background(),
		filters.ByProperty("title").Like("draft*"), false)
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Matches)
	assert.EqualValues(t, 11, res.Successful)
	assert.EqualValues(t, 1, res.Failed)

	match := got["match"].(map[string]any)
	assert.Equal(t, "Article", match["class"])
	where := match["where"].(map[string]any)
	assert.Equal(t, "Like", where["operator"])

	_, err = c.Data().DeleteMany(context.Background(), nil, false)
	require.Error(t, err, "DeleteMany without a filter is rejected")
}

func TestDataReferenceRoundTrip(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	var calls []string
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), "1.27.0")

	ref := types.ReferenceToUUIDs(to)
	path := "/v1/objects/Article/" + from.String() + "/references/writesFor"
	require.NoError(t, c.Data().ReferenceAdd(context.Background(), from, "writesFor", ref))
	require.NoError(t, c.Data().ReferenceReplace(context.Background(), from, "writesFor", ref))
	require.NoError(t, c.Data().ReferenceDelete(context.Background(), from, "writesFor", ref))

	assert.Equal(t, []string{
		http.MethodPost + " " + path,
		http.MethodPut + " " + path,
		http.MethodDelete + " " + path,
	}, calls)
}
