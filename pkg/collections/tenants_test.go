package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

func TestTenantsCreateChunks(t *testing.T) {
	var chunks [][]types.Tenant
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/schema/Article/tenants", r.URL.Path)
		var batch []types.Tenant
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		chunks = append(chunks, batch)
		w.WriteHeader(http.StatusOK)
	}), "1.22.0")

	tenants := make([]types.Tenant, 250)
	for i := range tenants {
		tenants[i] = types.Tenant{Name: fmt.Sprintf("tenant-%03d", i)}
	}
	require.NoError(t, c.Tenants().Create(context.Background(), tenants...))

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)
	assert.Equal(t, types.TenantActivityStatusActive, chunks[0][0].ActivityStatus,
		"empty status normalizes to ACTIVE")
}

func TestTenantsCreateNormalizesLegacyStatuses(t *testing.T) {
	var got []types.Tenant
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}), "1.22.0")

	require.NoError(t, c.Tenants().Create(context.Background(),
		types.Tenant{Name: "a", ActivityStatus: types.TenantActivityStatusHot},
		types.Tenant{Name: "b", ActivityStatus: types.TenantActivityStatusFrozen},
	))
	require.Len(t, got, 2)
	assert.Equal(t, types.TenantActivityStatusActive, got[0].ActivityStatus)
	assert.Equal(t, types.TenantActivityStatusOffloaded, got[1].ActivityStatus)
}

func TestTenantsCreateRejectsReadOnlyStatus(t *testing.T) {
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("validation failures must not reach the network")
	}), "1.22.0")

	err := c.Tenants().Create(context.Background(),
		types.Tenant{Name: "a", ActivityStatus: types.TenantActivityStatusOffloading})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestTenantsGetPrefersGRPC(t *testing.T) {
	fake := &fakeDataPlane{tenantsReply: &proto.TenantsGetReply{
		Tenants: []*proto.Tenant{
			{Name: "a", ActivityStatus: proto.TenantActivityStatus_ACTIVE},
			{Name: "b", ActivityStatus: proto.TenantActivityStatus_OFFLOADING},
		},
	}}
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("servers with the TenantsGet RPC must not fall back to REST")
	}), "1.25.0")
	c.deps.GRPC = fake

	tenants, err := c.Tenants().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Tenant{
		{Name: "a", ActivityStatus: types.TenantActivityStatusActive},
		{Name: "b", ActivityStatus: types.TenantActivityStatusOffloading},
	}, tenants)
	assert.Equal(t, "Article", fake.tenantsReq.Collection)
}

func TestTenantsGetFallsBackToREST(t *testing.T) {
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/schema/Article/tenants", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]types.Tenant{
			{Name: "a", ActivityStatus: types.TenantActivityStatusActive},
			{Name: "b", ActivityStatus: types.TenantActivityStatusInactive},
		})
	}), "1.24.0")
	c.deps.GRPC = &fakeDataPlane{}

	tenants, err := c.Tenants().GetByNames(context.Background(), "b")
	require.NoError(t, err)
	require.Len(t, tenants, 1, "REST fallback filters by name client-side")
	assert.Equal(t, "b", tenants[0].Name)
}

func TestTenantsExists(t *testing.T) {
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/v1/schema/Article/tenants/known" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}), "1.25.0")

	ok, err := c.Tenants().Exists(context.Background(), "known")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Tenants().Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTenantsDeactivateUpdatesStatus(t *testing.T) {
	var got []types.Tenant
	c, _ := newRESTCollection(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}), "1.25.0")

	require.NoError(t, c.Tenants().Deactivate(context.Background(), "a", "b"))
	require.Len(t, got, 2)
	assert.Equal(t, types.TenantActivityStatusInactive, got[0].ActivityStatus)
	assert.Equal(t, types.TenantActivityStatusInactive, got[1].ActivityStatus)
}
