package collections

import (
	"context"
	"net/http"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// tenantChunkSize bounds how many tenants one create or update request
// carries.
const tenantChunkSize = 100

// Tenants manages the tenant partitions of a multi-tenant collection.
type Tenants struct {
	c *Collection
}

// Tenants returns the tenant surface of the handle.
func (c *Collection) Tenants() *Tenants { return &Tenants{c: c} }

func (t *Tenants) path() string {
	return "/schema/" + t.c.name + "/tenants"
}

// normalize validates writability and maps legacy status aliases. Reads keep
// transitional statuses; writes reject them here.
func normalizeTenants(tenants []types.Tenant) ([]types.Tenant, error) {
	out := make([]types.Tenant, len(tenants))
	for i, tn := range tenants {
		if tn.Name == "" {
			return nil, errors.NewInvalidInput("tenant at index %d has no name", i)
		}
		if err := tn.ActivityStatus.ValidateWritable(); err != nil {
			return nil, errors.NewInvalidInput("tenant %q: %v", tn.Name, err)
		}
		tn.ActivityStatus = tn.ActivityStatus.Normalize()
		out[i] = tn
	}
	return out, nil
}

func (t *Tenants) writeChunked(ctx context.Context, method string, tenants []types.Tenant, label string) error {
	normalized, err := normalizeTenants(tenants)
	if err != nil {
		return err
	}
	for start := 0; start < len(normalized); start += tenantChunkSize {
		end := start + tenantChunkSize
		if end > len(normalized) {
			end = len(normalized)
		}
		_, err := t.c.deps.REST.Send(ctx, method, t.path(), normalized[start:end], nil,
			[]int{http.StatusOK}, label)
		if err != nil {
			return err
		}
	}
	return nil
}

// Create adds tenants to the collection, chunking large inputs.
func (t *Tenants) Create(ctx context.Context, tenants ...types.Tenant) error {
	return t.writeChunked(ctx, http.MethodPost, tenants, "create tenants")
}

// Update changes the activity status of existing tenants.
func (t *Tenants) Update(ctx context.Context, tenants ...types.Tenant) error {
	return t.writeChunked(ctx, http.MethodPut, tenants, "update tenants")
}

// Remove deletes tenants and their data.
func (t *Tenants) Remove(ctx context.Context, names ...string) error {
	_, err := t.c.deps.REST.Send(ctx, http.MethodDelete, t.path(), names, nil,
		[]int{http.StatusOK}, "remove tenants")
	return err
}

// Exists probes one tenant by name.
func (t *Tenants) Exists(ctx context.Context, name string) (bool, error) {
	resp, err := t.c.deps.REST.Send(ctx, http.MethodHead, t.path()+"/"+name, nil, nil,
		[]int{http.StatusOK, http.StatusNotFound}, "check tenant exists")
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// Get lists all tenants. On servers with the TenantsGet RPC the data plane
// answers; older servers fall back to the schema endpoint.
func (t *Tenants) Get(ctx context.Context) ([]types.Tenant, error) {
	return t.get(ctx, nil)
}

// GetByNames lists only the named tenants. The REST fallback filters
// client-side since the schema endpoint has no name filter.
func (t *Tenants) GetByNames(ctx context.Context, names ...string) ([]types.Tenant, error) {
	return t.get(ctx, names)
}

func (t *Tenants) get(ctx context.Context, names []string) ([]types.Tenant, error) {
	if t.c.deps.Version.SupportsGRPCTenantsGet() && t.c.deps.GRPC != nil {
		return t.getGRPC(ctx, names)
	}
	return t.getREST(ctx, names)
}

func (t *Tenants) getGRPC(ctx context.Context, names []string) ([]types.Tenant, error) {
	reply, err := t.c.deps.GRPC.TenantsGet(t.c.rpcCtx(ctx), &proto.TenantsGetRequest{
		Collection: t.c.name,
		Names:      names,
	})
	if err != nil {
		return nil, &errors.RPCError{Label: "get tenants of " + t.c.name, Err: err}
	}
	out := make([]types.Tenant, 0, len(reply.Tenants))
	for _, tn := range reply.Tenants {
		out = append(out, types.Tenant{
			Name:           tn.Name,
			ActivityStatus: tenantStatusFromProto(tn.ActivityStatus),
		})
	}
	return out, nil
}

func (t *Tenants) getREST(ctx context.Context, names []string) ([]types.Tenant, error) {
	resp, err := t.c.deps.REST.Send(ctx, http.MethodGet, t.path(), nil, nil,
		[]int{http.StatusOK}, "get tenants")
	if err != nil {
		return nil, err
	}
	var all []types.Tenant
	if err := resp.Into(&all); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	out := make([]types.Tenant, 0, len(names))
	for _, tn := range all {
		if wanted[tn.Name] {
			out = append(out, tn)
		}
	}
	return out, nil
}

func tenantStatusFromProto(s proto.TenantActivityStatus) types.TenantActivityStatus {
	switch s {
	case proto.TenantActivityStatus_ACTIVE:
		return types.TenantActivityStatusActive
	case proto.TenantActivityStatus_INACTIVE:
		return types.TenantActivityStatusInactive
	case proto.TenantActivityStatus_OFFLOADED:
		return types.TenantActivityStatusOffloaded
	case proto.TenantActivityStatus_OFFLOADING:
		return types.TenantActivityStatusOffloading
	case proto.TenantActivityStatus_ONLOADING:
		return types.TenantActivityStatusOnloading
	default:
		return ""
	}
}

// Activate sets the named tenants ACTIVE.
func (t *Tenants) Activate(ctx context.Context, names ...string) error {
	return t.setStatus(ctx, types.TenantActivityStatusActive, names)
}

// Deactivate sets the named tenants INACTIVE, releasing their resources
// while keeping the data local.
func (t *Tenants) Deactivate(ctx context.Context, names ...string) error {
	return t.setStatus(ctx, types.TenantActivityStatusInactive, names)
}

// Offload moves the named tenants to cold storage.
func (t *Tenants) Offload(ctx context.Context, names ...string) error {
	return t.setStatus(ctx, types.TenantActivityStatusOffloaded, names)
}

func (t *Tenants) setStatus(ctx context.Context, status types.TenantActivityStatus, names []string) error {
	tenants := make([]types.Tenant, len(names))
	for i, n := range names {
		tenants[i] = types.Tenant{Name: n, ActivityStatus: status}
	}
	return t.Update(ctx, tenants...)
}
