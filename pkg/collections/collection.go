package collections

import (
	"context"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/backup"
	"github.com/cuemby/weaviate-client-go/pkg/batch"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/query"
	"github.com/cuemby/weaviate-client-go/pkg/transport"
	"github.com/cuemby/weaviate-client-go/pkg/types"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

// Deps bundles the shared client state every collection handle needs. The
// client owns the lifecycle of each field; handles only borrow them.
type Deps struct {
	REST *transport.HTTP
	GRPC proto.WeaviateClient
	// WithMetadata decorates an outgoing gRPC context with static headers
	// and a fresh auth token. Nil means calls go out undecorated.
	WithMetadata func(context.Context) context.Context
	Version      version.ServerVersion
	Batch        *batch.Engine
	Backups      *backup.Manager
}

// Collection is a handle on one collection. The zero tenant means the
// collection is addressed without tenant scoping.
type Collection struct {
	name        string
	tenant      string
	consistency types.ConsistencyLevel
	hints       query.Hints
	deps        Deps
}

// New builds a handle. The name is normalized to its capitalized form.
func New(name string, deps Deps) *Collection {
	return &Collection{name: types.CollectionName(name), deps: deps}
}

// Name returns the normalized collection name.
func (c *Collection) Name() string { return c.name }

// WithTenant returns a derived handle scoped to the tenant.
func (c *Collection) WithTenant(tenant string) *Collection {
	cp := *c
	cp.tenant = tenant
	return &cp
}

// WithConsistencyLevel returns a derived handle that stamps the consistency
// level on every operation that supports one.
func (c *Collection) WithConsistencyLevel(cl types.ConsistencyLevel) *Collection {
	cp := *c
	cp.consistency = cl
	return &cp
}

// WithPropertyTypes returns a derived handle carrying decode hints, so that
// date[] and uuid[] properties come back typed instead of as []string.
// Config().PropertyHints derives them from the live schema.
func (c *Collection) WithPropertyTypes(hints query.Hints) *Collection {
	cp := *c
	cp.hints = hints
	return &cp
}

func (c *Collection) rpcCtx(ctx context.Context) context.Context {
	if c.deps.WithMetadata != nil {
		return c.deps.WithMetadata(ctx)
	}
	return ctx
}

// Query starts a search builder pre-scoped to this handle.
func (c *Collection) Query() *query.Builder {
	b := query.New(c.name)
	if c.tenant != "" {
		b.WithTenant(c.tenant)
	}
	if c.consistency != "" {
		b.WithConsistencyLevel(c.consistency)
	}
	return b
}

// Search validates and executes a built query over the data plane.
func (c *Collection) Search(ctx context.Context, b *query.Builder) (*query.Result, error) {
	if c.deps.GRPC == nil {
		return nil, errors.NewInvalidInput("collection %q has no data-plane connection, connect the client first", c.name)
	}
	req, err := b.Build(c.deps.Version)
	if err != nil {
		return nil, err
	}
	reply, err := c.deps.GRPC.Search(c.rpcCtx(ctx), req)
	if err != nil {
		return nil, &errors.RPCError{Label: "search " + c.name, Err: err}
	}
	res, err := query.Decode(reply, c.name, c.hints)
	if err != nil {
		return nil, err
	}
	logger := log.WithCollection(c.name)
	logger.Debug().Int("objects", len(res.Objects)).Msg("search completed")
	return res, nil
}

// Iterator pages through every object of the collection in UUID order using
// the after-cursor. Each page is one Search call.
func (c *Collection) Iterator() *query.Iterator {
	return query.NewIterator(func(ctx context.Context, after *uuid.UUID, limit int) ([]*types.Object, error) {
		b := c.Query().Limit(limit)
		if after != nil {
			b.After(*after)
		}
		res, err := c.Search(ctx, b)
		if err != nil {
			return nil, err
		}
		return res.Objects, nil
	})
}

// InsertMany ingests the objects through the shared batch engine, stamping
// the handle's collection and tenant onto items that do not set their own.
func (c *Collection) InsertMany(ctx context.Context, objs []types.BatchObject) (*types.BatchResult, error) {
	if c.deps.Batch == nil {
		return nil, errors.NewInvalidInput("collection %q has no batch engine, connect the client first", c.name)
	}
	stamped := make([]types.BatchObject, len(objs))
	for i, o := range objs {
		if o.Collection == "" {
			o.Collection = c.name
		}
		if o.Tenant == "" {
			o.Tenant = c.tenant
		}
		stamped[i] = o
	}
	return c.deps.Batch.InsertMany(ctx, stamped)
}

// CreateBackup backs up just this collection.
func (c *Collection) CreateBackup(ctx context.Context, backend, id string, wait bool) (*backup.Job, error) {
	if c.deps.Backups == nil {
		return nil, errors.NewInvalidInput("collection %q has no backup manager, connect the client first", c.name)
	}
	return c.deps.Backups.Create(ctx, backup.Request{
		Backend:           backend,
		ID:                id,
		Include:           []string{c.name},
		WaitForCompletion: wait,
	})
}
