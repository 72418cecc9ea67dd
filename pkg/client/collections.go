package client

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/cuemby/weaviate-client-go/pkg/collections"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// deleteConcurrency bounds parallel collection deletes.
const deleteConcurrency = 5

// Collections manages the schema-level collection lifecycle.
type Collections struct {
	c *Client
}

// Collections returns the collection-lifecycle surface.
func (c *Client) Collections() *Collections { return &Collections{c: c} }

// Create registers a new collection and returns a handle on it.
func (cs *Collections) Create(ctx context.Context, cfg *types.CollectionConfig) (*collections.Collection, error) {
	if err := cs.c.ready(); err != nil {
		return nil, err
	}
	wire := collections.MarshalSchema(cfg)
	_, err := cs.c.rest.Send(ctx, http.MethodPost, "/schema", wire, nil,
		[]int{http.StatusOK}, "create collection")
	if err != nil {
		return nil, err
	}
	return cs.c.Collection(wire.Class), nil
}

// Get returns a handle without touching the server; use Exists to verify.
func (cs *Collections) Get(name string) *collections.Collection {
	return cs.c.Collection(name)
}

// Exists probes the schema for the collection.
func (cs *Collections) Exists(ctx context.Context, name string) (bool, error) {
	if err := cs.c.ready(); err != nil {
		return false, err
	}
	resp, err := cs.c.rest.Send(ctx, http.MethodGet,
		"/schema/"+types.CollectionName(name), nil, nil,
		[]int{http.StatusOK, http.StatusNotFound}, "check collection exists")
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

type schemaReply struct {
	Classes []collections.SchemaClass `json:"classes"`
}

// List fetches every collection's configuration.
func (cs *Collections) List(ctx context.Context) ([]*types.CollectionConfig, error) {
	if err := cs.c.ready(); err != nil {
		return nil, err
	}
	resp, err := cs.c.rest.Send(ctx, http.MethodGet, "/schema", nil, nil,
		[]int{http.StatusOK}, "list collections")
	if err != nil {
		return nil, err
	}
	var reply schemaReply
	if err := resp.Into(&reply); err != nil {
		return nil, err
	}
	out := make([]*types.CollectionConfig, len(reply.Classes))
	for i := range reply.Classes {
		out[i] = collections.UnmarshalSchema(&reply.Classes[i])
	}
	return out, nil
}

// Delete removes one collection and all of its data.
func (cs *Collections) Delete(ctx context.Context, name string) error {
	if err := cs.c.ready(); err != nil {
		return err
	}
	_, err := cs.c.rest.Send(ctx, http.MethodDelete,
		"/schema/"+types.CollectionName(name), nil, nil,
		[]int{http.StatusOK}, "delete collection")
	return err
}

// DeleteMany removes several collections concurrently. The first failure
// cancels the remaining deletes.
func (cs *Collections) DeleteMany(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)
	for _, name := range names {
		name := name
		g.Go(func() error {
			return cs.Delete(ctx, name)
		})
	}
	return g.Wait()
}

// DeleteAll removes every collection in the deployment.
func (cs *Collections) DeleteAll(ctx context.Context) error {
	all, err := cs.List(ctx)
	if err != nil {
		return err
	}
	names := make([]string, len(all))
	for i, cfg := range all {
		names[i] = cfg.Name
	}
	return cs.DeleteMany(ctx, names...)
}
