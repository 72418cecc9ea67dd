package collections

import (
	"context"
	"net/http"

	"github.com/cuemby/weaviate-client-go/pkg/query"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Config reads and mutates the collection's schema.
type Config struct {
	c *Collection
}

// Config returns the schema surface of the handle.
func (c *Collection) Config() *Config { return &Config{c: c} }

func (cf *Config) path() string {
	return "/schema/" + cf.c.name
}

// Get fetches the current schema of the collection.
func (cf *Config) Get(ctx context.Context) (*types.CollectionConfig, error) {
	resp, err := cf.c.deps.REST.Send(ctx, http.MethodGet, cf.path(), nil, nil,
		[]int{http.StatusOK}, "get collection config")
	if err != nil {
		return nil, err
	}
	var w SchemaClass
	if err := resp.Into(&w); err != nil {
		return nil, err
	}
	return UnmarshalSchema(&w), nil
}

// Update replaces the mutable parts of the schema. The server rejects
// changes to immutable fields such as property data types.
func (cf *Config) Update(ctx context.Context, cfg *types.CollectionConfig) error {
	cfg.Name = cf.c.name
	_, err := cf.c.deps.REST.Send(ctx, http.MethodPut, cf.path(), MarshalSchema(cfg), nil,
		[]int{http.StatusOK}, "update collection config")
	return err
}

// AddProperty appends a property to the schema.
func (cf *Config) AddProperty(ctx context.Context, p types.Property) error {
	_, err := cf.c.deps.REST.Send(ctx, http.MethodPost, cf.path()+"/properties",
		marshalProperty(p), nil, []int{http.StatusOK}, "add property")
	return err
}

// AddReference appends a cross-reference property to the schema.
func (cf *Config) AddReference(ctx context.Context, r types.ReferenceProperty) error {
	body := schemaProperty{
		Name:        r.Name,
		DataType:    normalizeTargets(r.TargetCollections),
		Description: r.Description,
	}
	_, err := cf.c.deps.REST.Send(ctx, http.MethodPost, cf.path()+"/properties",
		body, nil, []int{http.StatusOK}, "add reference property")
	return err
}

// Shards lists the shard statuses of the collection.
func (cf *Config) Shards(ctx context.Context) ([]types.Shard, error) {
	resp, err := cf.c.deps.REST.Send(ctx, http.MethodGet, cf.path()+"/shards", nil, nil,
		[]int{http.StatusOK}, "get shards")
	if err != nil {
		return nil, err
	}
	var shards []types.Shard
	if err := resp.Into(&shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// UpdateShards sets the status of the named shards, or of every shard when
// no names are given.
func (cf *Config) UpdateShards(ctx context.Context, status string, names ...string) error {
	if len(names) == 0 {
		shards, err := cf.Shards(ctx)
		if err != nil {
			return err
		}
		for _, s := range shards {
			names = append(names, s.Name)
		}
	}
	for _, name := range names {
		_, err := cf.c.deps.REST.Send(ctx, http.MethodPut, cf.path()+"/shards/"+name,
			map[string]string{"status": status}, nil, []int{http.StatusOK}, "update shard status")
		if err != nil {
			return err
		}
	}
	return nil
}

// PropertyHints derives search decode hints from the live schema, so date[]
// and uuid[] arrays decode into their typed forms.
func (cf *Config) PropertyHints(ctx context.Context) (query.Hints, error) {
	cfg, err := cf.Get(ctx)
	if err != nil {
		return nil, err
	}
	hints := query.Hints{}
	for _, p := range cfg.Properties {
		switch p.DataType {
		case types.DataTypeDateArray, types.DataTypeUUIDArray:
			hints[p.Name] = p.DataType
		}
	}
	return hints, nil
}
