package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Debug exposes node-level inspection calls for diagnosing replica drift.
// These bypass the usual consistency resolution and are not part of the
// stable data surface.
type Debug struct {
	c *Client
}

// Debug returns the diagnostic surface.
func (c *Client) Debug() *Debug { return &Debug{c: c} }

// DebugObject is the raw per-node view of one stored object.
type DebugObject struct {
	Collection string
	ID         uuid.UUID
	Tenant     string
	Properties types.Properties
	Vector     []float32
	Vectors    map[string][]float32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type debugObjectWire struct {
	Class        string               `json:"class"`
	ID           uuid.UUID            `json:"id"`
	Tenant       string               `json:"tenant,omitempty"`
	Properties   types.Properties     `json:"properties"`
	Vector       []float32            `json:"vector,omitempty"`
	Vectors      map[string][]float32 `json:"vectors,omitempty"`
	CreationUnix int64                `json:"creationTimeUnix,omitempty"`
	UpdateUnix   int64                `json:"lastUpdateTimeUnix,omitempty"`
}

// ObjectOnNode reads one object directly from a named node with consistency
// level ONE, so the reply reflects that node's local state rather than a
// quorum. A missing object is reported through the second return value.
func (d *Debug) ObjectOnNode(ctx context.Context, collection string, id uuid.UUID, node string) (*DebugObject, bool, error) {
	if err := d.c.ready(); err != nil {
		return nil, false, err
	}
	collection = types.CollectionName(collection)

	params := url.Values{
		"consistency_level": []string{string(types.ConsistencyLevelOne)},
		"include":           []string{"vector"},
	}
	if node != "" {
		params.Set("node_name", node)
	}
	resp, err := d.c.rest.Send(ctx, http.MethodGet,
		"/objects/"+collection+"/"+id.String(), nil, params,
		[]int{http.StatusOK, http.StatusNotFound}, "debug get object")
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}

	var wire debugObjectWire
	if err := resp.Into(&wire); err != nil {
		return nil, false, err
	}
	obj := &DebugObject{
		Collection: wire.Class,
		ID:         wire.ID,
		Tenant:     wire.Tenant,
		Properties: wire.Properties,
		Vector:     wire.Vector,
		Vectors:    wire.Vectors,
	}
	if wire.CreationUnix > 0 {
		obj.CreatedAt = time.UnixMilli(wire.CreationUnix)
	}
	if wire.UpdateUnix > 0 {
		obj.UpdatedAt = time.UnixMilli(wire.UpdateUnix)
	}
	return obj, true, nil
}
