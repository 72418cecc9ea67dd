package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// ReplicateRequest describes one shard replica movement to start.
type ReplicateRequest struct {
	Collection string                      `json:"collection"`
	Shard      string                      `json:"shard"`
	SourceNode string                      `json:"sourceNode"`
	TargetNode string                      `json:"targetNode"`
	Type       types.ReplicateTransferType `json:"type,omitempty"`
}

// Replication drives shard replica movements.
type Replication struct {
	c *Client
}

// Replication returns the replica-movement surface.
func (c *Client) Replication() *Replication { return &Replication{c: c} }

// Replicate starts a replica movement and returns its operation ID.
func (r *Replication) Replicate(ctx context.Context, req ReplicateRequest) (uuid.UUID, error) {
	if err := r.c.ready(); err != nil {
		return uuid.Nil, err
	}
	req.Collection = types.CollectionName(req.Collection)
	if req.Type == "" {
		req.Type = types.ReplicateTransferTypeCopy
	}
	resp, err := r.c.rest.Send(ctx, http.MethodPost, "/replication/replicate", req, nil,
		[]int{http.StatusOK}, "start replication")
	if err != nil {
		return uuid.Nil, err
	}
	var out struct {
		ID uuid.UUID `json:"id"`
	}
	if err := resp.Into(&out); err != nil {
		return uuid.Nil, err
	}
	return out.ID, nil
}

// Get fetches one operation, with its status history. A missing operation
// is reported through the second return value.
func (r *Replication) Get(ctx context.Context, id uuid.UUID) (*types.ReplicateOperation, bool, error) {
	if err := r.c.ready(); err != nil {
		return nil, false, err
	}
	params := url.Values{"includeHistory": []string{"true"}}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/replication/replicate/"+id.String(), nil, params,
		[]int{http.StatusOK, http.StatusNotFound}, "get replication operation")
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	var op types.ReplicateOperation
	if err := resp.Into(&op); err != nil {
		return nil, false, err
	}
	return &op, true, nil
}

// List fetches operations, optionally filtered by collection and shard.
func (r *Replication) List(ctx context.Context, collection, shard string) ([]types.ReplicateOperation, error) {
	if err := r.c.ready(); err != nil {
		return nil, err
	}
	params := url.Values{}
	if collection != "" {
		params.Set("collection", types.CollectionName(collection))
	}
	if shard != "" {
		params.Set("shard", shard)
	}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/replication/replicate", nil, params,
		[]int{http.StatusOK}, "list replication operations")
	if err != nil {
		return nil, err
	}
	var ops []types.ReplicateOperation
	if err := resp.Into(&ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// Cancel stops a running operation; completed operations are unaffected.
func (r *Replication) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := r.c.ready(); err != nil {
		return err
	}
	_, err := r.c.rest.Send(ctx, http.MethodPost,
		"/replication/replicate/"+id.String()+"/cancel", nil, nil,
		[]int{http.StatusNoContent}, "cancel replication operation")
	return err
}

// Delete removes a finished operation record.
func (r *Replication) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.c.ready(); err != nil {
		return err
	}
	_, err := r.c.rest.Send(ctx, http.MethodDelete,
		"/replication/replicate/"+id.String(), nil, nil,
		[]int{http.StatusNoContent}, "delete replication operation")
	return err
}

// ShardingState fetches which nodes hold replicas of a collection's shards.
func (r *Replication) ShardingState(ctx context.Context, collection string) (*types.ShardingState, error) {
	if err := r.c.ready(); err != nil {
		return nil, err
	}
	params := url.Values{"collection": []string{types.CollectionName(collection)}}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/replication/sharding-state", nil, params,
		[]int{http.StatusOK}, "get sharding state")
	if err != nil {
		return nil, err
	}
	var state types.ShardingState
	if err := resp.Into(&state); err != nil {
		return nil, err
	}
	return &state, nil
}
