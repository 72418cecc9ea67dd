package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Cluster exposes node-level information.
type Cluster struct {
	c *Client
}

// Cluster returns the cluster surface.
func (c *Client) Cluster() *Cluster { return &Cluster{c: c} }

type nodesReply struct {
	Nodes []types.NodeStatus `json:"nodes"`
}

// Nodes lists the cluster nodes with their verbose statistics, including
// shard breakdowns and batch queue telemetry.
func (cl *Cluster) Nodes(ctx context.Context) ([]types.NodeStatus, error) {
	if err := cl.c.ready(); err != nil {
		return nil, err
	}
	return cl.c.fetchNodes(ctx)
}

func (c *Client) fetchNodes(ctx context.Context) ([]types.NodeStatus, error) {
	params := url.Values{"output": []string{"verbose"}}
	resp, err := c.rest.Send(ctx, http.MethodGet, "/nodes", nil, params,
		[]int{http.StatusOK}, "get cluster nodes")
	if err != nil {
		return nil, err
	}
	var reply nodesReply
	if err := resp.Into(&reply); err != nil {
		return nil, err
	}
	return reply.Nodes, nil
}

// batchStats feeds the dynamic batch sizer: queue lengths and ingest rates
// summed across nodes. A cluster where no node reports a rate yields a nil
// rate, which switches the sizer to its throughput fallback.
func (c *Client) batchStats(ctx context.Context) (*types.BatchStats, error) {
	nodes, err := c.fetchNodes(ctx)
	if err != nil {
		return nil, err
	}
	var (
		queueLen int64
		rate     int64
		hasRate  bool
	)
	for _, n := range nodes {
		if n.BatchStats == nil {
			continue
		}
		if n.BatchStats.QueueLength != nil {
			queueLen += *n.BatchStats.QueueLength
		}
		if n.BatchStats.RatePerSecond != nil {
			rate += *n.BatchStats.RatePerSecond
			hasRate = true
		}
	}
	stats := &types.BatchStats{QueueLength: &queueLen}
	if hasRate {
		stats.RatePerSecond = &rate
	}
	return stats, nil
}
