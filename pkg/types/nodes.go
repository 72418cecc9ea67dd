package types

// BatchStats is the per-node ingestion telemetry the dynamic batch sizer
// feeds on. RatePerSecond may be absent on servers that do not expose the
// rich stats shape; the sizer then falls back to throughput-only sizing.
type BatchStats struct {
	QueueLength   *int64 `json:"queueLength,omitempty"`
	RatePerSecond *int64 `json:"ratePerSecond,omitempty"`
}

// NodeShardStatus is the per-shard breakdown in a verbose nodes response.
type NodeShardStatus struct {
	Name        string `json:"name"`
	Collection  string `json:"class"`
	ObjectCount int64  `json:"objectCount"`
}

// NodeStats aggregates object and shard counts for one node.
type NodeStats struct {
	ObjectCount int64 `json:"objectCount"`
	ShardCount  int64 `json:"shardCount"`
}

// NodeStatus is one node's entry in the cluster nodes response.
type NodeStatus struct {
	Name       string            `json:"name"`
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	GitHash    string            `json:"gitHash"`
	Stats      *NodeStats        `json:"stats,omitempty"`
	BatchStats *BatchStats       `json:"batchStats,omitempty"`
	Shards     []NodeShardStatus `json:"shards,omitempty"`
}
