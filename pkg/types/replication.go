package types

import (
	"time"

	"github.com/google/uuid"
)

// ReplicateTransferType selects whether a replica movement copies or moves
// the shard.
type ReplicateTransferType string

const (
	ReplicateTransferTypeCopy ReplicateTransferType = "COPY"
	ReplicateTransferTypeMove ReplicateTransferType = "MOVE"
)

// ReplicateOperationStatus is the lifecycle state of a replication
// operation. Cancellation and deletion are terminal transitions.
type ReplicateOperationStatus string

const (
	ReplicateStatusRegistered  ReplicateOperationStatus = "REGISTERED"
	ReplicateStatusHydrating   ReplicateOperationStatus = "HYDRATING"
	ReplicateStatusFinalizing  ReplicateOperationStatus = "FINALIZING"
	ReplicateStatusDehydrating ReplicateOperationStatus = "DEHYDRATING"
	ReplicateStatusReady       ReplicateOperationStatus = "READY"
	ReplicateStatusCancelled   ReplicateOperationStatus = "CANCELLED"
)

// ReplicateOperationState is one entry of an operation's status history.
type ReplicateOperationState struct {
	Status ReplicateOperationStatus `json:"state"`
	Errors []string                 `json:"errors,omitempty"`
	When   time.Time                `json:"whenStartedUnixMs,omitempty"`
}

// ReplicateOperation is a shard replica movement. Immutable once created.
type ReplicateOperation struct {
	ID            uuid.UUID                 `json:"id"`
	Collection    string                    `json:"collection"`
	Shard         string                    `json:"shard"`
	SourceNode    string                    `json:"sourceNode"`
	TargetNode    string                    `json:"targetNode"`
	TransferType  ReplicateTransferType     `json:"transferType"`
	Status        ReplicateOperationStatus  `json:"status"`
	StatusHistory []ReplicateOperationState `json:"statusHistory,omitempty"`
}

// ShardingState describes which nodes hold replicas of which shards.
type ShardingState struct {
	Collection string         `json:"collection"`
	Shards     []ShardReplicas `json:"shards"`
}

// ShardReplicas lists the replica nodes of one shard.
type ShardReplicas struct {
	Name     string   `json:"shard"`
	Replicas []string `json:"replicas"`
}
