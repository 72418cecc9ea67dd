/*
Package types defines the domain model shared by all client packages.

The model mirrors what travels on the wire without committing to a transport:
objects with open property records, single- and multi-target references that
become beacon URIs, tenants with activity-status validation, batch inputs and
their order-preserving results, collection schema snapshots, RBAC roles and
permissions, replication operations, and the node-status shapes the batch
size controller feeds on.

# Core Entities

Object:
  - UUID (generated client-side as v4 when missing on ingest)
  - Properties: open record of typed scalar/array/nested values
  - Vector (default) and Vectors (named vector spaces)
  - References: pending UUIDs or realized objects after a traversal query
  - Metadata: only the fields the server actually returned (nil otherwise)

BatchResult invariants:
  - len(AllResponses) == number of inputs
  - for every index exactly one of UUIDs[i] / Errors[i] is set
  - HasErrors() == (len(Errors) > 0)

Tenant activity statuses:
  - writable: ACTIVE, INACTIVE, OFFLOADED (HOT/COLD/FROZEN are legacy aliases)
  - read-only: OFFLOADING, ONLOADING (rejected on create/update)

# Integration Points

This package integrates with:

  - pkg/filters: property paths and operand value types
  - pkg/query: result decoding into Object/MetadataReturn
  - pkg/batch: BatchObject/BatchReference queues and result assembly
  - pkg/collections: schema snapshots, tenants, shards
  - pkg/client: cluster, RBAC and replication surfaces
*/
package types
