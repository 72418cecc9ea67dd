/*
Package proto carries the hand-maintained wire types of the weaviate.v1 gRPC
data plane and the client stub that speaks it.

The messages are legacy-style protobuf structs: field layout is declared
through struct tags and the structs satisfy the protoadapt.MessageV1
interface, which grpc-go marshals through the protobuf legacy shim. Groups
that are oneofs in the upstream schema are flattened here to sibling optional
fields with the original field numbers; on the wire the two encodings are
identical, since a oneof adds no framing of its own.

Services:

  - Search:       vector/keyword/hybrid retrieval with filters, group-by and
    generative augmentation
  - BatchObjects: bulk object ingestion with per-item error indices
  - TenantsGet:   tenant listing for multi-tenant collections
  - Aggregate:    aggregations (servers 1.29 and newer; older servers use the
    GraphQL path in pkg/collections)

The connect-time health probe uses the standard grpc.health.v1 service via
grpc's own generated package; see pkg/transport.
*/
package proto
