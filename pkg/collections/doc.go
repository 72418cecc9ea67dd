// Package collections provides the per-collection facade: a lightweight
// handle binding a collection name (plus optional tenant and consistency
// level) to the shared transports, and exposing data CRUD, search, batch
// ingestion, tenants, schema configuration, aggregation and backups.
//
// Architecture:
//
//	                    ┌──────────────────┐
//	 Collection ───────▶│  Data (REST)     │  /v1/objects CRUD, references,
//	   │                └──────────────────┘  DeleteMany
//	   │                ┌──────────────────┐
//	   ├───────────────▶│  Search (gRPC)   │  query.Builder -> Search RPC
//	   │                └──────────────────┘  -> query.Decode
//	   │                ┌──────────────────┐
//	   ├───────────────▶│  Tenants         │  REST, or TenantsGet RPC on
//	   │                └──────────────────┘  servers that have it
//	   │                ┌──────────────────┐
//	   ├───────────────▶│  Config          │  /v1/schema/{class} round-trips
//	   │                └──────────────────┘
//	   │                ┌──────────────────┐
//	   └───────────────▶│  Aggregate       │  gRPC on 1.29+, GraphQL before
//	                    └──────────────────┘
//
// Handles are cheap value copies. WithTenant and WithConsistencyLevel return
// derived handles and never mutate the receiver, so a base handle can be
// shared across goroutines.
//
// Usage:
//
//	articles := collections.New("Article", deps)
//	id, err := articles.Data().Insert(ctx, &types.Object{
//		Properties: types.Properties{"title": "hello"},
//	})
//
//	res, err := articles.Search(ctx, articles.Query().
//		NearText([]string{"greeting"}).
//		Limit(10))
//
// Integration Points:
//
//   - pkg/transport: REST and gRPC carriers, auth metadata injection
//   - pkg/query: search request building and reply decoding
//   - pkg/filters: where-filter encoding for both transports
//   - pkg/batch: InsertMany delegation to the shared batch engine
//   - pkg/backup: collection-scoped backup shortcut
//   - pkg/version: capability gates selecting transport per operation
package collections
