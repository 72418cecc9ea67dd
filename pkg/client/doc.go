// Package client is the entry point: it owns the connection lifecycle and
// hands out the per-collection facades everything else hangs off.
//
// Architecture:
//
//	        Connect(ctx)
//	             │
//	   ┌─────────┼──────────────────────────────┐
//	   ▼         ▼                              ▼
//	embedded   auth (OIDC discovery,        /v1/meta
//	start      background refresh)          version parse
//	   │         │                              │
//	   └─────────┴──────────────┬───────────────┘
//	                            ▼
//	                  gRPC dial + health probe
//	                            │
//	                            ▼
//	             batch engine + backup manager wired
//
// Connect is idempotent; Close tears the pieces down in reverse order and
// flushes the batch engine first so queued writes are not lost.
//
// Usage:
//
//	c := client.New(client.Local())
//	if err := c.Connect(ctx); err != nil {
//		return err
//	}
//	defer c.Close(ctx)
//
//	articles := c.Collection("Article")
//	res, err := articles.Search(ctx, articles.Query().BM25("go clients"))
//
// Integration Points:
//
//   - pkg/transport: HTTP control plane and gRPC data plane
//   - pkg/auth: credential exchange and token refresh lifecycle
//   - pkg/collections: per-collection facades built on the shared state
//   - pkg/batch: the shared ingestion engine fed by cluster batch stats
//   - pkg/embedded: optional local server process management
package client
