// Package transport carries every byte between the client and a Weaviate
// deployment. It owns the two planes the client speaks over:
//
//	┌────────────────────────────────────────────────────────────┐
//	│                        transport                           │
//	│                                                            │
//	│  ┌───────────────┐              ┌────────────────────┐     │
//	│  │ HTTP (control)│              │ Channel (data)     │     │
//	│  │ JSON over /v1 │              │ gRPC, weaviate.v1  │     │
//	│  └───────┬───────┘              └─────────┬──────────┘     │
//	│          │ pooled http.Client             │ ClientConn     │
//	│          ▼                                ▼                │
//	│     REST endpoints                 Search/Batch/Tenants    │
//	└────────────────────────────────────────────────────────────┘
//
// The HTTP side wraps a pooled http.Client with a split (connect, read)
// timeout, JSON encoding, per-request auth header injection, and an
// allow-list status check that converts everything else into the typed
// errors of pkg/errors. The gRPC side wraps a grpc.ClientConn, stamps
// outgoing metadata (including a freshly resolved authorization token on
// every call, so rotation is picked up without reconnecting), and probes
// server health at dial time.
//
// # Usage
//
//	h, err := transport.NewHTTP(transport.HTTPConfig{
//		BaseURL: "http://localhost:8080/v1",
//	})
//	resp, err := h.Send(ctx, http.MethodGet, "/meta", nil, nil, []int{200}, "get meta")
//
//	ch, err := transport.NewChannel(ctx, transport.ChannelConfig{
//		Address: "localhost:50051",
//	})
//	reply, err := ch.Weaviate().Search(ch.WithMetadata(ctx), req)
//
// # Integration Points
//
//   - pkg/auth implements TokenProvider; both planes consult it per request
//   - pkg/errors supplies the ConnectionError / UnexpectedStatusError taxonomy
//   - pkg/log redacts sensitive headers before debug logging
//   - pkg/metrics records request durations and error counts
package transport
