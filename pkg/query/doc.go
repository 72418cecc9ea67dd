// Package query builds gRPC search requests and decodes their replies
// into typed objects.
//
// A query starts from a collection name, gains at most one probe (near
// text, near vector, near object, near media, BM25 or hybrid; none means
// a plain fetch), and is encoded against the connected server's version
// so capability violations surface before any bytes hit the wire:
//
//	req, err := query.New("Article").
//		NearText([]string{"space travel"}, query.WithDistance(0.4)).
//		WithFilter(filters.ByProperty("wordCount").GreaterThan(500)).
//		Limit(10).
//		Build(serverVersion)
//
// Validation failures accumulate in the builder and are reported by
// Build, so chains stay unconditional. Decode turns a SearchReply back
// into types.Object values, reassembling typed properties (dates, UUIDs,
// blobs, geo, phone, nested objects), recursive reference traversals and
// presence-gated metadata.
//
// Iterator pages through an entire collection with the after-cursor, one
// hundred objects at a time.
package query
