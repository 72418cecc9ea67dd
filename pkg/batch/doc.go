// Package batch is the bulk-ingestion engine: a producer-consumer
// pipeline that accepts objects and references from many goroutines,
// partitions them into batches, submits them through a bounded worker
// pool and adapts its batch size to what the server can absorb.
//
//	producers ──▶ object queue ──┐
//	                             ├──▶ workers ──▶ BatchObjects (gRPC)
//	producers ──▶ ref queue ─────┘        │
//	                   ▲                  ▼
//	             size controller ◀── node stats / throughput
//
// The size controller polls per-node ingestion stats (queue length and
// rate per second) and walks a feedback ladder: an idle server grows the
// batch, a congested one shrinks it, and extreme congestion sets the
// recommended size to zero, which throttles producers until the server
// catches up. Servers without rich stats fall back to a sliding-window
// throughput estimate. A read timeout halves the object batch size.
//
// Per-item failures are classified by the retry filter: retriable items
// are re-enqueued (bounded by MaxRetries), fatal ones are collected in
// FailedObjects / FailedReferences. References always flush after the
// objects queued before them have been acknowledged, so beacons never
// dangle during ingestion.
//
// InsertMany is the synchronous one-shot path: it preserves input order,
// generates fresh v4 UUIDs for objects that lack one, and maps every
// input index to exactly one UUID or error.
package batch
