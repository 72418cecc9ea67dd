package types

import (
	"github.com/google/uuid"
)

// BatchObject is one object queued for bulk ingestion.
type BatchObject struct {
	Collection string
	// UUID may be zero; the engine then generates a fresh v4 and reports it
	// back as the success value.
	UUID       uuid.UUID
	Properties Properties
	Vector     []float32
	Vectors    map[string][]float32
	References map[string]Reference
	Tenant     string
}

// BatchReference is one cross-reference queued for bulk ingestion.
type BatchReference struct {
	FromCollection string
	FromProperty   string
	FromUUID       uuid.UUID
	To             Reference
	Tenant         string
}

// BatchItemError is a per-item ingestion failure. It is surfaced as data
// inside BatchResult, never raised.
type BatchItemError struct {
	Message string
	// Object is the input that failed, for failed-object collection.
	Object *BatchObject
}

// BatchItemResponse is the outcome for one input item: exactly one of UUID
// or Error is set.
type BatchItemResponse struct {
	UUID  uuid.UUID
	Error *BatchItemError
}

// BatchResult maps a batch submission back onto its inputs. Input order is
// preserved: AllResponses[i] corresponds to input i, and the key sets of
// UUIDs and Errors form a disjoint union over all input indices.
type BatchResult struct {
	AllResponses   []BatchItemResponse
	UUIDs          map[int]uuid.UUID
	Errors         map[int]BatchItemError
	ElapsedSeconds float64
}

// HasErrors reports whether any item failed.
func (r *BatchResult) HasErrors() bool { return len(r.Errors) > 0 }

// NewBatchResult allocates a result sized for n inputs.
func NewBatchResult(n int) *BatchResult {
	return &BatchResult{
		AllResponses: make([]BatchItemResponse, n),
		UUIDs:        make(map[int]uuid.UUID),
		Errors:       make(map[int]BatchItemError),
	}
}

// SetSuccess records a per-item success.
func (r *BatchResult) SetSuccess(i int, id uuid.UUID) {
	r.AllResponses[i] = BatchItemResponse{UUID: id}
	r.UUIDs[i] = id
}

// SetError records a per-item failure.
func (r *BatchResult) SetError(i int, e BatchItemError) {
	r.AllResponses[i] = BatchItemResponse{Error: &e}
	r.Errors[i] = e
}

// BatchReferenceResult maps a reference batch back onto its inputs, with the
// same partition invariants as BatchResult.
type BatchReferenceResult struct {
	Errors         map[int]BatchItemError
	ElapsedSeconds float64
}

// HasErrors reports whether any reference failed.
func (r *BatchReferenceResult) HasErrors() bool { return len(r.Errors) > 0 }
