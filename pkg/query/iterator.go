package query

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// iteratorPageSize is the after-cursor page size.
const iteratorPageSize = 100

// ErrIteratorDone signals that the iterator is exhausted.
var ErrIteratorDone = errors.New("iterator exhausted")

// FetchPage retrieves one page of objects behind the given cursor. A nil
// cursor starts from the beginning.
type FetchPage func(ctx context.Context, after *uuid.UUID, limit int) ([]*types.Object, error)

// Iterator walks a whole collection in after-cursor pages. It is not safe
// for concurrent use.
type Iterator struct {
	fetch FetchPage
	buf   []*types.Object
	pos   int
	after *uuid.UUID
	done  bool
}

// NewIterator builds an iterator over fetch.
func NewIterator(fetch FetchPage) *Iterator {
	return &Iterator{fetch: fetch}
}

// Next returns the next object, or ErrIteratorDone once the collection is
// exhausted.
func (it *Iterator) Next(ctx context.Context) (*types.Object, error) {
	if it.pos >= len(it.buf) {
		if it.done {
			return nil, ErrIteratorDone
		}
		page, err := it.fetch(ctx, it.after, iteratorPageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			it.done = true
			return nil, ErrIteratorDone
		}
		// A short page is not terminal; only an empty page ends the walk.
		last := page[len(page)-1].UUID
		it.after = &last
		it.buf = page
		it.pos = 0
	}
	obj := it.buf[it.pos]
	it.pos++
	return obj, nil
}

// All drains the iterator into a slice.
func (it *Iterator) All(ctx context.Context) ([]*types.Object, error) {
	var out []*types.Object
	for {
		obj, err := it.Next(ctx)
		if errors.Is(err, ErrIteratorDone) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
}
