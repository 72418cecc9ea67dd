package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// fakeServer records submitted batches and scripts per-item failures.
type fakeServer struct {
	mu       sync.Mutex
	batches  [][]*proto.BatchObject
	refCalls [][]types.BatchReference
	// failProps marks property names whose objects fail permanently.
	failProps map[string]string
	// transportErrs makes the first n object calls fail outright.
	transportErrs int
}

func (f *fakeServer) submitObjects(ctx context.Context, req *proto.BatchObjectsRequest) (*proto.BatchObjectsReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.transportErrs > 0 {
		f.transportErrs--
		return nil, fmt.Errorf("connection refused")
	}
	f.batches = append(f.batches, req.Objects)

	reply := &proto.BatchObjectsReply{}
	for i, obj := range req.Objects {
		for _, s := range obj.Properties.Scalars {
			if msg, bad := f.failProps[s.PropName]; bad {
				reply.Errors = append(reply.Errors, &proto.BatchObjectsReply_Error{
					Index: int32(i), Error: msg,
				})
			}
		}
	}
	return reply, nil
}

func (f *fakeServer) submitRefs(ctx context.Context, refs []types.BatchReference, cl types.ConsistencyLevel) (map[int]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refCalls = append(f.refCalls, refs)
	return nil, nil
}

func (f *fakeServer) objectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

func newTestEngine(srv *fakeServer, cfg Config) *Engine {
	return NewEngine(srv.submitObjects, srv.submitRefs, cfg)
}

func obj(props types.Properties) types.BatchObject {
	return types.BatchObject{Collection: "Article", Properties: props}
}

func TestInsertManyPartitionLaw(t *testing.T) {
	srv := &fakeServer{failProps: map[string]string{
		"wrong_name": "invalid text property 'wrong_name' on class 'Article'",
	}}
	e := newTestEngine(srv, Config{})
	defer e.Close(context.Background())

	objs := []types.BatchObject{
		obj(types.Properties{"wrong_name": "a"}),
		obj(types.Properties{"title": "ok"}),
		obj(types.Properties{"wrong_name": "c"}),
	}
	res, err := e.InsertMany(context.Background(), objs)
	require.NoError(t, err)

	assert.True(t, res.HasErrors())
	assert.Len(t, res.AllResponses, 3)
	assert.ElementsMatch(t, []int{0, 2}, keys(res.Errors))
	assert.ElementsMatch(t, []int{1}, keys(res.UUIDs))
	assert.Equal(t, res.UUIDs[1], res.AllResponses[1].UUID)
	assert.Greater(t, res.ElapsedSeconds, 0.0)

	// Every index has exactly one outcome.
	for i, r := range res.AllResponses {
		_, hasUUID := res.UUIDs[i]
		_, hasErr := res.Errors[i]
		assert.NotEqual(t, hasUUID, hasErr, "index %d must have exactly one outcome", i)
		assert.Equal(t, hasErr, r.Error != nil)
	}
}

func TestInsertManyGeneratesUUIDs(t *testing.T) {
	srv := &fakeServer{}
	e := newTestEngine(srv, Config{})
	defer e.Close(context.Background())

	fixed := uuid.New()
	objs := []types.BatchObject{
		{Collection: "Article", UUID: fixed, Properties: types.Properties{"title": "a"}},
		{Collection: "Article", Properties: types.Properties{"title": "b"}},
	}
	res, err := e.InsertMany(context.Background(), objs)
	require.NoError(t, err)

	assert.Equal(t, fixed, res.UUIDs[0])
	assert.NotEqual(t, uuid.Nil, res.UUIDs[1], "missing UUIDs are generated and reported")
}

func TestInsertManyEncodingErrorIsItemError(t *testing.T) {
	srv := &fakeServer{}
	e := newTestEngine(srv, Config{})
	defer e.Close(context.Background())

	res, err := e.InsertMany(context.Background(), []types.BatchObject{
		obj(types.Properties{"bad": struct{}{}}),
		obj(types.Properties{"title": "ok"}),
	})
	require.NoError(t, err)
	assert.Contains(t, res.Errors, 0)
	assert.Contains(t, res.UUIDs, 1)
}

func TestInsertManyTransportErrorBecomesItemErrors(t *testing.T) {
	srv := &fakeServer{transportErrs: 100} // exhaust every retry
	e := newTestEngine(srv, Config{MaxRetries: 2})
	defer e.Close(context.Background())

	res, err := e.InsertMany(context.Background(), []types.BatchObject{
		obj(types.Properties{"title": "a"}),
	})
	require.NoError(t, err)
	require.Contains(t, res.Errors, 0)
	assert.Contains(t, res.Errors[0].Message, "connection refused")
}

func TestFlushDrainsObjectsThenRefs(t *testing.T) {
	srv := &fakeServer{}
	e := newTestEngine(srv, Config{})

	ctx := context.Background()
	for i := 0; i < 7; i++ {
		_, err := e.AddObject(ctx, obj(types.Properties{"title": fmt.Sprintf("t%d", i)}))
		require.NoError(t, err)
	}
	require.NoError(t, e.AddReference(ctx, types.BatchReference{
		FromCollection: "Article",
		FromProperty:   "writesFor",
		FromUUID:       uuid.New(),
		To:             types.ReferenceToUUIDs(uuid.New()),
	}))

	require.NoError(t, e.Flush(ctx))
	assert.Equal(t, 7, srv.objectCount())
	require.Len(t, srv.refCalls, 1, "references flush after objects acknowledged")
	require.NoError(t, e.Close(ctx))

	_, err := e.AddObject(ctx, obj(nil))
	require.Error(t, err, "closed engine rejects submissions")
}

func TestRefFlushWaitsForInflightObjects(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var acked, refBeforeAck atomic.Bool
	var refsSent atomic.Int32

	submitObjs := func(ctx context.Context, req *proto.BatchObjectsRequest) (*proto.BatchObjectsReply, error) {
		close(entered)
		<-release
		acked.Store(true)
		return &proto.BatchObjectsReply{}, nil
	}
	submitRefs := func(ctx context.Context, refs []types.BatchReference, cl types.ConsistencyLevel) (map[int]string, error) {
		if !acked.Load() {
			refBeforeAck.Store(true)
		}
		refsSent.Add(1)
		return nil, nil
	}
	e := NewEngine(submitObjs, submitRefs, Config{Workers: 2})

	ctx := context.Background()
	_, err := e.AddObject(ctx, obj(types.Properties{"title": "pending"}))
	require.NoError(t, err)
	require.NoError(t, e.AddReference(ctx, types.BatchReference{
		FromCollection: "Article",
		FromProperty:   "writesFor",
		FromUUID:       uuid.New(),
		To:             types.ReferenceToUUIDs(uuid.New()),
	}))

	done := make(chan error, 1)
	go func() { done <- e.Flush(ctx) }()
	<-entered

	// The object batch is popped and unacknowledged. A second worker must
	// not release the reference queue yet.
	sent := e.flushOnce(ctx)
	assert.False(t, sent, "nothing is sendable while an object batch is in flight")
	assert.EqualValues(t, 0, refsSent.Load())

	close(release)
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, refsSent.Load())
	assert.False(t, refBeforeAck.Load(), "references flushed only after the object batch acknowledged")
	require.NoError(t, e.Close(ctx))
}

func TestPerItemRetryRequeues(t *testing.T) {
	srv := &fakeServer{failProps: map[string]string{
		"flaky": "request timeout, please retry",
	}}
	e := newTestEngine(srv, Config{
		Retry:      Filter{Include: []string{"timeout"}},
		MaxRetries: 3,
	})

	ctx := context.Background()
	_, err := e.AddObject(ctx, obj(types.Properties{"flaky": "x"}))
	require.NoError(t, err)
	require.NoError(t, e.Flush(ctx))

	// Retried MaxRetries times, then collected as failed.
	failed := e.FailedObjects()
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Message, "timeout")
	assert.GreaterOrEqual(t, srv.objectCount(), 2, "item was resubmitted")
}

func TestThrottleBlocksProducers(t *testing.T) {
	srv := &fakeServer{}
	e := newTestEngine(srv, Config{})
	e.ctrl.recommended.Store(0)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err := e.AddObject(ctx, obj(types.Properties{"title": "blocked"}))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func keys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
