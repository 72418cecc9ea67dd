package batch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/metrics"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// throttlePoll paces producers while the recommended size is zero.
const throttlePoll = 100 * time.Millisecond

// SubmitObjects sends one object batch over the data plane.
type SubmitObjects func(ctx context.Context, req *proto.BatchObjectsRequest) (*proto.BatchObjectsReply, error)

// SubmitReferences sends one reference batch over the control plane and
// returns per-index error messages for failed items.
type SubmitReferences func(ctx context.Context, refs []types.BatchReference, cl types.ConsistencyLevel) (map[int]string, error)

// Config tunes the engine.
type Config struct {
	// Workers bounds concurrent flushes. Default 1.
	Workers int
	// ReadTimeout is the per-flush deadline and the input to the adaptive
	// size target.
	ReadTimeout time.Duration
	// ConsistencyLevel is applied to every batch.
	ConsistencyLevel types.ConsistencyLevel
	// Retry classifies per-item errors.
	Retry Filter
	// MaxRetries bounds re-enqueues per item. Default 3.
	MaxRetries int
	// Stats feeds the dynamic size controller; nil pins the throughput
	// fallback.
	Stats StatsFunc
}

type queuedObject struct {
	src      types.BatchObject
	wire     *proto.BatchObject
	attempts int
}

type queuedRef struct {
	src      types.BatchReference
	attempts int
}

// Engine is the bulk-ingestion pipeline. Safe for concurrent producers.
type Engine struct {
	cfg        Config
	submitObjs SubmitObjects
	submitRefs SubmitReferences
	ctrl       *Controller

	mu         sync.Mutex
	objQueue   []queuedObject
	refQueue   []queuedRef
	failedObjs []types.BatchItemError
	failedRefs []types.BatchItemError
	// inflightObjs counts popped object batches not yet acknowledged.
	// References hold until both the queue and this counter are empty.
	inflightObjs int

	sem    chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewEngine builds and starts the engine, including its size controller.
func NewEngine(submitObjs SubmitObjects, submitRefs SubmitReferences, cfg Config) *Engine {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 3
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 60 * time.Second
	}
	return &Engine{
		cfg:        cfg,
		submitObjs: submitObjs,
		submitRefs: submitRefs,
		ctrl:       NewController(cfg.Stats, cfg.Workers, cfg.ReadTimeout),
		sem:        make(chan struct{}, cfg.Workers),
	}
}

// AddObject queues one object, generating a fresh UUID when the caller
// did not set one, and returns the UUID the object will be stored under.
// Blocks while the server is throttled.
func (e *Engine) AddObject(ctx context.Context, obj types.BatchObject) (uuid.UUID, error) {
	if e.closed.Load() {
		return uuid.Nil, &errors.ClosedClientError{}
	}
	if obj.UUID == uuid.Nil {
		obj.UUID = uuid.New()
	}
	wire, err := encodeObject(obj)
	if err != nil {
		return uuid.Nil, err
	}
	if err := e.waitThrottle(ctx); err != nil {
		return uuid.Nil, err
	}

	e.mu.Lock()
	e.objQueue = append(e.objQueue, queuedObject{src: obj, wire: wire})
	qlen := len(e.objQueue)
	e.mu.Unlock()

	if qlen >= e.ctrl.RecommendedObjects() {
		e.kick()
	}
	return obj.UUID, nil
}

// AddReference queues one cross-reference. References flush only after
// the objects queued before them have been acknowledged.
func (e *Engine) AddReference(ctx context.Context, ref types.BatchReference) error {
	if e.closed.Load() {
		return &errors.ClosedClientError{}
	}
	if err := e.waitThrottle(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	e.refQueue = append(e.refQueue, queuedRef{src: ref})
	qlen := len(e.refQueue)
	e.mu.Unlock()

	if qlen >= e.ctrl.RecommendedRefs() {
		e.kick()
	}
	return nil
}

// waitThrottle blocks while the recommended size is zero.
func (e *Engine) waitThrottle(ctx context.Context) error {
	for e.ctrl.RecommendedObjects() == 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(throttlePoll):
		}
	}
	return nil
}

// kick starts an async flush if a worker slot is free.
func (e *Engine) kick() {
	select {
	case e.sem <- struct{}{}:
	default:
		return
	}
	e.wg.Add(1)
	go func() {
		defer func() {
			<-e.sem
			e.wg.Done()
		}()
		e.flushOnce(context.Background())
	}()
}

// Flush drains both queues synchronously, objects before references.
func (e *Engine) Flush(ctx context.Context) error {
	for {
		e.wg.Wait()
		e.mu.Lock()
		empty := len(e.objQueue) == 0 && len(e.refQueue) == 0 && e.inflightObjs == 0
		e.mu.Unlock()
		if empty {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.flushOnce(ctx) {
			// Another caller holds an unacknowledged batch; wait it out.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(throttlePoll):
			}
		}
	}
}

// Close flushes outstanding work and stops the controller. The engine
// rejects submissions afterwards.
func (e *Engine) Close(ctx context.Context) error {
	if e.closed.Swap(true) {
		return nil
	}
	// Leave a positive size in place so the final drain is not throttled.
	e.ctrl.Shutdown()
	return e.Flush(ctx)
}

// FailedObjects returns the objects that exhausted their retries.
func (e *Engine) FailedObjects() []types.BatchItemError {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]types.BatchItemError, len(e.failedObjs))
	copy(out, e.failedObjs)
	return out
}

// FailedReferences returns the references that exhausted their retries.
func (e *Engine) FailedReferences() []types.BatchItemError {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]types.BatchItemError, len(e.failedRefs))
	copy(out, e.failedRefs)
	return out
}

// flushOnce sends one batch: objects while any are queued, references
// once every object batch has been acknowledged. Reports whether it
// sent anything.
func (e *Engine) flushOnce(ctx context.Context) bool {
	objs := e.popObjects()
	if len(objs) > 0 {
		e.sendObjects(ctx, objs)
		return true
	}
	refs := e.popRefs()
	if len(refs) > 0 {
		e.sendRefs(ctx, refs)
		return true
	}
	return false
}

func (e *Engine) popObjects() []queuedObject {
	size := e.ctrl.RecommendedObjects()
	if size < 1 {
		size = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.objQueue) == 0 {
		return nil
	}
	if size > len(e.objQueue) {
		size = len(e.objQueue)
	}
	batch := e.objQueue[:size]
	e.objQueue = e.objQueue[size:]
	e.inflightObjs++
	return batch
}

func (e *Engine) popRefs() []queuedRef {
	size := e.ctrl.RecommendedRefs()
	if size < 1 {
		size = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.refQueue) == 0 {
		return nil
	}
	// References wait for the objects queued alongside them, including
	// batches another worker popped but has not had acknowledged yet.
	if len(e.objQueue) > 0 || e.inflightObjs > 0 {
		return nil
	}
	if size > len(e.refQueue) {
		size = len(e.refQueue)
	}
	batch := e.refQueue[:size]
	e.refQueue = e.refQueue[size:]
	return batch
}

func (e *Engine) sendObjects(ctx context.Context, batch []queuedObject) {
	defer func() {
		e.mu.Lock()
		e.inflightObjs--
		e.mu.Unlock()
	}()
	req := &proto.BatchObjectsRequest{
		Objects:          make([]*proto.BatchObject, len(batch)),
		ConsistencyLevel: encodeConsistency(e.cfg.ConsistencyLevel),
	}
	for i, q := range batch {
		req.Objects[i] = q.wire
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ReadTimeout)
	start := time.Now()
	reply, err := e.submitObjs(callCtx, req)
	elapsed := time.Since(start)
	timedOut := callCtx.Err() == context.DeadlineExceeded
	cancel()

	if err != nil {
		if timedOut {
			e.ctrl.OnReadTimeout()
		}
		e.requeueObjects(batch, err.Error())
		return
	}

	failed := map[int]string{}
	for _, itemErr := range reply.Errors {
		failed[int(itemErr.Index)] = itemErr.Error
	}
	ok := 0
	for i, q := range batch {
		msg, bad := failed[i]
		if !bad {
			ok++
			continue
		}
		e.retireObject(q, msg)
	}
	metrics.BatchObjectsSent.Add(float64(ok))
	e.ctrl.ObserveObjectFlush(ok, elapsed)
}

// requeueObjects handles a whole-batch transport failure: every item is
// retriable with a fresh timeout until its attempts run out.
func (e *Engine) requeueObjects(batch []queuedObject, msg string) {
	logger := log.WithComponent("batch")
	for _, q := range batch {
		q.attempts++
		if q.attempts >= e.cfg.MaxRetries {
			e.failObject(q.src, msg)
			continue
		}
		metrics.BatchRetries.Inc()
		e.mu.Lock()
		e.objQueue = append(e.objQueue, q)
		e.mu.Unlock()
	}
	logger.Warn().Str("error", msg).Int("objects", len(batch)).Msg("batch flush failed, retriable items re-enqueued")
}

// retireObject routes one per-item error: re-enqueue when the filter says
// retriable and attempts remain, otherwise collect it as failed.
func (e *Engine) retireObject(q queuedObject, msg string) {
	q.attempts++
	if e.cfg.Retry.Retriable(msg) && q.attempts < e.cfg.MaxRetries {
		metrics.BatchRetries.Inc()
		e.mu.Lock()
		e.objQueue = append(e.objQueue, q)
		e.mu.Unlock()
		return
	}
	e.failObject(q.src, msg)
}

func (e *Engine) failObject(src types.BatchObject, msg string) {
	metrics.BatchObjectsFailed.Inc()
	obj := src
	e.mu.Lock()
	e.failedObjs = append(e.failedObjs, types.BatchItemError{Message: msg, Object: &obj})
	e.mu.Unlock()
}

func (e *Engine) sendRefs(ctx context.Context, batch []queuedRef) {
	refs := make([]types.BatchReference, len(batch))
	for i, q := range batch {
		refs[i] = q.src
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ReadTimeout)
	start := time.Now()
	failed, err := e.submitRefs(callCtx, refs, e.cfg.ConsistencyLevel)
	elapsed := time.Since(start)
	cancel()

	if err != nil {
		for _, q := range batch {
			q.attempts++
			if q.attempts >= e.cfg.MaxRetries {
				e.failRef(q, err.Error())
				continue
			}
			metrics.BatchRetries.Inc()
			e.mu.Lock()
			e.refQueue = append(e.refQueue, q)
			e.mu.Unlock()
		}
		return
	}

	ok := 0
	for i, q := range batch {
		msg, bad := failed[i]
		if !bad {
			ok++
			continue
		}
		q.attempts++
		if e.cfg.Retry.Retriable(msg) && q.attempts < e.cfg.MaxRetries {
			metrics.BatchRetries.Inc()
			e.mu.Lock()
			e.refQueue = append(e.refQueue, q)
			e.mu.Unlock()
			continue
		}
		e.failRef(q, msg)
	}
	metrics.BatchReferencesSent.Add(float64(ok))
	e.ctrl.ObserveRefFlush(ok, elapsed)
}

func (e *Engine) failRef(q queuedRef, msg string) {
	e.mu.Lock()
	e.failedRefs = append(e.failedRefs, types.BatchItemError{Message: msg})
	e.mu.Unlock()
}

// InsertMany ingests objs in one synchronous pass, preserving input order
// in the result. Objects without a UUID get a fresh v4, reported as the
// success value. Per-item failures are data, not raised errors; a chunk
// whose transport failed terminally surfaces as error entries at the
// chunk's indices.
func (e *Engine) InsertMany(ctx context.Context, objs []types.BatchObject) (*types.BatchResult, error) {
	if e.closed.Load() {
		return nil, &errors.ClosedClientError{}
	}
	start := time.Now()
	result := types.NewBatchResult(len(objs))

	type item struct {
		index int
		id    uuid.UUID
		wire  *proto.BatchObject
	}
	var valid []item
	for i := range objs {
		obj := objs[i]
		if obj.UUID == uuid.Nil {
			obj.UUID = uuid.New()
		}
		wire, err := encodeObject(obj)
		if err != nil {
			result.SetError(i, types.BatchItemError{Message: err.Error(), Object: &objs[i]})
			continue
		}
		valid = append(valid, item{index: i, id: obj.UUID, wire: wire})
	}

	chunkSize := e.ctrl.RecommendedObjects()
	if chunkSize < 1 {
		chunkSize = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	var resultMu sync.Mutex

	for begin := 0; begin < len(valid); begin += chunkSize {
		end := begin + chunkSize
		if end > len(valid) {
			end = len(valid)
		}
		chunk := valid[begin:end]

		g.Go(func() error {
			req := &proto.BatchObjectsRequest{
				Objects:          make([]*proto.BatchObject, len(chunk)),
				ConsistencyLevel: encodeConsistency(e.cfg.ConsistencyLevel),
			}
			for i, it := range chunk {
				req.Objects[i] = it.wire
			}

			var reply *proto.BatchObjectsReply
			var err error
			for attempt := 0; attempt < e.cfg.MaxRetries; attempt++ {
				callCtx, cancel := context.WithTimeout(gctx, e.cfg.ReadTimeout)
				reply, err = e.submitObjs(callCtx, req)
				cancel()
				if err == nil {
					break
				}
				if callCtx.Err() == context.DeadlineExceeded {
					e.ctrl.OnReadTimeout()
				}
				if gctx.Err() != nil {
					break
				}
			}

			resultMu.Lock()
			defer resultMu.Unlock()
			if err != nil {
				for _, it := range chunk {
					obj := objs[it.index]
					result.SetError(it.index, types.BatchItemError{Message: err.Error(), Object: &obj})
				}
				return nil
			}
			failed := map[int]string{}
			for _, itemErr := range reply.Errors {
				failed[int(itemErr.Index)] = itemErr.Error
			}
			for i, it := range chunk {
				if msg, bad := failed[i]; bad {
					obj := objs[it.index]
					result.SetError(it.index, types.BatchItemError{Message: msg, Object: &obj})
					metrics.BatchObjectsFailed.Inc()
				} else {
					result.SetSuccess(it.index, it.id)
					metrics.BatchObjectsSent.Inc()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.ElapsedSeconds = time.Since(start).Seconds()
	return result, nil
}

// InsertReferences ingests refs in one synchronous pass with per-item
// error mapping.
func (e *Engine) InsertReferences(ctx context.Context, refs []types.BatchReference) (*types.BatchReferenceResult, error) {
	if e.closed.Load() {
		return nil, &errors.ClosedClientError{}
	}
	start := time.Now()
	result := &types.BatchReferenceResult{Errors: map[int]types.BatchItemError{}}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ReadTimeout)
	defer cancel()
	failed, err := e.submitRefs(callCtx, refs, e.cfg.ConsistencyLevel)
	if err != nil {
		return nil, err
	}
	ok := 0
	for i := range refs {
		if msg, bad := failed[i]; bad {
			result.Errors[i] = types.BatchItemError{Message: msg}
		} else {
			ok++
		}
	}
	metrics.BatchReferencesSent.Add(float64(ok))
	result.ElapsedSeconds = time.Since(start).Seconds()
	return result, nil
}
