package batch

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/metrics"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// StatsFunc fetches the server's aggregate batch ingestion stats.
type StatsFunc func(ctx context.Context) (*types.BatchStats, error)

const (
	// pollInterval paces the controller while stats are healthy.
	pollInterval = time.Second
	// failurePollInterval paces it after a failed stats fetch.
	failurePollInterval = 100 * time.Millisecond
	// statsTimeout bounds one stats fetch.
	statsTimeout = 5 * time.Second

	// initialObjectSize seeds the recommendation before feedback arrives.
	initialObjectSize = 100
	initialRefSize    = 50

	// drainSize is the small positive size set on shutdown so the final
	// flush is never throttled.
	drainSize = 10

	// windowSize is the number of throughput samples kept for the
	// fallback estimate.
	windowSize = 5
)

// Controller owns the recommended batch sizes. Workers and producers read
// them lock-free; a single background goroutine adjusts them from server
// feedback.
type Controller struct {
	stats       StatsFunc
	numWorkers  int
	readTimeout time.Duration

	recommended    atomic.Int64
	recommendedRef atomic.Int64
	fallback       atomic.Bool

	objWindow throughputWindow
	refWindow throughputWindow

	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// NewController starts the feedback loop. stats may be nil, which pins
// the controller to the throughput fallback.
func NewController(stats StatsFunc, numWorkers int, readTimeout time.Duration) *Controller {
	if numWorkers < 1 {
		numWorkers = 1
	}
	c := &Controller{
		stats:       stats,
		numWorkers:  numWorkers,
		readTimeout: readTimeout,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	c.recommended.Store(initialObjectSize)
	c.recommendedRef.Store(initialRefSize)
	if stats == nil {
		c.fallback.Store(true)
		close(c.doneCh)
		return c
	}
	go c.run()
	return c
}

// RecommendedObjects is the current object batch size. Zero means the
// server is overloaded and producers must hold off.
func (c *Controller) RecommendedObjects() int { return int(c.recommended.Load()) }

// RecommendedRefs is the current reference batch size.
func (c *Controller) RecommendedRefs() int { return int(c.recommendedRef.Load()) }

// Shutdown stops the loop and leaves a small positive size in place so
// the final flush drains.
func (c *Controller) Shutdown() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	if c.stats != nil {
		<-c.doneCh
	}
	if c.recommended.Load() < 1 {
		c.recommended.Store(drainSize)
	}
	if c.recommendedRef.Load() < 1 {
		c.recommendedRef.Store(drainSize)
	}
}

func (c *Controller) run() {
	defer close(c.doneCh)
	logger := log.WithComponent("batch.controller")
	for {
		interval := pollInterval

		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		st, err := c.stats(ctx)
		cancel()
		switch {
		case err != nil:
			// Keep the size, look again sooner.
			interval = failurePollInterval
		case st == nil || st.RatePerSecond == nil:
			if !c.fallback.Swap(true) {
				logger.Debug().Msg("server exposes no ingestion stats, using throughput fallback")
			}
		default:
			c.fallback.Store(false)
			c.adjust(st)
		}
		metrics.BatchRecommendedSize.Set(float64(c.recommended.Load()))

		timer := time.NewTimer(interval)
		select {
		case <-c.stopCh:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// adjust walks the feedback ladder over queue depth and ingestion rate.
func (c *Controller) adjust(st *types.BatchStats) {
	rate := float64(*st.RatePerSecond)
	var qlen float64
	if st.QueueLength != nil {
		qlen = float64(*st.QueueLength)
	}
	cur := float64(c.recommended.Load())
	perWorker := rate / float64(c.numWorkers)

	var next float64
	switch {
	case qlen == 0:
		next = cur + math.Min(cur*2, 25)
	case rate <= 0:
		// A backed-up queue with no measurable rate is full congestion.
		next = 0
	default:
		ratio := qlen / rate
		switch {
		case ratio >= 10:
			next = 0
		case ratio >= 2.1:
			next = perWorker * 2 / ratio
		case ratio > 1.9:
			next = perWorker
		default:
			next = math.Min(cur*1.5, perWorker*2/ratio)
		}
	}
	c.recommended.Store(int64(next))
	c.recommendedRef.Store(int64(next))
}

// ObserveObjectFlush feeds one completed object flush into the fallback
// estimator.
func (c *Controller) ObserveObjectFlush(count int, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	c.objWindow.add(float64(count) / elapsed.Seconds())
	if c.fallback.Load() {
		c.recommended.Store(c.fallbackSize(c.recommended.Load(), c.objWindow.avg()))
		metrics.BatchRecommendedSize.Set(float64(c.recommended.Load()))
	}
}

// ObserveRefFlush feeds one completed reference flush into the fallback
// estimator.
func (c *Controller) ObserveRefFlush(count int, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	c.refWindow.add(float64(count) / elapsed.Seconds())
	if c.fallback.Load() {
		c.recommendedRef.Store(c.fallbackSize(c.recommendedRef.Load(), c.refWindow.avg()))
	}
}

// fallbackSize targets a batch that takes three quarters of the creation
// budget at the observed throughput.
func (c *Controller) fallbackSize(cur int64, avgPerSecond float64) int64 {
	creation := math.Min(c.readTimeout.Seconds()/10, 2)
	next := math.Min(float64(cur)+250, avgPerSecond*creation*0.75)
	if next < 1 {
		next = 1
	}
	return int64(next)
}

// OnReadTimeout halves the object batch size, floored at one.
func (c *Controller) OnReadTimeout() {
	cur := c.recommended.Load()
	next := cur / 2
	if next < 1 {
		next = 1
	}
	c.recommended.Store(next)
	metrics.BatchRecommendedSize.Set(float64(next))
}

// throughputWindow is a fixed-size sliding window of rate samples.
type throughputWindow struct {
	mu      sync.Mutex
	samples [windowSize]float64
	n       int
	pos     int
}

func (w *throughputWindow) add(sample float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.samples[w.pos] = sample
	w.pos = (w.pos + 1) % windowSize
	if w.n < windowSize {
		w.n++
	}
}

func (w *throughputWindow) avg() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < w.n; i++ {
		sum += w.samples[i]
	}
	return sum / float64(w.n)
}
