package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

func stats(qlen, rate int64) *types.BatchStats {
	return &types.BatchStats{QueueLength: &qlen, RatePerSecond: &rate}
}

func newIdleController(workers int) *Controller {
	// nil stats keeps the background loop off; adjust is driven directly.
	return NewController(nil, workers, 60*time.Second)
}

func TestControllerLadder(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		workers int
		qlen    int64
		rate    int64
		want    int64
	}{
		{
			name:    "idle server grows by at most 25",
			current: 100, workers: 1, qlen: 0, rate: 500,
			want: 125,
		},
		{
			name:    "idle server cold start doubles",
			current: 10, workers: 1, qlen: 0, rate: 0,
			want: 30, // 10 + min(20, 25)
		},
		{
			name:    "steady state tracks per-worker rate",
			current: 400, workers: 2, qlen: 2000, rate: 1000,
			want: 500, // ratio 2.0 -> rate/workers
		},
		{
			name:    "headroom grows capped at 1.5x",
			current: 100, workers: 1, qlen: 500, rate: 1000,
			want: 150, // ratio 0.5; min(150, 1000*2/0.5=4000)
		},
		{
			name:    "headroom capped by rate term",
			current: 10000, workers: 1, qlen: 1500, rate: 1000,
			want: 1333, // ratio 1.5; min(15000, 2000/1.5)
		},
		{
			name:    "congestion backs off",
			current: 1000, workers: 1, qlen: 5000, rate: 1000,
			want: 400, // ratio 5; 1000*2/5
		},
		{
			name:    "severe congestion throttles to zero",
			current: 1000, workers: 1, qlen: 20000, rate: 1000,
			want: 0,
		},
		{
			name:    "queue with no rate throttles",
			current: 1000, workers: 1, qlen: 500, rate: 0,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newIdleController(tt.workers)
			c.recommended.Store(tt.current)
			c.adjust(stats(tt.qlen, tt.rate))
			assert.EqualValues(t, tt.want, c.recommended.Load())
		})
	}
}

func TestControllerReadTimeoutHalves(t *testing.T) {
	c := newIdleController(1)
	c.recommended.Store(100)

	c.OnReadTimeout()
	assert.EqualValues(t, 50, c.RecommendedObjects())

	c.recommended.Store(1)
	c.OnReadTimeout()
	assert.EqualValues(t, 1, c.RecommendedObjects(), "halving floors at one")
}

func TestControllerFallbackWindow(t *testing.T) {
	c := NewController(nil, 1, 60*time.Second)
	c.recommended.Store(100)

	// 1000 objects/sec observed; creation time = min(60/10, 2) = 2s.
	// Target = min(100+250, 1000*2*0.75) = 350.
	c.ObserveObjectFlush(1000, time.Second)
	assert.EqualValues(t, 350, c.RecommendedObjects())

	// Slow server pulls the window average down hard.
	for i := 0; i < windowSize; i++ {
		c.ObserveObjectFlush(10, time.Second)
	}
	assert.EqualValues(t, 15, c.RecommendedObjects(), "10/sec * 2s * 0.75")
}

func TestControllerShutdownLeavesDrainSize(t *testing.T) {
	c := newIdleController(1)
	c.recommended.Store(0)
	c.recommendedRef.Store(0)

	c.Shutdown()
	assert.EqualValues(t, drainSize, c.RecommendedObjects())
	assert.EqualValues(t, drainSize, c.RecommendedRefs())
}

func TestRetryFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		msg    string
		want   bool
	}{
		{name: "empty message never retries", filter: Filter{}, msg: "", want: false},
		{name: "no filters retries", filter: Filter{}, msg: "connection reset", want: true},
		{
			name:   "exclude vetoes",
			filter: Filter{Exclude: []string{"invalid property"}},
			msg:    "invalid property wrong_name",
			want:   false,
		},
		{
			name:   "include must match",
			filter: Filter{Include: []string{"timeout", "connection"}},
			msg:    "invalid property wrong_name",
			want:   false,
		},
		{
			name:   "include match retries",
			filter: Filter{Include: []string{"timeout"}},
			msg:    "request Timeout after 60s",
			want:   true,
		},
		{
			name:   "exclude beats include",
			filter: Filter{Include: []string{"timeout"}, Exclude: []string{"timeout"}},
			msg:    "timeout",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Retriable(tt.msg))
		})
	}
}
