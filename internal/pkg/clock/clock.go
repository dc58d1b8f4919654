package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// MockClock はテスト用。Tick を呼ぶまでティッカーは進まない
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	tickers     []*MockTicker
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

func (c *MockClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &MockTicker{ch: make(chan time.Time), period: d, stopped: make(chan struct{})}
	c.tickers = append(c.tickers, t)
	return t
}

// Tick advances the clock by one period of the most recent live ticker and
// delivers the tick. It reports false when no live ticker accepted it.
func (c *MockClock) Tick() bool {
	c.mu.Lock()
	var target *MockTicker
	for i := len(c.tickers) - 1; i >= 0; i-- {
		if !c.tickers[i].IsStopped() {
			target = c.tickers[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return false
	}
	c.currentTime = c.currentTime.Add(target.period)
	now := c.currentTime
	c.mu.Unlock()

	select {
	case target.ch <- now:
		return true
	case <-target.stopped:
		return false
	case <-time.After(time.Second):
		return false
	}
}

// LiveTickers counts tickers that have not been stopped.
func (c *MockClock) LiveTickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.IsStopped() {
			n++
		}
	}
	return n
}

type MockTicker struct {
	ch       chan time.Time
	period   time.Duration
	stopOnce sync.Once
	stopped  chan struct{}
}

func (t *MockTicker) C() <-chan time.Time { return t.ch }

func (t *MockTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}

func (t *MockTicker) IsStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
