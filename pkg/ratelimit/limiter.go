package ratelimit

import (
	"sync"
	"time"
)

const DefaultSweepInterval = 10 * time.Minute

// Policy describes one fixed-window limit: at most Quota admitted requests
// per Window.
type Policy struct {
	Window time.Duration `mapstructure:"window" json:"window"`
	Quota  int           `mapstructure:"quota" json:"quota"`
}

// Result is the outcome of a single admission check. Remaining is the number
// of requests still admissible in the current window.
type Result struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter tracks fixed-window counters per identifier. It is policy-agnostic:
// callers supply the policy on every check. All state is in-memory and scoped
// to the process lifetime.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	timeProvider  func() time.Time
	sweepInterval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type LimiterOpts struct {
	TimeProvider  func() time.Time
	SweepInterval time.Duration
}

func NewLimiter(opts *LimiterOpts) *Limiter {
	timeProvider := time.Now
	sweepInterval := DefaultSweepInterval
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	if opts != nil && opts.SweepInterval > 0 {
		sweepInterval = opts.SweepInterval
	}
	return &Limiter{
		windows:       make(map[string]*window),
		timeProvider:  timeProvider,
		sweepInterval: sweepInterval,
		stopChan:      make(chan struct{}),
	}
}

// Check decides whether the request identified by identifier is admitted
// under policy. A rejected request never mutates the counter, so repeated
// rejected calls cannot starve the window. Check never fails; degenerate
// policies degrade instead: Quota <= 0 always rejects, Window <= 0 treats
// every window as already expired.
func (l *Limiter) Check(identifier string, policy Policy) Result {
	if policy.Quota <= 0 {
		return Result{Allowed: false, Remaining: 0}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()

	w, ok := l.windows[identifier]
	if !ok || !w.resetAt.After(now) {
		l.windows[identifier] = &window{count: 1, resetAt: now.Add(policy.Window)}
		return Result{Allowed: true, Remaining: policy.Quota - 1}
	}

	if w.count >= policy.Quota {
		return Result{Allowed: false, Remaining: 0}
	}

	w.count++
	return Result{Allowed: true, Remaining: policy.Quota - w.count}
}

// StartSweeper launches the background goroutine that periodically drops
// expired windows. It only bounds memory growth; Check detects expired
// windows lazily on its own. Long-lived server processes should call this
// once at startup; short-lived embedders can skip it entirely.
func (l *Limiter) StartSweeper() {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-l.stopChan:
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}

// Sweep removes every window whose reset time has already passed.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()
	for identifier, w := range l.windows {
		if !w.resetAt.After(now) {
			delete(l.windows, identifier)
		}
	}
}

// Stop terminates the sweeper goroutine, if started. Safe to call multiple
// times.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}

// Size returns the number of tracked identifiers.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
