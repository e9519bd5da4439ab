package scheduler

import "sync"

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback once per frame while active. Elapsed time is
// ticker-local: each ticker tracks its own start time rather than reading a
// scheduler-global clock, so two tickers started on different frames report
// independent elapsed durations.
type Ticker struct {
	callback func(elapsed Duration)
	isActive bool
	start    Duration
}

// Duration is elapsed time in seconds, matching the rest of the gesture and
// layout packages' use of float64 seconds rather than time.Duration.
type Duration = float64

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker, recording the current time as its epoch.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = NowSeconds()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since Start was called.
func (t *Ticker) Elapsed() Duration {
	if !t.isActive {
		return 0
	}
	return NowSeconds() - t.start
}

// TickerProvider creates tickers. Implementations track start time per
// ticker so animation-controller elapsed time stays ticker-local.
type TickerProvider interface {
	CreateTicker(callback func(Duration)) *Ticker
}

// StepTickers advances all active tickers. Called once per frame during the
// Animation band, after Layout and before Paint per spec.md §4.6's frame
// ordering.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(NowSeconds() - ticker.start)
		}
	}
}

// HasActiveTickers reports whether any ticker is currently running; used by
// the scheduler to decide whether a frame is needed even absent explicit
// requests.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// NowSeconds returns the current clock reading as a Duration (seconds),
// the time unit used throughout this package.
func NowSeconds() Duration {
	return float64(Now().UnixNano()) / 1e9
}
