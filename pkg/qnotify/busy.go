package qnotify

import "sync"

// BusyGauge counts outstanding requests. The UI shows a blocking indicator
// while the gauge is raised. Every Raise must be paired with exactly one
// Lower; the request pipeline lowers unconditionally before classifying the
// outcome so the indicator can never hang on an error path.
type BusyGauge struct {
	mu       sync.Mutex
	count    int
	onChange func(busy bool)
}

func NewBusyGauge() *BusyGauge {
	return &BusyGauge{}
}

// OnChange registers a callback fired when the gauge transitions between
// idle and busy.
func (g *BusyGauge) OnChange(fn func(busy bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = fn
}

func (g *BusyGauge) Raise() {
	g.mu.Lock()
	g.count++
	notify := g.count == 1
	fn := g.onChange
	g.mu.Unlock()
	if notify && fn != nil {
		fn(true)
	}
}

func (g *BusyGauge) Lower() {
	g.mu.Lock()
	if g.count > 0 {
		g.count--
	}
	notify := g.count == 0
	fn := g.onChange
	g.mu.Unlock()
	if notify && fn != nil {
		fn(false)
	}
}

// Busy reports whether any request is outstanding.
func (g *BusyGauge) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count > 0
}

// Outstanding returns the raw counter, used by tests to assert balance.
func (g *BusyGauge) Outstanding() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}
