package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-smooth/internal/monitoring"
	"github.com/cwbudde/algo-smooth/internal/timeutil"
)

// DefaultInterval is the tick interval of a Poller built without
// WithInterval (72 Hz, a common headset refresh rate).
const DefaultInterval = time.Second / 72

// Source provides the latest tracking frame.
type Source interface {
	Sample(ctx context.Context) (HandData, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (HandData, error)

// Sample calls f.
func (f SourceFunc) Sample(ctx context.Context) (HandData, error) { return f(ctx) }

// PollerOption configures a Poller.
type PollerOption func(*Poller) error

// WithClock sets the clock that drives the poller.
func WithClock(c timeutil.Clock) PollerOption {
	return func(p *Poller) error {
		if c == nil {
			return fmt.Errorf("tracking: clock must not be nil")
		}

		p.clock = c

		return nil
	}
}

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) error {
		if d <= 0 {
			return fmt.Errorf("tracking: interval must be > 0: %v", d)
		}

		p.interval = d

		return nil
	}
}

// Poller samples a Source once per tick, smooths the frame and passes it to
// a sink. A Poller is driven by one goroutine.
type Poller struct {
	src      Source
	smoother *WristSmoother
	sink     func(HandData)
	clock    timeutil.Clock
	interval time.Duration

	last     time.Time
	hasTick  bool
	skipped  int
	received int
}

// NewPoller constructs a poller. sink may be nil.
func NewPoller(src Source, smoother *WristSmoother, sink func(HandData), opts ...PollerOption) (*Poller, error) {
	if src == nil {
		return nil, fmt.Errorf("tracking: source must not be nil")
	}

	if smoother == nil {
		return nil, fmt.Errorf("tracking: smoother must not be nil")
	}

	p := &Poller{
		src:      src,
		smoother: smoother,
		sink:     sink,
		clock:    timeutil.RealClock{},
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Interval returns the tick interval.
func (p *Poller) Interval() time.Duration { return p.interval }

// Delivered returns the number of frames passed to the sink.
func (p *Poller) Delivered() int { return p.received }

// Skipped returns the number of ticks dropped because the source failed.
func (p *Poller) Skipped() int { return p.skipped }

// Tick runs one poll at time now. The interval passed to the smoother is the
// time since the previous tick, or the configured interval on the first
// tick. A time that does not advance yields a zero interval, which the filter
// ignores.
func (p *Poller) Tick(ctx context.Context, now time.Time) error {
	dt := p.interval.Seconds()
	if p.hasTick {
		dt = now.Sub(p.last).Seconds()
		if dt < 0 {
			dt = 0
		}
	}

	data, err := p.src.Sample(ctx)
	if err != nil {
		p.skipped++
		return fmt.Errorf("tracking: sample: %w", err)
	}

	if !p.hasTick || now.After(p.last) {
		p.last = now
	}
	p.hasTick = true

	p.smoother.Apply(&data, dt)
	p.received++

	if p.sink != nil {
		p.sink(data)
	}

	return nil
}

// Run ticks until ctx is cancelled and returns ctx.Err(). Source errors are
// logged and the tick is skipped.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C():
			if err := p.Tick(ctx, now); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				monitoring.Logf("[tracking] tick skipped: %v", err)
			}
		}
	}
}
