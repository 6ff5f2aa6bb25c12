package advisor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds how long any single advisor may take before its
// context is cancelled.
const DefaultTimeout = 10 * time.Second

// Pool fans a decision point out to a set of advisors concurrently. A slow
// or failing advisor is dropped from the result rather than failing the
// consultation; results keep the advisors' registration order.
type Pool struct {
	advisors []Advisor
	timeout  time.Duration
	clock    quartz.Clock
	logger   *log.Logger
}

func NewPool(advisors []Advisor, timeout time.Duration, logger *log.Logger) *Pool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pool{
		advisors: advisors,
		timeout:  timeout,
		clock:    quartz.NewReal(),
		logger:   logger.WithPrefix("advisors"),
	}
}

// WithClock substitutes the pool's clock, for tests.
func (p *Pool) WithClock(clock quartz.Clock) *Pool {
	p.clock = clock
	return p
}

// Consult gathers recommendations from every advisor. The returned slice may
// be empty if every advisor failed or timed out; that is not an error.
func (p *Pool) Consult(ctx context.Context, snap Snapshot) []Recommendation {
	results := make([]*Recommendation, len(p.advisors))

	var g errgroup.Group
	for i, adv := range p.advisors {
		g.Go(func() error {
			advCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			timer := p.clock.AfterFunc(p.timeout, cancel)
			defer timer.Stop()

			rec, err := adv.Advise(advCtx, snap)
			if err != nil {
				p.logger.Warn("advisor failed", "advisor", adv.Name(), "err", err)
				return nil
			}
			results[i] = &rec
			return nil
		})
	}
	g.Wait()

	recs := make([]Recommendation, 0, len(results))
	for _, r := range results {
		if r != nil {
			recs = append(recs, *r)
		}
	}
	return recs
}
