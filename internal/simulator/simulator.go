// Package simulator auto-plays batches of hands without the interactive
// loop, for sanity-checking advisor quality and outcome distributions.
package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/consensus"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/internal/session"
)

// Policy selects how the simulator chooses an action at each decision point.
type Policy string

const (
	// PolicyConsensus plays whatever the advisor consensus recommends.
	PolicyConsensus Policy = "consensus"
	// PolicyRandom plays a uniformly random legal action, the baseline the
	// advisors should beat.
	PolicyRandom Policy = "random"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyConsensus, PolicyRandom:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown policy %q (want %q or %q)", s, PolicyConsensus, PolicyRandom)
}

// Simulator plays hands end to end: generate, decide, resolve, record.
type Simulator struct {
	generator *scenario.Generator
	resolver  *game.Resolver
	pool      *advisor.Pool
	rng       *rand.Rand
	logger    *log.Logger
}

func New(generator *scenario.Generator, resolver *game.Resolver, pool *advisor.Pool, rng *rand.Rand, logger *log.Logger) *Simulator {
	return &Simulator{
		generator: generator,
		resolver:  resolver,
		pool:      pool,
		rng:       rng,
		logger:    logger.WithPrefix("simulator"),
	}
}

// Run plays hands against sess under the given policy and returns the final
// stats. It stops early on a bust or a cancelled context.
func (sim *Simulator) Run(ctx context.Context, sess *session.Session, hands int, policy Policy) (session.Stats, error) {
	for i := 0; i < hands; i++ {
		if err := ctx.Err(); err != nil {
			return sess.Stats(), err
		}

		state, err := sim.generator.Generate(scenario.Constraints{Stack: sess.Stack()})
		if err != nil {
			return sess.Stats(), fmt.Errorf("hand %d: %w", sess.HandNumber(), err)
		}

		action, err := sim.decide(ctx, state, policy)
		if err != nil {
			return sess.Stats(), fmt.Errorf("hand %d: %w", sess.HandNumber(), err)
		}

		result, err := sim.resolver.Resolve(state, action)
		if err != nil {
			return sess.Stats(), fmt.Errorf("hand %d: %w", sess.HandNumber(), err)
		}

		record := sess.RecordHand(state, action, result)
		sim.logger.Debug("hand played",
			"hand", record.Number,
			"action", action,
			"outcome", record.Outcome,
			"delta", record.StackDelta,
			"stack", record.StackAfter)

		if record.Outcome == game.OutcomeBust {
			sim.logger.Info("busted, stopping early", "hands", record.Number)
			break
		}
	}
	return sess.Stats(), nil
}

func (sim *Simulator) decide(ctx context.Context, state game.GameState, policy Policy) (game.Action, error) {
	snap, err := advisor.NewSnapshot(state)
	if err != nil {
		return game.Action{}, err
	}

	if policy == PolicyConsensus {
		if verdict, err := consensus.Merge(sim.pool.Consult(ctx, snap)); err == nil {
			return verdict.Action, nil
		}
		// Every advisor failed; fall through to a random legal action.
		sim.logger.Warn("no advisor responses, playing randomly")
	}

	return sim.randomAction(snap), nil
}

func (sim *Simulator) randomAction(snap advisor.Snapshot) game.Action {
	t := snap.Legal[sim.rng.IntN(len(snap.Legal))]
	s := snap.State

	switch t {
	case game.Bet:
		amount := s.Pot * (0.3 + 0.7*sim.rng.Float64())
		if amount > s.Stack {
			amount = s.Stack
		}
		if amount < 1 {
			amount = 1
		}
		return game.Action{Type: game.Bet, Amount: amount}
	case game.Raise:
		amount := s.BetToCall * (2 + sim.rng.Float64())
		if amount > s.Stack {
			amount = s.Stack
		}
		if amount <= s.BetToCall {
			amount = s.BetToCall + 1
		}
		return game.Action{Type: game.Raise, Amount: amount}
	}
	return game.Action{Type: t}
}
