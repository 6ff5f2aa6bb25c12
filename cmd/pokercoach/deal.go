package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/consensus"
	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/display"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
)

type DealCmd struct {
	Seed      int64   `help:"RNG seed; 0 seeds from the clock" default:"0"`
	Position  string  `help:"Fix the hero's position (UTG, MP, CO, BTN, SB, BB)"`
	Street    string  `help:"Fix the street (preflop, flop, turn, river)"`
	Archetype string  `help:"Hole card archetype (premium_pair, pocket_pair, drawing_hand, marginal_hand)"`
	Scenario  string  `help:"Use a named preset scenario instead of generating"`
	Cards     string  `help:"Force exact hole cards, e.g. AhKd"`
	Stack     float64 `help:"Hero's stack" default:"100"`
	Quiet     bool    `short:"q" help:"Print the decision point only, no advisor consultation"`
}

func (c *DealCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	logger := stderrLogger()
	seed := c.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	generator := scenario.NewGenerator(randutil.New(seed), logger)

	state, err := c.buildState(generator)
	if err != nil {
		return err
	}

	renderer := display.New()
	potOdds, err := game.PotOdds(state)
	if err != nil {
		return err
	}
	fmt.Println(renderer.State(1, state, potOdds))

	if c.Quiet {
		return nil
	}

	advisors, timeout, err := buildAdvisors(cfg, logger)
	if err != nil {
		return err
	}

	snap, err := advisor.NewSnapshot(state)
	if err != nil {
		return err
	}

	recs := advisor.NewPool(advisors, timeout, logger).Consult(context.Background(), snap)
	return renderAdvice(os.Stdout, renderer, recs)
}

// renderAdvice prints the advisors' recommendations and, when any responded,
// the merged verdict. No responses is not a failure; there is just no
// consensus to show.
func renderAdvice(w io.Writer, renderer *display.Renderer, recs []advisor.Recommendation) error {
	fmt.Fprintln(w, renderer.Recommendations(recs))
	if len(recs) == 0 {
		return nil
	}

	verdict, err := consensus.Merge(recs)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderer.Verdict(verdict))
	return nil
}

func (c *DealCmd) buildState(generator *scenario.Generator) (game.GameState, error) {
	if c.Scenario != "" {
		return generator.Preset(c.Scenario)
	}

	constraints := scenario.Constraints{
		Archetype: c.Archetype,
		Stack:     c.Stack,
	}

	if c.Position != "" {
		pos, err := game.ParsePosition(c.Position)
		if err != nil {
			return game.GameState{}, err
		}
		constraints.Position = &pos
	}
	if c.Street != "" {
		street, err := game.ParseStreet(c.Street)
		if err != nil {
			return game.GameState{}, err
		}
		constraints.Street = &street
	}
	if c.Cards != "" {
		cards, err := deck.ParseCards(c.Cards)
		if err != nil {
			return game.GameState{}, err
		}
		constraints.HoleCards = cards
	}

	return generator.Generate(constraints)
}
