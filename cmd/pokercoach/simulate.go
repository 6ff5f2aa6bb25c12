package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/display"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/internal/session"
	"github.com/lox/pokercoach/internal/simulator"
)

type SimulateCmd struct {
	Hands  int    `help:"Number of hands to play" default:"100"`
	Seed   int64  `help:"RNG seed; 0 seeds from the clock" default:"0"`
	Policy string `help:"Decision policy: consensus or random" default:"consensus"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	policy, err := simulator.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}

	logger := stderrLogger()
	seed := c.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	rng := randutil.New(seed)

	advisors, timeout, err := buildAdvisors(cfg, logger)
	if err != nil {
		return err
	}

	sim := simulator.New(
		scenario.NewGenerator(rng, logger),
		game.NewResolver(rng, logger),
		advisor.NewPool(advisors, timeout, logger),
		rng,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.New(cfg.Session.StartingStack)
	stats, err := sim.Run(ctx, sess, c.Hands, policy)
	if err != nil {
		return err
	}

	fmt.Printf("Played %d hands with the %s policy (seed %d)\n\n", stats.HandsPlayed, policy, seed)
	fmt.Println(display.New().Stats(stats, sess.Recent(5)))
	return nil
}
