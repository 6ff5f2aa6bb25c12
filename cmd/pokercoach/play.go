package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/internal/session"
	"github.com/lox/pokercoach/internal/tui"
)

type PlayCmd struct {
	Seed  int64   `help:"RNG seed; 0 seeds from the clock" default:"0"`
	Stack float64 `help:"Starting stack; overrides the config when set" default:"0"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so debug logging goes to a file.
	debugFile, err := os.OpenFile("pokercoach.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	defer debugFile.Close()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	seed := c.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	logger.Info("starting session", "seed", seed)
	rng := randutil.New(seed)

	advisors, timeout, err := buildAdvisors(cfg, logger)
	if err != nil {
		return err
	}

	stack := cfg.Session.StartingStack
	if c.Stack > 0 {
		stack = c.Stack
	}

	model := tui.NewModel(
		scenario.NewGenerator(rng, logger),
		game.NewResolver(rng, logger),
		advisor.NewPool(advisors, timeout, logger),
		session.New(stack),
		logger,
	)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
