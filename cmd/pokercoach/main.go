package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"pokercoach.hcl" help:"Path to HCL config file"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play an interactive coaching session"`
	Deal     DealCmd     `cmd:"" help:"Deal a single decision point and print the advisors' take"`
	Simulate SimulateCmd `cmd:"" help:"Auto-play a batch of hands and report session stats"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercoach"),
		kong.Description("Single-player no-limit hold'em decision trainer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the configured HCL file, falling back to defaults when it
// does not exist.
func loadConfig(cli *CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cli.Config, err)
	}
	return cfg, nil
}

// buildAdvisors assembles the advisor set the config enables.
func buildAdvisors(cfg *config.Config, logger *log.Logger) ([]advisor.Advisor, time.Duration, error) {
	timeout, err := cfg.AdvisorTimeout()
	if err != nil {
		return nil, 0, err
	}

	var advisors []advisor.Advisor
	for _, name := range cfg.Advisors.Enabled {
		switch name {
		case "rules":
			advisors = append(advisors, advisor.NewRulesAdvisor())
		case "math":
			advisors = append(advisors, advisor.NewMathAdvisor())
		case "position":
			advisors = append(advisors, advisor.NewPositionAdvisor())
		}
	}

	if llm := cfg.Advisors.LLM; llm != nil {
		advisors = append(advisors, advisor.NewLLMAdvisor(advisor.LLMConfig{
			BaseURL: llm.BaseURL,
			Model:   llm.Model,
			APIKey:  llm.APIKey,
		}, logger))
	}

	for _, remote := range cfg.Advisors.Remote {
		advisors = append(advisors, advisor.NewRemoteAdvisor(remote.Name, remote.URL, logger))
	}

	return advisors, timeout, nil
}

// stderrLogger builds the logger for the non-TUI commands.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
}
