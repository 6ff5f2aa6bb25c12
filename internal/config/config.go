// Package config loads the coach's HCL configuration file. Everything has a
// sensible default so the program runs with no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the top-level configuration.
type Config struct {
	Session  *SessionConfig  `hcl:"session,block"`
	Advisors *AdvisorsConfig `hcl:"advisors,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type SessionConfig struct {
	StartingStack float64 `hcl:"starting_stack,optional"`
}

type AdvisorsConfig struct {
	// Enabled selects the built-in advisors to consult.
	Enabled []string `hcl:"enabled,optional"`
	// Timeout is a duration string, e.g. "10s".
	Timeout string `hcl:"timeout,optional"`

	LLM    *LLMConfig     `hcl:"llm,block"`
	Remote []RemoteConfig `hcl:"remote,block"`
}

type LLMConfig struct {
	BaseURL string `hcl:"base_url,optional"`
	Model   string `hcl:"model"`
	APIKey  string `hcl:"api_key,optional"`
}

type RemoteConfig struct {
	Name string `hcl:"name,label"`
	URL  string `hcl:"url"`
}

// Default returns the configuration used when no file is present: the three
// built-in heuristic advisors on a 100 chip stack.
func Default() *Config {
	return &Config{
		Session: &SessionConfig{StartingStack: 100},
		Advisors: &AdvisorsConfig{
			Enabled: []string{"rules", "math", "position"},
			Timeout: "10s",
		},
	}
}

// Load reads and decodes path, filling any omitted sections with defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. filename only labels diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %w", diags)
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %w", diags)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Session == nil {
		c.Session = def.Session
	}
	if c.Session.StartingStack == 0 {
		c.Session.StartingStack = def.Session.StartingStack
	}
	if c.Advisors == nil {
		c.Advisors = def.Advisors
	}
	if len(c.Advisors.Enabled) == 0 {
		c.Advisors.Enabled = def.Advisors.Enabled
	}
	if c.Advisors.Timeout == "" {
		c.Advisors.Timeout = def.Advisors.Timeout
	}
}

var builtinAdvisors = map[string]bool{
	"rules":    true,
	"math":     true,
	"position": true,
}

func (c *Config) validate() error {
	if c.Session.StartingStack < 0 {
		return fmt.Errorf("session.starting_stack must be positive, got %v", c.Session.StartingStack)
	}
	if _, err := c.AdvisorTimeout(); err != nil {
		return err
	}
	for _, name := range c.Advisors.Enabled {
		if !builtinAdvisors[name] {
			return fmt.Errorf("unknown advisor %q in advisors.enabled", name)
		}
	}
	for _, r := range c.Advisors.Remote {
		if r.URL == "" {
			return fmt.Errorf("remote advisor %q has no url", r.Name)
		}
	}
	return nil
}

// AdvisorTimeout parses the configured advisor timeout.
func (c *Config) AdvisorTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Advisors.Timeout)
	if err != nil {
		return 0, fmt.Errorf("advisors.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("advisors.timeout must be positive, got %s", d)
	}
	return d, nil
}
