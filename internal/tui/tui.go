// Package tui is the interactive coaching loop: deal a scenario, consult the
// advisors, act, see the outcome.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/consensus"
	"github.com/lox/pokercoach/internal/display"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/internal/session"
)

// adviceMsg carries the advisors' opinions back into the update loop.
type adviceMsg struct {
	recs    []advisor.Recommendation
	verdict consensus.Verdict
	err     error
}

// Model is the Bubble Tea model for a coaching session.
type Model struct {
	logger   *log.Logger
	renderer *display.Renderer

	generator *scenario.Generator
	resolver  *game.Resolver
	pool      *advisor.Pool
	sess      *session.Session

	logViewport viewport.Model
	input       textinput.Model

	transcript []string
	current    *game.GameState
	consulting bool

	width       int
	height      int
	initialized bool
	quitting    bool
}

func NewModel(generator *scenario.Generator, resolver *game.Resolver, pool *advisor.Pool, sess *session.Session, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "new, fold, check, call, bet 10, raise 25, discuss, stats, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 80
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		logger:      logger.WithPrefix("tui"),
		renderer:    display.New(),
		generator:   generator,
		resolver:    resolver,
		pool:        pool,
		sess:        sess,
		logViewport: vp,
		input:       ti,
	}
	m.println(m.helpText())
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case adviceMsg:
		m.consulting = false
		if msg.err != nil {
			m.println(m.renderer.Recommendations(nil))
		} else {
			m.println(m.renderer.Recommendations(msg.recs))
			m.println(m.renderer.Verdict(msg.verdict))
		}
		m.println("")

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" && !m.consulting {
				if cmd := m.dispatch(line); cmd != nil {
					cmds = append(cmds, cmd)
				}
				if m.quitting {
					return m, tea.Sequence(tea.ClearScreen, tea.Quit)
				}
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// dispatch handles one line of user input and returns a follow-up command
// for anything asynchronous.
func (m *Model) dispatch(line string) tea.Cmd {
	fields := strings.Fields(strings.ToLower(line))
	verb, args := fields[0], fields[1:]

	switch verb {
	case "quit", "exit", "q":
		m.quitting = true
		return nil

	case "help", "?":
		m.println(m.helpText())
		return nil

	case "new", "deal":
		m.deal(args)
		return nil

	case "discuss", "advice":
		return m.consult()

	case "stats":
		m.println(m.renderer.Stats(m.sess.Stats(), m.sess.Recent(5)))
		m.println("")
		return nil

	case "reset":
		stack := 0.0
		if len(args) > 0 {
			fmt.Sscanf(args[0], "%f", &stack)
		}
		m.sess.Reset(stack)
		m.current = nil
		m.println(fmt.Sprintf("Session reset. Stack: %.1f", m.sess.Stack()))
		m.println("")
		return nil

	case "fold", "check", "call", "bet", "raise":
		m.act(line)
		return nil
	}

	m.println(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", verb))
	return nil
}

// deal generates a new scenario. The optional argument is a preset name or
// an archetype.
func (m *Model) deal(args []string) {
	var (
		state game.GameState
		err   error
	)
	constraints := scenario.Constraints{Stack: m.sess.Stack()}

	if len(args) > 0 {
		name := args[0]
		if isPreset(name) {
			state, err = m.generator.Preset(name)
		} else {
			constraints.Archetype = name
			state, err = m.generator.Generate(constraints)
		}
	} else {
		state, err = m.generator.Generate(constraints)
	}
	if err != nil {
		m.println("Cannot deal: " + err.Error())
		return
	}

	m.current = &state
	m.showState()
}

func isPreset(name string) bool {
	for _, p := range scenario.PresetNames() {
		if p == name {
			return true
		}
	}
	return false
}

func (m *Model) showState() {
	potOdds, err := game.PotOdds(*m.current)
	if err != nil {
		m.println(err.Error())
		return
	}
	m.println(m.renderer.State(m.sess.HandNumber(), *m.current, potOdds))
	m.println("")
}

// consult fans the current decision point out to the advisors off the UI
// loop.
func (m *Model) consult() tea.Cmd {
	if m.current == nil {
		m.println("No hand in play. Type 'new' to deal one.")
		return nil
	}

	snap, err := advisor.NewSnapshot(*m.current)
	if err != nil {
		m.println(err.Error())
		return nil
	}

	m.consulting = true
	m.println("Consulting advisors...")

	pool := m.pool
	return func() tea.Msg {
		recs := pool.Consult(context.Background(), snap)
		verdict, err := consensus.Merge(recs)
		return adviceMsg{recs: recs, verdict: verdict, err: err}
	}
}

// act resolves the player's chosen action against the current hand.
func (m *Model) act(line string) {
	if m.current == nil {
		m.println("No hand in play. Type 'new' to deal one.")
		return
	}

	action, err := game.ParseAction(line)
	if err != nil {
		m.println(err.Error())
		return
	}

	result, err := m.resolver.Resolve(*m.current, action)
	if err != nil {
		m.println(err.Error())
		return
	}

	record := m.sess.RecordHand(*m.current, action, result)
	m.current = nil

	if record.Outcome == game.OutcomeWin || record.Outcome == game.OutcomeLoss {
		m.println(fmt.Sprintf("Win probability was %.0f%%.", result.WinProbability*100))
	}
	m.println(m.renderer.Result(record))
	m.println("")
}

func (m *Model) println(s string) {
	m.transcript = append(m.transcript, s)
	m.logViewport.SetContent(strings.Join(m.transcript, "\n"))
	if m.logViewport.Height > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) helpText() string {
	return strings.TrimSpace(`
Commands:
  new [preflop archetype or preset]  deal a new decision point
  fold / check / call                act on the current hand
  bet <amount> / raise <amount>      act with a size (raise is the total)
  discuss                            ask the advisors what they would do
  stats                              show session statistics
  reset [stack]                      start a fresh bankroll
  quit                               leave the table

Presets: ` + strings.Join(scenario.PresetNames(), ", "))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(1, m.width-2)).
		Render(m.input.View())

	logHeight := m.height - lipgloss.Height(inputPane) - 2
	if logHeight < 1 {
		logHeight = 1
	}
	m.logViewport.Width = max(1, m.width-2)
	m.logViewport.Height = logHeight
	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(1, m.width-2)).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, logPane, inputPane)
}
