// Package display renders game states, recommendations and session stats as
// styled terminal text.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/consensus"
	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
	"github.com/lox/pokercoach/internal/session"
)

// Renderer styles output for the terminal. Construct with New, which adapts
// to the terminal's color support.
type Renderer struct {
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	redCard   lipgloss.Style
	blackCard lipgloss.Style
	win       lipgloss.Style
	loss      lipgloss.Style
	muted     lipgloss.Style
	panel     lipgloss.Style
}

// New builds a renderer honoring the terminal's color capabilities and
// NO_COLOR.
func New() *Renderer {
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	return &Renderer{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		value:     lipgloss.NewStyle().Bold(true),
		redCard:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		blackCard: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		win:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		loss:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	}
}

// Cards renders cards with red suits in red.
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = r.redCard.Render(c.String())
		} else {
			parts[i] = r.blackCard.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

// State renders a decision point with its pot math.
func (r *Renderer) State(handNumber int, s game.GameState, potOdds float64) string {
	var b strings.Builder

	title := fmt.Sprintf("Hand #%d — %s, %s", handNumber, s.Position, s.Street)
	if s.Degraded {
		title += r.muted.Render(" (randomized)")
	}
	b.WriteString(r.header.Render(title) + "\n\n")

	b.WriteString(r.row("Your cards", r.Cards(s.HoleCards[:])))
	if len(s.Board) > 0 {
		b.WriteString(r.row("Board", r.Cards(s.Board)))
	}
	b.WriteString(r.row("Pot", fmt.Sprintf("%.1f", s.Pot)))
	b.WriteString(r.row("Stack", fmt.Sprintf("%.1f", s.Stack)))
	b.WriteString(r.row("Opponents", fmt.Sprintf("%d", s.Opponents)))
	if s.BetToCall > 0 {
		b.WriteString(r.row("To call", fmt.Sprintf("%.1f", s.BetToCall)))
		b.WriteString(r.row("Pot odds", fmt.Sprintf("%.1f%%", potOdds*100)))
	} else {
		b.WriteString(r.row("To call", "nothing (checked to you)"))
	}

	return r.panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Recommendations renders each advisor's opinion.
func (r *Renderer) Recommendations(recs []advisor.Recommendation) string {
	if len(recs) == 0 {
		return r.muted.Render("No advisors responded.")
	}

	var b strings.Builder
	b.WriteString(r.header.Render("Advisors") + "\n")
	for _, rec := range recs {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			r.label.Render(rec.Source+":"),
			r.value.Render(strings.ToUpper(rec.Action.String())),
			r.muted.Render(fmt.Sprintf("(%.0f%%)", rec.Confidence*100)),
			rec.Rationale))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Verdict renders the merged recommendation.
func (r *Renderer) Verdict(v consensus.Verdict) string {
	agreement := fmt.Sprintf("%.0f%% of advisors", v.Agreement*100)
	if v.Unanimous() {
		agreement = "unanimous"
	}
	return fmt.Sprintf("%s %s %s",
		r.header.Render("Consensus:"),
		r.value.Render(strings.ToUpper(v.Action.String())),
		r.muted.Render(fmt.Sprintf("(confidence %.0f%%, %s)", v.Confidence*100, agreement)))
}

// Result renders the outcome of a resolved hand.
func (r *Renderer) Result(record session.HandRecord) string {
	var verdict string
	switch record.Outcome {
	case game.OutcomeWin:
		verdict = r.win.Render(fmt.Sprintf("You win %.1f", record.StackDelta))
	case game.OutcomeLoss:
		verdict = r.loss.Render(fmt.Sprintf("You lose %.1f", -record.StackDelta))
	case game.OutcomeBust:
		verdict = r.loss.Render("Busted! Stack is down to zero.")
	default:
		verdict = r.muted.Render("You fold.")
	}
	return fmt.Sprintf("%s  %s", verdict,
		r.muted.Render(fmt.Sprintf("Stack: %.1f", record.StackAfter)))
}

// Stats renders session statistics.
func (r *Renderer) Stats(st session.Stats, recent []session.HandRecord) string {
	var b strings.Builder
	b.WriteString(r.header.Render("Session") + "\n\n")
	b.WriteString(r.row("Hands played", fmt.Sprintf("%d", st.HandsPlayed)))

	pl := fmt.Sprintf("%+.1f", st.ProfitLoss)
	switch {
	case st.ProfitLoss > 0:
		pl = r.win.Render(pl)
	case st.ProfitLoss < 0:
		pl = r.loss.Render(pl)
	}
	b.WriteString(r.row("Profit/loss", pl))
	b.WriteString(r.row("Stack", fmt.Sprintf("%.1f (started %.1f)", st.CurrentStack, st.StartingStack)))
	b.WriteString(r.row("Record", fmt.Sprintf("%dW %dL %dF", st.Wins, st.Losses, st.Folds)))
	if st.HandsPlayed > 0 {
		b.WriteString(r.row("Win rate", fmt.Sprintf("%.0f%%", st.WinRate*100)))
	}

	if len(recent) > 0 {
		b.WriteString("\n" + r.label.Render("Recent hands") + "\n")
		for _, h := range recent {
			b.WriteString(fmt.Sprintf("  #%d %s %s %s %+.1f\n",
				h.Number, h.State.Position, h.Action, h.Outcome, h.StackDelta))
		}
	}

	return r.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (r *Renderer) row(label, value string) string {
	return fmt.Sprintf("%s %s\n", r.label.Render(fmt.Sprintf("%-12s", label+":")), value)
}
