package advisor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
)

// remoteRequest is the wire form of a decision point sent to an external
// advisor process.
type remoteRequest struct {
	Position  string   `json:"position"`
	Street    string   `json:"street"`
	HoleCards []string `json:"hole_cards"`
	Board     []string `json:"board,omitempty"`
	Pot       float64  `json:"pot"`
	Stack     float64  `json:"stack"`
	BetToCall float64  `json:"bet_to_call"`
	Opponents int      `json:"opponents"`
	Legal     []string `json:"legal_actions"`
	PotOdds   float64  `json:"pot_odds"`
}

// remoteResponse is what the external advisor replies with. Confidence is a
// pointer so an omitted field is distinguishable from an explicit zero; an
// omitted confidence defaults to 0.5.
type remoteResponse struct {
	Action     string   `json:"action"`
	Amount     float64  `json:"amount,omitempty"`
	Confidence *float64 `json:"confidence"`
	Rationale  string   `json:"rationale"`
}

// RemoteAdvisor consults an external process over a websocket, one
// request/response exchange per decision point.
type RemoteAdvisor struct {
	name   string
	url    string
	dialer *websocket.Dialer
	logger *log.Logger
}

func NewRemoteAdvisor(name, url string, logger *log.Logger) *RemoteAdvisor {
	return &RemoteAdvisor{
		name:   name,
		url:    url,
		dialer: websocket.DefaultDialer,
		logger: logger.WithPrefix("remote"),
	}
}

func (a *RemoteAdvisor) Name() string { return a.name }

func (a *RemoteAdvisor) Advise(ctx context.Context, snap Snapshot) (Recommendation, error) {
	conn, _, err := a.dialer.DialContext(ctx, a.url, nil)
	if err != nil {
		return Recommendation{}, fmt.Errorf("dialing %s: %w", a.url, err)
	}
	defer conn.Close()

	// Cancellation has to interrupt the blocking read as well as the dial.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(encodeSnapshot(snap)); err != nil {
		return Recommendation{}, fmt.Errorf("sending decision point: %w", err)
	}

	var resp remoteResponse
	if err := conn.ReadJSON(&resp); err != nil {
		if ctx.Err() != nil {
			return Recommendation{}, ctx.Err()
		}
		return Recommendation{}, fmt.Errorf("reading recommendation: %w", err)
	}

	return a.decode(resp)
}

func (a *RemoteAdvisor) decode(resp remoteResponse) (Recommendation, error) {
	input := resp.Action
	if resp.Amount > 0 {
		input = fmt.Sprintf("%s %g", resp.Action, resp.Amount)
	}
	action, err := game.ParseAction(input)
	if err != nil {
		return Recommendation{}, fmt.Errorf("remote advisor %s: %w", a.name, err)
	}

	confidence := 0.5
	if resp.Confidence != nil {
		confidence = *resp.Confidence
	}

	return Recommendation{
		Source:     a.name,
		Action:     action,
		Rationale:  resp.Rationale,
		Confidence: confidence,
	}, nil
}

func encodeSnapshot(snap Snapshot) remoteRequest {
	s := snap.State

	legal := make([]string, len(snap.Legal))
	for i, t := range snap.Legal {
		legal[i] = t.String()
	}

	return remoteRequest{
		Position:  s.Position.String(),
		Street:    s.Street.String(),
		HoleCards: cardStrings(s.HoleCards[:]),
		Board:     cardStrings(s.Board),
		Pot:       s.Pot,
		Stack:     s.Stack,
		BetToCall: s.BetToCall,
		Opponents: s.Opponents,
		Legal:     legal,
		PotOdds:   snap.PotOdds,
	}
}

func cardStrings(cards []deck.Card) []string {
	if len(cards) == 0 {
		return nil
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
