package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/lox/pokercoach/internal/deck"
	"github.com/lox/pokercoach/internal/game"
)

// degradedConfidence is assigned when the model is unreachable or returns
// something unparseable and the advisor falls back to its chart.
const degradedConfidence = 0.3

const systemPrompt = `You are a no-limit hold'em coach. You will be given a single decision point.
Reply with exactly one line in the form:

ACTION | CONFIDENCE | RATIONALE

where ACTION is one of FOLD, CHECK, CALL, BET <amount>, RAISE <amount>;
CONFIDENCE is a number between 0 and 1; RATIONALE is one short sentence.
Only recommend an action from the legal list you are given.`

// LLMConfig configures the model advisor. BaseURL may point at any
// OpenAI-compatible endpoint, including a local Ollama server.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// LLMAdvisor asks a chat model for a recommendation. When the model cannot
// be reached or answers in an unexpected shape, it degrades to the rules
// chart at low confidence rather than failing the whole consultation.
type LLMAdvisor struct {
	client   *openai.Client
	model    string
	fallback Advisor
	logger   *log.Logger
}

func NewLLMAdvisor(cfg LLMConfig, logger *log.Logger) *LLMAdvisor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &LLMAdvisor{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		fallback: NewRulesAdvisor(),
		logger:   logger.WithPrefix("llm"),
	}
}

func (a *LLMAdvisor) Name() string { return "llm" }

func (a *LLMAdvisor) Advise(ctx context.Context, snap Snapshot) (Recommendation, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: describeSnapshot(snap)},
		},
	})
	if err != nil {
		a.logger.Warn("model unavailable, degrading to rules", "err", err)
		return a.degrade(ctx, snap)
	}
	if len(resp.Choices) == 0 {
		a.logger.Warn("model returned no choices, degrading to rules")
		return a.degrade(ctx, snap)
	}

	rec, err := parseModelReply(resp.Choices[0].Message.Content)
	if err != nil {
		a.logger.Warn("unparseable model reply, degrading to rules",
			"reply", resp.Choices[0].Message.Content, "err", err)
		return a.degrade(ctx, snap)
	}

	rec.Source = a.Name()
	return rec, nil
}

func (a *LLMAdvisor) degrade(ctx context.Context, snap Snapshot) (Recommendation, error) {
	rec, err := a.fallback.Advise(ctx, snap)
	if err != nil {
		return Recommendation{}, err
	}
	rec.Source = a.Name()
	rec.Confidence = degradedConfidence
	rec.Rationale = "model unavailable, falling back to chart: " + rec.Rationale
	return rec, nil
}

// describeSnapshot renders the decision point as the model's user prompt.
func describeSnapshot(snap Snapshot) string {
	s := snap.State

	var b strings.Builder
	fmt.Fprintf(&b, "Position: %s\n", s.Position)
	fmt.Fprintf(&b, "Street: %s\n", s.Street)
	fmt.Fprintf(&b, "Hole cards: %s\n", deck.FormatCards(s.HoleCards[:]))
	if len(s.Board) > 0 {
		fmt.Fprintf(&b, "Board: %s\n", deck.FormatCards(s.Board))
	}
	fmt.Fprintf(&b, "Pot: %.1f  Stack: %.1f  Bet to call: %.1f  Opponents: %d\n",
		s.Pot, s.Stack, s.BetToCall, s.Opponents)
	if snap.FacingBet() {
		fmt.Fprintf(&b, "Pot odds: %.1f%% (required equity %.1f%%)\n",
			snap.PotOdds*100, snap.RequiredEquity*100)
	}

	legal := make([]string, len(snap.Legal))
	for i, t := range snap.Legal {
		legal[i] = t.String()
	}
	fmt.Fprintf(&b, "Legal actions: %s\n", strings.Join(legal, ", "))
	return b.String()
}

// parseModelReply extracts "ACTION | CONFIDENCE | RATIONALE" from the reply,
// tolerating surrounding chatter by scanning lines for the delimiter.
func parseModelReply(reply string) (Recommendation, error) {
	for _, line := range strings.Split(reply, "\n") {
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}

		action, err := game.ParseAction(strings.ToLower(strings.TrimSpace(parts[0])))
		if err != nil {
			continue
		}
		confidence, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		if confidence > 1 {
			confidence /= 100
		}
		if confidence < 0 {
			confidence = 0
		} else if confidence > 1 {
			confidence = 1
		}

		return Recommendation{
			Action:     action,
			Confidence: confidence,
			Rationale:  strings.TrimSpace(parts[2]),
		}, nil
	}
	return Recommendation{}, fmt.Errorf("no ACTION | CONFIDENCE | RATIONALE line in reply")
}
