// Package consensus merges independent advisor recommendations into a single
// verdict: group by recommended action, average confidence within each group,
// and pick the group with the highest mean.
package consensus

import (
	"strings"
	"unicode/utf8"

	"github.com/lox/pokercoach/internal/advisor"
	"github.com/lox/pokercoach/internal/game"
)

// summaryLimit truncates each contributing rationale in the verdict.
const summaryLimit = 100

// EmptyRecommendationSetError is returned when there is nothing to merge,
// typically because every advisor failed or timed out.
type EmptyRecommendationSetError struct{}

func (e EmptyRecommendationSetError) Error() string {
	return "no recommendations to merge"
}

// Verdict is the merged outcome of a consultation.
type Verdict struct {
	Action     game.Action
	Confidence float64  // mean confidence of the winning group
	Agreement  float64  // fraction of advisors in the winning group
	Sources    []string // advisors in the winning group, input order
	Summaries  []string // every advisor's truncated rationale, input order
}

// Unanimous reports whether every advisor backed the winning action.
func (v Verdict) Unanimous() bool {
	return v.Agreement == 1
}

type group struct {
	action  game.Action
	total   float64
	count   int
	sources []string
}

// Merge combines recommendations into a verdict. Confidences above 1 are
// treated as percentages; all are clamped to [0, 1]. Recommendations for the
// same action type (amounts ignored for grouping) pool together, and ties on
// mean confidence go to the group seen first.
func Merge(recs []advisor.Recommendation) (Verdict, error) {
	if len(recs) == 0 {
		return Verdict{}, EmptyRecommendationSetError{}
	}

	groups := map[string]*group{}
	var order []string
	summaries := make([]string, 0, len(recs))

	for _, rec := range recs {
		key := groupKey(rec.Action)
		g, ok := groups[key]
		if !ok {
			g = &group{action: rec.Action}
			groups[key] = g
			order = append(order, key)
		}
		g.total += normalizeConfidence(rec.Confidence)
		g.count++
		g.sources = append(g.sources, rec.Source)
		summaries = append(summaries, rec.Source+": "+truncate(rec.Rationale, summaryLimit))
	}

	var winner *group
	var best float64
	for _, key := range order {
		g := groups[key]
		if mean := g.total / float64(g.count); winner == nil || mean > best {
			winner, best = g, mean
		}
	}

	return Verdict{
		Action:     winner.action,
		Confidence: best,
		Agreement:  float64(winner.count) / float64(len(recs)),
		Sources:    winner.sources,
		Summaries:  summaries,
	}, nil
}

// groupKey folds case and whitespace so "CALL" and "call " pool together.
// Amounts are deliberately excluded: two advisors wanting different raise
// sizes still agree on raising, and the winner's representative size is the
// first one seen.
func groupKey(a game.Action) string {
	return strings.ToLower(strings.TrimSpace(a.Type.String()))
}

func normalizeConfidence(c float64) float64 {
	if c > 1 {
		c /= 100
	}
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// truncate cuts on a rune boundary so a multi-byte rationale never yields
// invalid UTF-8.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := limit - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}
