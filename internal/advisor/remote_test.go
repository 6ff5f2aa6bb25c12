package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/internal/game"
)

func floatPtr(f float64) *float64 { return &f }

func TestRemoteDecode(t *testing.T) {
	tests := []struct {
		name       string
		resp       remoteResponse
		action     game.Action
		confidence float64
		wantErr    bool
	}{
		{
			name:       "omitted confidence defaults to neutral",
			resp:       remoteResponse{Action: "call", Rationale: "pot odds"},
			action:     game.Action{Type: game.Call},
			confidence: 0.5,
		},
		{
			name:       "explicit zero is not treated as omitted",
			resp:       remoteResponse{Action: "fold", Confidence: floatPtr(0)},
			action:     game.Action{Type: game.Fold},
			confidence: 0,
		},
		{
			name:       "percent scale carried through untouched",
			resp:       remoteResponse{Action: "call", Confidence: floatPtr(85)},
			action:     game.Action{Type: game.Call},
			confidence: 85,
		},
		{
			name:       "amount folds into the action",
			resp:       remoteResponse{Action: "raise", Amount: 20, Confidence: floatPtr(0.9)},
			action:     game.Action{Type: game.Raise, Amount: 20},
			confidence: 0.9,
		},
		{
			name:    "unknown action",
			resp:    remoteResponse{Action: "shove"},
			wantErr: true,
		},
	}

	a := NewRemoteAdvisor("bot", "ws://localhost:9000/advise", testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := a.decode(tt.resp)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bot", rec.Source)
			assert.Equal(t, tt.action, rec.Action)
			assert.Equal(t, tt.confidence, rec.Confidence)
		})
	}
}
