package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bettingbot/internal/deck"
)

func TestPreflop(t *testing.T) {
	tests := []struct {
		name string
		hole string
		want float64
	}{
		{"pocket aces", "AhAs", 1.0},
		{"pocket deuces", "2h2s", 0.5},
		{"suited broadway connectors cap at one", "AhKh", 1.0},
		{"offsuit connectors both ten plus", "JhTd", 0.875},
		{"suited one gapper", "9h7h", 0.7416666666666667},
		{"worst hand", "7h2d", 0.5083333333333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Preflop(deck.MustParseCards(tt.hole))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPreflopOrderIndependent(t *testing.T) {
	a, err := Preflop(deck.MustParseCards("JhTd"))
	require.NoError(t, err)
	b, err := Preflop(deck.MustParseCards("TdJh"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPreflopRejectsWrongHandSize(t *testing.T) {
	_, err := Preflop(deck.MustParseCards("Ah"))
	require.ErrorIs(t, err, ErrInvalidHoleCards)

	_, err = Preflop(deck.MustParseCards("AhKdQc"))
	require.ErrorIs(t, err, ErrInvalidHoleCards)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
		want      float64
	}{
		{
			name: "no community cards falls back to preflop",
			hole: "JhTd",
			want: 0.875,
		},
		{
			name:      "flopped set scores full trips base",
			hole:      "AhAd",
			community: "Ac2d7c",
			want:      0.6,
		},
		{
			name:      "two pair scaled by pair ranks",
			hole:      "AhAd",
			community: "ThTc2s",
			want:      0.4 * 20.0 / 24.0,
		},
		{
			name:      "top pair kings",
			hole:      "KhQd",
			community: "Kd7c2s",
			want:      0.2 * 11.0 / 12.0,
		},
		{
			name:      "flush draw lifts weak made hand",
			hole:      "JhTh",
			community: "9h7h2d",
			want:      0.075*0.7 + 0.4*0.3,
		},
		{
			name:      "open ended straight draw",
			hole:      "6h7d",
			community: "8c9sKd",
			want:      (0.1*11.0/12.0)*0.7 + 0.35*0.3,
		},
		{
			name:      "gutshot",
			hole:      "5h6d",
			community: "8c9sKd",
			want:      (0.1*11.0/12.0)*0.7 + 0.25*0.3,
		},
		{
			name:      "draws are dead on the river",
			hole:      "JhTh",
			community: "9h7h2d4c3s",
			want:      0.075,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var community []deck.Card
			if tt.community != "" {
				community = deck.MustParseCards(tt.community)
			}
			got, err := Calculate(deck.MustParseCards(tt.hole), community)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateNeverLoweredByDraws(t *testing.T) {
	// A flopped flush also has four distinct ascending ranks, but the
	// made hand already outscores any draw blend.
	hole := deck.MustParseCards("AhKh")
	community := deck.MustParseCards("QhJh9h")
	got, err := Calculate(hole, community)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestCalculateRejectsWrongHoleSize(t *testing.T) {
	_, err := Calculate(deck.MustParseCards("AhKdQc"), deck.MustParseCards("2s3s4s"))
	require.ErrorIs(t, err, ErrInvalidHoleCards)
}
