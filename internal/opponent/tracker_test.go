package opponent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bettingbot/internal/game"
)

func preflopState(pos int, pot float64) *game.State {
	s := game.NewState()
	s.Street = game.PreFlop
	s.Position = pos
	s.Pot = pot
	return s
}

func flopState(pos int, pot float64) *game.State {
	s := game.NewState()
	s.Street = game.Flop
	s.Position = pos
	s.Pot = pot
	return s
}

func TestObserveRunningAverages(t *testing.T) {
	tr := NewTracker()

	tr.Observe("villain", game.Raise, 30, preflopState(2, 10))
	tr.Observe("villain", game.Raise, 90, preflopState(2, 60))

	p, ok := tr.Profile("villain")
	require.True(t, ok)
	assert.Equal(t, 2, p.TotalHands)
	assert.InDelta(t, 1.0, p.VPIP, 1e-9)
	assert.InDelta(t, 1.0, p.PFR, 1e-9)
	assert.InDelta(t, 2.0, p.AF, 1e-9)

	// Postflop actions feed aggression but not the preflop stats.
	tr.Observe("villain", game.Call, 50, flopState(2, 200))

	assert.Equal(t, 3, p.TotalHands)
	assert.InDelta(t, 1.0, p.VPIP, 1e-9)
	assert.InDelta(t, 1.0, p.PFR, 1e-9)
	assert.InDelta(t, 5.0/3.0, p.AF, 1e-9)
}

// A preflop fold advances the hand count without re-averaging VPIP, so
// the stat holds steady and the extra weight lands on the next voluntary
// action instead.
func TestObservePreflopFoldDefersVPIPWeight(t *testing.T) {
	tr := NewTracker()

	tr.Observe("nit", game.Fold, 0, preflopState(4, 15))
	tr.Observe("nit", game.Call, 10, preflopState(4, 15))

	p, _ := tr.Profile("nit")
	assert.InDelta(t, 0.5, p.VPIP, 1e-9)
	assert.InDelta(t, 0.0, p.PFR, 1e-9)

	tr.Observe("nit", game.Fold, 0, preflopState(4, 15))
	assert.InDelta(t, 0.5, p.VPIP, 1e-9, "fold leaves VPIP untouched")

	tr.Observe("nit", game.Call, 10, preflopState(4, 15))
	assert.InDelta(t, 0.625, p.VPIP, 1e-9, "(0.5*3 + 1) / 4")
}

func TestObserveBetSizing(t *testing.T) {
	tr := NewTracker()

	// Half pot then full pot averages to three quarters.
	tr.Observe("villain", game.Raise, 50, flopState(1, 100))
	tr.Observe("villain", game.Raise, 100, flopState(1, 100))

	p, _ := tr.Profile("villain")
	assert.InDelta(t, 0.75, p.AvgBetSize, 1e-9)

	// A check moves the hand count but not the average, so the next
	// raise carries three hands of prior weight.
	tr.Observe("villain", game.Check, 0, flopState(1, 100))
	assert.InDelta(t, 0.75, p.AvgBetSize, 1e-9)

	tr.Observe("villain", game.Raise, 100, flopState(1, 100))
	assert.InDelta(t, 0.8125, p.AvgBetSize, 1e-9, "(0.75*3 + 1) / 4")
}

func TestObservePositionStats(t *testing.T) {
	tr := NewTracker()

	tr.Observe("villain", game.Raise, 30, preflopState(3, 10))
	tr.Observe("villain", game.Call, 30, flopState(3, 70))
	tr.Observe("villain", game.Fold, 0, preflopState(7, 10))

	p, _ := tr.Profile("villain")
	// Per-seat VPIP counts voluntary chips on any street; the flop call
	// does not re-average the seat's PFR.
	assert.Equal(t, PositionStats{Hands: 2, VPIP: 1.0, PFR: 1.0}, p.Positions[3])
	assert.Equal(t, PositionStats{Hands: 1}, p.Positions[7])
}

func TestHistoryIsBounded(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < maxHistory+50; i++ {
		tr.Observe(fmt.Sprintf("p%d", i%6), game.Check, 0, flopState(i%6, 100))
	}
	assert.Len(t, tr.History(), maxHistory)
}

func TestTendencies(t *testing.T) {
	tr := NewTracker()

	// Loose large bettor: every preflop action is a big raise. AF tops
	// out at exactly 2, which sits inside the balanced band.
	for i := 0; i < 10; i++ {
		tr.Observe("lag", game.Raise, 100, preflopState(1, 100))
	}
	lag := tr.Tendencies("lag")
	assert.Equal(t, "balanced", lag.Aggression)
	assert.Equal(t, "loose", lag.Looseness)
	assert.Equal(t, "raise-heavy", lag.Raising)
	assert.Equal(t, "large", lag.BetSizing)

	// Tight passive: folds preflop, checks postflop.
	for i := 0; i < 9; i++ {
		tr.Observe("nit", game.Fold, 0, preflopState(5, 10))
	}
	tr.Observe("nit", game.Call, 5, preflopState(5, 10))
	nit := tr.Tendencies("nit")
	assert.Equal(t, "passive", nit.Aggression)
	assert.Equal(t, "tight", nit.Looseness)
	assert.Equal(t, "small", nit.BetSizing)

	// A player who never puts chips in has no raising ratio.
	tr.Observe("rock", game.Fold, 0, preflopState(2, 10))
	assert.Equal(t, "passive", tr.Tendencies("rock").Raising)

	// Unknown players get the neutral read.
	assert.Equal(t, "standard", tr.Tendencies("stranger").Looseness)
}
