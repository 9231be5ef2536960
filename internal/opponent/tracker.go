// Package opponent tracks per-player betting statistics across hands and
// summarises them into playing-style tendencies.
package opponent

import (
	"github.com/lox/bettingbot/internal/game"
)

// maxHistory bounds the shared observation log
const maxHistory = 1000

// PositionStats tracks a player's activity from a specific seat
type PositionStats struct {
	Hands int
	VPIP  float64
	PFR   float64
}

// Profile holds running statistics for a single opponent.
//
// Every statistic is denominated by TotalHands but only re-averaged when
// a qualifying action arrives: VPIP and PFR on voluntary preflop chips,
// AF on raises (2 points) and calls (1 point), AvgBetSize on raises.
// Folds and checks advance the count without touching the averages, so
// they weight the old value into the next qualifying update instead of
// diluting it immediately.
type Profile struct {
	VPIP       float64
	PFR        float64
	AF         float64
	TotalHands int
	AvgBetSize float64 // average bet as a fraction of the pot
	Positions  [9]PositionStats
}

// NewProfile returns a zeroed profile
func NewProfile() *Profile {
	return &Profile{}
}

// Observation is a single recorded action
type Observation struct {
	PlayerID string
	Action   game.Action
	Amount   float64
	Street   game.Street
	Position int
}

// Tendencies describes an opponent's style in broad labels
type Tendencies struct {
	Aggression string // aggressive, balanced, passive
	Looseness  string // loose, standard, tight
	Raising    string // raise-heavy, call-heavy, passive
	BetSizing  string // large, standard, small
}

// Tracker accumulates observations into per-player profiles
type Tracker struct {
	profiles map[string]*Profile
	history  []Observation
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{profiles: make(map[string]*Profile)}
}

// Observe records an action by playerID. The state gives the street, pot
// and the actor's seat at the moment of the action. Statistics are
// maintained as incremental running averages per the Profile rules.
func (t *Tracker) Observe(playerID string, action game.Action, amount float64, state *game.State) {
	p, ok := t.profiles[playerID]
	if !ok {
		p = NewProfile()
		t.profiles[playerID] = p
	}

	p.TotalHands++
	n := float64(p.TotalHands)

	voluntary := action == game.Call || action == game.Raise || action == game.AllIn
	raised := action == game.Raise || action == game.AllIn

	if voluntary && state.Street == game.PreFlop {
		p.VPIP = (p.VPIP*(n-1) + 1) / n
	}
	if raised && state.Street == game.PreFlop {
		p.PFR = (p.PFR*(n-1) + 1) / n
	}

	switch {
	case raised:
		p.AF = (p.AF*(n-1) + 2) / n
	case action == game.Call:
		p.AF = (p.AF*(n-1) + 1) / n
	}

	if raised && state.Pot > 0 {
		p.AvgBetSize = (p.AvgBetSize*(n-1) + amount/state.Pot) / n
	}

	if state.Position >= 0 && state.Position < len(p.Positions) {
		ps := &p.Positions[state.Position]
		ps.Hands++
		h := float64(ps.Hands)
		if voluntary {
			ps.VPIP = (ps.VPIP*(h-1) + 1) / h
		}
		if raised {
			ps.PFR = (ps.PFR*(h-1) + 1) / h
		}
	}

	t.history = append(t.history, Observation{
		PlayerID: playerID,
		Action:   action,
		Amount:   amount,
		Street:   state.Street,
		Position: state.Position,
	})
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
}

// Profile returns the tracked profile for a player, if any
func (t *Tracker) Profile(playerID string) (*Profile, bool) {
	p, ok := t.profiles[playerID]
	return p, ok
}

// Players returns the IDs of all tracked players
func (t *Tracker) Players() []string {
	ids := make([]string, 0, len(t.profiles))
	for id := range t.profiles {
		ids = append(ids, id)
	}
	return ids
}

// History returns the bounded observation log, oldest first
func (t *Tracker) History() []Observation {
	return t.history
}

// Tendencies summarises a player's profile into style labels. Unknown
// players get a neutral read.
func (t *Tracker) Tendencies(playerID string) Tendencies {
	p, ok := t.profiles[playerID]
	if !ok {
		return Tendencies{
			Aggression: "balanced",
			Looseness:  "standard",
			Raising:    "passive",
			BetSizing:  "standard",
		}
	}

	var tend Tendencies

	switch {
	case p.AF > 2.0:
		tend.Aggression = "aggressive"
	case p.AF < 0.5:
		tend.Aggression = "passive"
	default:
		tend.Aggression = "balanced"
	}

	switch {
	case p.VPIP > 0.4:
		tend.Looseness = "loose"
	case p.VPIP < 0.15:
		tend.Looseness = "tight"
	default:
		tend.Looseness = "standard"
	}

	// A player who never enters a pot has no raising ratio to read.
	if p.VPIP == 0 {
		tend.Raising = "passive"
	} else if p.PFR/p.VPIP > 0.7 {
		tend.Raising = "raise-heavy"
	} else {
		tend.Raising = "call-heavy"
	}

	switch {
	case p.AvgBetSize > 0.75:
		tend.BetSizing = "large"
	case p.AvgBetSize < 0.4:
		tend.BetSizing = "small"
	default:
		tend.BetSizing = "standard"
	}

	return tend
}
