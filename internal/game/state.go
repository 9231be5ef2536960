// Package game holds the value types shared by the decision engine and
// opponent tracking: streets, actions, and a snapshot of the table state.
package game

import "github.com/lox/bettingbot/internal/deck"

// Street represents a betting round
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// String returns the display name of the street
func (s Street) String() string {
	switch s {
	case PreFlop:
		return "Pre-Flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the display name of the action
func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-In"
	default:
		return "Unknown"
	}
}

// ActionRecord is a single observed action in the current betting round
type ActionRecord struct {
	Position int
	Action   Action
	Amount   float64
}

// DefaultCredits is the starting tournament credit balance
const DefaultCredits = 10000

// State is a snapshot of the table from the acting player's perspective.
// Position 0 is the button; seats count clockwise from it.
type State struct {
	Street     Street
	Position   int
	Stack      float64
	Pot        float64
	CurrentBet float64 // chips this player already has in on the street
	Players    int
	Credits    float64 // tournament credits remaining
	Hole       []deck.Card
	Community  []deck.Card
	History    []ActionRecord // actions so far this round, oldest first
}

// NewState returns a state with the credit balance at its starting value.
// Remaining fields are populated explicitly by the caller.
func NewState() *State {
	return &State{Credits: DefaultCredits}
}
