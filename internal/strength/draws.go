package strength

import (
	"sort"

	"github.com/lox/bettingbot/internal/deck"
)

// DrawType identifies a drawing hand
type DrawType int

const (
	FlushDraw DrawType = iota + 1
	OpenEndedStraightDraw
	Gutshot
	TwoPairDraw
)

// String returns the display name of the draw type
func (d DrawType) String() string {
	switch d {
	case FlushDraw:
		return "Flush Draw"
	case OpenEndedStraightDraw:
		return "Open-Ended Straight Draw"
	case Gutshot:
		return "Gutshot"
	case TwoPairDraw:
		return "Two Pair Draw"
	default:
		return "Unknown"
	}
}

// drawValue maps each draw type to its contribution to hand strength.
// TwoPairDraw is valued but never emitted by DetectDraws.
var drawValue = map[DrawType]float64{
	FlushDraw:             0.4,
	OpenEndedStraightDraw: 0.35,
	Gutshot:               0.25,
	TwoPairDraw:           0.2,
}

// Draw is a detected drawing hand and its number of outs
type Draw struct {
	Type DrawType
	Outs int
}

// DetectDraws finds flush and straight draws in the given cards. A flush
// draw needs exactly four cards of one suit. Straight draws are read from
// the gaps between the four lowest distinct ranks: a total gap of three
// is open-ended, four is a gutshot.
func DetectDraws(cards []deck.Card) []Draw {
	var draws []Draw

	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		suitCounts[c.Suit]++
	}
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		if suitCounts[suit] == 4 {
			draws = append(draws, Draw{Type: FlushDraw, Outs: 9})
		}
	}

	seen := make(map[deck.Rank]bool)
	var values []int
	for _, c := range cards {
		if !seen[c.Rank] {
			seen[c.Rank] = true
			values = append(values, int(c.Rank))
		}
	}
	if len(values) >= 4 {
		sort.Ints(values)
		span := values[3] - values[0]
		switch span {
		case 3:
			draws = append(draws, Draw{Type: OpenEndedStraightDraw, Outs: 8})
		case 4:
			draws = append(draws, Draw{Type: Gutshot, Outs: 4})
		}
	}

	return draws
}
