// Package strength scores hold'em hands on a 0..1 scale. Preflop hands
// are scored from rank, suitedness and connectivity; postflop hands from
// the evaluated category, its quality, and any draws still live.
package strength

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/bettingbot/internal/deck"
	"github.com/lox/bettingbot/internal/evaluator"
)

// ErrInvalidHoleCards is returned when the hole hand is not exactly two cards
var ErrInvalidHoleCards = errors.New("hole cards must contain exactly 2 cards")

// categoryBase maps each hand category to its baseline strength
var categoryBase = map[evaluator.Category]float64{
	evaluator.HighCard:      0.1,
	evaluator.Pair:          0.2,
	evaluator.TwoPair:       0.4,
	evaluator.ThreeOfAKind:  0.6,
	evaluator.Straight:      0.7,
	evaluator.Flush:         0.8,
	evaluator.FullHouse:     0.9,
	evaluator.FourOfAKind:   0.95,
	evaluator.StraightFlush: 0.98,
	evaluator.RoyalFlush:    1.0,
}

// Preflop scores two hole cards. Pairs score 0.5 upward by rank; unpaired
// hands start from the high card with bonuses for suitedness, connectivity
// and both cards being ten or better. The result is capped at 1.0.
func Preflop(hole []deck.Card) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidHoleCards, len(hole))
	}

	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		return 0.5 + float64(high-deck.Two)/24.0, nil
	}

	score := 0.3 + float64(high-deck.Two)/24.0
	if hole[0].Suit == hole[1].Suit {
		score += 0.1
	}
	switch high - low - 1 {
	case 0:
		score += 0.1
	case 1:
		score += 0.05
	}
	if low >= deck.Ten {
		score += 0.1
	}
	return math.Min(score, 1.0), nil
}

// Calculate scores the hole cards against the community cards. With no
// community cards it falls back to the preflop score. Otherwise the made
// hand is scored from its category base scaled by a quality adjustment,
// and blended with the best live draw:
//
//	max(made, made*0.7 + draw*0.3)
//
// so draws can only improve a hand's score, never lower it.
func Calculate(hole, community []deck.Card) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidHoleCards, len(hole))
	}
	if len(community) == 0 {
		return Preflop(hole)
	}

	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	result, err := evaluator.Evaluate(all)
	if err != nil {
		return 0, err
	}

	made := categoryBase[result.Category] * qualityAdjustment(result)

	// No cards to come on the river, so no draw equity.
	draw := 0.0
	if len(community) < 5 {
		for _, d := range DetectDraws(all) {
			if v := drawValue[d.Type]; v > draw {
				draw = v
			}
		}
	}

	return math.Max(made, made*0.7+draw*0.3), nil
}

// qualityAdjustment scales a category base by how strong the hand is
// within its category. High cards and pairs scale by the defining rank,
// two pair by the combined pair ranks. Stronger categories are already
// decisive and score their full base.
func qualityAdjustment(result evaluator.Result) float64 {
	switch result.Category {
	case evaluator.HighCard, evaluator.Pair:
		return float64(result.Cards[0].Rank-deck.Two) / 12.0
	case evaluator.TwoPair:
		high := result.Cards[0].Rank - deck.Two
		low := result.Cards[2].Rank - deck.Two
		return float64(high+low) / 24.0
	default:
		return 1.0
	}
}
