package main

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"github.com/lox/bettingbot/internal/deck"
)

// toReferenceCard converts a card to the paulhankin/poker representation.
// The library ranks aces as 1 rather than 14.
func toReferenceCard(c deck.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	default:
		return 0, fmt.Errorf("unknown suit %v", c.Suit)
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// referenceScore ranks seven cards with the reference evaluator. Higher
// scores are stronger hands.
func referenceScore(cards []deck.Card) (int16, error) {
	if len(cards) != 7 {
		return 0, fmt.Errorf("reference score needs 7 cards, got %d", len(cards))
	}
	var hand [7]poker.Card
	for i, c := range cards {
		pc, err := toReferenceCard(c)
		if err != nil {
			return 0, err
		}
		hand[i] = pc
	}
	return poker.Eval7(&hand), nil
}

// referenceCompare orders two seven-card hands with the reference
// evaluator, positive when the first hand wins.
func referenceCompare(a, b []deck.Card) (int, error) {
	scoreA, err := referenceScore(a)
	if err != nil {
		return 0, err
	}
	scoreB, err := referenceScore(b)
	if err != nil {
		return 0, err
	}
	return int(scoreA) - int(scoreB), nil
}
