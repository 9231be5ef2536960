package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bettingbot/internal/deck"
	"github.com/lox/bettingbot/internal/evaluator"
	"github.com/lox/bettingbot/internal/game"
)

func TestReferenceCompareAgreesOnCommonShowdowns(t *testing.T) {
	board := deck.MustParseCards("2c7s9dJcQh")
	hero := combine(deck.MustParseCards("AhAd"), board)
	villain := combine(deck.MustParseCards("KhKd"), board)

	heroResult, err := evaluator.Evaluate(hero)
	require.NoError(t, err)
	villainResult, err := evaluator.Evaluate(villain)
	require.NoError(t, err)
	assert.Positive(t, evaluator.Compare(heroResult, villainResult))

	refCmp, err := referenceCompare(hero, villain)
	require.NoError(t, err)
	assert.Positive(t, refCmp)
}

// The internal evaluator plays aces high only, so a wheel loses showdowns
// the reference evaluator awards to it. The simulator counts these.
func TestReferenceCompareDisagreesOnWheel(t *testing.T) {
	board := deck.MustParseCards("3c4s5h9dKs")
	hero := combine(deck.MustParseCards("Ah2d"), board)
	villain := combine(deck.MustParseCards("9h9c"), board)

	heroResult, err := evaluator.Evaluate(hero)
	require.NoError(t, err)
	villainResult, err := evaluator.Evaluate(villain)
	require.NoError(t, err)

	// Internal: high card against trips.
	assert.Equal(t, evaluator.HighCard, heroResult.Category)
	assert.Negative(t, evaluator.Compare(heroResult, villainResult))

	// Reference: the wheel wins.
	refCmp, err := referenceCompare(hero, villain)
	require.NoError(t, err)
	assert.Positive(t, refCmp)
}

func TestTallyMerge(t *testing.T) {
	a := newTally()
	a.hands = 2
	a.heroWins = 1
	a.decisions[game.Fold]++

	b := newTally()
	b.hands = 3
	b.villainWins = 2
	b.ties = 1
	b.decisions[game.Fold]++

	a.merge(b)
	assert.Equal(t, 5, a.hands)
	assert.Equal(t, 1, a.heroWins)
	assert.Equal(t, 2, a.villainWins)
	assert.Equal(t, 1, a.ties)
	assert.Equal(t, 2, a.decisions[game.Fold])
}
