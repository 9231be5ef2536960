package main

import (
	"fmt"

	"github.com/lox/bettingbot/internal/deck"
	"github.com/lox/bettingbot/internal/evaluator"
	"github.com/lox/bettingbot/internal/strength"
)

// EvalCmd classifies a hand and prints the best five cards
type EvalCmd struct {
	Cards string `arg:"" help:"Five to seven cards in compact notation, e.g. AhKhQhJhTh"`
}

func (c *EvalCmd) Run(ctx *Context) error {
	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	result, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

// StrengthCmd prints the 0..1 strength score for hole cards
type StrengthCmd struct {
	Hole  string `arg:"" help:"Two hole cards, e.g. AhKh"`
	Board string `arg:"" optional:"" help:"Zero to five community cards"`
}

func (c *StrengthCmd) Run(ctx *Context) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return err
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(c.Board)
		if err != nil {
			return err
		}
	}

	score, err := strength.Calculate(hole, board)
	if err != nil {
		return err
	}

	fmt.Printf("%.4f\n", score)
	return nil
}
