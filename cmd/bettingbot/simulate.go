package main

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/bettingbot/internal/bot"
	"github.com/lox/bettingbot/internal/deck"
	"github.com/lox/bettingbot/internal/evaluator"
	"github.com/lox/bettingbot/internal/game"
)

// SimulateCmd deals random heads-up hands, runs the decision engine on
// the flop for the hero seat, and settles every showdown twice: once with
// the internal evaluator and once with the paulhankin/poker evaluator as
// an independent judge.
type SimulateCmd struct {
	Hands   int   `default:"10000" help:"Number of hands to simulate"`
	Workers int   `default:"4" help:"Parallel workers"`
	Seed    int64 `default:"0" help:"RNG seed (0 for random)"`
}

type tally struct {
	hands         int
	heroWins      int
	villainWins   int
	ties          int
	disagreements int
	decisions     map[game.Action]int
	categories    map[evaluator.Category]int
}

func newTally() *tally {
	return &tally{
		decisions:  make(map[game.Action]int),
		categories: make(map[evaluator.Category]int),
	}
}

func (t *tally) merge(other *tally) {
	t.hands += other.hands
	t.heroWins += other.heroWins
	t.villainWins += other.villainWins
	t.ties += other.ties
	t.disagreements += other.disagreements
	for action, n := range other.decisions {
		t.decisions[action] += n
	}
	for category, n := range other.categories {
		t.categories[category] += n
	}
}

func (c *SimulateCmd) Run(ctx *Context) error {
	if c.Hands < 1 || c.Workers < 1 {
		return fmt.Errorf("hands and workers must be positive")
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d hands across %d workers (seed %d)\n", c.Hands, c.Workers, seed)
	start := time.Now()

	// Independent seed per worker so results are reproducible regardless
	// of scheduling.
	master := rand.New(rand.NewSource(seed))
	seeds := make([]int64, c.Workers)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	tallies := make([]*tally, c.Workers)
	var g errgroup.Group
	for w := 0; w < c.Workers; w++ {
		w := w
		hands := c.Hands / c.Workers
		if w < c.Hands%c.Workers {
			hands++
		}
		g.Go(func() error {
			t, err := runWorker(ctx, seeds[w], hands)
			if err != nil {
				return err
			}
			tallies[w] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := newTally()
	for _, t := range tallies {
		total.merge(t)
	}

	printTally(total, time.Since(start))
	return nil
}

func runWorker(ctx *Context, seed int64, hands int) (*tally, error) {
	rng := rand.New(rand.NewSource(seed))
	d := deck.New(rng)
	b := bot.New(ctx.Logger, ctx.Config)
	t := newTally()

	for i := 0; i < hands; i++ {
		d.Shuffle()
		hero, err := d.Deal(2)
		if err != nil {
			return nil, err
		}
		villain, err := d.Deal(2)
		if err != nil {
			return nil, err
		}
		board, err := d.Deal(5)
		if err != nil {
			return nil, err
		}

		state := game.NewState()
		state.Street = game.Flop
		state.Position = i % 8
		state.Stack = 1000
		state.Pot = 100
		state.Hole = hero
		state.Community = board[:3]
		state.Credits = 0

		// The villain checks in front of us, which also feeds the
		// opponent tracker.
		b.Observe("villain", game.Check, 0, state)
		state.History = []game.ActionRecord{
			{Position: (state.Position + 1) % 8, Action: game.Check},
		}

		decision, err := b.DecideAction(state)
		if err != nil {
			return nil, err
		}
		t.decisions[decision.Action]++

		heroCards := combine(hero, board)
		villainCards := combine(villain, board)

		heroResult, err := evaluator.Evaluate(heroCards)
		if err != nil {
			return nil, err
		}
		villainResult, err := evaluator.Evaluate(villainCards)
		if err != nil {
			return nil, err
		}
		t.categories[heroResult.Category]++

		cmp := evaluator.Compare(heroResult, villainResult)
		switch {
		case cmp > 0:
			t.heroWins++
		case cmp < 0:
			t.villainWins++
		default:
			t.ties++
		}

		refCmp, err := referenceCompare(heroCards, villainCards)
		if err != nil {
			return nil, err
		}
		if sign(cmp) != sign(refCmp) {
			// Usually a wheel, which the internal evaluator does not
			// score as a straight.
			t.disagreements++
			ctx.Logger.Debug("showdown disagreement",
				"hero", heroResult.String(),
				"villain", villainResult.String(),
				"internal", cmp,
				"reference", refCmp)
		}

		t.hands++
	}

	return t, nil
}

// combine joins hole and board cards into a fresh slice
func combine(hole, board []deck.Card) []deck.Card {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	return all
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func printTally(t *tally, elapsed time.Duration) {
	fmt.Printf("\nHands: %d in %s (%.0f hands/sec)\n",
		t.hands, elapsed.Round(time.Millisecond), float64(t.hands)/elapsed.Seconds())
	fmt.Printf("Showdowns: hero %d (%.1f%%), villain %d, ties %d\n",
		t.heroWins, float64(t.heroWins)/float64(t.hands)*100, t.villainWins, t.ties)
	fmt.Printf("Reference evaluator disagreements: %d\n", t.disagreements)

	fmt.Printf("\nFlop decisions:\n")
	for _, action := range []game.Action{game.Fold, game.Check, game.Call, game.Raise, game.AllIn} {
		if n := t.decisions[action]; n > 0 {
			fmt.Printf("  %-8s %6d (%.1f%%)\n", action, n, float64(n)/float64(t.hands)*100)
		}
	}

	fmt.Printf("\nHero hand categories at showdown:\n")
	for category := evaluator.HighCard; category <= evaluator.RoyalFlush; category++ {
		if n := t.categories[category]; n > 0 {
			fmt.Printf("  %-16s %6d (%.2f%%)\n", category, n, float64(n)/float64(t.hands)*100)
		}
	}
}
