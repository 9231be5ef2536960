package bot

import (
	"github.com/lox/bettingbot/internal/game"
	"github.com/lox/bettingbot/internal/strength"
)

// handStrength scores the current hand, preflop or against the board
func (b *Bot) handStrength(state *game.State) (float64, error) {
	if state.Street == game.PreFlop {
		return strength.Preflop(state.Hole)
	}
	return strength.Calculate(state.Hole, state.Community)
}

// opponentAdjustment averages a per-opponent factor across every opponent
// with enough tracked hands for a reliable read. Loose tables reward value
// hands, tight and aggressive ones call for caution.
func (b *Bot) opponentAdjustment() float64 {
	sum := 0.0
	counted := 0
	for _, id := range b.tracker.Players() {
		p, ok := b.tracker.Profile(id)
		if !ok || p.TotalHands < b.cfg.Bot.MinHandsForStats {
			continue
		}

		factor := 1.0
		if p.VPIP > 0.4 {
			factor *= 1.2
		} else if p.VPIP < 0.15 {
			factor *= 0.8
		}
		if p.AF > 2.0 {
			factor *= 0.9
		} else if p.AF < 0.5 {
			factor *= 1.1
		}

		sum += factor
		counted++
	}
	if counted == 0 {
		return 1.0
	}
	return sum / float64(counted)
}

// decidePreflop routes the scored hand through the positional threshold
// and stack-to-pot buckets.
func (b *Bot) decidePreflop(state *game.State, score float64) Decision {
	if score < b.cfg.OpenThreshold(state.Position) {
		return Decision{Action: game.Fold}
	}

	spr := state.Stack
	if state.Pot > 0 {
		spr = state.Stack / state.Pot
	}

	switch {
	case spr < 5:
		// Short stacked there is no room to play postflop: shove, raise
		// or give the hand up.
		if score > 0.8 {
			return Decision{Action: game.AllIn, Amount: state.Stack}
		}
		if score > 0.6 {
			return Decision{Action: game.Raise, Amount: state.Pot * 2.5}
		}
		return Decision{Action: game.Fold}
	case spr < 15:
		if score > 0.7 {
			return Decision{Action: game.Raise, Amount: state.Pot * 3}
		}
		if score > 0.5 {
			return Decision{Action: game.Call, Amount: requiredCall(state)}
		}
		return Decision{Action: game.Fold}
	default:
		if score > 0.6 {
			return Decision{Action: game.Raise, Amount: state.Pot * 3.5}
		}
		if score > 0.4 {
			return Decision{Action: game.Call, Amount: requiredCall(state)}
		}
		return Decision{Action: game.Fold}
	}
}

// decidePostflop leads when unopposed, responds to aggression, and
// otherwise takes a conservative continuation line.
func (b *Bot) decidePostflop(state *game.State, score float64) Decision {
	if len(state.History) == 0 {
		return b.leadBetting(state, score)
	}

	last := state.History[len(state.History)-1]
	if last.Action == game.Raise || last.Action == game.AllIn {
		return b.handleAggression(state, score, last)
	}

	return b.continueBetting(state, score)
}

// leadBetting bets for value when first to act in an unopened pot
func (b *Bot) leadBetting(state *game.State, score float64) Decision {
	if score > 0.8 {
		return Decision{Action: game.Raise, Amount: b.valueBetSize(state)}
	}
	if score > 0.6 {
		return Decision{Action: game.Raise, Amount: state.Pot * 0.6}
	}
	return Decision{Action: game.Check}
}

// handleAggression responds to a bet or shove in front of us
func (b *Bot) handleAggression(state *game.State, score float64, last game.ActionRecord) Decision {
	call := last.Amount - state.CurrentBet
	if call < 0 {
		call = 0
	}
	odds := PotOdds(call, state.Pot)

	if score > 0.9 {
		return Decision{Action: game.Raise, Amount: state.Pot * 3}
	}
	if score > odds+0.1 {
		return Decision{Action: game.Call, Amount: call}
	}
	return Decision{Action: game.Fold}
}

// continueBetting is the line when the round has action but no aggression,
// such as checks around to us. Only clearly strong hands keep betting.
func (b *Bot) continueBetting(state *game.State, score float64) Decision {
	if score > 0.7 {
		return Decision{Action: game.Raise, Amount: state.Pot * 0.5}
	}
	return Decision{Action: game.Check}
}

// valueBetSize sizes a value bet by stack depth: deeper stacks support
// larger bets.
func (b *Bot) valueBetSize(state *game.State) float64 {
	spr := state.Stack
	if state.Pot > 0 {
		spr = state.Stack / state.Pot
	}
	switch {
	case spr > 20:
		return state.Pot * 0.75
	case spr > 10:
		return state.Pot * 0.66
	default:
		return state.Pot * 0.5
	}
}

// requiredCall is the additional amount needed to match the last
// aggressive action this round
func requiredCall(state *game.State) float64 {
	for i := len(state.History) - 1; i >= 0; i-- {
		rec := state.History[i]
		if rec.Action == game.Raise || rec.Action == game.AllIn {
			call := rec.Amount - state.CurrentBet
			if call < 0 {
				return 0
			}
			return call
		}
	}
	return 0
}

// PotOdds returns the fraction of the final pot a call puts in
func PotOdds(call, pot float64) float64 {
	if call <= 0 {
		return 0
	}
	return call / (pot + call)
}
