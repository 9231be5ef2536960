// Package bot implements the decision engine. It combines the hand
// strength score with positional tuning, opponent reads and tournament
// pressure, then maps the result onto an action sized for the pot.
package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/bettingbot/internal/config"
	"github.com/lox/bettingbot/internal/game"
	"github.com/lox/bettingbot/internal/opponent"
	"github.com/lox/bettingbot/internal/strategy"
)

// Decision is the chosen action and, where applicable, the chip amount
type Decision struct {
	Action game.Action
	Amount float64
}

// Bot is a tournament poker decision engine
type Bot struct {
	logger   *log.Logger
	cfg      *config.Config
	tracker  *opponent.Tracker
	adjustor *strategy.Adjustor

	tournament   *strategy.TournamentInfo
	avgStack     float64
	initialAllIn bool // the one-time opening shove has been used
}

// New creates a bot with the given configuration
func New(logger *log.Logger, cfg *config.Config) *Bot {
	return &Bot{
		logger:   logger.WithPrefix("bot"),
		cfg:      cfg,
		tracker:  opponent.NewTracker(),
		adjustor: strategy.NewAdjustorWithWeights(cfg.StageWeights()),
	}
}

// Tracker returns the opponent tracker fed by Observe
func (b *Bot) Tracker() *opponent.Tracker {
	return b.tracker
}

// Observe records an opponent action for future reads
func (b *Bot) Observe(playerID string, action game.Action, amount float64, state *game.State) {
	b.tracker.Observe(playerID, action, amount, state)
}

// SetTournament enables tournament adjustments. avgStack is the average
// stack across remaining players.
func (b *Bot) SetTournament(info strategy.TournamentInfo, avgStack float64) {
	b.tournament = &info
	b.avgStack = avgStack
}

// DecideAction chooses an action for the given state.
//
// While the credit balance is still near its starting value the bot makes
// a single opening shove when its stack covers the balance, banking the
// buy-in before playing on score. After that, the hand strength score is
// scaled by seat, opponent reads and tournament pressure, and routed
// through the preflop or postflop line.
func (b *Bot) DecideAction(state *game.State) (Decision, error) {
	if !b.initialAllIn &&
		state.Credits > b.cfg.Bot.InitialCredits-b.cfg.Bot.AllInThreshold &&
		state.Stack >= state.Credits {
		b.initialAllIn = true
		b.logger.Info("opening shove", "credits", state.Credits, "stack", state.Stack)
		return Decision{Action: game.AllIn, Amount: state.Credits}, nil
	}

	score, err := b.handStrength(state)
	if err != nil {
		return Decision{}, err
	}

	multiplier := b.cfg.PositionMultiplier(state.Position)
	reads := b.opponentAdjustment()
	final := score * multiplier * reads

	if b.tournament != nil && b.avgStack > 0 {
		stage := strategy.DetermineStage(b.tournament.PlayersRemaining, b.tournament.TotalPlayers)
		ratio := state.Stack / b.avgStack
		weights := b.adjustor.StageAdjustments(stage, ratio)
		icm := b.adjustor.ICMPressure(*b.tournament, ratio)
		final *= weights.Aggression * icm
		b.logger.Debug("tournament adjustment",
			"stage", stage.String(), "stackRatio", ratio, "aggression", weights.Aggression, "icm", icm)
	}

	b.logger.Debug("decision factors",
		"street", state.Street.String(),
		"position", state.Position,
		"strength", score,
		"multiplier", multiplier,
		"reads", reads,
		"final", final)

	var decision Decision
	if state.Street == game.PreFlop {
		decision = b.decidePreflop(state, final)
	} else {
		decision = b.decidePostflop(state, final)
	}

	b.logger.Info("decision",
		"street", state.Street.String(),
		"action", decision.Action.String(),
		"amount", decision.Amount,
		"pot", state.Pot)

	return decision, nil
}
