// Package strategy adjusts play for tournament context: how deep into the
// field the tournament is, how the hero stack compares to average, and the
// payout pressure near and past the money.
package strategy

// Stage represents how far a tournament has progressed
type Stage int

const (
	Early Stage = iota
	Middle
	Bubble
	FinalTable
)

// String returns the display name of the stage
func (s Stage) String() string {
	switch s {
	case Early:
		return "early"
	case Middle:
		return "middle"
	case Bubble:
		return "bubble"
	case FinalTable:
		return "final table"
	default:
		return "unknown"
	}
}

// Weights tune the decision engine for a tournament stage
type Weights struct {
	Aggression     float64
	BluffFrequency float64
	CallThreshold  float64
}

// DefaultStageWeights returns the per-stage tuning table
func DefaultStageWeights() map[Stage]Weights {
	return map[Stage]Weights{
		Early:      {Aggression: 0.7, BluffFrequency: 0.2, CallThreshold: 0.6},
		Middle:     {Aggression: 0.9, BluffFrequency: 0.3, CallThreshold: 0.5},
		Bubble:     {Aggression: 1.2, BluffFrequency: 0.4, CallThreshold: 0.4},
		FinalTable: {Aggression: 1.1, BluffFrequency: 0.35, CallThreshold: 0.45},
	}
}

// TournamentInfo describes the field at decision time
type TournamentInfo struct {
	PlayersRemaining int
	TotalPlayers     int
	PaidPlaces       int
}

// DetermineStage classifies tournament progress from the fraction of the
// field still alive.
func DetermineStage(remaining, total int) Stage {
	if total <= 0 {
		return Early
	}
	ratio := float64(remaining) / float64(total)
	switch {
	case ratio > 0.7:
		return Early
	case ratio > 0.3:
		return Middle
	case ratio > 0.15:
		return Bubble
	default:
		return FinalTable
	}
}

// Adjustor produces stage and stack adjusted strategy weights
type Adjustor struct {
	weights map[Stage]Weights
}

// NewAdjustor creates an adjustor with the default stage table
func NewAdjustor() *Adjustor {
	return NewAdjustorWithWeights(DefaultStageWeights())
}

// NewAdjustorWithWeights creates an adjustor with a custom stage table
func NewAdjustorWithWeights(weights map[Stage]Weights) *Adjustor {
	return &Adjustor{weights: weights}
}

// StageAdjustments returns the stage weights scaled for stack depth.
// stackRatio is the hero stack divided by the average stack: short stacks
// push aggression up and bluffing down, big stacks the reverse.
func (a *Adjustor) StageAdjustments(stage Stage, stackRatio float64) Weights {
	w := a.weights[stage]
	switch {
	case stackRatio < 0.5:
		w.Aggression *= 1.3
		w.BluffFrequency *= 0.7
	case stackRatio > 2.0:
		w.Aggression *= 0.9
		w.BluffFrequency *= 1.2
	}
	return w
}

// ICMPressure returns a multiplier reflecting payout pressure. Approaching
// the money, short stacks must tighten up while big stacks can lean on the
// table; past the bubble the effect softens.
func (a *Adjustor) ICMPressure(info TournamentInfo, stackRatio float64) float64 {
	inMoney := info.PaidPlaces > 0 && info.PlayersRemaining <= info.PaidPlaces
	if inMoney {
		switch {
		case stackRatio < 0.5:
			return 0.8
		case stackRatio > 2.0:
			return 1.2
		}
		return 1.0
	}
	switch {
	case stackRatio < 0.5:
		return 0.7
	case stackRatio > 2.0:
		return 1.3
	}
	return 1.0
}
