// Package config loads bot tuning from an HCL file, falling back to the
// built-in defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bettingbot/internal/strategy"
)

// Config is the complete bot configuration
type Config struct {
	Bot       BotSettings      `hcl:"bot,block"`
	Positions []PositionConfig `hcl:"position,block"`
	Stages    []StageConfig    `hcl:"stage,block"`
}

// BotSettings contains table-independent bot tuning
type BotSettings struct {
	InitialCredits   float64 `hcl:"initial_credits,optional"`
	AllInThreshold   float64 `hcl:"all_in_threshold,optional"`
	MinHandsForStats int     `hcl:"min_hands_for_stats,optional"`
}

// PositionConfig tunes play from a single seat. Seat 0 is the button.
type PositionConfig struct {
	Name          string  `hcl:"name,label"`
	Seat          int     `hcl:"seat"`
	Multiplier    float64 `hcl:"multiplier"`
	OpenThreshold float64 `hcl:"open_threshold"`
}

// StageConfig tunes play for one tournament stage
type StageConfig struct {
	Name           string  `hcl:"name,label"`
	Aggression     float64 `hcl:"aggression"`
	BluffFrequency float64 `hcl:"bluff_frequency"`
	CallThreshold  float64 `hcl:"call_threshold"`
}

// DefaultConfig returns the built-in tuning tables
func DefaultConfig() *Config {
	return &Config{
		Bot: BotSettings{
			InitialCredits:   10000,
			AllInThreshold:   6000,
			MinHandsForStats: 20,
		},
		Positions: []PositionConfig{
			{Name: "button", Seat: 0, Multiplier: 1.2, OpenThreshold: 0.2},
			{Name: "small_blind", Seat: 1, Multiplier: 0.9, OpenThreshold: 0.3},
			{Name: "big_blind", Seat: 2, Multiplier: 0.8, OpenThreshold: 0.25},
			{Name: "utg", Seat: 3, Multiplier: 0.85, OpenThreshold: 0.4},
			{Name: "utg1", Seat: 4, Multiplier: 0.9, OpenThreshold: 0.35},
			{Name: "middle", Seat: 5, Multiplier: 0.95, OpenThreshold: 0.3},
			{Name: "hijack", Seat: 6, Multiplier: 1.0, OpenThreshold: 0.25},
			{Name: "cutoff", Seat: 7, Multiplier: 1.1, OpenThreshold: 0.2},
		},
		Stages: []StageConfig{
			{Name: "early", Aggression: 0.7, BluffFrequency: 0.2, CallThreshold: 0.6},
			{Name: "middle", Aggression: 0.9, BluffFrequency: 0.3, CallThreshold: 0.5},
			{Name: "bubble", Aggression: 1.2, BluffFrequency: 0.4, CallThreshold: 0.4},
			{Name: "final_table", Aggression: 1.1, BluffFrequency: 0.35, CallThreshold: 0.45},
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults. Blocks absent from the file fall back to their default
// tables.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Bot.InitialCredits == 0 {
		config.Bot.InitialCredits = defaults.Bot.InitialCredits
	}
	if config.Bot.AllInThreshold == 0 {
		config.Bot.AllInThreshold = defaults.Bot.AllInThreshold
	}
	if config.Bot.MinHandsForStats == 0 {
		config.Bot.MinHandsForStats = defaults.Bot.MinHandsForStats
	}
	if len(config.Positions) == 0 {
		config.Positions = defaults.Positions
	}
	if len(config.Stages) == 0 {
		config.Stages = defaults.Stages
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	if c.Bot.InitialCredits <= 0 {
		return fmt.Errorf("initial credits must be positive: %v", c.Bot.InitialCredits)
	}
	if c.Bot.AllInThreshold < 0 {
		return fmt.Errorf("all-in threshold must not be negative: %v", c.Bot.AllInThreshold)
	}
	if c.Bot.MinHandsForStats < 0 {
		return fmt.Errorf("min hands for stats must not be negative: %d", c.Bot.MinHandsForStats)
	}

	for _, p := range c.Positions {
		if p.Seat < 0 {
			return fmt.Errorf("position %s: invalid seat %d", p.Name, p.Seat)
		}
		if p.Multiplier <= 0 {
			return fmt.Errorf("position %s: multiplier must be positive", p.Name)
		}
		if p.OpenThreshold < 0 || p.OpenThreshold > 1 {
			return fmt.Errorf("position %s: open threshold must be within [0,1]", p.Name)
		}
	}

	validStages := map[string]bool{
		"early":       true,
		"middle":      true,
		"bubble":      true,
		"final_table": true,
	}
	for _, s := range c.Stages {
		if !validStages[s.Name] {
			return fmt.Errorf("stage %s: unknown stage name", s.Name)
		}
		if s.Aggression <= 0 {
			return fmt.Errorf("stage %s: aggression must be positive", s.Name)
		}
		if s.CallThreshold < 0 || s.CallThreshold > 1 {
			return fmt.Errorf("stage %s: call threshold must be within [0,1]", s.Name)
		}
	}

	return nil
}

// PositionMultiplier returns the strength multiplier for a seat. Seats
// without explicit tuning play at full strength.
func (c *Config) PositionMultiplier(seat int) float64 {
	for _, p := range c.Positions {
		if p.Seat == seat {
			return p.Multiplier
		}
	}
	return 1.0
}

// OpenThreshold returns the minimum preflop strength to enter the pot
// from a seat. Seats without explicit tuning use 0.3.
func (c *Config) OpenThreshold(seat int) float64 {
	for _, p := range c.Positions {
		if p.Seat == seat {
			return p.OpenThreshold
		}
	}
	return 0.3
}

// StageWeights converts the stage blocks into a strategy weight table
func (c *Config) StageWeights() map[strategy.Stage]strategy.Weights {
	names := map[string]strategy.Stage{
		"early":       strategy.Early,
		"middle":      strategy.Middle,
		"bubble":      strategy.Bubble,
		"final_table": strategy.FinalTable,
	}
	weights := make(map[strategy.Stage]strategy.Weights, len(c.Stages))
	for _, s := range c.Stages {
		stage, ok := names[s.Name]
		if !ok {
			continue
		}
		weights[stage] = strategy.Weights{
			Aggression:     s.Aggression,
			BluffFrequency: s.BluffFrequency,
			CallThreshold:  s.CallThreshold,
		}
	}
	return weights
}
