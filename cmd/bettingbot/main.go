package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/bettingbot/internal/config"
)

type CLI struct {
	Debug  bool   `help:"Enable debug logging"`
	Config string `default:"bettingbot.hcl" help:"Path to HCL configuration file"`

	Eval     EvalCmd     `cmd:"" help:"Evaluate a poker hand"`
	Strength StrengthCmd `cmd:"" help:"Score hole cards, optionally against a board"`
	Simulate SimulateCmd `cmd:"" help:"Deal random hands through the decision engine"`
}

// Context carries the shared logger and configuration into subcommands
type Context struct {
	Logger *log.Logger
	Config *config.Config
}

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bettingbot"),
		kong.Description("Poker hand evaluation and a tournament decision engine"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "path", cli.Config, "error", err)
	}

	err = ctx.Run(&Context{Logger: logger, Config: cfg})
	ctx.FatalIfErrorf(err)
}
