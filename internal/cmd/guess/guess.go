// Package guess parses guess command configuration and runs one game.
package guess

import (
	"context"
	"flag"
	"io"
	"log"

	entrypoint "github.com/louisbranch/guessgame/internal/platform/cmd"
	"github.com/louisbranch/guessgame/internal/platform/i18n"
	"github.com/louisbranch/guessgame/internal/platform/lineio"
	"github.com/louisbranch/guessgame/internal/random"
	"github.com/louisbranch/guessgame/internal/services/guess/app"
)

// Config holds guess command configuration.
type Config struct {
	Locale  string `env:"LOCALE" envDefault:"en-US"`
	Seed    int64  `env:"SEED"`
	Verbose bool   `env:"VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale (en-US, zh-CN)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for a reproducible secret (0 = random)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log each guess to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one game reading from in and writing the prompts to out.
// Diagnostics go to errOut when Verbose is set.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGuess, func(ctx context.Context) error {
		seed, err := random.ResolveSeed(cfg.Seed, random.NewSeed)
		if err != nil {
			return err
		}
		logger := log.New(io.Discard, "", 0)
		if cfg.Verbose {
			logger = log.New(errOut, "[GUESS] ", log.LstdFlags)
		}
		game, err := app.New(app.Config{
			Language: i18n.ResolveTag(cfg.Locale),
			Source:   random.New(seed),
			Input:    lineio.NewReader(in),
			Output:   out,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		return game.Run(ctx)
	})
}
