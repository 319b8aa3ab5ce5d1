// Package rangestats parses rangestats command configuration and runs it.
package rangestats

import (
	"context"
	"flag"
	"io"

	entrypoint "github.com/louisbranch/guessgame/internal/platform/cmd"
	"github.com/louisbranch/guessgame/internal/platform/i18n"
	"github.com/louisbranch/guessgame/internal/platform/lineio"
	"github.com/louisbranch/guessgame/internal/services/rangestats"
)

// Config holds rangestats command configuration.
type Config struct {
	Locale string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale (en-US, zh-CN)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads one line of two integers from in and prints their range
// statistics to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRangeStats, func(ctx context.Context) error {
		return rangestats.Run(ctx, i18n.ResolveTag(cfg.Locale), lineio.NewReader(in), out)
	})
}
