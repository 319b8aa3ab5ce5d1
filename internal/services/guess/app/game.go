package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
	"github.com/louisbranch/guessgame/internal/platform/i18n"
	"github.com/louisbranch/guessgame/internal/platform/id"
	"github.com/louisbranch/guessgame/internal/platform/lineio"
	"github.com/louisbranch/guessgame/internal/platform/otel"
	"github.com/louisbranch/guessgame/internal/random"
	"github.com/louisbranch/guessgame/internal/services/guess/domain"
)

// Catalog keys for the guess namespace.
const (
	msgPromptLower = "guess.prompt.lower"
	msgPromptUpper = "guess.prompt.upper"
	msgPromptGuess = "guess.prompt.guess"
	msgEcho        = "guess.echo"
	msgTooLow      = "guess.too_low"
	msgTooHigh     = "guess.too_high"
	msgCorrect     = "guess.correct"
	msgGameOver    = "guess.game_over"
)

// Config wires a Game to its collaborators.
type Config struct {
	// Language selects the message catalog; the zero tag means the default.
	Language language.Tag
	Source   random.Source
	Input    lineio.LineReader
	Output   io.Writer
	// Logger receives diagnostics only, never protocol output. Nil discards.
	Logger *log.Logger
	// NewID generates session identifiers; nil uses id.NewID.
	NewID func() (string, error)
}

// Game runs one guessing session end to end.
type Game struct {
	tag     language.Tag
	printer *message.Printer
	source  random.Source
	input   lineio.LineReader
	out     io.Writer
	logger  *log.Logger
	newID   func() (string, error)
}

// New validates cfg and builds a Game.
func New(cfg Config) (*Game, error) {
	if cfg.Source == nil {
		return nil, errors.New("random source is required")
	}
	if cfg.Input == nil {
		return nil, errors.New("input reader is required")
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.NewID == nil {
		cfg.NewID = id.NewID
	}
	tag := cfg.Language
	if tag == language.Und {
		tag = i18n.Default()
	}
	return &Game{
		tag:     tag,
		printer: i18n.Printer(tag),
		source:  cfg.Source,
		input:   cfg.Input,
		out:     cfg.Output,
		logger:  cfg.Logger,
		newID:   cfg.NewID,
	}, nil
}

// Run plays one game to completion.
//
// Setup failures (unparseable bounds, inverted range) print the localized
// error and return it; the caller is expected to exit. During the guess loop
// unparseable lines re-prompt silently and out-of-range guesses re-prompt
// with the valid bounds. Run returns nil once the secret is guessed, or an
// error when input ends or ctx is cancelled first.
func (g *Game) Run(ctx context.Context) (err error) {
	sessionID, err := g.newID()
	if err != nil {
		return err
	}
	ctx, span := otel.Tracer().Start(ctx, "guess.session",
		trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		}
		span.End()
	}()

	session, err := g.setup(ctx)
	if err != nil {
		return err
	}
	bounds := session.Range()
	span.SetAttributes(
		attribute.Int("range.lower", bounds.Lower),
		attribute.Int("range.upper", bounds.Upper),
	)
	g.logger.Printf("session %s: range [%d, %d]", sessionID, bounds.Lower, bounds.Upper)

	if err := g.loop(ctx, span, session); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("guess.attempts", session.Attempts()))
	g.logger.Printf("session %s: won after %d attempts", sessionID, session.Attempts())
	g.say(msgGameOver)
	return nil
}

func (g *Game) setup(ctx context.Context) (*domain.Session, error) {
	lowerLine, err := g.prompt(ctx, msgPromptLower)
	if err != nil {
		return nil, g.fail(setupReadError(err))
	}
	lower, err := domain.ParseBound(lowerLine)
	if err != nil {
		return nil, g.fail(err)
	}

	upperLine, err := g.prompt(ctx, msgPromptUpper)
	if err != nil {
		return nil, g.fail(setupReadError(err))
	}
	upper, err := domain.ParseBound(upperLine)
	if err != nil {
		return nil, g.fail(err)
	}

	bounds, err := domain.NewRange(lower, upper)
	if err != nil {
		return nil, g.fail(err)
	}
	return domain.StartWithRange(bounds, g.source)
}

func (g *Game) loop(ctx context.Context, span trace.Span, session *domain.Session) error {
	for session.Status() == domain.StatusAwaitingGuess {
		line, err := g.prompt(ctx, msgPromptGuess)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return apperrors.Wrap(apperrors.CodeInputClosed, "input closed before the secret was guessed", err)
			}
			return err
		}

		result, err := session.Guess(line)
		span.AddEvent("guess", trace.WithAttributes(
			attribute.String("guess.outcome", result.Outcome.String()),
			attribute.Int("guess.value", result.Guess),
		))
		if err != nil {
			var domainErr *apperrors.Error
			if !errors.As(err, &domainErr) || !domainErr.Code.Recoverable() {
				return err
			}
			g.logger.Printf("guess %q: %s", line, domainErr.Localize(i18n.Locale(g.tag)))
			if domainErr.Code == apperrors.CodeGuessOutOfRange {
				g.sayError(domainErr)
			}
			continue
		}
		g.logger.Printf("guess %q: %s", line, result.Outcome)

		if result.Outcome.Compared() {
			g.say(msgEcho, strconv.Itoa(result.Guess))
		}
		switch result.Outcome {
		case domain.OutcomeTooLow:
			g.say(msgTooLow)
		case domain.OutcomeTooHigh:
			g.say(msgTooHigh)
		case domain.OutcomeCorrect:
			g.say(msgCorrect)
		}
	}
	return nil
}

func (g *Game) prompt(ctx context.Context, key string) (string, error) {
	g.say(key)
	return g.input.ReadLine(ctx)
}

// fail prints the localized message for a fatal setup error and returns it.
func (g *Game) fail(err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		g.sayError(domainErr)
	}
	return err
}

// setupReadError maps end of input during setup to CodeInputInvalid, the same
// as an empty bound line; other read errors (cancellation) pass through.
func setupReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperrors.Wrap(apperrors.CodeInputInvalid, "input closed during range setup", err)
	}
	return err
}

// say prints one catalog message. Numbers are passed pre-formatted because
// message printers apply locale digit grouping to %d.
func (g *Game) say(key string, args ...any) {
	fmt.Fprintln(g.out, g.printer.Sprintf(key, args...))
}

func (g *Game) sayError(err *apperrors.Error) {
	fmt.Fprintln(g.out, err.Localize(i18n.Locale(g.tag)))
}
