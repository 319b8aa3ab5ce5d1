package domain

import (
	"fmt"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
	"github.com/louisbranch/guessgame/internal/random"
)

// Status identifies the session lifecycle label.
type Status string

const (
	StatusAwaitingRange Status = "awaiting_range"
	StatusAwaitingGuess Status = "awaiting_guess"
	StatusWon           Status = "won"
)

// Result is the classification of one guess line.
type Result struct {
	Outcome Outcome
	// Guess is the parsed value; zero when Outcome is OutcomeIgnored.
	Guess int
}

// Session owns the range and the secret number for one game.
//
// The zero value is a session in StatusAwaitingRange; Start moves it to
// StatusAwaitingGuess and only a correct guess moves it to StatusWon.
type Session struct {
	status   Status
	bounds   Range
	secret   int
	attempts int
}

// Start parses the two range lines, draws the secret from src and returns a
// session awaiting guesses. Errors are fatal: the caller must not retry
// with the same session.
func Start(lowerLine, upperLine string, src random.Source) (*Session, error) {
	bounds, err := ParseRange(lowerLine, upperLine)
	if err != nil {
		return nil, err
	}
	return StartWithRange(bounds, src)
}

// StartWithRange draws the secret for an already parsed range.
func StartWithRange(bounds Range, src random.Source) (*Session, error) {
	if src == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if _, err := NewRange(bounds.Lower, bounds.Upper); err != nil {
		return nil, err
	}
	secret, err := src.UniformInt(bounds.Lower, bounds.Upper)
	if err != nil {
		return nil, fmt.Errorf("draw secret number: %w", err)
	}
	if !bounds.Contains(secret) {
		return nil, fmt.Errorf("random source drew %d outside [%d, %d]", secret, bounds.Lower, bounds.Upper)
	}
	return &Session{
		status: StatusAwaitingGuess,
		bounds: bounds,
		secret: secret,
	}, nil
}

// Status returns the current lifecycle label.
func (s *Session) Status() Status {
	if s == nil || s.status == "" {
		return StatusAwaitingRange
	}
	return s.status
}

// Range returns the session bounds.
func (s *Session) Range() Range {
	return s.bounds
}

// Attempts counts guesses that were compared against the secret.
func (s *Session) Attempts() int {
	return s.attempts
}

// Guess classifies one raw input line.
//
// Unparseable lines yield OutcomeIgnored with a CodeGuessUnparseable error and
// integers outside the range yield OutcomeOutOfRange with a
// CodeGuessOutOfRange error; both codes are recoverable and neither touches
// the secret or the attempt count. Only OutcomeCorrect ends the session.
// Calling Guess on a session that is not awaiting guesses returns
// CodeSessionFinished.
func (s *Session) Guess(line string) (Result, error) {
	if s.Status() != StatusAwaitingGuess {
		return Result{}, apperrors.New(apperrors.CodeSessionFinished, "session is "+string(s.Status()))
	}

	value, err := ParseInt(line)
	if err != nil {
		return Result{Outcome: OutcomeIgnored}, apperrors.WrapWithMetadata(
			apperrors.CodeGuessUnparseable,
			fmt.Sprintf("guess %q is not an integer", line),
			map[string]string{"Input": line},
			err,
		)
	}
	if !s.bounds.Contains(value) {
		return Result{Outcome: OutcomeOutOfRange, Guess: value}, apperrors.WithMetadata(
			apperrors.CodeGuessOutOfRange,
			fmt.Sprintf("guess %d outside [%d, %d]", value, s.bounds.Lower, s.bounds.Upper),
			s.bounds.Metadata(),
		)
	}

	s.attempts++
	switch {
	case value < s.secret:
		return Result{Outcome: OutcomeTooLow, Guess: value}, nil
	case value > s.secret:
		return Result{Outcome: OutcomeTooHigh, Guess: value}, nil
	default:
		s.status = StatusWon
		return Result{Outcome: OutcomeCorrect, Guess: value}, nil
	}
}
