// Package domain models one number-guessing session.
//
// A session is created from two raw range lines, draws its secret number
// once, and then classifies guesses one at a time until the secret is found.
//
// The package holds:
//   - Range and bound parsing (setup failures are fatal),
//   - the Session state machine {awaiting_range, awaiting_guess, won},
//   - and Outcome, the classification of one guess-loop input line.
//
// Nothing here performs I/O; the app package drives prompts and output.
package domain
