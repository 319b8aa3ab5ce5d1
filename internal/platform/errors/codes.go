// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Setup errors
	CodeInputInvalid  Code = "INPUT_INVALID"
	CodeRangeInverted Code = "RANGE_INVERTED"
	CodeInputClosed   Code = "INPUT_CLOSED"

	// Guess loop errors
	CodeGuessUnparseable Code = "GUESS_UNPARSEABLE"
	CodeGuessOutOfRange  Code = "GUESS_OUT_OF_RANGE"
	CodeSessionFinished  Code = "SESSION_FINISHED"

	// Range statistics errors
	CodeStatsArity    Code = "STATS_ARITY"
	CodeStatsOverflow Code = "STATS_OVERFLOW"
)

// Recoverable reports whether an interactive loop may re-prompt after an
// error with this code instead of ending the program.
func (c Code) Recoverable() bool {
	switch c {
	case CodeGuessUnparseable,
		CodeGuessOutOfRange:
		return true
	default:
		return false
	}
}
