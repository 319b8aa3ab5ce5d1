package domain

// Outcome classifies one input line read during the guess loop.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	// OutcomeIgnored: the line was not an integer; re-prompt silently.
	OutcomeIgnored
	// OutcomeOutOfRange: an integer outside the range; never compared.
	OutcomeOutOfRange
	OutcomeTooLow
	OutcomeTooHigh
	OutcomeCorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "unspecified"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeOutOfRange:
		return "out_of_range"
	case OutcomeTooLow:
		return "too_low"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Compared reports whether the guess was compared against the secret.
func (o Outcome) Compared() bool {
	return o == OutcomeTooLow || o == OutcomeTooHigh || o == OutcomeCorrect
}
