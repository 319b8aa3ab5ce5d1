package domain

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
)

// Range is the inclusive interval [Lower, Upper] the secret is drawn from.
type Range struct {
	Lower int
	Upper int
}

// NewRange validates lower <= upper.
func NewRange(lower, upper int) (Range, error) {
	if lower > upper {
		return Range{}, apperrors.WithMetadata(apperrors.CodeRangeInverted,
			"range start "+strconv.Itoa(lower)+" exceeds end "+strconv.Itoa(upper),
			boundsMetadata(lower, upper))
	}
	return Range{Lower: lower, Upper: upper}, nil
}

// ParseRange parses two raw bound lines. Any parse failure is reported as
// CodeInputInvalid; an inverted range as CodeRangeInverted.
func ParseRange(lowerLine, upperLine string) (Range, error) {
	lower, err := ParseBound(lowerLine)
	if err != nil {
		return Range{}, err
	}
	upper, err := ParseBound(upperLine)
	if err != nil {
		return Range{}, err
	}
	return NewRange(lower, upper)
}

// ParseBound trims and parses one range bound.
func ParseBound(line string) (int, error) {
	value, err := ParseInt(line)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInputInvalid, "parse range bound "+strconv.Quote(line), err)
	}
	return value, nil
}

// ParseInt trims surrounding whitespace and parses a base-10 integer.
func ParseInt(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line))
}

// Contains reports whether value lies inside the range.
func (r Range) Contains(value int) bool {
	return value >= r.Lower && value <= r.Upper
}

// Size returns the number of integers in the range, saturating at the
// largest uint64.
func (r Range) Size() uint64 {
	n := uint64(r.Upper) - uint64(r.Lower) + 1
	if n == 0 {
		return ^uint64(0)
	}
	return n
}

// Metadata returns the bounds as catalog template metadata.
func (r Range) Metadata() map[string]string {
	return boundsMetadata(r.Lower, r.Upper)
}

func boundsMetadata(lower, upper int) map[string]string {
	return map[string]string{
		"Lower": strconv.Itoa(lower),
		"Upper": strconv.Itoa(upper),
	}
}
