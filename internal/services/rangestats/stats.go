// Package rangestats computes the sum, product and average of every integer
// in an inclusive range read from one input line.
package rangestats

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
	"github.com/louisbranch/guessgame/internal/services/guess/domain"
)

// Stats summarizes the integers in [Lower, Upper].
type Stats struct {
	Lower   int
	Upper   int
	Count   uint64
	Sum     int64
	Product int64
	Average float64
}

// ParseLine reads exactly two whitespace separated integers. A token that is
// not an integer is reported before a wrong token count.
func ParseLine(line string) (domain.Range, error) {
	fields := strings.Fields(line)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return domain.Range{}, apperrors.Wrap(apperrors.CodeInputInvalid, "parse "+strconv.Quote(field), err)
		}
		values = append(values, v)
	}
	if len(values) != 2 {
		return domain.Range{}, apperrors.New(apperrors.CodeStatsArity, fmt.Sprintf("expected 2 numbers, got %d", len(values)))
	}
	return domain.NewRange(values[0], values[1])
}

// Compute returns the statistics for r. Results that do not fit in int64 are
// reported as CodeStatsOverflow.
func Compute(r domain.Range) (Stats, error) {
	if _, err := domain.NewRange(r.Lower, r.Upper); err != nil {
		return Stats{}, err
	}
	sum, ok := sumRange(r)
	if !ok {
		return Stats{}, overflow(r, "sum")
	}
	product, ok := productRange(r)
	if !ok {
		return Stats{}, overflow(r, "product")
	}
	return Stats{
		Lower:   r.Lower,
		Upper:   r.Upper,
		Count:   r.Size(),
		Sum:     sum,
		Product: product,
		// Halving first keeps the midpoint finite for extreme bounds.
		Average: float64(r.Lower)/2 + float64(r.Upper)/2,
	}, nil
}

// sumRange uses the arithmetic series formula in big.Int so the count and
// intermediate product cannot overflow.
func sumRange(r domain.Range) (int64, bool) {
	lower := big.NewInt(int64(r.Lower))
	upper := big.NewInt(int64(r.Upper))
	count := new(big.Int).Sub(upper, lower)
	count.Add(count, big.NewInt(1))
	total := new(big.Int).Add(lower, upper)
	total.Mul(total, count)
	total.Quo(total, big.NewInt(2))
	if !total.IsInt64() {
		return 0, false
	}
	return total.Int64(), true
}

// productRange multiplies every value in r. A range containing zero is zero;
// otherwise the magnitude at least doubles every step past ±1, so the loop
// overflows (and stops) within 64 iterations.
func productRange(r domain.Range) (int64, bool) {
	if r.Contains(0) {
		return 0, true
	}
	negative := false
	var magnitude uint64 = 1
	for v := r.Lower; ; v++ {
		if v < 0 {
			negative = !negative
		}
		hi, lo := bits.Mul64(magnitude, absUint(v))
		if hi != 0 {
			return 0, false
		}
		magnitude = lo
		if v == r.Upper {
			break
		}
	}
	switch {
	case !negative && magnitude <= math.MaxInt64:
		return int64(magnitude), true
	case negative && magnitude <= 1<<63:
		return int64(-magnitude), true
	default:
		return 0, false
	}
}

func absUint(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func overflow(r domain.Range, what string) error {
	return apperrors.WithMetadata(apperrors.CodeStatsOverflow,
		fmt.Sprintf("%s of [%d, %d] overflows int64", what, r.Lower, r.Upper),
		r.Metadata())
}
