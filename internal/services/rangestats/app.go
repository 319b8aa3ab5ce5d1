package rangestats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
	"github.com/louisbranch/guessgame/internal/platform/i18n"
	"github.com/louisbranch/guessgame/internal/platform/lineio"
	"github.com/louisbranch/guessgame/internal/platform/otel"
)

// Run prompts for one line, prints its statistics and returns. Input errors
// print their localized message and are returned to the caller.
func Run(ctx context.Context, tag language.Tag, in lineio.LineReader, out io.Writer) (err error) {
	if in == nil {
		return errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if tag == language.Und {
		tag = i18n.Default()
	}
	p := i18n.Printer(tag)

	ctx, span := otel.Tracer().Start(ctx, "rangestats.run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		}
		span.End()
	}()

	fmt.Fprintln(out, p.Sprintf("stats.prompt"))
	line, err := in.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		line, err = "", nil
	}
	if err != nil {
		return err
	}

	stats, err := computeLine(line)
	if err != nil {
		var domainErr *apperrors.Error
		if errors.As(err, &domainErr) {
			fmt.Fprintln(out, domainErr.Localize(i18n.Locale(tag)))
		}
		return err
	}
	span.SetAttributes(
		attribute.Int("range.lower", stats.Lower),
		attribute.Int("range.upper", stats.Upper),
	)
	span.AddEvent("computed", trace.WithAttributes(attribute.Int64("stats.sum", stats.Sum)))

	// Numbers are formatted here: message printers would group digits.
	lower, upper := strconv.Itoa(stats.Lower), strconv.Itoa(stats.Upper)
	fmt.Fprintln(out, p.Sprintf("stats.sum", lower, upper, strconv.FormatInt(stats.Sum, 10)))
	fmt.Fprintln(out, p.Sprintf("stats.product", lower, upper, strconv.FormatInt(stats.Product, 10)))
	fmt.Fprintln(out, p.Sprintf("stats.average", lower, upper, strconv.FormatFloat(stats.Average, 'f', 2, 64)))
	return nil
}

func computeLine(line string) (Stats, error) {
	r, err := ParseLine(line)
	if err != nil {
		return Stats{}, err
	}
	return Compute(r)
}
