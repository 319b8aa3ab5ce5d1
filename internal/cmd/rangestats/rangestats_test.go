package rangestats

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
)

func TestParseConfigLocaleFlag(t *testing.T) {
	fs := flag.NewFlagSet("rangestats", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-locale", "zh-CN"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "zh-CN" {
		t.Fatalf("locale = %q", cfg.Locale)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("rangestats", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-port", "1"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRun(t *testing.T) {
	t.Setenv("GUESSGAME_OTEL_ENDPOINT", "")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Locale: "en-US"}, strings.NewReader("1 10\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "the sum from 1 to 10 is: 55") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunInvertedRange(t *testing.T) {
	t.Setenv("GUESSGAME_OTEL_ENDPOINT", "")
	var out bytes.Buffer
	err := Run(context.Background(), Config{Locale: "en-US"}, strings.NewReader("5 3\n"), &out)
	if !apperrors.Is(err, apperrors.CodeRangeInverted) {
		t.Fatalf("err = %v", err)
	}
}
