package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	apperrors "github.com/louisbranch/guessgame/internal/platform/errors"
	"github.com/louisbranch/guessgame/internal/platform/lineio"
	"github.com/louisbranch/guessgame/internal/random"
)

func newGame(t *testing.T, secret int, tag language.Tag, lines ...string) (*Game, *bytes.Buffer, *lineio.Script) {
	t.Helper()
	var out bytes.Buffer
	script := lineio.NewScript(lines...)
	g, err := New(Config{
		Language: tag,
		Source:   random.Fixed(secret),
		Input:    script,
		Output:   &out,
		NewID:    func() (string, error) { return "test-session", nil },
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g, &out, script
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func assertLines(t *testing.T, got []string, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d\ngot:  %q\nwant: %q", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q\nall: %q", i, got[i], want[i], got)
		}
	}
}

func TestRunScenarioOneToTen(t *testing.T) {
	g, out, script := newGame(t, 7, language.Und, "1", "10", "abc", "15", "3", "9", "7")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertLines(t, outputLines(out), []string{
		"enter the start of the range you want to guess",
		"enter the end of the range you want to guess",
		"enter your guess:",
		"enter your guess:",
		"please guess between 1 and 10",
		"enter your guess:",
		"you guessed: 3",
		"too low",
		"enter your guess:",
		"you guessed: 9",
		"too high",
		"enter your guess:",
		"you guessed: 7",
		"correct",
		"game over",
	})
	if script.Remaining() != 0 {
		t.Fatalf("expected all input consumed, %d left", script.Remaining())
	}
}

func TestRunSingleElementRange(t *testing.T) {
	g, out, _ := newGame(t, 5, language.Und, "5", "5", "5")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := outputLines(out)
	assertLines(t, got[len(got)-3:], []string{"you guessed: 5", "correct", "game over"})
}

func TestRunStopsReadingAfterWin(t *testing.T) {
	g, _, script := newGame(t, 2, language.Und, "1", "3", "2", "3", "1")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if script.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", script.Remaining())
	}
}

func TestRunOutOfRangeEqualToSecretDoesNotWin(t *testing.T) {
	// The secret sits on the upper bound; "11" is one past it and must only
	// produce the bounds message.
	g, out, _ := newGame(t, 10, language.Und, "1", "10", "11", "+10")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if strings.Count(text, "please guess between 1 and 10") != 1 {
		t.Fatalf("expected one out-of-range message:\n%s", text)
	}
	if strings.Count(text, "correct") != 1 {
		t.Fatalf("expected exactly one win:\n%s", text)
	}
}

func TestRunSetupInvalidInputIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "lower",
			lines: []string{"abc", "10", "5"},
			want: []string{
				"enter the start of the range you want to guess",
				"invalid input",
			},
		},
		{
			name:  "upper",
			lines: []string{"1", "x", "5"},
			want: []string{
				"enter the start of the range you want to guess",
				"enter the end of the range you want to guess",
				"invalid input",
			},
		},
		{
			name:  "input closed",
			lines: []string{"1"},
			want: []string{
				"enter the start of the range you want to guess",
				"enter the end of the range you want to guess",
				"invalid input",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, out, _ := newGame(t, 5, language.Und, tt.lines...)
			err := g.Run(context.Background())
			if !apperrors.Is(err, apperrors.CodeInputInvalid) {
				t.Fatalf("err = %v, want %s", err, apperrors.CodeInputInvalid)
			}
			assertLines(t, outputLines(out), tt.want)
		})
	}
}

func TestRunInvertedRangeIsFatal(t *testing.T) {
	g, out, _ := newGame(t, 5, language.Und, "10", "1", "5")

	err := g.Run(context.Background())
	if !apperrors.Is(err, apperrors.CodeRangeInverted) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeRangeInverted)
	}
	if strings.Contains(out.String(), "enter your guess:") {
		t.Fatalf("guess loop must not start:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "(10 > 1)") {
		t.Fatalf("expected bounds in message:\n%s", out.String())
	}
}

func TestRunInputClosedDuringLoop(t *testing.T) {
	g, out, _ := newGame(t, 5, language.Und, "1", "10", "3")

	err := g.Run(context.Background())
	if !apperrors.Is(err, apperrors.CodeInputClosed) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeInputClosed)
	}
	if strings.Contains(out.String(), "game over") {
		t.Fatalf("game over must not print:\n%s", out.String())
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	g, _, _ := newGame(t, 5, language.Und, "1", "10", "5")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunLogsIgnoredGuessesWithoutPrinting(t *testing.T) {
	var out, logs bytes.Buffer
	g, err := New(Config{
		Source: random.Fixed(4),
		Input:  lineio.NewScript("1", "5", "four", "4"),
		Output: &out,
		Logger: log.New(&logs, "", 0),
		NewID:  func() (string, error) { return "test-session", nil },
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "not a number") {
		t.Fatalf("ignored guess must stay silent on output:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), `guess "four": not a number`) {
		t.Fatalf("expected localized log line, got:\n%s", logs.String())
	}
}

func TestRunStopsOnCancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	g, err := New(Config{
		Source: random.Fixed(5),
		Input:  lineio.NewReader(pr),
		Output: &out,
		NewID:  func() (string, error) { return "test-session", nil },
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRunChineseCatalog(t *testing.T) {
	g, out, _ := newGame(t, 2, language.MustParse("zh-CN"), "1", "3", "9", "1", "2")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertLines(t, outputLines(out), []string{
		"请输入你想猜测的开始范围",
		"请输入你想猜测的结束范围",
		"请输入你的猜测：",
		"请在1到3之间猜测",
		"请输入你的猜测：",
		"你猜测的数是：1",
		"猜小了",
		"请输入你的猜测：",
		"你猜测的数是：2",
		"猜对了",
		"游戏结束",
	})
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(Config{Input: lineio.NewScript()}); err == nil {
		t.Fatal("expected missing source error")
	}
	if _, err := New(Config{Source: random.Fixed(1)}); err == nil {
		t.Fatal("expected missing input error")
	}
}

func TestRunPropagatesIDError(t *testing.T) {
	want := errors.New("no entropy")
	g, err := New(Config{
		Source: random.Fixed(1),
		Input:  lineio.NewScript("1", "1", "1"),
		NewID:  func() (string, error) { return "", want },
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := g.Run(context.Background()); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
