package lineio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReaderReadsLines(t *testing.T) {
	r := NewReader(strings.NewReader("1\r\n 10 \nlast"))
	ctx := context.Background()

	want := []string{"1", " 10 ", "last"}
	for i, w := range want {
		got, err := r.ReadLine(ctx)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("line %d = %q, want %q", i, got, w)
		}
	}
	if _, err := r.ReadLine(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderNilInputIsEmpty(t *testing.T) {
	if _, err := NewReader(nil).ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewReader(strings.NewReader("1\n")).ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestReaderCancelUnblocksPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine(ctx)
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadLine stayed blocked after cancel")
	}

	// The abandoned read is still pending; its line goes to the next caller.
	go func() { _, _ = pw.Write([]byte("42\n")) }()
	got, err := r.ReadLine(context.Background())
	if err != nil {
		t.Fatalf("read after cancel: %v", err)
	}
	if got != "42" {
		t.Fatalf("line = %q, want %q", got, "42")
	}
}

func TestScript(t *testing.T) {
	s := NewScript("abc", "7")
	ctx := context.Background()
	if got, _ := s.ReadLine(ctx); got != "abc" {
		t.Fatalf("first = %q", got)
	}
	if s.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", s.Remaining())
	}
	if got, _ := s.ReadLine(ctx); got != "7" {
		t.Fatalf("second = %q", got)
	}
	if _, err := s.ReadLine(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
