// Package lineio reads line-oriented console input.
package lineio

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// LineReader yields one line of input per call.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Reader is a LineReader over any io.Reader.
//
// Reads run on a background goroutine so a blocked read still returns when
// ctx is cancelled. A read abandoned that way stays pending and its line is
// returned by the next ReadLine call. Reader is not safe for concurrent use.
type Reader struct {
	br      *bufio.Reader
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewReader wraps r. A nil r behaves as empty input.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		r = strings.NewReader("")
	}
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator ("\n" or
// "\r\n"). A final line without a terminator is returned before io.EOF.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		r.pending = ch
		go func() {
			line, err := r.read()
			ch <- lineResult{line: line, err: err}
		}()
	}
	select {
	case res := <-r.pending:
		r.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *Reader) read() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Script is a LineReader that replays fixed lines, then reports io.EOF.
type Script struct {
	lines []string
	next  int
}

// NewScript returns a Script over lines.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// ReadLine returns the next scripted line.
func (s *Script) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Remaining reports how many scripted lines have not been read.
func (s *Script) Remaining() int {
	return len(s.lines) - s.next
}
