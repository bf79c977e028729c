package lineio

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Reader reads whole lines. ReadLine returns the line without its trailing
// line terminator; the final line of a stream need not be terminated.
// At end of input it returns "" and io.EOF.
type Reader interface {
	ReadLine() (string, error)
}

// NewReader returns a Reader around r; a r that is already a Reader is
// returned as is.
func NewReader(r io.Reader) Reader {
	if lr, is := r.(Reader); is {
		return lr
	}
	return &bufReader{br: bufio.NewReader(r)}
}

type bufReader struct{ br *bufio.Reader }

func (r *bufReader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return TrimEOL(line), err
}

// TrimEOL removes any trailing "\n" or "\r\n" from line.
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Liner reads lines from an interactive terminal with line editing and
// history, showing Prompt before each read.
type Liner struct {
	Prompt string

	state *liner.State
}

// NewLiner takes over the terminal; callers must Close it to restore the
// terminal state.
func NewLiner(prompt string) *Liner {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Liner{Prompt: prompt, state: state}
}

// ReadLine prompts for a line, adding any non-empty answer to the history.
// Ctrl-D reports io.EOF; Ctrl-C reports ErrAborted.
func (ln *Liner) ReadLine() (string, error) {
	line, err := ln.state.Prompt(ln.Prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	} else if err != nil {
		return "", err
	}
	if line != "" {
		ln.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal.
func (ln *Liner) Close() error { return ln.state.Close() }

// ErrAborted indicates that the user interrupted an interactive read.
var ErrAborted = errors.New("input aborted")
