package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gotiny/internal/lineio"
	"github.com/jcorbin/gotiny/internal/panicerr"
	"github.com/jcorbin/gotiny/internal/source"
)

// New creates an Interp: by default it has no program, reads empty input,
// and discards its output.
func New(opts ...Option) *Interp {
	var it Interp
	it.apply(opts...)
	return &it
}

// RunProgram runs text as a program with the given options.
func RunProgram(ctx context.Context, text string, opts ...Option) (rerr error) {
	it := New(append(opts, WithSource("", text))...)
	defer func() {
		if err := it.Close(); rerr == nil {
			rerr = err
		}
	}()
	return it.Run(ctx)
}

// Load lexes and parses src, replacing any prior program and discarding all
// variables. Parse errors are *parser.Error values.
func (it *Interp) Load(src source.Source) error {
	return it.load(src)
}

// Run loads the configured source, unless already loaded, then runs it to
// completion. Failed coercions are returned as *RuntimeError; a cancelled ctx
// stops the run between statements.
func (it *Interp) Run(ctx context.Context) error {
	if it.prog == nil {
		if err := it.load(it.src); err != nil {
			return err
		}
	}
	err := panicerr.Recover("Interp", func() error {
		it.run(ctx)
		return nil
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

func WithSource(name, text string) Option   { return withSource(name, text) }
func WithInput(r io.Reader) Option          { return withInput(r) }
func WithLineReader(r lineio.Reader) Option { return withLineReader(r) }
func WithOutput(w io.Writer) Option         { return withOutput(w) }
func WithTee(w io.Writer) Option            { return withTee(w) }
func WithStepLimit(limit int) Option        { return withStepLimit(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
