package main

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/jcorbin/gotiny/internal/lineio"
	"github.com/jcorbin/gotiny/internal/source"
)

// Option configures an Interp.
type Option interface{ apply(it *Interp) }

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []Option

func (opts options) apply(it *Interp) {
	for _, opt := range opts {
		opt.apply(it)
	}
}

var defaults = []Option{
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
}

func (it *Interp) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(it)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(it)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(it *Interp) {
	it.logfn = logfn
}

type sourceOption source.Source
type inputOption struct{ io.Reader }
type lineReaderOption struct{ lineio.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stepLimitOption int

func withSource(name, text string) sourceOption       { return sourceOption{Name: name, Text: text} }
func withInput(r io.Reader) inputOption               { return inputOption{r} }
func withLineReader(r lineio.Reader) lineReaderOption { return lineReaderOption{r} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withStepLimit(limit int) stepLimitOption         { return stepLimitOption(limit) }

func (src sourceOption) apply(it *Interp) {
	it.src = source.Source(src)
	it.prog = nil
}

func (i inputOption) apply(it *Interp) {
	it.in = lineio.NewReader(i.Reader)
}

func (r lineReaderOption) apply(it *Interp) {
	it.in = r.Reader
	if cl, ok := r.Reader.(io.Closer); ok {
		it.closers = append(it.closers, cl)
	}
}

func (o outputOption) apply(it *Interp) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = lineio.NewWriter(o.Writer)
}

func (o teeOption) apply(it *Interp) {
	it.out = lineio.Tee(it.out, lineio.NewWriter(o.Writer))
}

func (lim stepLimitOption) apply(it *Interp) {
	it.stepLimit = int(lim)
}
