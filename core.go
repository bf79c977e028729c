package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gotiny/internal/lineio"
)

type core struct {
	logging
	in      lineio.Reader
	out     lineio.Writer
	closers []io.Closer
}

// Close flushes output, then closes anything handed over by options, most
// recent first.
func (core *core) Close() (err error) {
	if core.out != nil {
		err = core.out.Flush()
	}
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	return err
}

func (core *core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if err == nil {
			core.logf("#", "halt")
		} else {
			core.logf("#", "halt error: %v", err)
		}
	}()

	panic(haltError{err})
}

func (core *core) haltif(err error) {
	if err != nil {
		core.halt(err)
	}
}

func (core *core) writeLine(line string) {
	core.haltif(core.out.WriteLine(line))
}

// readLine flushes output so that any prompt is visible, then reads a line;
// end of input reads as an empty line.
func (core *core) readLine() string {
	core.haltif(core.out.Flush())
	line, err := core.in.ReadLine()
	if errors.Is(err, io.EOF) {
		core.logf("@", "read EOF")
		return ""
	}
	core.haltif(err)
	core.logf("@", "read %q", line)
	return line
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
