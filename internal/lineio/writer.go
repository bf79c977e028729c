package lineio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// Writer writes whole lines, buffering them until Flush.
type Writer interface {
	WriteLine(line string) error
	Flush() error
}

// NewWriter returns a Writer around w: in memory buffers and
// ioutil.Discard are written directly, anything else through a bufio.Writer.
// A w that is already a Writer is returned as is.
func NewWriter(w io.Writer) Writer {
	if lw, is := w.(Writer); is {
		return lw
	}
	if w == ioutil.Discard {
		return Discard
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return lineWriter{w, nil}
	}

	bw := bufio.NewWriter(w)
	return lineWriter{bw, bw.Flush}
}

// Discard is a Writer that drops every line.
var Discard Writer = discard{}

type discard struct{}

func (discard) WriteLine(string) error { return nil }
func (discard) Flush() error           { return nil }

type lineWriter struct {
	io.Writer
	flush func() error
}

func (lw lineWriter) WriteLine(line string) error {
	if sw, ok := lw.Writer.(io.StringWriter); ok {
		if _, err := sw.WriteString(line); err != nil {
			return err
		}
	} else if _, err := lw.Writer.Write([]byte(line)); err != nil {
		return err
	}
	_, err := lw.Writer.Write(newline)
	return err
}

func (lw lineWriter) Flush() error {
	if lw.flush != nil {
		return lw.flush()
	}
	return nil
}

var newline = []byte{'\n'}

// Tee combines any number of Writers into one that writes into and flushes all
// of them; nil Writers are skipped.
func Tee(ws ...Writer) Writer {
	switch all := appendWriters(nil, ws...); len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	default:
		return all
	}
}

type writers []Writer

func (ws writers) WriteLine(line string) error {
	for _, w := range ws {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (ws writers) Flush() (err error) {
	for _, w := range ws {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriters(all writers, some ...Writer) writers {
	for _, one := range some {
		if many, ok := one.(writers); ok {
			all = append(all, many...)
		} else if one != nil && one != Discard {
			all = append(all, one)
		}
	}
	return all
}
