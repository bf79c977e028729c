package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gotiny/internal/logio"
)

func Test_Logger(t *testing.T) {
	var out strings.Builder
	log := logio.NewLogger(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Printf("", "bare")
	log.Leveledf("TRACE")("step %d", 3)
	assert.Equal(t, 0, log.ExitCode(), "expected no error yet")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "expected nil errors to be ignored")

	log.ErrorIf(errors.New("boom"))
	assert.Equal(t, 1, log.ExitCode(), "expected an error exit code")

	assert.Equal(t, ""+
		"INFO: hello world\n"+
		"bare\n"+
		"TRACE: step 3\n"+
		"ERROR: boom\n",
		out.String())
}

func Test_Logger_outputError(t *testing.T) {
	log := logio.NewLogger(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected an io error exit code")
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(lw, "one\ntw")
	assert.Equal(t, []string{"one"}, lines, "expected only completed lines")

	fmt.Fprintf(lw, "o\nthree")
	assert.NoError(t, lw.WriteLine("four"))
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three", "four"}, lines)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }
