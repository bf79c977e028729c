package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/gotiny/internal/lineio"
	"github.com/jcorbin/gotiny/internal/logio"
	"github.com/jcorbin/gotiny/internal/source"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	log := logio.NewLogger(os.Stderr)

	flags := flag.NewFlagSet("gotiny", flag.ContinueOnError)
	var (
		timeout  time.Duration
		trace    bool
		dump     bool
		maxSteps int
		prompt   string
	)
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&dump, "dump", false, "dump program and variables to stderr after running")
	flags.IntVar(&maxSteps, "max-steps", 0, "stop after running this many statements")
	flags.StringVar(&prompt, "prompt", "? ", "prompt shown by input when reading from a terminal")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: gotiny [options] [FILE|-]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	name := source.Stdin
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	}
	src, err := source.Open(name)
	if err != nil {
		log.Errorf("%v", err)
		return log.ExitCode()
	}

	var opts = []Option{
		WithSource(src.Name, src.Text),
		WithOutput(os.Stdout),
	}
	if name != source.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, WithLineReader(lineio.NewLiner(prompt)))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if maxSteps != 0 {
		opts = append(opts, WithStepLimit(maxSteps))
	}
	it := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	runErr := it.Run(ctx)
	log.ErrorIf(it.Close())
	if dump {
		interpDumper{it: it, out: os.Stderr}.dump()
	}
	log.ErrorIf(runErr)
	return log.ExitCode()
}
