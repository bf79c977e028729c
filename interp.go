package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcorbin/gotiny/internal/ast"
	"github.com/jcorbin/gotiny/internal/lexer"
	"github.com/jcorbin/gotiny/internal/parser"
	"github.com/jcorbin/gotiny/internal/source"
	"github.com/jcorbin/gotiny/internal/value"
)

// Interp runs one program. The parsed program is never modified once loaded;
// variables and the program counter are the only mutable run state.
type Interp struct {
	core

	src  source.Source
	prog *ast.Program

	pc    int // index of the next statement to run
	at    int // index of the statement running now
	steps int

	stepLimit int

	vars variables
}

// load lexes and parses src, resetting any prior run state.
func (it *Interp) load(src source.Source) error {
	lex := lexer.Lexer{Name: src.Name}
	tokens := lex.Tokenize(src.Text)
	it.logf(">", "lexed %v tokens from %v", len(tokens), src.Name)

	prog, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	it.logf(">", "parsed %v statements, %v labels", len(prog.Stmts), len(prog.Labels))

	it.src = src
	it.prog = prog
	it.reset()
	return nil
}

func (it *Interp) reset() {
	it.pc = 0
	it.at = 0
	it.steps = 0
	it.vars = make(variables)
}

// run steps through the program until the counter passes the last
// statement.
func (it *Interp) run(ctx context.Context) {
	if it.logfn != nil {
		defer it.withLogPrefix("	")()
	}

	for it.pc < len(it.prog.Stmts) {
		it.haltif(ctx.Err())
		it.step()
	}
	it.haltif(it.out.Flush())
}

func (it *Interp) step() {
	if lim := it.stepLimit; lim != 0 && it.steps >= lim {
		it.halt(ErrStepLimit)
	}
	it.at = it.pc
	st := it.prog.Stmts[it.at]
	it.logf(">", "exec @%v %v", it.at, st)
	it.steps++
	it.pc++
	it.exec(st)
}

func (it *Interp) exec(st ast.Stmt) {
	switch st := st.(type) {
	case ast.Assign:
		it.vars[st.Name] = it.eval(st.Expr)

	case ast.Goto:
		if i, defined := it.prog.Label(st.Label); defined {
			it.pc = i
		} else {
			it.logf("#", "no label %q", st.Label)
		}

	case ast.IfGoto:
		i, defined := it.prog.Label(st.Label)
		if !defined {
			it.logf("#", "no label %q", st.Label)
			break
		}
		cond, err := it.eval(st.Cond).Float()
		if err != nil {
			it.fail(err)
		}
		if cond != 0 {
			it.pc = i
		}

	case ast.Print:
		it.writeLine(it.eval(st.Expr).String())

	case ast.Input:
		it.vars[st.Name] = value.Parse(it.readLine())

	default:
		it.fail(stmtError{st})
	}
}

func (it *Interp) eval(expr ast.Expr) value.Value {
	v, err := evaluate(expr, it.vars)
	if err != nil {
		it.fail(err)
	}
	return v
}

// fail halts with err attributed to the running statement.
func (it *Interp) fail(err error) {
	it.halt(&RuntimeError{
		Loc:   it.prog.Loc(it.at),
		Index: it.at,
		Stmt:  it.prog.Stmts[it.at],
		Err:   err,
	})
}

// RuntimeError reports the statement whose execution failed.
type RuntimeError struct {
	Loc   source.Location
	Index int
	Stmt  ast.Stmt
	Err   error
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%v: %v: %v", err.Loc, err.Stmt, err.Err)
}

func (err *RuntimeError) Unwrap() error { return err.Err }

// ErrStepLimit is returned by Run once the configured number of statements
// has run and the program still has not finished.
var ErrStepLimit = errors.New("step limit exceeded")

type stmtError struct{ ast.Stmt }

func (err stmtError) Error() string { return fmt.Sprintf("invalid statement type %T", err.Stmt) }
