// Package ast defines the closed set of expression and statement nodes
// produced by the parser. Each category is a sealed interface: only the types
// in this package implement it, so a type switch over them is exhaustive.
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jcorbin/gotiny/internal/source"
	"github.com/jcorbin/gotiny/internal/value"
)

// Expr is one of Literal, VarRef or BinaryOp.
type Expr interface {
	fmt.Stringer
	expr()
}

// Literal is a constant value.
type Literal struct{ Value value.Value }

// VarRef reads a variable; unassigned variables read as Number(0).
type VarRef struct{ Name string }

// BinaryOp applies Op, one of "= + - * / < >", to its operands.
type BinaryOp struct {
	Left  Expr
	Op    rune
	Right Expr
}

func (Literal) expr()  {}
func (VarRef) expr()   {}
func (BinaryOp) expr() {}

func (lit Literal) String() string {
	if lit.Value.IsNumber() {
		return lit.Value.String()
	}
	return `"` + lit.Value.String() + `"`
}

func (ref VarRef) String() string { return ref.Name }

// String renders op left to right; a right operand that is itself an
// operation is parenthesized since chaining only folds to the left.
func (op BinaryOp) String() string {
	right := op.Right.String()
	if _, isOp := op.Right.(BinaryOp); isOp {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%v %c %v", op.Left, op.Op, right)
}

// Stmt is one of Assign, Goto, IfGoto, Print or Input.
type Stmt interface {
	fmt.Stringer
	stmt()
}

// Assign stores Expr's value under Name.
type Assign struct {
	Name string
	Expr Expr
}

// Goto jumps to Label, if defined.
type Goto struct{ Label string }

// IfGoto jumps to Label when it is defined and Cond is non-zero.
type IfGoto struct {
	Cond  Expr
	Label string
}

// Print writes Expr's text form as a line.
type Print struct{ Expr Expr }

// Input reads a line into Name.
type Input struct{ Name string }

func (Assign) stmt() {}
func (Goto) stmt()   {}
func (IfGoto) stmt() {}
func (Print) stmt()  {}
func (Input) stmt()  {}

func (st Assign) String() string { return fmt.Sprintf("%v = %v", st.Name, st.Expr) }
func (st Goto) String() string   { return "goto " + st.Label }
func (st IfGoto) String() string { return fmt.Sprintf("if %v then %v", st.Cond, st.Label) }
func (st Print) String() string  { return fmt.Sprintf("print %v", st.Expr) }
func (st Input) String() string  { return "input " + st.Name }

// Program is the parser's output: a flat statement list, and a table mapping
// label names to the index of the statement following them. A label at the
// end of the program maps to len(Stmts).
type Program struct {
	Stmts  []Stmt
	Labels map[string]int

	// Locs holds the location of each statement's first token.
	Locs []source.Location
}

// Loc returns the location of statement i, if known.
func (prog *Program) Loc(i int) source.Location {
	if i >= 0 && i < len(prog.Locs) {
		return prog.Locs[i]
	}
	return source.Location{}
}

// Label returns the index bound to name, if any.
func (prog *Program) Label(name string) (int, bool) {
	i, ok := prog.Labels[name]
	return i, ok
}

// LabelsAt returns the sorted names of any labels bound to index i.
func (prog *Program) LabelsAt(i int) []string {
	var names []string
	for name, at := range prog.Labels {
		if at == i {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// String renders the program back to source form, one statement per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for i := 0; i <= len(prog.Stmts); i++ {
		for _, name := range prog.LabelsAt(i) {
			sb.WriteString(name)
			sb.WriteString(":\n")
		}
		if i < len(prog.Stmts) {
			sb.WriteString(prog.Stmts[i].String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
