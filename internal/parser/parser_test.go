package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gotiny/internal/ast"
	"github.com/jcorbin/gotiny/internal/lexer"
	"github.com/jcorbin/gotiny/internal/parser"
	"github.com/jcorbin/gotiny/internal/source"
	"github.com/jcorbin/gotiny/internal/value"
)

func parse(t *testing.T, src string) *ast.Program {
	lex := lexer.Lexer{Name: t.Name()}
	prog, err := parser.Parse(lex.Tokenize(src))
	require.NoError(t, err, "unexpected parse error")
	return prog
}

func num(n float32) ast.Literal  { return ast.Literal{Value: value.Number(n)} }
func text(s string) ast.Literal  { return ast.Literal{Value: value.Text(s)} }
func ref(name string) ast.VarRef { return ast.VarRef{Name: name} }
func op(l ast.Expr, o rune, r ast.Expr) ast.BinaryOp {
	return ast.BinaryOp{Left: l, Op: o, Right: r}
}

func Test_Parse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		stmts  []ast.Stmt
		labels map[string]int
	}{
		{
			name:   "empty",
			source: "",
			labels: map[string]int{},
		},
		{
			name:   "blank lines",
			source: "\n\n\n",
			labels: map[string]int{},
		},
		{
			name:   "assign",
			source: "x = 1",
			stmts:  []ast.Stmt{ast.Assign{Name: "x", Expr: num(1)}},
			labels: map[string]int{},
		},
		{
			name:   "print string",
			source: `print "hello"`,
			stmts:  []ast.Stmt{ast.Print{Expr: text("hello")}},
			labels: map[string]int{},
		},
		{
			name:   "input",
			source: "input name",
			stmts:  []ast.Stmt{ast.Input{Name: "name"}},
			labels: map[string]int{},
		},
		{
			name:   "goto",
			source: "goto end",
			stmts:  []ast.Stmt{ast.Goto{Label: "end"}},
			labels: map[string]int{},
		},
		{
			name:   "if then",
			source: "if x < 10 then loop",
			stmts: []ast.Stmt{ast.IfGoto{
				Cond:  op(ref("x"), '<', num(10)),
				Label: "loop",
			}},
			labels: map[string]int{},
		},
		{
			name:   "left fold",
			source: "x = 1 + 2 * 3",
			stmts: []ast.Stmt{ast.Assign{
				Name: "x",
				Expr: op(op(num(1), '+', num(2)), '*', num(3)),
			}},
			labels: map[string]int{},
		},
		{
			name:   "parens group right",
			source: "x = 1 + (2 * 3)",
			stmts: []ast.Stmt{ast.Assign{
				Name: "x",
				Expr: op(num(1), '+', op(num(2), '*', num(3))),
			}},
			labels: map[string]int{},
		},
		{
			name:   "equals is an operator in expressions",
			source: "x = a = b",
			stmts: []ast.Stmt{ast.Assign{
				Name: "x",
				Expr: op(ref("a"), '=', ref("b")),
			}},
			labels: map[string]int{},
		},
		{
			name:   "nested parens",
			source: "print ((a))",
			stmts:  []ast.Stmt{ast.Print{Expr: ref("a")}},
			labels: map[string]int{},
		},
		{
			name:   "labels",
			source: "start:\nx = 0\nloop:\nx = x + 1\nif x < 3 then loop\nend:",
			stmts: []ast.Stmt{
				ast.Assign{Name: "x", Expr: num(0)},
				ast.Assign{Name: "x", Expr: op(ref("x"), '+', num(1))},
				ast.IfGoto{Cond: op(ref("x"), '<', num(3)), Label: "loop"},
			},
			labels: map[string]int{"start": 0, "loop": 1, "end": 3},
		},
		{
			name:   "label redefinition overwrites",
			source: "a:\nprint 1\na:\nprint 2",
			stmts: []ast.Stmt{
				ast.Print{Expr: num(1)},
				ast.Print{Expr: num(2)},
			},
			labels: map[string]int{"a": 1},
		},
		{
			name:   "forward reference",
			source: "goto skip\nx = 1\nskip:\nprint x",
			stmts: []ast.Stmt{
				ast.Goto{Label: "skip"},
				ast.Assign{Name: "x", Expr: num(1)},
				ast.Print{Expr: ref("x")},
			},
			labels: map[string]int{"skip": 2},
		},
		{
			name:   "keyword as variable",
			source: "print = 5",
			stmts:  []ast.Stmt{ast.Assign{Name: "print", Expr: num(5)}},
			labels: map[string]int{},
		},
		{
			name:   "statements need no line breaks",
			source: "x = 1 print x",
			stmts: []ast.Stmt{
				ast.Assign{Name: "x", Expr: num(1)},
				ast.Print{Expr: ref("x")},
			},
			labels: map[string]int{},
		},
		{
			name:   "trailing garbage ignored",
			source: "print 1\n5 + 5\nprint 2",
			stmts:  []ast.Stmt{ast.Print{Expr: num(1)}},
			labels: map[string]int{},
		},
		{
			name:   "unknown word stops parsing",
			source: "print 1\nhalt\nprint 2",
			stmts:  []ast.Stmt{ast.Print{Expr: num(1)}},
			labels: map[string]int{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog := parse(t, tc.source)
			assert.Equal(t, tc.stmts, prog.Stmts, "expected statements")
			assert.Equal(t, tc.labels, prog.Labels, "expected labels")
		})
	}
}

func Test_Parse_errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		want   string
		err    string
	}{
		{
			name:   "unmatched paren",
			source: "x = (1 + 2",
			want:   "CloseParen",
			err:    "Test_Parse_errors/unmatched_paren:1: expected CloseParen, got EOF",
		},
		{
			name:   "missing then",
			source: "if x goto y",
			want:   `"then"`,
			err:    `Test_Parse_errors/missing_then:1: expected "then", got Word "goto"`,
		},
		{
			name:   "missing if label",
			source: "if x then\nprint 1",
			want:   "Word",
			err:    "Test_Parse_errors/missing_if_label:1: expected Word, got LineBreak",
		},
		{
			name:   "bad input target",
			source: "input 5",
			want:   "Word",
			err:    `Test_Parse_errors/bad_input_target:1: expected Word, got Number "5"`,
		},
		{
			name:   "bad goto target",
			source: "\n\ngoto \"x\"",
			want:   "Word",
			err:    `Test_Parse_errors/bad_goto_target:3: expected Word, got String "x"`,
		},
		{
			name:   "missing operand",
			source: "x = 1 +",
			want:   "expression",
			err:    "Test_Parse_errors/missing_operand:1: expected expression, got EOF",
		},
		{
			name:   "empty assignment",
			source: "x =\ny = 2",
			want:   "expression",
			err:    "Test_Parse_errors/empty_assignment:1: expected expression, got LineBreak",
		},
		{
			name:   "close paren first",
			source: "print )",
			want:   "expression",
			err:    `Test_Parse_errors/close_paren_first:1: expected expression, got CloseParen ")"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lex := lexer.Lexer{Name: t.Name()}
			prog, err := parser.Parse(lex.Tokenize(tc.source))
			assert.Nil(t, prog, "expected no program")
			assert.EqualError(t, err, tc.err)
			var perr *parser.Error
			if assert.True(t, errors.As(err, &perr), "expected a *parser.Error") {
				assert.Equal(t, tc.want, perr.Want)
			}
		})
	}
}

func Test_Program_String(t *testing.T) {
	prog := parse(t, "' loop\ni = 0\ntop:\ni = i + (1 * 1)\nif i < 3 then top\nprint \"n=\" + i\ndone:")
	assert.Equal(t, ""+
		"i = 0\n"+
		"top:\n"+
		"i = i + (1 * 1)\n"+
		"if i < 3 then top\n"+
		"print \"n=\" + i\n"+
		"done:\n",
		prog.String())

	again := parse(t, prog.String())
	assert.Equal(t, prog.Stmts, again.Stmts, "expected rendered statements to parse back the same")
	assert.Equal(t, prog.Labels, again.Labels, "expected rendered labels to parse back the same")
}

func Test_Parse_locations(t *testing.T) {
	prog := parse(t, "' header\nx = 1\n\nprint x y = 2\nend:")
	assert.Equal(t, []source.Location{
		{Name: t.Name(), Line: 2},
		{Name: t.Name(), Line: 4},
		{Name: t.Name(), Line: 4},
	}, prog.Locs)
	assert.Equal(t, source.Location{Name: t.Name(), Line: 4}, prog.Loc(2))
	assert.Equal(t, source.Location{}, prog.Loc(3), "expected no location past the end")
}
