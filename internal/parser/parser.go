package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/jcorbin/gotiny/internal/ast"
	"github.com/jcorbin/gotiny/internal/lexer"
	"github.com/jcorbin/gotiny/internal/source"
	"github.com/jcorbin/gotiny/internal/value"
)

// Error indicates that a required token was not found.
type Error struct {
	// Token is the offending token; its Kind is lexer.EOF when the input ran
	// out.
	Token lexer.Token

	// Want describes what was expected, e.g. "CloseParen" or `"then"`.
	Want string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: expected %v, got %v", err.Token.Loc, err.Want, err.Token)
}

// Parse builds a program from tokens in a single pass, binding each label to
// the index of the next statement. Parsing stops at the first token that
// cannot start a statement; anything after it is ignored.
func Parse(tokens []lexer.Token) (prog *ast.Program, err error) {
	p := parser{
		tokens: tokens,
		prog:   &ast.Program{Labels: make(map[string]int)},
	}
	defer func() {
		if e := recover(); e != nil {
			perr, ok := e.(*Error)
			if !ok {
				panic(e)
			}
			prog, err = nil, perr
		}
	}()
	p.parse()
	return p.prog, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
	prog   *ast.Program
	loc    source.Location
}

func (p *parser) parse() {
	for {
		for p.match(lexer.LineBreak) {
		}

		p.loc = p.peek(0).Loc
		if p.match(lexer.Label) {
			p.prog.Labels[p.last(1).Text] = len(p.prog.Stmts)
		} else if p.match2(lexer.Word, lexer.Equals) {
			name := p.last(2).Text
			p.emit(ast.Assign{Name: name, Expr: p.expression()})
		} else if p.matchWord("print") {
			p.emit(ast.Print{Expr: p.expression()})
		} else if p.matchWord("input") {
			p.emit(ast.Input{Name: p.require(lexer.Word).Text})
		} else if p.matchWord("goto") {
			p.emit(ast.Goto{Label: p.require(lexer.Word).Text})
		} else if p.matchWord("if") {
			cond := p.expression()
			p.requireWord("then")
			p.emit(ast.IfGoto{Cond: cond, Label: p.require(lexer.Word).Text})
		} else {
			return
		}
	}
}

func (p *parser) emit(st ast.Stmt) {
	p.prog.Stmts = append(p.prog.Stmts, st)
	p.prog.Locs = append(p.prog.Locs, p.loc)
}

// expression parses a left folded chain of atoms; all operators share one
// precedence level.
func (p *parser) expression() ast.Expr {
	expr := p.atomic()
	for p.match(lexer.Operator) || p.match(lexer.Equals) {
		op, _ := utf8.DecodeRuneInString(p.last(1).Text)
		expr = ast.BinaryOp{Left: expr, Op: op, Right: p.atomic()}
	}
	return expr
}

func (p *parser) atomic() ast.Expr {
	switch {
	case p.match(lexer.Word):
		return ast.VarRef{Name: p.last(1).Text}

	case p.match(lexer.Number):
		tok := p.last(1)
		n, err := strconv.ParseFloat(tok.Text, 32)
		if err != nil {
			// digit runs only fail by overflow, which saturates
			if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
				panic(&Error{Token: tok, Want: "number literal"})
			}
		}
		return ast.Literal{Value: value.Number(float32(n))}

	case p.match(lexer.String):
		return ast.Literal{Value: value.Text(p.last(1).Text)}

	case p.match(lexer.OpenParen):
		expr := p.expression()
		p.require(lexer.CloseParen)
		return expr
	}
	panic(&Error{Token: p.peek(0), Want: "expression"})
}

// last returns a consumed token: last(1) is the one just consumed.
func (p *parser) last(offset int) lexer.Token {
	return p.tokens[p.pos-offset]
}

// peek returns an unconsumed token, or an EOF token past the end.
func (p *parser) peek(offset int) lexer.Token {
	if i := p.pos + offset; i < len(p.tokens) {
		return p.tokens[i]
	}
	eof := lexer.Token{Kind: lexer.EOF}
	if n := len(p.tokens); n > 0 {
		eof.Loc = p.tokens[n-1].Loc
	}
	return eof
}

func (p *parser) match(kind lexer.Kind) bool {
	if p.peek(0).Kind != kind {
		return false
	}
	p.pos++
	return true
}

// match2 consumes two tokens only if both match.
func (p *parser) match2(first, second lexer.Kind) bool {
	if p.peek(0).Kind != first || p.peek(1).Kind != second {
		return false
	}
	p.pos += 2
	return true
}

func (p *parser) matchWord(text string) bool {
	if tok := p.peek(0); tok.Kind != lexer.Word || tok.Text != text {
		return false
	}
	p.pos++
	return true
}

func (p *parser) require(kind lexer.Kind) lexer.Token {
	if !p.match(kind) {
		panic(&Error{Token: p.peek(0), Want: kind.String()})
	}
	return p.last(1)
}

func (p *parser) requireWord(text string) {
	if !p.matchWord(text) {
		panic(&Error{Token: p.peek(0), Want: strconv.Quote(text)})
	}
}
