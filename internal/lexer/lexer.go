package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jcorbin/gotiny/internal/source"
)

// Kind classifies a Token.
type Kind int

// Token kinds.
const (
	Word Kind = iota
	Number
	String
	Label
	LineBreak
	Equals
	Operator
	OpenParen
	CloseParen
	EOF
)

var kindNames = [...]string{
	Word:       "Word",
	Number:     "Number",
	String:     "String",
	Label:      "Label",
	LineBreak:  "LineBreak",
	Equals:     "Equals",
	Operator:   "Operator",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	EOF:        "EOF",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme. Text never contains string quotes or a label's
// colon.
type Token struct {
	Text string
	Kind Kind
	Loc  source.Location
}

func (tok Token) String() string {
	if tok.Kind == LineBreak || tok.Kind == EOF {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%v %q", tok.Kind, tok.Text)
}

// charKinds classifies the single character tokens, which never enter the
// accumulator.
var charKinds = map[rune]Kind{
	'\n': LineBreak,
	'=':  Equals,
	'+':  Operator,
	'-':  Operator,
	'*':  Operator,
	'/':  Operator,
	'<':  Operator,
	'>':  Operator,
	'(':  OpenParen,
	')':  CloseParen,
}

type state int

const (
	inDefault state = iota
	inWord
	inNumber
	inString
	inComment
)

// Lexer is a character at a time state machine; its zero value is ready to
// use, and every Tokenize call starts from a clean state.
type Lexer struct {
	// Name is stamped into every token Loc.
	Name string

	state  state
	acc    strings.Builder
	line   int
	start  int
	tokens []Token
}

// Tokenize is a convenience for a zero Lexer's Tokenize.
func Tokenize(text string) []Token {
	var lex Lexer
	return lex.Tokenize(text)
}

// Tokenize converts text into tokens. It never fails: unterminated strings
// and trailing words or numbers are flushed as tokens, while an unterminated
// comment yields nothing.
func (lex *Lexer) Tokenize(text string) []Token {
	lex.state = inDefault
	lex.acc.Reset()
	lex.line = 1
	lex.tokens = nil

	for _, r := range text {
		// at most one redo: a closed word or number always goes back to
		// inDefault, which never asks for another
		for lex.step(r) {
		}
		if r == '\n' {
			lex.line++
		}
	}
	lex.flush()

	tokens := lex.tokens
	lex.tokens = nil
	return tokens
}

// step feeds one rune into the state machine, returning true if the same
// rune must be processed again under the new state.
func (lex *Lexer) step(r rune) (redo bool) {
	switch lex.state {
	case inDefault:
		if kind, ok := charKinds[r]; ok {
			lex.emit(string(r), kind, lex.line)
		} else if unicode.IsLetter(r) {
			lex.begin(inWord)
			lex.acc.WriteRune(r)
		} else if isDigit(r) {
			lex.begin(inNumber)
			lex.acc.WriteRune(r)
		} else if r == '"' {
			lex.begin(inString)
		} else if r == '\'' {
			lex.state = inComment
		}

	case inWord:
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			lex.acc.WriteRune(r)
		} else if r == ':' {
			lex.pushAcc(Label)
		} else {
			lex.pushAcc(Word)
			return true
		}

	case inNumber:
		// no sign or decimal point; "0 - x" and "x / y" make those
		if isDigit(r) {
			lex.acc.WriteRune(r)
		} else {
			lex.pushAcc(Number)
			return true
		}

	case inString:
		if r == '"' {
			lex.pushAcc(String)
		} else {
			lex.acc.WriteRune(r)
		}

	case inComment:
		if r == '\n' {
			lex.state = inDefault
		}
	}
	return false
}

func (lex *Lexer) flush() {
	if lex.acc.Len() > 0 {
		switch lex.state {
		case inNumber:
			lex.pushAcc(Number)
		case inWord:
			lex.pushAcc(Word)
		case inString:
			lex.pushAcc(String)
		}
	}
	lex.state = inDefault
	lex.acc.Reset()
}

func (lex *Lexer) begin(st state) {
	lex.state = st
	lex.start = lex.line
}

func (lex *Lexer) pushAcc(kind Kind) {
	lex.emit(lex.acc.String(), kind, lex.start)
	lex.acc.Reset()
	lex.state = inDefault
}

func (lex *Lexer) emit(text string, kind Kind, line int) {
	lex.tokens = append(lex.tokens, Token{
		Text: text,
		Kind: kind,
		Loc:  source.Location{Name: lex.Name, Line: line},
	})
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
