package main

import (
	"fmt"

	"github.com/jcorbin/gotiny/internal/ast"
	"github.com/jcorbin/gotiny/internal/value"
)

// variables maps names to values; names never assigned read as Number(0),
// the zero Value.
type variables map[string]value.Value

// evaluate computes expr's value; it has no side effects. Operands evaluate
// left before right, and the first failed coercion is returned.
func evaluate(expr ast.Expr, vars variables) (value.Value, error) {
	switch expr := expr.(type) {
	case ast.Literal:
		return expr.Value, nil

	case ast.VarRef:
		return vars[expr.Name], nil

	case ast.BinaryOp:
		left, err := evaluate(expr.Left, vars)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evaluate(expr.Right, vars)
		if err != nil {
			return value.Value{}, err
		}
		return binaryOp(expr.Op, left, right)
	}
	return value.Value{}, exprError{expr}
}

// binaryOp applies op to a and b. For "=", "+", "<" and ">" the left
// operand's type chooses between the numeric and textual forms; "-", "*" and
// "/" always coerce both operands to numbers.
func binaryOp(op rune, a, b value.Value) (value.Value, error) {
	switch op {
	case '=', '+', '<', '>':
		if !a.IsNumber() {
			return textOp(op, a.String(), b.String()), nil
		}
	case '-', '*', '/':
	default:
		return value.Value{}, opError(op)
	}

	x, err := a.Float()
	if err != nil {
		return value.Value{}, err
	}
	y, err := b.Float()
	if err != nil {
		return value.Value{}, err
	}
	return numOp(op, x, y), nil
}

func numOp(op rune, x, y float32) value.Value {
	switch op {
	case '=':
		return value.Bool(x == y)
	case '+':
		return value.Number(x + y)
	case '-':
		return value.Number(x - y)
	case '*':
		return value.Number(x * y)
	case '/':
		return value.Number(x / y)
	case '<':
		return value.Bool(x < y)
	default: // '>'
		return value.Bool(x > y)
	}
}

func textOp(op rune, s, t string) value.Value {
	switch op {
	case '=':
		return value.Bool(s == t)
	case '+':
		return value.Text(s + t)
	case '<':
		return value.Bool(s < t)
	default: // '>'
		return value.Bool(s > t)
	}
}

type opError rune

func (op opError) Error() string { return fmt.Sprintf("unknown operator %q", rune(op)) }

type exprError struct{ ast.Expr }

func (err exprError) Error() string { return fmt.Sprintf("invalid expression type %T", err.Expr) }
