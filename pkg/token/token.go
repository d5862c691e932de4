// Package token defines the vocabulary of postfix arithmetic expressions:
// non-negative integer literals and the four binary operators.
//
// Operators form a closed enumeration with two precedence classes
// (addition and subtraction bind looser than multiplication and division).
package token

import (
	"fmt"
	"strconv"
)

// Op is one of the four arithmetic operators.
type Op int

// The operators, in their fixed enumeration order. The search engine
// iterates Ops directly, so this order determines traversal order.
const (
	Add Op = iota
	Sub
	Mul
	Div
)

// Ops lists every operator in enumeration order.
var Ops = [...]Op{Add, Sub, Mul, Div}

var opSymbols = map[Op]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// Precedence is the binding strength of an operator.
type Precedence int

// Precedence classes. Add and Sub share the lower class, Mul and Div the
// higher one.
const (
	PrecAdditive Precedence = iota + 1
	PrecMultiplicative
)

// Precedence returns the operator's precedence class.
func (o Op) Precedence() Precedence {
	if o == Mul || o == Div {
		return PrecMultiplicative
	}
	return PrecAdditive
}

// Commutative reports whether operand order is irrelevant for o.
func (o Op) Commutative() bool {
	return o == Add || o == Mul
}

// String returns the operator's symbol.
func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Kind discriminates the two token variants.
type Kind int

// Token kinds.
const (
	KindNumber Kind = iota
	KindOp
)

// Token is an atomic unit of a postfix sequence: either a non-negative
// integer literal or an operator. Tokens are immutable values; comparison
// with == is structural equality.
type Token struct {
	Kind Kind
	Num  uint
	Op   Op
}

// Number returns a literal token for n.
func Number(n uint) Token {
	return Token{Kind: KindNumber, Num: n}
}

// Operator returns an operator token for op.
func Operator(op Op) Token {
	return Token{Kind: KindOp, Op: op}
}

// String returns the literal digits or the operator symbol.
func (t Token) String() string {
	if t.Kind == KindNumber {
		return strconv.FormatUint(uint64(t.Num), 10)
	}
	return t.Op.String()
}
