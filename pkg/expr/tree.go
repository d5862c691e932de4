// Package expr builds binary expression trees from postfix sequences and
// defines the commutative equivalence used to collapse trivially-different
// solutions before display.
package expr

import (
	"errors"
	"fmt"

	"github.com/numble-labs/numble/pkg/token"
)

// ErrInvalidSequence reports a postfix sequence that does not reduce to a
// single expression (operator underflow or leftover operands). Sequences
// produced by the solver never trigger it; externally supplied ones can.
var ErrInvalidSequence = errors.New("invalid postfix sequence")

// Node is a node of a binary expression tree: a Number leaf or a Binary
// operator node.
type Node interface {
	node()
}

// Number is a literal leaf.
type Number struct {
	Value uint
}

func (*Number) node() {}

// Binary is an operator node with two owned children.
type Binary struct {
	Op    token.Op
	Left  Node
	Right Node
}

func (*Binary) node() {}

// FromSequence replays a postfix sequence over a stack of trees: literals
// push leaves, operators pop two trees and push a Binary node. It fails
// with ErrInvalidSequence (wrapping the sequence's postfix form) unless
// exactly one tree remains at the end.
func FromSequence(seq token.Sequence) (Node, error) {
	var stack []Node
	for _, t := range seq {
		if t.Kind == token.KindNumber {
			stack = append(stack, &Number{Value: t.Num})
			continue
		}
		if len(stack) < 2 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSequence, seq)
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = append(stack[:len(stack)-2], &Binary{Op: t.Op, Left: left, Right: right})
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSequence, seq)
	}
	return stack[0], nil
}

// CommutativeEqual reports structural equality that treats the operands of
// Add and Mul nodes as unordered. Sub and Div nodes require an exact
// left/right match; leaves compare by value.
func CommutativeEqual(a, b Node) bool {
	switch an := a.(type) {
	case *Number:
		bn, ok := b.(*Number)
		return ok && an.Value == bn.Value
	case *Binary:
		bn, ok := b.(*Binary)
		if !ok || an.Op != bn.Op {
			return false
		}
		if CommutativeEqual(an.Left, bn.Left) && CommutativeEqual(an.Right, bn.Right) {
			return true
		}
		if an.Op.Commutative() {
			return CommutativeEqual(an.Left, bn.Right) && CommutativeEqual(an.Right, bn.Left)
		}
		return false
	}
	return false
}

// Dedupe drops trees that are commutative-equal to an earlier one. The
// comparison is a plain quadratic pass over the kept representatives, which
// keeps the result independent of any hash ordering. Input order decides
// which representative survives.
func Dedupe(trees []Node) []Node {
	kept := make([]Node, 0, len(trees))
	for _, t := range trees {
		dup := false
		for _, k := range kept {
			if CommutativeEqual(t, k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, t)
		}
	}
	return kept
}
