// Package solver implements the numbers-game search: given a multiset of
// non-negative integers and a target, it enumerates postfix token sequences
// that evaluate to the target under integer arithmetic.
//
// The search is a depth-first recursion over token extensions. Every
// recursive branch owns independent copies of its evaluation stack and its
// remaining numbers, so sibling branches never observe each other's state.
package solver

import "github.com/numble-labs/numble/pkg/token"

// Policy selects how aggressively candidate steps are pruned.
type Policy int

const (
	// Sensible rejects arithmetically invalid steps and additionally
	// suppresses redundant ones: zero literals, identity multiplication
	// and division, and one direction of each commutative pair.
	Sensible Policy = iota

	// Legal rejects only steps that are not valid integer arithmetic:
	// subtraction that would not yield a positive result, and division
	// with a remainder or a zero divisor.
	Legal
)

// String returns the policy name as used on the CLI.
func (p Policy) String() string {
	if p == Legal {
		return "dumb"
	}
	return "sensible"
}

// Apply attempts to extend an evaluation stack with one token. A number is
// pushed; an operator pops the top two values and pushes the result. The
// returned stack is a fresh copy; the input is never modified.
//
// A false result is a prune signal, not an error: the token simply cannot
// be applied at this point under the given policy.
func Apply(stack []uint, tok token.Token, policy Policy) ([]uint, bool) {
	if tok.Kind == token.KindNumber {
		// Zero can never contribute to a positive target sensibly.
		if policy == Sensible && tok.Num == 0 {
			return nil, false
		}
		next := make([]uint, len(stack), len(stack)+1)
		copy(next, stack)
		return append(next, tok.Num), true
	}

	if len(stack) < 2 {
		return nil, false
	}
	a, b := stack[len(stack)-2], stack[len(stack)-1]

	val, ok := applyOp(tok.Op, a, b, policy)
	if !ok {
		return nil, false
	}
	next := make([]uint, len(stack)-1)
	copy(next, stack[:len(stack)-2])
	next[len(next)-1] = val
	return next, true
}

func applyOp(op token.Op, a, b uint, policy Policy) (uint, bool) {
	switch op {
	case token.Add:
		// Ordering eliminates one direction of each commutative pair.
		if policy == Sensible && a < b {
			return 0, false
		}
		return a + b, true
	case token.Sub:
		// No zero or negative intermediate results under either policy.
		if a <= b {
			return 0, false
		}
		return a - b, true
	case token.Mul:
		if policy == Sensible && (a == 1 || b == 1 || a < b) {
			return 0, false
		}
		return a * b, true
	case token.Div:
		if policy == Sensible && b <= 1 {
			return 0, false
		}
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}
