package solver

import (
	"log/slog"
	"sort"

	"github.com/numble-labs/numble/pkg/token"
)

// Solver runs numbers-game searches under a fixed pruning policy.
// The zero value is a usable sensible-policy solver.
type Solver struct {
	Policy Policy

	// Logger receives debug-level search statistics. Nil disables it.
	Logger *slog.Logger
}

// New returns a solver for the given policy.
func New(policy Policy) *Solver {
	return &Solver{Policy: policy}
}

// FindAll returns every postfix sequence that evaluates to target, using
// each input number at most once. Results are free of literal duplicates
// and sorted by their postfix form, so identical inputs always produce an
// identical slice.
func (s *Solver) FindAll(numbers []uint, target uint) []token.Sequence {
	st := &searchState{policy: s.Policy, target: target}
	found := make(map[string]token.Sequence)
	st.findAll(numbers, nil, nil, found)

	keys := make([]string, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]token.Sequence, 0, len(found))
	for _, k := range keys {
		out = append(out, found[k])
	}
	if s.Logger != nil {
		s.Logger.Debug("search finished",
			"mode", "all", "policy", s.Policy.String(),
			"nodes", st.nodes, "solutions", len(out))
	}
	return out
}

// FindFirst returns the first sequence found by the same depth-first,
// numbers-before-operators traversal that FindAll uses. The boolean is
// false when no solution exists. The traversal order is fixed, so for a
// given input and policy the result is always the same sequence.
func (s *Solver) FindFirst(numbers []uint, target uint) (token.Sequence, bool) {
	st := &searchState{policy: s.Policy, target: target}
	seq, ok := st.findFirst(numbers, nil, nil)
	if s.Logger != nil {
		s.Logger.Debug("search finished",
			"mode", "first", "policy", s.Policy.String(),
			"nodes", st.nodes, "found", ok)
	}
	return seq, ok
}

// FindAll runs a one-shot search; see Solver.FindAll.
func FindAll(numbers []uint, target uint, policy Policy) []token.Sequence {
	return New(policy).FindAll(numbers, target)
}

// FindFirst runs a one-shot search; see Solver.FindFirst.
func FindFirst(numbers []uint, target uint, policy Policy) (token.Sequence, bool) {
	return New(policy).FindFirst(numbers, target)
}

type searchState struct {
	policy Policy
	target uint
	nodes  int
}

// findAll explores every extension of the current partial sequence. Each
// recursive call consumes a number or shrinks the stack by one, so the
// recursion is well founded. The stack and remaining slices are owned by
// this call; extensions for child branches are fresh copies.
func (st *searchState) findAll(remaining, stack []uint, seq token.Sequence, found map[string]token.Sequence) {
	st.nodes++

	// The target check runs at every node, so a solution may leave some
	// numbers unused.
	if len(stack) == 1 && stack[0] == st.target {
		found[seq.String()] = seq.Clone()
	}

	for idx, num := range remaining {
		next, ok := Apply(stack, token.Number(num), st.policy)
		if !ok {
			continue
		}
		st.findAll(removeAt(remaining, idx), next, extend(seq, token.Number(num)), found)
	}

	for _, op := range token.Ops {
		next, ok := Apply(stack, token.Operator(op), st.policy)
		if !ok {
			continue
		}
		st.findAll(remaining, next, extend(seq, token.Operator(op)), found)
	}
}

func (st *searchState) findFirst(remaining, stack []uint, seq token.Sequence) (token.Sequence, bool) {
	st.nodes++

	if len(stack) == 1 && stack[0] == st.target {
		return seq, true
	}

	for idx, num := range remaining {
		next, ok := Apply(stack, token.Number(num), st.policy)
		if !ok {
			continue
		}
		if sol, ok := st.findFirst(removeAt(remaining, idx), next, extend(seq, token.Number(num))); ok {
			return sol, true
		}
	}

	for _, op := range token.Ops {
		next, ok := Apply(stack, token.Operator(op), st.policy)
		if !ok {
			continue
		}
		if sol, ok := st.findFirst(remaining, next, extend(seq, token.Operator(op))); ok {
			return sol, true
		}
	}

	return nil, false
}

// removeAt copies nums without the element at idx, preserving the order of
// the rest.
func removeAt(nums []uint, idx int) []uint {
	out := make([]uint, 0, len(nums)-1)
	out = append(out, nums[:idx]...)
	return append(out, nums[idx+1:]...)
}

// extend copies seq with tok appended. Plain append would let sibling
// branches share a backing array and clobber each other's history.
func extend(seq token.Sequence, tok token.Token) token.Sequence {
	out := make(token.Sequence, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, tok)
}
