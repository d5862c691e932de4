package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence is an ordered list of tokens forming a postfix (reverse-Polish)
// expression. Two sequences are equal only if they match token for token;
// the String form is the canonical representation and doubles as a hash key.
type Sequence []Token

// String renders the sequence as comma-joined postfix, e.g. "2,3,+".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Numbers returns the literal values in the sequence, in order of
// appearance.
func (s Sequence) Numbers() []uint {
	var nums []uint
	for _, t := range s {
		if t.Kind == KindNumber {
			nums = append(nums, t.Num)
		}
	}
	return nums
}

// ParseSequence parses the comma-joined postfix form produced by String.
// Each element is an operator symbol or a non-negative integer.
func ParseSequence(s string) (Sequence, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty sequence")
	}
	parts := strings.Split(s, ",")
	seq := make(Sequence, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if op, ok := parseOp(part); ok {
			seq = append(seq, Operator(op))
			continue
		}
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid token %q in sequence %q", part, s)
		}
		seq = append(seq, Number(uint(n)))
	}
	return seq, nil
}

func parseOp(s string) (Op, bool) {
	for op, sym := range opSymbols {
		if s == sym {
			return op, true
		}
	}
	return 0, false
}
