package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numble-labs/numble/pkg/token"
)

func TestApplyNumbers(t *testing.T) {
	tests := []struct {
		name   string
		stack  []uint
		num    uint
		policy Policy
		want   []uint
		wantOK bool
	}{
		{name: "push on empty", stack: nil, num: 7, policy: Legal, want: []uint{7}, wantOK: true},
		{name: "push on stack", stack: []uint{4}, num: 2, policy: Sensible, want: []uint{4, 2}, wantOK: true},
		{name: "legal accepts zero", stack: nil, num: 0, policy: Legal, want: []uint{0}, wantOK: true},
		{name: "sensible rejects zero", stack: nil, num: 0, policy: Sensible, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Apply(tt.stack, token.Number(tt.num), tt.policy)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApplyOperators(t *testing.T) {
	tests := []struct {
		name   string
		stack  []uint
		op     token.Op
		policy Policy
		want   []uint
		wantOK bool
	}{
		// Underflow is rejected under either policy.
		{name: "empty stack", stack: nil, op: token.Add, policy: Legal, wantOK: false},
		{name: "one value", stack: []uint{3}, op: token.Mul, policy: Sensible, wantOK: false},

		// Addition.
		{name: "legal add", stack: []uint{2, 3}, op: token.Add, policy: Legal, want: []uint{5}, wantOK: true},
		{name: "legal add either order", stack: []uint{3, 2}, op: token.Add, policy: Legal, want: []uint{5}, wantOK: true},
		{name: "sensible add ordered", stack: []uint{3, 2}, op: token.Add, policy: Sensible, want: []uint{5}, wantOK: true},
		{name: "sensible add equal operands", stack: []uint{2, 2}, op: token.Add, policy: Sensible, want: []uint{4}, wantOK: true},
		{name: "sensible add rejects ascending", stack: []uint{2, 3}, op: token.Add, policy: Sensible, wantOK: false},

		// Subtraction: a > b under both policies.
		{name: "legal sub", stack: []uint{5, 3}, op: token.Sub, policy: Legal, want: []uint{2}, wantOK: true},
		{name: "legal sub rejects zero result", stack: []uint{3, 3}, op: token.Sub, policy: Legal, wantOK: false},
		{name: "legal sub rejects negative", stack: []uint{3, 5}, op: token.Sub, policy: Legal, wantOK: false},
		{name: "sensible sub", stack: []uint{5, 3}, op: token.Sub, policy: Sensible, want: []uint{2}, wantOK: true},
		{name: "sensible sub rejects zero result", stack: []uint{3, 3}, op: token.Sub, policy: Sensible, wantOK: false},

		// Multiplication.
		{name: "legal mul", stack: []uint{4, 3}, op: token.Mul, policy: Legal, want: []uint{12}, wantOK: true},
		{name: "legal mul by one", stack: []uint{4, 1}, op: token.Mul, policy: Legal, want: []uint{4}, wantOK: true},
		{name: "sensible mul ordered", stack: []uint{4, 3}, op: token.Mul, policy: Sensible, want: []uint{12}, wantOK: true},
		{name: "sensible mul rejects identity", stack: []uint{4, 1}, op: token.Mul, policy: Sensible, wantOK: false},
		{name: "sensible mul rejects one left", stack: []uint{1, 4}, op: token.Mul, policy: Sensible, wantOK: false},
		{name: "sensible mul rejects ascending", stack: []uint{3, 4}, op: token.Mul, policy: Sensible, wantOK: false},

		// Division.
		{name: "legal div exact", stack: []uint{8, 4}, op: token.Div, policy: Legal, want: []uint{2}, wantOK: true},
		{name: "legal div remainder", stack: []uint{7, 2}, op: token.Div, policy: Legal, wantOK: false},
		{name: "legal div by zero", stack: []uint{7, 0}, op: token.Div, policy: Legal, wantOK: false},
		{name: "legal div by one", stack: []uint{7, 1}, op: token.Div, policy: Legal, want: []uint{7}, wantOK: true},
		{name: "sensible div exact", stack: []uint{8, 4}, op: token.Div, policy: Sensible, want: []uint{2}, wantOK: true},
		{name: "sensible div rejects identity", stack: []uint{7, 1}, op: token.Div, policy: Sensible, wantOK: false},
		{name: "sensible div remainder", stack: []uint{8, 3}, op: token.Div, policy: Sensible, wantOK: false},

		// Deeper stacks only touch the top two values.
		{name: "deep stack", stack: []uint{9, 5, 3}, op: token.Sub, policy: Legal, want: []uint{9, 2}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Apply(tt.stack, token.Operator(tt.op), tt.policy)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	stack := []uint{6, 2}
	_, ok := Apply(stack, token.Operator(token.Div), Legal)
	require.True(t, ok)
	assert.Equal(t, []uint{6, 2}, stack)

	_, ok = Apply(stack, token.Number(5), Legal)
	require.True(t, ok)
	assert.Equal(t, []uint{6, 2}, stack)
}
