package expr

import (
	"strconv"
	"strings"
)

// Postfix renders the tree as comma-joined postfix, matching the
// token.Sequence String form.
func Postfix(n Node) string {
	var b strings.Builder
	writePostfix(&b, n)
	return b.String()
}

func writePostfix(b *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Number:
		b.WriteString(strconv.FormatUint(uint64(node.Value), 10))
	case *Binary:
		writePostfix(b, node.Left)
		b.WriteByte(',')
		writePostfix(b, node.Right)
		b.WriteByte(',')
		b.WriteString(node.Op.String())
	}
}

// Infix renders the tree as infix text with the minimum parentheses needed
// to preserve evaluation order: a child is parenthesized when its operator
// binds looser than its parent's, and a right child also when it binds
// equally under a non-commutative parent (3-(2-1) is not 3-2-1).
func Infix(n Node) string {
	s, _ := infix(n)
	return s
}

// infix returns the rendered subtree and, for operator nodes, the node
// itself so the caller can inspect its operator when deciding on
// parentheses. Leaves return nil; they never need parentheses.
func infix(n Node) (string, *Binary) {
	leaf, ok := n.(*Number)
	if ok {
		return strconv.FormatUint(uint64(leaf.Value), 10), nil
	}
	node := n.(*Binary)

	left, leftOp := infix(node.Left)
	if leftOp != nil && leftOp.Op.Precedence() < node.Op.Precedence() {
		left = "(" + left + ")"
	}

	right, rightOp := infix(node.Right)
	if rightOp != nil {
		switch {
		case rightOp.Op.Precedence() < node.Op.Precedence():
			right = "(" + right + ")"
		case rightOp.Op.Precedence() == node.Op.Precedence() && !node.Op.Commutative():
			right = "(" + right + ")"
		}
	}

	return left + node.Op.String() + right, node
}
