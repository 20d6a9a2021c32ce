package arithmetic

import (
	"bytes"
	"fmt"
)

type NodeKind int

const (
	NodeInvalid NodeKind = iota
	NodeOperand
	NodeBinaryOp
	NodeUnaryOp
)

func (k NodeKind) String() string {
	switch k {
	case NodeOperand:
		return "Operand"
	case NodeBinaryOp:
		return "BinaryOp"
	case NodeUnaryOp:
		return "UnaryOp"
	}
	return "Invalid"
}

// Node is one vertex of the expression tree. Operand nodes have no
// children, BinaryOp nodes have both. UnaryOp nodes would use Right only
// and are never built by the parser.
type Node struct {
	Kind  NodeKind
	Value Token
	Left  *Node
	Right *Node
}

// AST owns the root of one parsed expression.
type AST struct {
	Root *Node
}

// KindOf classifies a token by the node it would produce.
func KindOf(tok Token) NodeKind {
	switch tok.Kind {
	case TokenAdd, TokenSub, TokenMul, TokenDiv:
		return NodeBinaryOp
	case TokenNumber:
		return NodeOperand
	}
	return NodeInvalid
}

func operand(tok Token) *Node {
	return &Node{
		Kind:  NodeOperand,
		Value: tok,
	}
}

func binary(op Token, left, right *Node) *Node {
	return &Node{
		Kind:  NodeBinaryOp,
		Value: op,
		Left:  left,
		Right: right,
	}
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:  n.Kind,
		Value: n.Value,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// String renders the tree fully parenthesised, so the grouping the
// evaluator will use is explicit: "3-4+2" prints as "(3 - (4 + 2))".
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch n.Kind {
	case NodeOperand:
		fmt.Fprint(&buf, n.Value)
	case NodeBinaryOp:
		fmt.Fprintf(&buf, "(%v %v %v)", n.Left, n.Value, n.Right)
	case NodeUnaryOp:
		fmt.Fprintf(&buf, "(%v%v)", n.Value, n.Right)
	default:
		fmt.Fprint(&buf, "<invalid>")
	}
	return buf.String()
}

func (a *AST) String() string {
	if a == nil {
		return "nil"
	}
	return a.Root.String()
}
