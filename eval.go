package arithmetic

import "fmt"

// Eval folds the tree to a number, right-most operators first.
// Division follows IEEE-754: x/0 is ±Inf and 0/0 is NaN.
func (a *AST) Eval() (float64, error) {
	if a == nil || a.Root == nil {
		return 0, ErrNilTree
	}
	return EvalNode(a.Root)
}

func EvalNode(n *Node) (float64, error) {
	if n == nil {
		return 0, ErrMissingChild
	}
	switch n.Kind {
	case NodeOperand:
		if n.Value.Kind != TokenNumber {
			return 0, fmt.Errorf("operand holds %v: %w", n.Value, ErrInvalidNode)
		}
		return n.Value.Value, nil
	case NodeBinaryOp:
		if n.Left == nil || n.Right == nil {
			return 0, fmt.Errorf("%v: %w", n.Value, ErrMissingChild)
		}
		left, err := EvalNode(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := EvalNode(n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Value, left, right)
	}
	return 0, fmt.Errorf("%v node: %w", n.Kind, ErrInvalidNode)
}

func apply(op Token, left, right float64) (float64, error) {
	switch op.Kind {
	case TokenAdd:
		return left + right, nil
	case TokenSub:
		return left - right, nil
	case TokenMul:
		return left * right, nil
	case TokenDiv:
		return left / right, nil
	}
	return 0, fmt.Errorf("%v: %w", op, ErrUnsupportedOperator)
}

// Eval parses and evaluates one expression.
func Eval(expr string) (float64, error) {
	ast, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return ast.Eval()
}
