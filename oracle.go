package arithmetic

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
)

// Script renders the tree as an anko script with every grouping made
// explicit and every literal written as a float.
func Script(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := writeScript(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeScript(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		return ErrMissingChild
	}
	switch n.Kind {
	case NodeOperand:
		s := strconv.FormatFloat(n.Value.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		buf.WriteString(s)
		return nil
	case NodeBinaryOp:
		if KindOf(n.Value) != NodeBinaryOp {
			return fmt.Errorf("%v: %w", n.Value, ErrUnsupportedOperator)
		}
		buf.WriteByte('(')
		if err := writeScript(buf, n.Left); err != nil {
			return err
		}
		fmt.Fprintf(buf, " %v ", n.Value)
		if err := writeScript(buf, n.Right); err != nil {
			return err
		}
		buf.WriteByte(')')
		return nil
	}
	return fmt.Errorf("%v node: %w", n.Kind, ErrInvalidNode)
}

// Oracle evaluates the tree with the anko interpreter instead of
// EvalNode. It exists to cross-check results.
func Oracle(a *AST) (float64, error) {
	if a == nil || a.Root == nil {
		return 0, ErrNilTree
	}
	script, err := Script(a.Root)
	if err != nil {
		return 0, err
	}
	ret, err := vm.Execute(env.NewEnv(), nil, script)
	if err != nil {
		return 0, fmt.Errorf("anko: %v: %w", script, err)
	}
	switch v := ret.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("anko returned %T for %v", ret, script)
}
