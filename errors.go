package arithmetic

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	InvalidStart ErrorKind = iota + 1
	InvalidOperator
	Incomplete
	// MismatchedParen is reserved for parenthesised grouping. The current
	// grammar rejects parentheses before they could be matched.
	MismatchedParen
	TooDeep
)

var errorKindNames = map[ErrorKind]string{
	InvalidStart:    "InvalidStart",
	InvalidOperator: "InvalidOperator",
	Incomplete:      "Incomplete",
	MismatchedParen: "MismatchedParen",
	TooDeep:         "TooDeep",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseErrorKind looks up an ErrorKind by its name.
func ParseErrorKind(name string) (ErrorKind, error) {
	for k, s := range errorKindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown error kind: %q", name)
}

// ParseError is returned by NewParser and Parse.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s (%d)", e.Kind, e.Msg, e.Pos)
}

// Is reports whether target is a *ParseError of the same kind, so
// errors.Is(err, &ParseError{Kind: Incomplete}) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// KindOfError returns the kind of the ParseError in err's chain.
func KindOfError(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

var (
	ErrParserConsumed = errors.New("parser already consumed")

	ErrNilTree             = errors.New("empty tree")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrInvalidNode         = errors.New("invalid node")
	ErrMissingChild        = errors.New("missing child")
)
