package arithmetic

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{
			input: "3+4/2",
			want:  binary(Add, operand(Num(3)), binary(Div, operand(Num(4)), operand(Num(2)))),
		},
		{
			input: "1 - 2",
			want:  binary(Sub, operand(Num(1)), operand(Num(2))),
		},
		{
			input: "3-4+2",
			want:  binary(Sub, operand(Num(3)), binary(Add, operand(Num(4)), operand(Num(2)))),
		},
		{
			input: "1*2*3*4",
			want: binary(Mul, operand(Num(1)),
				binary(Mul, operand(Num(2)),
					binary(Mul, operand(Num(3)), operand(Num(4))))),
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		ast, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		if diff := cmp.Diff(test.want, ast.Root); diff != "" {
			t.Errorf("tree for %q (-want +got):\n%s\n%s", test.input, diff, repr.String(ast.Root, repr.Indent("  ")))
		}
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "3+4/2", want: "(3 + (4 / 2))"},
		{input: "3-4+2", want: "(3 - (4 + 2))"},
		{input: "1.5 * 2", want: "(1.5 * 2)"},
	}
	for _, test := range tests {
		ast, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := ast.String()
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  ErrorKind
	}{
		{input: "", want: InvalidStart},
		{input: "   ", want: InvalidStart},
		{input: "+4", want: InvalidStart},
		{input: "(3+4)", want: InvalidStart},
		{input: "#", want: InvalidStart},
		{input: "3", want: Incomplete},
		{input: "3+", want: Incomplete},
		{input: "3+4-", want: Incomplete},
		{input: "3^2", want: InvalidOperator},
		{input: "3 4", want: InvalidOperator},
		{input: "3#4", want: InvalidOperator},
		{input: "3+(4)", want: InvalidOperator},
		{input: "3++4", want: InvalidOperator},
		{input: "3+4^2", want: InvalidOperator},
		{input: "3+4)", want: InvalidOperator},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			ast, err := Parse(test.input)
			if err == nil {
				t.Fatalf("want %v but got %v", test.want, ast)
			}
			if !errors.Is(err, &ParseError{Kind: test.want}) {
				t.Errorf("want %v but got %v", test.want, err)
			}
			kind, ok := KindOfError(err)
			if !ok || kind != test.want {
				t.Errorf("want %v but got %v", test.want, kind)
			}
		})
	}
}

func TestParseErrorPos(t *testing.T) {
	_, err := Parse("1 + 2 ^ 3")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError but got %v", err)
	}
	if pe.Pos != 6 {
		t.Errorf("want position 6 but got %d", pe.Pos)
	}
	if !strings.HasPrefix(pe.Error(), "InvalidOperator: ") {
		t.Errorf("unexpected message %q", pe.Error())
	}
}

func TestParseLiteralOutOfRange(t *testing.T) {
	huge := strings.Repeat("9", 400)
	tests := []struct {
		input string
		want  ErrorKind
	}{
		{input: huge, want: InvalidStart},
		{input: huge + "+1", want: InvalidStart},
		{input: "1" + huge, want: InvalidStart},
		{input: "1 " + huge, want: Incomplete},
		{input: "1+" + huge, want: Incomplete},
		{input: "1+2*" + huge + "-3", want: Incomplete},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("want *ParseError but got %v", err)
			continue
		}
		if pe.Kind != test.want {
			t.Errorf("want %v but got %v", test.want, pe.Kind)
		}
		if pe.Msg != "numeric literal out of range" {
			t.Errorf("unexpected message %q", pe.Msg)
		}
	}

	// the chain ends where the literal fails, as for end of input
	ast, err := Parse("1+2 " + huge)
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.String(); got != "(1 + 2)" {
		t.Errorf("want (1 + 2) but got %q", got)
	}
}

func TestNewParser(t *testing.T) {
	if _, err := NewParser(""); !errors.Is(err, &ParseError{Kind: InvalidStart}) {
		t.Errorf("want InvalidStart but got %v", err)
	}
	if _, err := NewParser("?1+2"); !errors.Is(err, &ParseError{Kind: InvalidStart}) {
		t.Errorf("want InvalidStart but got %v", err)
	}
	// not rejected until Parse
	p, err := NewParser("(1+2)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(); !errors.Is(err, &ParseError{Kind: InvalidStart}) {
		t.Errorf("want InvalidStart but got %v", err)
	}
}

func TestParserSingleUse(t *testing.T) {
	p, err := NewParser("1+2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(); err != ErrParserConsumed {
		t.Errorf("want ErrParserConsumed but got %v", err)
	}
}

func TestParserMaxDepth(t *testing.T) {
	expr := "1" + strings.Repeat("+1", 5)

	p, err := NewParser(expr)
	if err != nil {
		t.Fatal(err)
	}
	p.MaxDepth = 5
	if _, err := p.Parse(); err != nil {
		t.Errorf("5 operators should fit: %v", err)
	}

	p, err = NewParser(expr)
	if err != nil {
		t.Fatal(err)
	}
	p.MaxDepth = 4
	if _, err := p.Parse(); !errors.Is(err, &ParseError{Kind: TooDeep}) {
		t.Errorf("want TooDeep but got %v", err)
	}

	long := "1" + strings.Repeat("+1", DefaultMaxDepth+1)
	if _, err := Parse(long); !errors.Is(err, &ParseError{Kind: TooDeep}) {
		t.Errorf("want TooDeep but got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		tok  Token
		want NodeKind
	}{
		{Num(1), NodeOperand},
		{Add, NodeBinaryOp},
		{Sub, NodeBinaryOp},
		{Mul, NodeBinaryOp},
		{Div, NodeBinaryOp},
		{Exp, NodeInvalid},
		{OpenParen, NodeInvalid},
		{CloseParen, NodeInvalid},
		{Invalid, NodeInvalid},
	}
	for _, test := range tests {
		if got := KindOf(test.tok); got != test.want {
			t.Errorf("want %v for %v but got %v", test.want, test.tok, got)
		}
	}
}

func TestErrorKind(t *testing.T) {
	for _, k := range []ErrorKind{InvalidStart, InvalidOperator, Incomplete, MismatchedParen, TooDeep} {
		got, err := ParseErrorKind(k.String())
		if err != nil || got != k {
			t.Errorf("round trip of %v gave %v, %v", k, got, err)
		}
	}
	if _, err := ParseErrorKind("Bogus"); err == nil {
		t.Error("want error for unknown kind")
	}
}
