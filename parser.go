package arithmetic

import "fmt"

// DefaultMaxDepth is the number of chained operators a Parser accepts
// unless MaxDepth says otherwise.
const DefaultMaxDepth = 4096

const errLiteralRange = "numeric literal out of range"

// Parser builds an AST from one expression. The grammar is a flat chain
// of numbers joined by + - * /, nested to the right:
//
//	expression := Number BinOp chain
//	chain      := Number | Number BinOp chain
//
// There is no precedence. "3-4+2" parses as 3-(4+2). Parentheses and ^
// are lexed but never accepted.
type Parser struct {
	lexer  *Lexer
	cursor Token
	used   bool

	// MaxDepth bounds the number of operators in the chain. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// NewParser returns a Parser primed with the first token of expr.
func NewParser(expr string) (*Parser, error) {
	lexer := NewLexer(expr)
	tok, ok := lexer.Next()
	if !ok {
		msg := "empty expression"
		if lexer.Err() != nil {
			msg = errLiteralRange
		}
		return nil, &ParseError{Kind: InvalidStart, Pos: lexer.start, Msg: msg}
	}
	if tok.Kind == TokenInvalid {
		return nil, &ParseError{Kind: InvalidStart, Pos: lexer.start, Msg: "illegal character"}
	}
	return &Parser{
		lexer:  lexer,
		cursor: tok,
	}, nil
}

func (p *Parser) NewError(kind ErrorKind, format string, args ...interface{}) error {
	return &ParseError{
		Kind: kind,
		Pos:  p.lexer.start,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

// Parse consumes the rest of the input. It may be called only once.
func (p *Parser) Parse() (*AST, error) {
	if p.used {
		return nil, ErrParserConsumed
	}
	p.used = true

	first := p.cursor
	if KindOf(first) != NodeOperand {
		return nil, p.NewError(InvalidStart, "expression cannot start with %v", first)
	}
	op, ok := p.lexer.Next()
	if !ok {
		if p.lexer.Err() != nil {
			return nil, p.NewError(Incomplete, errLiteralRange)
		}
		return nil, p.NewError(Incomplete, "expected operator after %v", first)
	}
	if KindOf(op) != NodeBinaryOp {
		return nil, p.NewError(InvalidOperator, "unsupported operator %v", op)
	}
	right, err := p.chain(1)
	if err != nil {
		return nil, err
	}
	return &AST{
		Root: binary(op, operand(first), right),
	}, nil
}

// chain parses "Number | Number BinOp chain". depth counts the operators
// seen so far.
func (p *Parser) chain(depth int) (*Node, error) {
	if depth > p.maxDepth() {
		return nil, p.NewError(TooDeep, "more than %d operators", p.maxDepth())
	}
	tok, ok := p.lexer.Next()
	if !ok {
		if p.lexer.Err() != nil {
			return nil, p.NewError(Incomplete, errLiteralRange)
		}
		return nil, p.NewError(Incomplete, "expected number at end of expression")
	}
	if KindOf(tok) != NodeOperand {
		return nil, p.NewError(InvalidOperator, "expected number, got %v", tok)
	}
	op, ok := p.lexer.Next()
	if !ok {
		return operand(tok), nil
	}
	if KindOf(op) != NodeBinaryOp {
		return nil, p.NewError(InvalidOperator, "unsupported operator %v", op)
	}
	right, err := p.chain(depth + 1)
	if err != nil {
		return nil, err
	}
	return binary(op, operand(tok), right), nil
}

// Parse parses a single expression.
func Parse(expr string) (*AST, error) {
	p, err := NewParser(expr)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
