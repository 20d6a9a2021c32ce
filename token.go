package arithmetic

import "strconv"

type TokenKind uint8

const (
	TokenInvalid    TokenKind = iota // unrecognized character
	TokenAdd                         // +
	TokenSub                         // -
	TokenMul                         // *
	TokenDiv                         // /
	TokenExp                         // ^
	TokenOpenParen                   // (
	TokenCloseParen                  // )
	TokenNumber                      // 3.14
)

// Token is a single lexical unit. Only TokenNumber carries a Value.
type Token struct {
	Kind  TokenKind
	Value float64
}

var (
	Add        = Token{Kind: TokenAdd}
	Sub        = Token{Kind: TokenSub}
	Mul        = Token{Kind: TokenMul}
	Div        = Token{Kind: TokenDiv}
	Exp        = Token{Kind: TokenExp}
	OpenParen  = Token{Kind: TokenOpenParen}
	CloseParen = Token{Kind: TokenCloseParen}
	Invalid    = Token{Kind: TokenInvalid}
)

// Num returns a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

var symbols = map[rune]Token{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'^': Exp,
	'(': OpenParen,
	')': CloseParen,
}

func (k TokenKind) String() string {
	switch k {
	case TokenAdd:
		return "+"
	case TokenSub:
		return "-"
	case TokenMul:
		return "*"
	case TokenDiv:
		return "/"
	case TokenExp:
		return "^"
	case TokenOpenParen:
		return "("
	case TokenCloseParen:
		return ")"
	case TokenNumber:
		return "number"
	}
	return "invalid"
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}
