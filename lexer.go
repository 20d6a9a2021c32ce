package arithmetic

import (
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Lexer turns one line of input into tokens, one per call to Next.
// A Lexer is not reusable; create a new one for every line.
type Lexer struct {
	expr  string
	pos   int
	start int
	done  bool
	err   error
}

func NewLexer(expr string) *Lexer {
	return &Lexer{
		expr: expr,
	}
}

// Pos returns the byte offset of the next unread character.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, bool) {
	if l.pos >= len(l.expr) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(l.expr[l.pos:])
	l.pos += n
	return r, true
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.expr) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.expr[l.pos:])
	return r, true
}

func (l *Lexer) skipWhite() {
	for l.pos < len(l.expr) && l.expr[l.pos] == ' ' {
		l.pos++
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Err returns the literal parse failure that ended the scan, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next token. The second result is false once the input
// is exhausted, or when a numeric literal cannot be parsed; after that
// Next keeps returning false.
func (l *Lexer) Next() (Token, bool) {
	if l.done {
		return Token{}, false
	}
	l.skipWhite()
	l.start = l.pos
	r, ok := l.peekRune()
	if !ok {
		l.done = true
		return Token{}, false
	}

	if isDigit(r) {
		return l.scanNumber()
	}
	l.readRune()
	if tok, ok := symbols[r]; ok {
		return tok, true
	}
	return Invalid, true
}

func (l *Lexer) scanNumber() (Token, bool) {
	start := l.pos
	dot := false
	for {
		r, ok := l.peekRune()
		if !ok {
			break
		}
		if r == '.' {
			if dot {
				// the literal ends here; the second '.' lexes as Invalid next
				log.Debug().
					Str("expr", l.expr).
					Int("pos", l.pos).
					Str("literal", l.expr[start:l.pos]).
					Msg("second decimal point truncates numeric literal")
				break
			}
			dot = true
			l.pos++
			continue
		}
		if !isDigit(r) {
			break
		}
		l.pos++
	}

	lit := l.expr[start:l.pos]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		log.Debug().
			Err(err).
			Str("expr", l.expr).
			Int("pos", start).
			Msg("numeric literal does not parse, stopping scan")
		l.done = true
		l.err = err
		return Token{}, false
	}
	return Num(f), true
}

// Tokens drains a fresh Lexer over expr.
func Tokens(expr string) []Token {
	var toks []Token
	l := NewLexer(expr)
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}
