package pmpv

import (
	"strconv"
	"strings"
)

type lexeme struct {
	t    TokenType
	text string
}

type lexer struct {
	src []rune
	pos int
}

func newLexer(line string) *lexer {
	return &lexer{
		src: []rune(line),
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func (l *lexer) peek(off int) rune {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// signable reports whether a '-' at the current position may be the sign
// of a number: it opens the line or follows a space or '('.
func (l *lexer) signable() bool {
	if l.pos == 0 {
		return true
	}
	r := l.src[l.pos-1]
	return r == '(' || r == ' '
}

func (l *lexer) run(start int, pred func(rune) bool) string {
	for l.pos < len(l.src) && pred(l.src[l.pos]) {
		l.pos++
	}
	return string(l.src[start:l.pos])
}

// next returns the next lexeme and false at end of line. Characters that
// cannot start a lexeme are skipped.
func (l *lexer) next() (lexeme, bool) {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case isDigit(r):
			return lexeme{t: TokenNumber, text: l.run(l.pos, isDigit)}, true
		case r == '-' && isDigit(l.peek(1)) && l.signable():
			start := l.pos
			l.pos++
			return lexeme{t: TokenNumber, text: l.run(start, isDigit)}, true
		case isLetter(r):
			return lexeme{t: TokenIdent, text: l.run(l.pos, isLetter)}, true
		}
		l.pos++
		switch r {
		case '+':
			return lexeme{t: TokenPlus, text: "+"}, true
		case '-':
			return lexeme{t: TokenMinus, text: "-"}, true
		case '(':
			return lexeme{t: TokenLParen, text: "("}, true
		case ')':
			return lexeme{t: TokenRParen, text: ")"}, true
		case '=':
			return lexeme{t: TokenEquals, text: "="}, true
		}
	}
	return lexeme{}, false
}

func (l *lexer) all() []lexeme {
	var lexemes []lexeme
	for {
		lx, ok := l.next()
		if !ok {
			return lexemes
		}
		lexemes = append(lexemes, lx)
	}
}

// Tokenize splits line into tokens. Identifiers are replaced by their
// values from vars, except for the target of an assignment, which is kept
// as a TokenIdent at position 0.
func Tokenize(line string, vars *Vars) ([]Token, error) {
	if strings.Count(line, "(") != strings.Count(line, ")") {
		return nil, ErrMismatchedParentheses
	}
	equals := strings.Count(line, "=")
	if equals > 1 {
		return nil, ErrMultipleAssignment
	}

	lexemes := newLexer(line).all()
	tokens := make([]Token, 0, len(lexemes))
	for i, lx := range lexemes {
		if equals == 1 && i == 0 {
			if lx.t != TokenIdent || len(lexemes) < 2 || lexemes[1].t != TokenEquals {
				return nil, ErrExpectedAssignment
			}
			tokens = append(tokens, Ident(lx.text))
			continue
		}

		switch lx.t {
		case TokenIdent:
			n, ok := vars.Get(lx.text)
			if !ok {
				return nil, newError(UndefinedVariable, "variable not defined: %s", lx.text)
			}
			tokens = append(tokens, Number(n))
		case TokenNumber:
			n, err := strconv.ParseInt(lx.text, 10, 64)
			if err != nil {
				return nil, newError(Overflow, "integer out of range: %s", lx.text)
			}
			tokens = append(tokens, Number(n))
		default:
			tokens = append(tokens, Token{Type: lx.t})
		}
	}
	return tokens, nil
}
