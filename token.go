package pmpv

import (
	"bytes"
	"strconv"
)

// TokenType identifies the kind of a Token.
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenIdent
	TokenPlus
	TokenMinus
	TokenLParen
	TokenRParen
	TokenEquals
)

// Token is a lexical unit. Num is set for TokenNumber, Name for TokenIdent.
type Token struct {
	Type TokenType
	Num  int64
	Name string
}

// Number returns a TokenNumber holding n.
func Number(n int64) Token {
	return Token{Type: TokenNumber, Num: n}
}

// Ident returns an unresolved identifier token, used for assignment targets.
func Ident(name string) Token {
	return Token{Type: TokenIdent, Name: name}
}

var (
	Plus   = Token{Type: TokenPlus}
	Minus  = Token{Type: TokenMinus}
	LParen = Token{Type: TokenLParen}
	RParen = Token{Type: TokenRParen}
	Equals = Token{Type: TokenEquals}
)

// IsOperator reports whether t is '+' or '-'.
func (t Token) IsOperator() bool {
	return t.Type == TokenPlus || t.Type == TokenMinus
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatInt(t.Num, 10)
	case TokenIdent:
		return t.Name
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEquals:
		return "="
	}
	return "?"
}

// Tokens renders a token sequence as "[x = 5 + ( 4 - 2 )]".
type Tokens []Token

func (ts Tokens) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(t.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
