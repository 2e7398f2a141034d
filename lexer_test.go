package pmpv

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	vars := NewVars()
	vars.Set("a", 4)
	vars.Set("ans", 42)

	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  []Token{},
		},
		{
			input: " \t ",
			want:  []Token{},
		},
		{
			input: "x = 5 + (4 - 2)",
			want:  []Token{Ident("x"), Equals, Number(5), Plus, LParen, Number(4), Minus, Number(2), RParen},
		},
		{
			input: "x = 10 + 5.5",
			want:  []Token{Ident("x"), Equals, Number(10), Plus, Number(5), Number(5)},
		},
		{
			input: "5 - -2",
			want:  []Token{Number(5), Minus, Number(-2)},
		},
		{
			input: "-5 + 2",
			want:  []Token{Number(-5), Plus, Number(2)},
		},
		{
			input: "5-2",
			want:  []Token{Number(5), Minus, Number(2)},
		},
		{
			input: "5 -2",
			want:  []Token{Number(5), Number(-2)},
		},
		{
			input: "5\t-2",
			want:  []Token{Number(5), Minus, Number(2)},
		},
		{
			input: "(\t-2)",
			want:  []Token{LParen, Minus, Number(2), RParen},
		},
		{
			input: "(-3)",
			want:  []Token{LParen, Number(-3), RParen},
		},
		{
			input: "x=-2",
			want:  []Token{Ident("x"), Equals, Minus, Number(2)},
		},
		{
			input: "- 2",
			want:  []Token{Minus, Number(2)},
		},
		{
			input: "a1",
			want:  []Token{Number(4), Number(1)},
		},
		{
			input: "ans - (-42 - ans)",
			want:  []Token{Number(42), Minus, LParen, Number(-42), Minus, Number(42), RParen},
		},
		{
			input: "ans = ans",
			want:  []Token{Ident("ans"), Equals, Number(42)},
		},
		{
			input: "5 * 2",
			want:  []Token{Number(5), Number(2)},
		},
		{
			input: ")(",
			want:  []Token{RParen, LParen},
		},
	}
	for _, test := range tests {
		got, err := Tokenize(test.input, vars)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("tokens for %q mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

// randomExpr builds a line of integers, defined names, '+', '-' and
// balanced parentheses.
func randomExpr(r *rand.Rand, depth int) string {
	var buf strings.Builder
	terms := 1 + r.Intn(4)
	for i := 0; i < terms; i++ {
		if i > 0 {
			buf.WriteString([]string{" + ", " - ", "+", "-", " -"}[r.Intn(5)])
		}
		switch n := r.Intn(4); {
		case n == 0 && depth < 3:
			buf.WriteString("(" + randomExpr(r, depth+1) + ")")
		case n == 1:
			buf.WriteString([]string{"a", "ans", "b"}[r.Intn(3)])
		default:
			buf.WriteString(strconv.Itoa(r.Intn(2000) - 1000))
		}
	}
	return buf.String()
}

func TestTokenizeGeneratedLines(t *testing.T) {
	vars := NewVars()
	vars.Set("a", 4)
	vars.Set("ans", 42)
	vars.Set("b", -7)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		line := randomExpr(r, 0)
		if i%2 == 1 {
			line = "x = " + line
		}
		if _, err := Tokenize(line, vars); err != nil {
			t.Errorf("unexpected error for %q: %v", line, err)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	vars := NewVars()
	vars.Set("a", 4)

	tests := []struct {
		input string
		want  error
	}{
		{"x = (5 + 2", ErrMismatchedParentheses},
		{"(", ErrMismatchedParentheses},
		{"x = 5 = 10", ErrMultipleAssignment},
		{"==", ErrMultipleAssignment},
		{"x = y", ErrUndefinedVariable},
		{"a + b", ErrUndefinedVariable},
		{"x = x + 1", ErrUndefinedVariable},
		{"5 = 3", ErrExpectedAssignment},
		{"= 3", ErrExpectedAssignment},
		{"=", ErrExpectedAssignment},
		{"x 3 = 4", ErrExpectedAssignment},
		{"(x) = 4", ErrExpectedAssignment},
		{"99999999999999999999", ErrOverflow},
	}
	for _, test := range tests {
		got, err := Tokenize(test.input, vars)
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %q but got %v", test.want, test.input, err)
		}
		if got != nil {
			t.Errorf("want no tokens for %q but got %v", test.input, Tokens(got))
		}
	}
}

func TestTokenizeMessages(t *testing.T) {
	_, err := Tokenize("x + 1", NewVars())
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("want *Error but got %T", err)
	}
	if e.Kind != UndefinedVariable {
		t.Errorf("want kind %v but got %v", UndefinedVariable, e.Kind)
	}
	if want := "invalid expression: variable not defined: x"; err.Error() != want {
		t.Errorf("want %q but got %q", want, err.Error())
	}
}

func TestTokensString(t *testing.T) {
	got := Tokens{Ident("x"), Equals, Number(5), Plus, LParen, Number(-4), Minus, Number(2), RParen}.String()
	want := "[x = 5 + ( -4 - 2 )]"
	if got != want {
		t.Errorf("want %q but got %q", want, got)
	}
}
