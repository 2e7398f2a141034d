package pmpv

import (
	"fmt"
)

// ErrorKind classifies why a line could not be tokenized or evaluated.
type ErrorKind int

const (
	MismatchedParentheses ErrorKind = iota + 1
	MultipleAssignment
	UndefinedVariable
	ExpectedAssignment
	ExpectedOperator
	TrailingOperator
	InvalidToken
	EmptyGroup
	EmptyAssignment
	Overflow
)

var kindNames = map[ErrorKind]string{
	MismatchedParentheses: "MismatchedParentheses",
	MultipleAssignment:    "MultipleAssignment",
	UndefinedVariable:     "UndefinedVariable",
	ExpectedAssignment:    "ExpectedAssignment",
	ExpectedOperator:      "ExpectedOperator",
	TrailingOperator:      "TrailingOperator",
	InvalidToken:          "InvalidToken",
	EmptyGroup:            "EmptyGroup",
	EmptyAssignment:       "EmptyAssignment",
	Overflow:              "Overflow",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Tokenize and Evaluate. Two errors of the same kind
// match under errors.Is regardless of their messages.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return "invalid expression: " + e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

var (
	ErrMismatchedParentheses = &Error{Kind: MismatchedParentheses, Msg: "mismatched parentheses"}
	ErrMultipleAssignment    = &Error{Kind: MultipleAssignment, Msg: "too many '='"}
	ErrUndefinedVariable     = &Error{Kind: UndefinedVariable, Msg: "variable not defined"}
	ErrExpectedAssignment    = &Error{Kind: ExpectedAssignment, Msg: "expected '='"}
	ErrExpectedOperator      = &Error{Kind: ExpectedOperator, Msg: "expected operator"}
	ErrTrailingOperator      = &Error{Kind: TrailingOperator, Msg: "expression cannot end with operator"}
	ErrInvalidToken          = &Error{Kind: InvalidToken, Msg: "invalid token"}
	ErrEmptyGroup            = &Error{Kind: EmptyGroup, Msg: "empty parentheses"}
	ErrEmptyAssignment       = &Error{Kind: EmptyAssignment, Msg: "nothing to assign"}
	ErrOverflow              = &Error{Kind: Overflow, Msg: "integer overflow"}
)
