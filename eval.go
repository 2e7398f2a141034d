package pmpv

// ResultKind tells which successful outcome a Result holds.
type ResultKind int

const (
	// ResultEmpty is the result of a blank line.
	ResultEmpty ResultKind = iota
	// ResultAssigned is the result of a successful assignment. It has no
	// value to display.
	ResultAssigned
	// ResultValue carries the value of an expression.
	ResultValue
)

// Result is the outcome of evaluating one line. For ResultAssigned, Name
// and Value describe the binding that was made.
type Result struct {
	Kind  ResultKind
	Value int64
	Name  string
}

type evaluator struct {
	tokens []Token
	pos    int
}

// Evaluate computes the value of tokens, or performs the assignment they
// describe. The store is only modified when the whole assignment succeeds.
func Evaluate(tokens []Token, vars *Vars) (Result, error) {
	if len(tokens) == 0 {
		return Result{Kind: ResultEmpty}, nil
	}

	if len(tokens) > 1 && tokens[0].Type == TokenIdent {
		if tokens[1].Type != TokenEquals {
			return Result{}, ErrExpectedAssignment
		}
		name := tokens[0].Name
		if len(tokens) == 2 {
			return Result{}, newError(EmptyAssignment, "nothing to assign to %s", name)
		}
		n, err := evalExpr(tokens[2:])
		if err != nil {
			return Result{}, err
		}
		vars.Set(name, n)
		return Result{Kind: ResultAssigned, Name: name, Value: n}, nil
	}

	n, err := evalExpr(tokens)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultValue, Value: n}, nil
}

func evalExpr(tokens []Token) (int64, error) {
	if len(tokens) == 1 {
		if tokens[0].Type != TokenNumber {
			return 0, newError(InvalidToken, "invalid token: %v", tokens[0])
		}
		return tokens[0].Num, nil
	}
	e := &evaluator{
		tokens: tokens,
	}
	return e.expr()
}

// expr folds the operands from left to right: a - b - c is (a - b) - c.
func (e *evaluator) expr() (int64, error) {
	if e.tokens[0].IsOperator() {
		return 0, newError(InvalidToken, "expression cannot start with operator")
	}
	acc, err := e.operand()
	if err != nil {
		return 0, err
	}

	for e.pos < len(e.tokens) {
		op := e.tokens[e.pos]
		if !op.IsOperator() {
			return 0, newError(ExpectedOperator, "expected operator but got %v", op)
		}
		e.pos++
		if e.pos >= len(e.tokens) || e.tokens[e.pos].IsOperator() {
			return 0, ErrTrailingOperator
		}
		rhs, err := e.operand()
		if err != nil {
			return 0, err
		}
		acc, err = apply(op, acc, rhs)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func (e *evaluator) operand() (int64, error) {
	t := e.tokens[e.pos]
	switch t.Type {
	case TokenLParen:
		return e.group()
	case TokenNumber:
		e.pos++
		return t.Num, nil
	}
	return 0, newError(InvalidToken, "invalid token: %v", t)
}

// group evaluates the parenthesized expression opening at the cursor and
// moves the cursor past its closing parenthesis.
func (e *evaluator) group() (int64, error) {
	start := e.pos + 1
	if start < len(e.tokens) && e.tokens[start].Type == TokenRParen {
		return 0, ErrEmptyGroup
	}

	depth := 1
	for i := start; i < len(e.tokens); i++ {
		switch e.tokens[i].Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
		if depth == 0 {
			n, err := evalExpr(e.tokens[start:i])
			if err != nil {
				return 0, err
			}
			e.pos = i + 1
			return n, nil
		}
	}
	return 0, ErrMismatchedParentheses
}

func apply(op Token, a, b int64) (int64, error) {
	switch op.Type {
	case TokenPlus:
		n := a + b
		if (b > 0 && n < a) || (b < 0 && n > a) {
			return 0, newError(Overflow, "integer overflow: %d + %d", a, b)
		}
		return n, nil
	case TokenMinus:
		n := a - b
		if (b > 0 && n > a) || (b < 0 && n < a) {
			return 0, newError(Overflow, "integer overflow: %d - %d", a, b)
		}
		return n, nil
	}
	return 0, newError(InvalidToken, "invalid operator: %v", op)
}
