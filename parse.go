package calc

import "strings"

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// num = [ '+' | '-' ] digits [ '.' digits ] | [ '+' | '-' ] [ digits ] '.' digits
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
//
// A signed num may only begin the input or follow '(', '*', or '/'.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// rpn is the expression in postfix order.
	rpn []Token
}

// Parse parses an expression so it can be evaluated with a context.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	rpn, err := ToPostfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// Postfix returns a copy of the expression's tokens in postfix order.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// String formats the expression in postfix order with tokens separated by
// spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
