package calc

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// num parses a number token. Numbers with a decimal point are exact decimals,
// or floats in floating mode; others are integers.
func (ctx *Context) num(s string) (Number, bool) {
	if !numtext(s) {
		return Number{}, false
	}
	if !strings.Contains(s, ".") {
		x, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Number{}, false
		}
		return IntNumber(x), true
	}
	if ctx.bits != 0 {
		x, ok := new(big.Float).SetPrec(ctx.bits).SetMode(big.ToNearestEven).SetString(s)
		if !ok {
			return Number{}, false
		}
		return FloatNumber(x), true
	}
	// Parse from the text directly so that e.g. 6.6 is exactly 6.6.
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, false
	}
	return DecimalNumber(d), true
}

// numtext checks that s has the form of a number token: an optional sign,
// then digits with at most one decimal point.
func numtext(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	var dig, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}

// EvalPostfix runs a postfix token sequence, such as one from ToPostfix, on a
// value stack and returns the result without normalizing it. Use Normalize to
// obtain the final form that Eval returns.
func (ctx *Context) EvalPostfix(rpn []Token) (Number, error) {
	stack := make([]Number, 0, len(rpn)/2+1)
	for _, tok := range rpn {
		switch tok.Kind {
		case TokenNum:
			n, ok := ctx.num(tok.Text)
			if !ok {
				return Number{}, exprerr(ErrMalformedNumber, tok)
			}
			stack = append(stack, n)
		case TokenOp:
			op := binop(tok.Text)
			if op.fn == nil {
				return Number{}, exprerr(ErrInvalidExpression, tok)
			}
			if len(stack) < 2 {
				return Number{}, exprerr(ErrMissingOperands, tok)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := op.fn(ctx, a, b)
			if err != nil {
				return Number{}, exprerr(err, tok)
			}
			stack = append(stack, r)
		default:
			// Brackets never appear in postfix.
			return Number{}, exprerr(ErrInvalidExpression, tok)
		}
	}
	if len(stack) != 1 {
		return Number{}, &ExprError{Err: ErrInvalidExpression}
	}
	return stack[0], nil
}

// Eval evaluates a parsed expression and returns its normalized result: an
// integer if the exact result is integral, otherwise a float.
func (ctx *Context) Eval(e *Expr) (Number, error) {
	r, err := ctx.EvalPostfix(e.rpn)
	if err != nil {
		return Number{}, err
	}
	return Normalize(r), nil
}

// EvalString parses and evaluates an expression.
func (ctx *Context) EvalString(src string) (Number, error) {
	e, err := Parse(src)
	if err != nil {
		return Number{}, err
	}
	return ctx.Eval(e)
}

// Eval is a shortcut to parse and evaluate an expression with a new context.
func Eval(src string, opts ...Option) (Number, error) {
	return NewContext(opts...).EvalString(src)
}
