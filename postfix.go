package calc

// operator describes a binary operator.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// fn applies the operator. It is nil when the operator is unknown.
	fn func(ctx *Context, a, b Number) (Number, error)
}

// binop gets a binary operator for a token string. If there is no such
// operator, then the result has a nil fn.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, (*Context).add}
	case "-":
		return operator{1, (*Context).sub}
	case "*":
		return operator{2, (*Context).mul}
	case "/":
		return operator{2, (*Context).div}
	default:
		return operator{}
	}
}

// lastKind is the class of the previous token seen while converting to
// postfix. It determines which tokens may come next.
type lastKind int8

const (
	lastNone lastKind = iota
	lastNum
	lastOp
	lastOpen
)

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. All operators are left-associative, and * and /
// bind more tightly than + and -. The result contains no brackets. Tokens of
// unknown kind are reported as ErrInvalidExpression.
func ToPostfix(toks []Token) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	var stack []Token
	last := lastNone
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
			last = lastNum
		case TokenOp:
			if last != lastNum {
				return nil, exprerr(ErrMisplacedOperator, tok)
			}
			prec := binop(tok.Text).prec
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || binop(top.Text).prec < prec {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
			last = lastOp
		case TokenOpen:
			stack = append(stack, tok)
			last = lastOpen
		case TokenClose:
			if last != lastNum {
				return nil, exprerr(ErrMisplacedClose, tok)
			}
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, exprerr(ErrUnbalanced, tok)
			}
			stack = stack[:len(stack)-1]
			// A bracketed group is a complete term.
			last = lastNum
		default:
			return nil, exprerr(ErrInvalidExpression, tok)
		}
	}
	if last != lastNum {
		if len(toks) == 0 {
			return nil, &ExprError{Err: ErrIncompleteExpression}
		}
		return nil, exprerr(ErrIncompleteExpression, toks[len(toks)-1])
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind != TokenOp {
			return nil, exprerr(ErrUnbalanced, top)
		}
		out = append(out, top)
	}
	return out, nil
}
