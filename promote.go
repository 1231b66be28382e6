package calc

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// frac converts n to the context's representation for non-integers: a float
// in floating mode, otherwise an exact decimal.
func (ctx *Context) frac(n Number) Number {
	if ctx.bits != 0 {
		if n.kind == KindFloat && n.f.Prec() == ctx.bits {
			return n
		}
		return FloatNumber(n.Float(ctx.bits))
	}
	if n.kind == KindDecimal {
		return n
	}
	d, _ := n.Decimal()
	return DecimalNumber(d)
}

// arith applies an operator under the promotion rules. If both operands are
// integers and force is false, then the result is an integer. Otherwise both
// operands are converted to the non-integer representation first.
func (ctx *Context) arith(
	a, b Number,
	force bool,
	i func(z, x, y *big.Int) *big.Int,
	d func(x, y decimal.Decimal) decimal.Decimal,
	f func(z, x, y *big.Float) *big.Float,
) Number {
	if !force && a.kind == KindInt && b.kind == KindInt {
		return IntNumber(i(new(big.Int), a.i, b.i))
	}
	a, b = ctx.frac(a), ctx.frac(b)
	if ctx.bits != 0 {
		z := new(big.Float).SetPrec(ctx.bits).SetMode(big.ToNearestEven)
		return FloatNumber(f(z, a.f, b.f))
	}
	return DecimalNumber(roundsig(d(a.d, b.d), int32(ctx.prec)))
}

func (ctx *Context) add(a, b Number) (Number, error) {
	return ctx.arith(a, b, false, (*big.Int).Add, decimal.Decimal.Add, (*big.Float).Add), nil
}

func (ctx *Context) sub(a, b Number) (Number, error) {
	return ctx.arith(a, b, false, (*big.Int).Sub, decimal.Decimal.Sub, (*big.Float).Sub), nil
}

func (ctx *Context) mul(a, b Number) (Number, error) {
	return ctx.arith(a, b, false, (*big.Int).Mul, decimal.Decimal.Mul, (*big.Float).Mul), nil
}

// div divides a by b. The quotient is never an integer, even for integer
// operands, so it is never truncated.
func (ctx *Context) div(a, b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	prec := int32(ctx.prec)
	d := func(x, y decimal.Decimal) decimal.Decimal { return quo(x, y, prec) }
	return ctx.arith(a, b, true, nil, d, (*big.Float).Quo), nil
}

// roundsig rounds d half to even to prec significant digits.
func roundsig(d decimal.Decimal, prec int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	n := int32(d.NumDigits())
	if n <= prec {
		return d
	}
	return d.RoundBank(prec - n - d.Exponent())
}

// quo computes a/b rounded half to even to prec significant digits. b must
// be nonzero.
func quo(a, b decimal.Decimal, prec int32) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	// m is the exponent of the quotient's leading digit.
	ea := msd(a)
	eb := msd(b)
	m := ea - eb
	if a.Abs().Shift(-ea).Cmp(b.Abs().Shift(-eb)) < 0 {
		m--
	}
	places := prec - 1 - m
	q, r := a.QuoRem(b, places)
	if r.IsZero() {
		return q
	}
	// |r| < |b| * 10^-places; the discarded fraction of the last digit is
	// |r| / (|b| * 10^-places).
	c := r.Abs().Mul(two).Cmp(b.Abs().Shift(-places))
	if c < 0 || c == 0 && q.Shift(places).BigInt().Bit(0) == 0 {
		return q
	}
	ulp := decimal.New(1, -places)
	if a.Sign() != b.Sign() {
		ulp = ulp.Neg()
	}
	return q.Add(ulp)
}

// msd returns the exponent of the most significant digit of a nonzero d.
func msd(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) - 1 + d.Exponent()
}

// Normalize converts the result of an evaluation to its final form. Integers
// are unchanged. Decimals and floats with integral values become integers, and
// other decimals become float64 approximations. Other floats are unchanged.
func Normalize(n Number) Number {
	switch n.kind {
	case KindInt:
		return n
	case KindDecimal:
		if n.d.IsInteger() {
			return IntNumber(n.d.BigInt())
		}
		f, _ := n.d.Float64()
		r := new(big.Float)
		if f == 0 || math.IsInf(f, 0) {
			// Underflow or overflow. Keep a float64 mantissa but the exact
			// exponent.
			r = n.Float(53)
		} else {
			r.SetFloat64(f)
		}
		return FloatNumber(r)
	case KindFloat:
		if n.f.IsInt() {
			i, _ := n.f.Int(nil)
			return IntNumber(i)
		}
		return n
	default:
		panic("calc: invalid number kind " + n.kind.String())
	}
}
