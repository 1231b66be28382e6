package calc

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind is the representation of a Number.
type Kind int8

const (
	// KindInt is an arbitrary-precision integer.
	KindInt Kind = iota
	// KindDecimal is an arbitrary-precision exact decimal.
	KindDecimal
	// KindFloat is a binary floating-point approximation.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindDecimal:
		return "Decimal"
	case KindFloat:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is an integer, an exact decimal, or a float. The zero Number is not
// valid; use one of the constructors.
//
// Numbers are values. Methods never modify the receiver, and the big values
// they return must not be modified.
type Number struct {
	kind Kind
	i    *big.Int
	d    decimal.Decimal
	f    *big.Float
}

// IntNumber creates an integer Number. x is not copied.
func IntNumber(x *big.Int) Number {
	return Number{kind: KindInt, i: x}
}

// DecimalNumber creates an exact decimal Number.
func DecimalNumber(x decimal.Decimal) Number {
	return Number{kind: KindDecimal, d: x}
}

// FloatNumber creates a floating-point Number. x is not copied.
func FloatNumber(x *big.Float) Number {
	return Number{kind: KindFloat, f: x}
}

// Kind returns the representation of n.
func (n Number) Kind() Kind {
	return n.kind
}

// Int returns the value of an integer Number. It returns nil if n is not an
// integer.
func (n Number) Int() *big.Int {
	if n.kind != KindInt {
		return nil
	}
	return n.i
}

// Decimal returns n as an exact decimal. The second result is false if n is a
// float, in which case the decimal is the closest to the float's value.
func (n Number) Decimal() (decimal.Decimal, bool) {
	switch n.kind {
	case KindInt:
		return decimal.NewFromBigInt(n.i, 0), true
	case KindDecimal:
		return n.d, true
	case KindFloat:
		if n.f.IsInf() {
			return decimal.Zero, false
		}
		return decimal.RequireFromString(n.f.Text('g', -1)), false
	default:
		panic("calc: invalid number kind " + n.kind.String())
	}
}

// Float returns the value of n as a float with precision prec. If prec is 0,
// then the result has the precision of float64.
func (n Number) Float(prec uint) *big.Float {
	if prec == 0 {
		prec = 53
	}
	r := new(big.Float).SetPrec(prec)
	switch n.kind {
	case KindInt:
		return r.SetInt(n.i)
	case KindDecimal:
		r.SetMode(big.ToNearestEven)
		if _, ok := r.SetString(n.d.String()); !ok {
			panic("calc: unparsable decimal " + n.d.String())
		}
		return r
	case KindFloat:
		return r.Set(n.f)
	default:
		panic("calc: invalid number kind " + n.kind.String())
	}
}

// Float64 returns the float64 value nearest to n.
func (n Number) Float64() float64 {
	if n.kind == KindDecimal {
		f, _ := n.d.Float64()
		return f
	}
	f, _ := n.Float(53).Float64()
	return f
}

// Sign returns -1, 0, or +1 according to the sign of n.
func (n Number) Sign() int {
	switch n.kind {
	case KindInt:
		return n.i.Sign()
	case KindDecimal:
		return n.d.Sign()
	case KindFloat:
		return n.f.Sign()
	default:
		panic("calc: invalid number kind " + n.kind.String())
	}
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return n.Sign() == 0
}

// Cmp compares n and m and returns -1, 0, or +1 according to whether n is
// less than, equal to, or greater than m.
func (n Number) Cmp(m Number) int {
	if n.kind == KindInt && m.kind == KindInt {
		return n.i.Cmp(m.i)
	}
	if n.kind == KindFloat || m.kind == KindFloat {
		p := n.precFor(m)
		return n.Float(p).Cmp(m.Float(p))
	}
	a, _ := n.Decimal()
	b, _ := m.Decimal()
	return a.Cmp(b)
}

// precFor is the precision needed to compare n and m as floats.
func (n Number) precFor(m Number) uint {
	var p uint = 53
	if n.kind == KindFloat && n.f.Prec() > p {
		p = n.f.Prec()
	}
	if m.kind == KindFloat && m.f.Prec() > p {
		p = m.f.Prec()
	}
	return p
}

// String formats n. Integers and decimals are written exactly. Floats are
// written with the fewest digits that represent them uniquely.
func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return n.i.String()
	case KindDecimal:
		return n.d.String()
	case KindFloat:
		return n.f.Text('g', -1)
	default:
		return "%!(" + n.kind.String() + ")"
	}
}
