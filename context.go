package calc

// DefaultPrec is the number of significant digits to which decimal results
// are rounded when no precision is given.
const DefaultPrec = 50

// MaxPrec is the largest number of significant digits a context keeps.
// Larger precisions are reduced to MaxPrec.
const MaxPrec = 100000

// Context is a configuration for evaluating expressions. A Context is never
// modified after it is created, so it is safe to use concurrently.
type Context struct {
	// prec is the number of significant decimal digits kept in decimal
	// results.
	prec uint
	// bits is the mantissa size of floats in floating mode. It is 0 when
	// non-integers are exact decimals.
	bits uint
}

// Option is an option used when creating a context.
type Option interface {
	ctxOption()
}

type (
	precopt  uint
	floatopt uint
	exactopt struct{}
)

func (precopt) ctxOption()  {}
func (floatopt) ctxOption() {}
func (exactopt) ctxOption() {}

// Prec sets the number of significant digits to which decimal results are
// rounded, half to even. Zero means DefaultPrec, and digits beyond MaxPrec
// mean MaxPrec.
func Prec(digits uint) Option {
	return precopt(digits)
}

// Float switches a context to floating mode. Numbers written with a decimal
// point, and the results of divisions, become binary floats with the given
// mantissa size in bits instead of exact decimals. Integer arithmetic is
// still exact. Zero bits means 53, the size of a float64.
func Float(bits uint) Option {
	if bits == 0 {
		bits = 53
	}
	return floatopt(bits)
}

// Exact switches a context back from floating mode to exact decimals.
func Exact() Option {
	return exactopt{}
}

// NewContext creates a new evaluation context. With no options, non-integers
// are exact decimals rounded to DefaultPrec digits.
func NewContext(opts ...Option) *Context {
	ctx := Context{prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Later options
// override earlier ones.
func (ctx *Context) Clone(opts ...Option) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
			switch {
			case n.prec == 0:
				n.prec = DefaultPrec
			case n.prec > MaxPrec:
				n.prec = MaxPrec
			}
		case floatopt:
			n.bits = uint(opt)
		case exactopt:
			n.bits = 0
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// Prec returns the number of significant digits kept in decimal results.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// FloatBits returns the mantissa size of floats in floating mode, or 0 if the
// context uses exact decimals.
func (ctx *Context) FloatBits() uint {
	return ctx.bits
}
