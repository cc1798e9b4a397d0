package num

import (
	"math"
	"strconv"
)

// Scaled is a number of the form mant * 10^exp, where mant is a float64 and
// exp is an unsigned integer of type E. It trades precision (a float64 holds
// roughly 15.95 decimal digits) for an enormous range: a Scaled64 can carry
// up to 2^64-1 zeros, a Scaled256 up to 2^256-1.
//
// After every arithmetic operation the mantissa is normalised so that
// 0.1 <= |mant| < 1. A mantissa of exactly 0 represents 0 at any exponent.
//
// Scaled values are value types; all operations return new values.
type Scaled[E Exponent[E]] struct {
	mant float64
	exp  E
}

// ScaledFromRaw creates a Scaled from a mantissa and exponent exactly as
// given. The result is not normalised until it takes part in arithmetic; see
// Simplify.
func ScaledFromRaw[E Exponent[E]](mant float64, exp E) Scaled[E] {
	return Scaled[E]{mant: mant, exp: exp}
}

// scaledFromFloat only ever scales f down, so values below 1 stay at
// exponent 0 rather than wrapping the exponent below zero.
func scaledFromFloat[E Exponent[E]](f float64) Scaled[E] {
	var s Scaled[E]
	if math.IsInf(f, 0) {
		s.mant = f
		return s
	}
	for math.Abs(f) >= 1 {
		f /= 10
		s.exp = s.exp.Inc()
	}
	s.mant = f
	return s
}

func (s Scaled[E]) Mantissa() float64 { return s.mant }
func (s Scaled[E]) Exponent() E       { return s.exp }

// Simplify returns s normalised so that 0.1 <= |mant| < 1. Zero, NaN and
// infinite mantissas are returned unchanged.
//
// Shrinking a mantissa below 0.1 at exponent 0 wraps the exponent around to
// its maximum value, exactly as decrementing an unsigned integer does.
func (s Scaled[E]) Simplify() Scaled[E] {
	s.mant, s.exp = normalize(s.mant, s.exp)
	return s
}

func normalize[E Exponent[E]](mant float64, exp E) (float64, E) {
	if mant == 0 || math.IsInf(mant, 0) || mant != mant {
		return mant, exp
	}
	for math.Abs(mant) >= 1 {
		mant /= 10
		exp = exp.Inc()
	}
	for math.Abs(mant) < 0.1 {
		mant *= 10
		exp = exp.Dec()
	}
	return mant, exp
}

func newScaled[E Exponent[E]](mant float64, exp E) Scaled[E] {
	mant, exp = normalize(mant, exp)
	return Scaled[E]{mant: mant, exp: exp}
}

func (s Scaled[E]) IsZero() bool { return s.mant == 0 }

// Sign returns -1, 0 or 1. Only the mantissa carries a sign.
func (s Scaled[E]) Sign() int {
	if s.mant == 0 {
		return 0
	} else if s.mant > 0 {
		return 1
	}
	return -1
}

// Neg flips the sign of the mantissa; the exponent is untouched.
func (s Scaled[E]) Neg() Scaled[E] {
	s.mant = -s.mant
	return s
}

func (s Scaled[E]) Abs() Scaled[E] {
	if s.mant < 0 {
		return s.Neg()
	}
	return s
}

// Add returns s + n.
//
// When the exponents differ, the smaller operand is scaled down to the larger
// operand's exponent before the mantissas are summed. If the exponents are
// more than 16 apart the smaller operand can not affect a float64 mantissa,
// so the larger operand is returned unchanged.
func (s Scaled[E]) Add(n Scaled[E]) Scaled[E] {
	if n.mant == 0 {
		return s
	} else if s.mant == 0 {
		return n
	}

	switch s.exp.Cmp(n.exp) {
	case 0:
		return newScaled(s.mant+n.mant, s.exp)
	case 1:
		return alignAdd(s, n)
	default:
		return alignAdd(n, s)
	}
}

// alignAdd adds small to large, where large.exp > small.exp.
func alignAdd[E Exponent[E]](large, small Scaled[E]) Scaled[E] {
	delta := large.exp.Sub(small.exp)
	if !delta.IsUint64() || delta.AsUint64() > alignDigits {
		return large
	}
	scaled := small.mant / math.Pow10(int(delta.AsUint64()))
	return newScaled(large.mant+scaled, large.exp)
}

// Sub returns s - n, which is s + (-n).
func (s Scaled[E]) Sub(n Scaled[E]) Scaled[E] {
	return s.Add(n.Neg())
}

func (s Scaled[E]) Inc() Scaled[E] { return s.Add(scaledOne[E]()) }
func (s Scaled[E]) Dec() Scaled[E] { return s.Sub(scaledOne[E]()) }

// scaledOne is 1 in normalised form, 0.1e1.
func scaledOne[E Exponent[E]]() Scaled[E] {
	var one Scaled[E]
	one.mant, one.exp = 0.1, one.exp.Inc()
	return one
}

// Mul returns s * n. Mantissas are multiplied and exponents added; the
// exponent wraps if the sum overflows E.
func (s Scaled[E]) Mul(n Scaled[E]) Scaled[E] {
	return newScaled(s.mant*n.mant, s.exp.Add(n.exp))
}

// Quo returns s / n. Mantissas are divided and exponents subtracted; the
// exponent wraps if n.exp > s.exp. If n is zero, ErrDivisionByZero is
// returned.
func (s Scaled[E]) Quo(n Scaled[E]) (Scaled[E], error) {
	if n.mant == 0 {
		return Scaled[E]{}, ErrDivisionByZero.New("%s / 0", s)
	}
	return newScaled(s.mant/n.mant, s.exp.Sub(n.exp)), nil
}

// Cmp compares s and n and returns -1, 0 or 1.
//
// Values of differing sign are ordered by sign. Values of the same sign with
// different exponents are ordered by exponent; the larger exponent is the
// larger magnitude, so for two negative values it is the smaller value. Equal
// exponents fall back to comparing the mantissas.
func (s Scaled[E]) Cmp(n Scaled[E]) int {
	ls, rs := s.Sign(), n.Sign()
	if ls > rs {
		return 1
	} else if ls < rs {
		return -1
	} else if ls == 0 {
		return 0
	}

	if c := s.exp.Cmp(n.exp); c != 0 {
		if ls < 0 {
			return -c
		}
		return c
	}

	if s.mant > n.mant {
		return 1
	} else if s.mant < n.mant {
		return -1
	}
	return 0
}

func (s Scaled[E]) Equal(n Scaled[E]) bool            { return s.Cmp(n) == 0 }
func (s Scaled[E]) GreaterThan(n Scaled[E]) bool      { return s.Cmp(n) > 0 }
func (s Scaled[E]) GreaterOrEqualTo(n Scaled[E]) bool { return s.Cmp(n) >= 0 }
func (s Scaled[E]) LessThan(n Scaled[E]) bool         { return s.Cmp(n) < 0 }
func (s Scaled[E]) LessOrEqualTo(n Scaled[E]) bool    { return s.Cmp(n) <= 0 }

// CmpNumber compares s with a native number, converted the same way
// Scaled64From and Scaled256From convert it.
func CmpNumber[T Number, E Exponent[E]](s Scaled[E], v T) int {
	return s.Cmp(scaledFromFloat[E](float64(v)))
}

// RealValue expands s into a float64. Exponents above 308, and values that
// would overflow a float64, saturate to +/-math.MaxFloat64.
func (s Scaled[E]) RealValue() float64 {
	if s.mant == 0 {
		return 0
	}
	if !s.exp.IsUint64() || s.exp.AsUint64() > maxRealExp {
		return math.Copysign(math.MaxFloat64, s.mant)
	}
	v := s.mant * math.Pow10(int(s.exp.AsUint64()))
	if math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, s.mant)
	}
	return v
}

// String formats s as "<mantissa>e<exponent>", i.e. "0.1234e3".
func (s Scaled[E]) String() string {
	return strconv.FormatFloat(s.mant, 'g', -1, 64) + "e" + s.exp.String()
}
