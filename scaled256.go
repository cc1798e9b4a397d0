package num

import "golang.org/x/exp/constraints"

// Scaled256 is a Scaled with a U256 exponent. It can hold up to 2^256-1
// (roughly 1.15e77) zeros.
type Scaled256 = Scaled[U256]

// Scaled256FromRaw creates a Scaled256 from a mantissa and exponent exactly
// as given; see ScaledFromRaw.
func Scaled256FromRaw(mant float64, exp U256) Scaled256 {
	return Scaled256{mant: mant, exp: exp}
}

// Scaled256From creates a Scaled256 from any native integer or float. Values
// with a magnitude of at least 1 are normalised; smaller values are kept at
// exponent 0.
func Scaled256From[T Number](v T) Scaled256 {
	return scaledFromFloat[U256](float64(v))
}

func Scaled256FromBool(v bool) Scaled256 {
	if v {
		return Scaled256{mant: 1}
	}
	return Scaled256{}
}

// Scaled256ToInt converts s to any native integer type; see ScaledToInt.
func Scaled256ToInt[T constraints.Integer](s Scaled256) (T, error) {
	return ScaledToInt[T](s)
}

// Widen converts a Scaled64 into a Scaled256. It never loses anything.
func Widen(s Scaled64) Scaled256 {
	return Scaled256{mant: s.mant, exp: U256From64(uint64(s.exp))}
}

// Narrow converts a Scaled256 into a Scaled64. Exponents that do not fit in a
// uint64 produce ErrOverflow, unless s is zero.
func Narrow(s Scaled256) (Scaled64, error) {
	if s.mant == 0 {
		return Scaled64{}, nil
	}
	if !s.exp.IsUint64() {
		return Scaled64{}, ErrOverflow.New("%s exponent does not fit in a uint64", s)
	}
	return Scaled64{mant: s.mant, exp: Exp64(s.exp.AsUint64())}, nil
}
