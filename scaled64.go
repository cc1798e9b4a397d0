package num

import "golang.org/x/exp/constraints"

// Scaled64 is a Scaled with a uint64 exponent, so it can hold up to
// 18,446,744,073,709,551,615 zeros.
type Scaled64 = Scaled[Exp64]

// Scaled64FromRaw creates a Scaled64 from a mantissa and exponent exactly as
// given; see ScaledFromRaw.
func Scaled64FromRaw(mant float64, exp uint64) Scaled64 {
	return Scaled64{mant: mant, exp: Exp64(exp)}
}

// Scaled64From creates a Scaled64 from any native integer or float. Values
// with a magnitude of at least 1 are normalised; smaller values are kept at
// exponent 0.
func Scaled64From[T Number](v T) Scaled64 {
	return scaledFromFloat[Exp64](float64(v))
}

func Scaled64FromBool(v bool) Scaled64 {
	if v {
		return Scaled64{mant: 1}
	}
	return Scaled64{}
}

// Scaled64ToInt converts s to any native integer type; see ScaledToInt.
func Scaled64ToInt[T constraints.Integer](s Scaled64) (T, error) {
	return ScaledToInt[T](s)
}
