package num

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Bool reports whether s is non-zero.
func (s Scaled[E]) Bool() bool { return s.mant != 0 }

// Float64 converts s to a float64. Exponents above 307 produce ErrOverflow;
// zero converts to 0 whatever its exponent.
func (s Scaled[E]) Float64() (float64, error) {
	if err := s.checkFloat(maxFloat64Exp, "float64"); err != nil {
		return 0, err
	}
	return s.RealValue(), nil
}

// Float32 converts s to a float32. Exponents above 37 produce ErrOverflow;
// zero converts to 0 whatever its exponent.
func (s Scaled[E]) Float32() (float32, error) {
	if err := s.checkFloat(maxFloat32Exp, "float32"); err != nil {
		return 0, err
	}
	return float32(s.RealValue()), nil
}

func (s Scaled[E]) checkFloat(maxExp uint64, kind string) error {
	if s.mant != s.mant {
		return ErrInvalidOperand.New("%s is not a number", s)
	} else if s.mant == 0 {
		return nil
	} else if !s.exp.IsUint64() || s.exp.AsUint64() > maxExp {
		return ErrOverflow.New("%s does not fit in a %s", s, kind)
	}
	return nil
}

// ScaledToInt converts s to any native integer type, truncating towards zero.
// Values outside the range of T produce ErrOverflow; zero converts to 0
// whatever its exponent.
func ScaledToInt[T constraints.Integer, E Exponent[E]](s Scaled[E]) (T, error) {
	if s.mant != s.mant {
		return 0, ErrInvalidOperand.New("%s is not a number", s)
	} else if s.mant == 0 {
		return 0, nil
	}

	lo, limit := intBounds[T]()
	r := math.Trunc(s.RealValue())
	if r < lo || r >= limit {
		return 0, ErrOverflow.New("%s out of integer range [%g, %g)", s, lo, limit)
	}
	return T(r), nil
}

// intBounds returns the smallest value of T and one past its largest value,
// both as float64. The upper bound is exact even when T's maximum is not
// representable as a float64.
func intBounds[T constraints.Integer]() (lo, limit float64) {
	var zero T
	if ^zero > zero { // unsigned
		return 0, float64(^zero) + 1
	}
	max := T(1)
	for max<<1|1 > max {
		max = max<<1 | 1
	}
	return -float64(max) - 1, float64(max) + 1
}

// ParseScaled64 parses the "<mantissa>e<exponent>" form produced by String.
// The mantissa and exponent are kept exactly as written, so
// ParseScaled64(s.String()) reproduces s. A plain float such as "1234.5" is
// converted the way Scaled64From converts it.
func ParseScaled64(s string) (Scaled64, error) {
	return parseScaled(s, func(exp string) (Exp64, error) {
		v, err := strconv.ParseUint(exp, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow.New("exponent %q does not fit in a uint64", exp)
		} else if err != nil {
			return 0, ErrInvalidOperand.New("exponent %q invalid", exp)
		}
		return Exp64(v), nil
	})
}

// ParseScaled256 is ParseScaled64 for a Scaled256. The exponent is written in
// decimal.
func ParseScaled256(s string) (Scaled256, error) {
	return parseScaled(s, U256FromString)
}

func parseScaled[E Exponent[E]](s string, parseExp func(string) (E, error)) (out Scaled[E], err error) {
	idx := strings.LastIndexAny(s, "eE")
	if idx < 0 || strings.ContainsAny(s[idx+1:], "+-") {
		// No exponent of ours; might still be a float with a signed exponent.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return out, ErrInvalidOperand.New("scaled string %q invalid", s)
		}
		return scaledFromFloat[E](f), nil
	}

	mant, ferr := strconv.ParseFloat(s[:idx], 64)
	if ferr != nil {
		return out, ErrInvalidOperand.New("scaled string %q has invalid mantissa", s)
	}
	exp, err := parseExp(s[idx+1:])
	if err != nil {
		return out, err
	}
	return ScaledFromRaw(mant, exp), nil
}
