package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU256(a, b U256) U256 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// LargerScaled returns the larger of a and b according to Cmp.
func LargerScaled[E Exponent[E]](a, b Scaled[E]) Scaled[E] {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// SmallerScaled returns the smaller of a and b according to Cmp.
func SmallerScaled[E Exponent[E]](a, b Scaled[E]) Scaled[E] {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
