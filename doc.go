/*
Package num provides number types for values far beyond the range of a float64,
of the kind that turn up in incremental and idle games: a 256-bit unsigned
integer (U256) and two scaled decimal types (Scaled64 and Scaled256) that pair
a float64 mantissa with an unsigned decimal exponent.

All types are value types; all operations return new values.

U256 wraps on overflow and underflow, the same way Go's native unsigned
integers do:

	fmt.Println(num.MaxU256.Inc())
	// Output: 0

A Scaled value is mant * 10^exp, with the mantissa kept between 0.1 and 1:

	a := num.Scaled64FromRaw(5, 10000)
	b := num.Scaled64FromRaw(3, 10000)
	fmt.Println(a.Sub(b))
	// Output: 0.2e10001

Scaled64 and Scaled256 run the same algorithm and differ only in the width of
the exponent. Precision is limited to that of a float64, so adding two values
whose exponents differ by more than 16 returns the larger one unchanged.

U256 can be created from a variety of sources:

	U256FromRaw(hi, hm, lm, lo uint64) U256
	U256From64(v uint64) U256
	U256FromInt[T constraints.Integer](v T) U256
	U256FromFloat[T constraints.Float](f T) (out U256, inRange bool)
	U256FromBigInt(v *big.Int) (out U256, inRange bool)
	U256FromString(s string) (out U256, err error)

Scaled values can be created with:

	Scaled64FromRaw(mant float64, exp uint64) Scaled64
	Scaled64From[T Number](v T) Scaled64
	Scaled256FromRaw(mant float64, exp U256) Scaled256
	Scaled256From[T Number](v T) Scaled256
	ParseScaled64(s string) (Scaled64, error)
	ParseScaled256(s string) (Scaled256, error)

Widen and Narrow convert between the two.

Errors are reported using the classes ErrDivisionByZero, ErrOverflow and
ErrInvalidOperand.
*/
package num
