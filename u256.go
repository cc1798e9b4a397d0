package num

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// U256 is an unsigned 256-bit integer made of four 64-bit limbs. All
// arithmetic wraps modulo 2^256, the same way Go's native unsigned integers
// do; nothing except division by zero reports an error.
type U256 struct {
	hi, hm, lm, lo uint64
}

// U256FromRaw creates a U256 from four limbs, most significant first.
func U256FromRaw(hi, hm, lm, lo uint64) U256 { return U256{hi: hi, hm: hm, lm: lm, lo: lo} }

func U256From64(v uint64) U256 { return U256{lo: v} }
func U256From32(v uint32) U256 { return U256{lo: uint64(v)} }
func U256From16(v uint16) U256 { return U256{lo: uint64(v)} }
func U256From8(v uint8) U256   { return U256{lo: uint64(v)} }

func U256FromBool(v bool) U256 {
	if v {
		return oneU256
	}
	return U256{}
}

// U256FromInt creates a U256 from any native integer. Negative values are
// sign-extended, so U256FromInt(-1) == MaxU256 and U256FromInt(-n) ==
// U256FromInt(n).Neg().
func U256FromInt[T constraints.Integer](v T) U256 {
	if v < 0 {
		return U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: uint64(int64(v))}
	}
	return U256{lo: uint64(v)}
}

// U256FromFloat creates a U256 from a float32 or float64. Any fractional
// portion is truncated towards zero. Negative numbers produce 0 and floats
// larger than MaxU256 produce MaxU256; in both cases inRange is false.
//
// NaN is treated as 0, inRange is set to false.
func U256FromFloat[T constraints.Float](f T) (out U256, inRange bool) {
	v := float64(f)

	if v == 0 {
		return U256{}, true

	} else if v < 0 {
		return U256{}, false

	} else if v < wrapUint64Float {
		return U256{lo: uint64(v)}, true

	} else if v < maxU256Float {
		// Each division by 2^64 is exact, so peeling off one limb at a
		// time loses nothing but the fraction.
		out.lo = uint64(modpos(v, wrapUint64Float))
		v /= wrapUint64Float
		out.lm = uint64(modpos(v, wrapUint64Float))
		v /= wrapUint64Float
		out.hm = uint64(modpos(v, wrapUint64Float))
		out.hi = uint64(v / wrapUint64Float)
		return out, true

	} else if v != v { // (v != v) == NaN
		return U256{}, false

	} else {
		return MaxU256, false
	}
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets inRange to 'false'. Negative numbers produce 0.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}

	var limbs [4]uint64
	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) > 4 {
			return MaxU256, false
		}
		for i, w := range words {
			limbs[i] = uint64(w)
		}

	case 32:
		if len(words) > 8 {
			return MaxU256, false
		}
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("num: unsupported bit size")
	}

	return U256{hi: limbs[3], hm: limbs[2], lm: limbs[1], lo: limbs[0]}, true
}

// U256FromString creates a U256 from a decimal string, or from a hex string if
// it is prefixed with "0x". Values that do not fit produce ErrOverflow.
func U256FromString(s string) (out U256, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, ErrInvalidOperand.New("u256 string %q invalid", s)
	}
	out, inRange := U256FromBigInt(b)
	if !inRange {
		return out, ErrOverflow.New("u256 string %q out of range", s)
	}
	return out, nil
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns the four limbs of the U256, most significant first. See
// U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// Limbs returns the four limbs of the U256, least significant first, in the
// same order as big.Int.Bits() on a 64-bit platform.
func (u U256) Limbs() [4]uint64 { return [4]uint64{u.lo, u.lm, u.hm, u.hi} }

func (u U256) Add(n U256) (v U256) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.lm, carry = bits.Add64(u.lm, n.lm, carry)
	v.hm, carry = bits.Add64(u.hm, n.hm, carry)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U256) Sub(n U256) (v U256) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.lm, borrow = bits.Sub64(u.lm, n.lm, borrow)
	v.hm, borrow = bits.Sub64(u.hm, n.hm, borrow)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U256) Inc() (v U256) { return u.Add(oneU256) }
func (u U256) Dec() (v U256) { return u.Sub(oneU256) }

// Neg returns the two's complement of u, i.e. 0 - u.
func (u U256) Neg() (v U256) { return u.Not().Inc() }

// Mul returns the low 256 bits of u * n.
func (u U256) Mul(n U256) U256 {
	x := [4]uint64{u.lo, u.lm, u.hm, u.hi}
	y := [4]uint64{n.lo, n.lm, n.hm, n.hi}

	var z [4]uint64
	for i := 0; i < 4; i++ {
		if y[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < 4; j++ {
			carry, z[i+j] = mulStep(z[i+j], x[j], y[i], carry)
		}
	}
	return U256{hi: z[3], hm: z[2], lm: z[1], lo: z[0]}
}

func (u U256) Mul64(n uint64) (v U256) {
	var carry uint64
	carry, v.lo = mulStep(0, u.lo, n, 0)
	carry, v.lm = mulStep(0, u.lm, n, carry)
	carry, v.hm = mulStep(0, u.hm, n, carry)
	_, v.hi = mulStep(0, u.hi, n, carry)
	return v
}

// Quo returns the quotient u/by. See QuoRem for more details.
func (u U256) Quo(by U256) (q U256, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

// Rem returns the remainder of u%by. See QuoRem for more details.
func (u U256) Rem(by U256) (r U256, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
func (u U256) QuoRem(by U256) (q, r U256, err error) {
	if by == zeroU256 {
		return q, r, ErrDivisionByZero.New("%s / 0", u)
	}

	if by.hi|by.hm|by.lm == 0 {
		var r64 uint64
		q, r64 = u.quoRem64(by.lo)
		return q, U256{lo: r64}, nil
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 255 {
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r, nil
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u, nil // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r, nil
	}

	q, r = quorem256bin(u, by, u.LeadingZeros(), byLeading0)
	return q, r, nil
}

// QuoRem64 divides u by a divisor that fits in a uint64. This is the common
// case and avoids the bit-at-a-time loop used by QuoRem for wider divisors.
func (u U256) QuoRem64(by uint64) (q U256, r uint64, err error) {
	if by == 0 {
		return q, r, ErrDivisionByZero.New("%s / 0", u)
	}
	q, r = u.quoRem64(by)
	return q, r, nil
}

func (u U256) quoRem64(by uint64) (q U256, r uint64) {
	if u.hi|u.hm|u.lm == 0 {
		return U256{lo: u.lo / by}, u.lo % by
	}

	// Schoolbook long division, one limb at a time. The running remainder
	// is always less than by, which quorem128by64 requires.
	q.hi, r = quorem128by64(0, u.hi, by)
	q.hm, r = quorem128by64(r, u.hm, by)
	q.lm, r = quorem128by64(r, u.lm, by)
	q.lo, r = quorem128by64(r, u.lo, by)
	return q, r
}

func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

func (u U256) And(n U256) U256 {
	u.hi = u.hi & n.hi
	u.hm = u.hm & n.hm
	u.lm = u.lm & n.lm
	u.lo = u.lo & n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi &^ n.hi
	u.hm = u.hm &^ n.hm
	u.lm = u.lm &^ n.lm
	u.lo = u.lo &^ n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi | n.hi
	u.hm = u.hm | n.hm
	u.lm = u.lm | n.lm
	u.lo = u.lo | n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi ^ n.hi
	u.hm = u.hm ^ n.hm
	u.lm = u.lm ^ n.lm
	u.lo = u.lo ^ n.lo
	return u
}

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}

	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}

	} else {
		return U256{}
	}
}

func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}

	} else {
		return U256{}
	}
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U256) BitLen() int { return 256 - int(u.LeadingZeros()) }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi|u.hm|u.lm == 0 }

// U256ToInt truncates u to any native integer type by taking its least
// significant limb, the same way a Go conversion between integer types does.
func U256ToInt[T constraints.Integer](u U256) T { return T(u.lo) }

// AsFloat64 returns the nearest float64 to u. MaxU256 rounds up to 2^256.
func (u U256) AsFloat64() float64 {
	if u.hi|u.hm|u.lm == 0 {
		return float64(u.lo)
	}

	// Normalise so the top bit is set, keep the top 64 bits and fold
	// everything below into a sticky bit so float64() rounds correctly.
	lz := u.LeadingZeros()
	n := u.Lsh(lz)
	top := n.hi
	if n.hm|n.lm|n.lo != 0 {
		top |= 1
	}
	return math.Ldexp(float64(top), 192-int(lz))
}

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < 4 {
			words = make([]big.Word, 4)
		}
		words = words[:4]
		words[0] = big.Word(u.lo)
		words[1] = big.Word(u.lm)
		words[2] = big.Word(u.hm)
		words[3] = big.Word(u.hi)
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < 8 {
			words = make([]big.Word, 8)
		}
		words = words[:8]
		for i, limb := range [4]uint64{u.lo, u.lm, u.hm, u.hi} {
			words[i*2] = big.Word(limb & 0xFFFFFFFF)
			words[i*2+1] = big.Word(limb >> 32)
		}
		b.SetBits(words)

	default:
		panic("num: unsupported bit size")
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// Hex renders all four limbs as zero-padded, upper case hex, most significant
// first, separated by spaces:
//
//	0000000000000000 0000000000000000 0000000000000001 0000000000000000
//
func (u U256) Hex() string {
	return fmt.Sprintf("%016X %016X %016X %016X", u.hi, u.hm, u.lm, u.lo)
}

func (u U256) String() string {
	if u == zeroU256 {
		return "0"
	}
	if u.hi|u.hm|u.lm == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U256) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}
