package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	maxUint64Float  = float64(maxUint64)     // (1<<64) - 1
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	// 1 << 128 and 1 << 192, used to scale the upper limbs of a U256 when
	// converting to and from float64.
	wrapU128Float = wrapUint64Float * wrapUint64Float
	wrapU192Float = wrapU128Float * wrapUint64Float

	// maxU256Float is float64((1<<256) - 1), which rounds up to 1<<256.
	maxU256Float = wrapU192Float * wrapUint64Float

	intSize = 32 << (^uint(0) >> 63)
)

const (
	// alignDigits is the largest exponent difference at which the smaller
	// operand of a Scaled addition still contributes to the result. A float64
	// carries roughly 15.95 decimal digits.
	alignDigits = 16

	// maxRealExp is the largest exponent RealValue will expand before it
	// saturates to math.MaxFloat64.
	maxRealExp = 308

	// Largest exponents a normalized Scaled may carry and still convert to a
	// float64 or float32 without overflowing.
	maxFloat64Exp = 307
	maxFloat32Exp = 37
)

var (
	MaxU256 = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	zeroU256 U256
	oneU256  = U256{lo: 1}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)

	// This specifies the maximum error allowed between the float64 version of
	// a 256-bit uint and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
