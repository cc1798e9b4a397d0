package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMulStep(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(z, x, y, carry uint64) {
		hi, lo := mulStep(z, x, y, carry)

		rb := new(big.Int).Mul(bigU64(x), bigU64(y))
		rb.Add(rb, bigU64(z))
		rb.Add(rb, bigU64(carry))

		rc := new(big.Int).Lsh(bigU64(hi), 64)
		rc.Or(rc, bigU64(lo))
		tt.MustEqual(rb.String(), rc.String(), "%d + %d * %d + %d", z, x, y, carry)
	}

	// Worst case; every input at its maximum must still fit in 128 bits:
	check(maxUint64, maxUint64, maxUint64, maxUint64)
	check(0, 0, 0, 0)
	check(1, maxUint64, 1, maxUint64)

	for i := 0; i < 50000; i++ {
		check(globalRNG.Uint64(), globalRNG.Uint64(), globalRNG.Uint64(), globalRNG.Uint64())
	}
}

func TestQuoRem128By64(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u1, u0, v uint64) {
		q, r := quorem128by64(u1, u0, v)

		n := new(big.Int).Lsh(bigU64(u1), 64)
		n.Or(n, bigU64(u0))
		bq, br := new(big.Int).QuoRem(n, bigU64(v), new(big.Int))

		tt.MustEqual(bq.String(), bigU64(q).String(), "q: (%d:%d) / %d", u1, u0, v)
		tt.MustEqual(br.String(), bigU64(r).String(), "r: (%d:%d) / %d", u1, u0, v)
	}

	check(0, 13, 10)
	check(0, maxUint64, 1)
	check(maxUint64-1, maxUint64, maxUint64)
	check(1, 0, 2)

	for i := 0; i < 50000; i++ {
		v := globalRNG.Uint64() >> uint(globalRNG.Intn(64))
		if v == 0 {
			v = 1
		}
		u1 := globalRNG.Uint64() % v // quotient must fit in 64 bits
		check(u1, globalRNG.Uint64(), v)
	}
}

var BenchMulStepIn = [4]uint64{1234, 5678, 9123, 4567}

func BenchmarkMulStep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = mulStep(BenchMulStepIn[0], BenchMulStepIn[1], BenchMulStepIn[2], BenchMulStepIn[3])
	}
}

func BenchmarkQuoRem128By64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = quorem128by64(1234, 5678, 9123)
	}
}
