// Package prng implements the deterministic, reproducible random sequence
// used to drive prime search. It is not a CSPRNG: for a fixed seed and
// counter value, every draw is exact and reproducible by construction.
package prng

import (
	"math/big"
)

// minPrecision is the floor for the arbitrary-precision arithmetic backing
// sqrt_m. Every draw uses max(minPrecision, bitLen(b)+guardBits) bits so
// that the fractional part of n*sqrt_m is resolved unambiguously over the
// full requested range.
const minPrecision = 256

// guardBits absorbs rounding error from the Sqrt/Mul chain so that
// truncation to an integer digit never flips due to precision loss.
const guardBits = 64

// PRNG is a reproducible sequence generator seeded by a 32-bit integer. It
// holds no counter itself — callers own a Counter and pass it to every draw.
type PRNG struct {
	seed uint32
}

// New constructs a PRNG from a seed. The seed is advanced until it is not
// a perfect square, since sqrt(seed) must be irrational for the
// fractional-part trick to produce a well-distributed sequence.
func New(seed uint32) PRNG {
	s := seed
	for isPerfectSquare(s) {
		s++
	}
	return PRNG{seed: s}
}

func isPerfectSquare(n uint32) bool {
	x := new(big.Int).SetUint64(uint64(n))
	root := new(big.Int).Sqrt(x)
	root.Mul(root, root)
	return root.Cmp(x) == 0
}

// Take returns a value in [a, b], advancing counter by one. Deterministic
// for a fixed seed and counter value: f = frac(n * sqrt_m), result =
// a + floor(f * (b - a + 1)).
func (p PRNG) Take(a, b *big.Int, counter *Counter) *big.Int {
	n := counter.FetchAndIncrement()

	rangeSize := new(big.Int).Sub(b, a)
	rangeSize.Add(rangeSize, big.NewInt(1))

	prec := uint(minPrecision)
	if bl := uint(b.BitLen()) + guardBits; bl > prec {
		prec = bl
	}

	sqrtM := new(big.Float).SetPrec(prec).SetInt64(int64(p.seed))
	sqrtM.Sqrt(sqrtM)

	nF := new(big.Float).SetPrec(prec).SetUint64(n)
	product := new(big.Float).SetPrec(prec).Mul(nF, sqrtM)

	whole, _ := product.Int(nil)
	frac := new(big.Float).SetPrec(prec).SetInt(whole)
	frac.Sub(product, frac)

	rangeF := new(big.Float).SetPrec(prec).SetInt(rangeSize)
	scaled := new(big.Float).SetPrec(prec).Mul(frac, rangeF)

	offset, _ := scaled.Int(nil)
	return new(big.Int).Add(a, offset)
}

// TakeOdd returns an odd value derived from Take, by OR-ing in the low bit.
// The result may exceed b by one; callers must size b accordingly.
func (p PRNG) TakeOdd(a, b *big.Int, counter *Counter) *big.Int {
	v := p.Take(a, b, counter)
	return v.Or(v, big.NewInt(1))
}
