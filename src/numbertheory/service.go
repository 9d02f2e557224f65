// Package numbertheory implements the primitive modular arithmetic that
// everything else in this module is built on: fast modular exponentiation,
// the extended Euclidean algorithm, modular inversion, Miller–Rabin
// primality testing, and Shanks' baby-step giant-step discrete log.
package numbertheory

import (
	"math/big"

	"rsalab/src/prng"
	"rsalab/src/telemetry"
)

// Speed selects the fast_exp implementation. It is a tagged variant rather
// than an interface: both arms are pure functions over *big.Int and there is
// no reason to pay for dynamic dispatch.
type Speed int

const (
	// Fast uses math/big's native Exp (CRT/window-optimized modpow).
	Fast Speed = iota
	// Slow performs an explicit square-and-multiply loop over the binary
	// expansion of the exponent, for parity with a from-scratch
	// implementation and for benchmarking.
	Slow
)

// Service is a stateless, immutable, freely-shareable number-theory
// primitive set parameterized by which fast_exp variant to use.
type Service struct {
	speed Speed
}

// New constructs a Service with the given exponentiation variant.
func New(speed Speed) Service {
	return Service{speed: speed}
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// FastExp returns base^exp mod modulus using the selected variant. Both
// variants yield the Euclidean (non-negative) remainder. modulus = 1 always
// yields 0; exp = 0 always yields 1; a negative base is reduced mod modulus
// first.
func (s Service) FastExp(base, exp, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return big.NewInt(0)
	}
	if exp.Sign() == 0 {
		return big.NewInt(1)
	}

	b := new(big.Int).Mod(base, modulus)

	if s.speed == Fast {
		return new(big.Int).Exp(b, exp, modulus)
	}
	return s.squareAndMultiply(b, exp, modulus)
}

// squareAndMultiply is the explicit binary-exponentiation loop used by the
// Slow variant: walk exp's bits from least to most significant, squaring
// the running base each step and folding it into the result whenever the
// current bit is set.
func (s Service) squareAndMultiply(base, exp, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Set(base)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}

// ExtendedEuclid returns (g, x, y) such that a*x + b*y = g, where
// g = gcd(|a|, |b|) >= 0. When b = 0, the result is (a, 1, 0) with the sign
// of a folded into x.
func (s Service) ExtendedEuclid(a, b *big.Int) (g, x, y *big.Int) {
	aAbs := new(big.Int).Abs(a)
	bAbs := new(big.Int).Abs(b)

	g, x, y = iterativeEgcd(aAbs, bAbs)

	if a.Sign() < 0 {
		x.Neg(x)
	}
	if b.Sign() < 0 {
		y.Neg(y)
	}
	return g, x, y
}

// iterativeEgcd implements the standard iterative extended Euclidean
// algorithm for non-negative a, b.
func iterativeEgcd(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)

		newR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS

		newT := new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
		oldT, t = t, newT
	}
	return oldR, oldS, oldT
}

// ModularInverse returns a's inverse mod n, i.e. the unique value in
// [0, n) with a*inverse ≡ 1 (mod n). Returns ErrNoInverse when
// gcd(a, n) != 1.
func (s Service) ModularInverse(a, n *big.Int) (*big.Int, error) {
	g, x, _ := s.ExtendedEuclid(a, n)
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return new(big.Int).Mod(x, n), nil
}

// IsProbablyPrime runs k independent Miller–Rabin witness tests against p,
// drawing witnesses from [2, p-2] via rng. The caller owns counter and is
// responsible for not reusing positions across unrelated searches.
func (s Service) IsProbablyPrime(p *big.Int, k int, rng prng.PRNG, counter *prng.Counter) bool {
	if p.Cmp(two) < 0 {
		return false
	}
	if p.Cmp(two) == 0 || p.Cmp(big.NewInt(3)) == 0 {
		return true
	}
	if p.Bit(0) == 0 {
		return false
	}

	pMinus1 := new(big.Int).Sub(p, one)
	d := new(big.Int).Set(pMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	pMinus2 := new(big.Int).Sub(p, two)

	for i := 0; i < k; i++ {
		a := rng.Take(two, pMinus2, counter)
		x := s.FastExp(a, d, p)

		if x.Cmp(one) == 0 || x.Cmp(pMinus1) == 0 {
			continue
		}

		composite := true
		for j := 1; j < r; j++ {
			x = s.FastExp(x, two, p)
			if x.Cmp(pMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			telemetry.Logger().Sugar().Debugw("miller-rabin composite witness", "p", p.String(), "witness", a.String())
			return false
		}
	}
	return true
}

// Shanks solves base^x ≡ element (mod modulus) for the minimal non-negative
// x, using the baby-step giant-step method. Returns ErrNoDiscreteLog if no
// such x exists within the searched range [0, m^2).
func (s Service) Shanks(base, element, modulus *big.Int) (*big.Int, error) {
	m := ceilSqrt(modulus)

	// Every j per baby-step value is kept (in ascending order) so that each
	// giant step can try the largest j first, i.e. the smallest x.
	table := make(map[string][]*big.Int, int64OrMax(m))
	target := new(big.Int).Mod(element, modulus)
	cur := new(big.Int).Set(target)
	for j := new(big.Int); j.Cmp(m) < 0; j.Add(j, one) {
		key := cur.String()
		table[key] = append(table[key], new(big.Int).Set(j))
		cur.Mul(cur, base)
		cur.Mod(cur, modulus)
	}

	giant := big.NewInt(1) // base^(i*m) mod modulus, built incrementally
	baseToM := s.FastExp(base, m, modulus)

	for i := new(big.Int); i.Cmp(m) <= 0; i.Add(i, one) {
		js := table[giant.String()]
		for idx := len(js) - 1; idx >= 0; idx-- {
			x := new(big.Int).Mul(i, m)
			x.Sub(x, js[idx])
			if x.Sign() >= 0 && s.FastExp(base, x, modulus).Cmp(target) == 0 {
				return x, nil
			}
		}
		giant.Mul(giant, baseToM)
		giant.Mod(giant, modulus)
	}
	return nil, ErrNoDiscreteLog
}

func ceilSqrt(n *big.Int) *big.Int {
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	if sq.Cmp(n) < 0 {
		root.Add(root, one)
	}
	return root
}

// int64OrMax is only used to size the baby-step table's initial capacity; a
// huge m simply falls back to the default map growth.
func int64OrMax(n *big.Int) int {
	if n.IsInt64() {
		if v := n.Int64(); v >= 0 && v < 1<<20 {
			return int(v)
		}
	}
	return 0
}
