// Package primegen generates probable primes and safe-prime/primitive-root
// pairs, composing numbertheory's Miller–Rabin test with prng's
// deterministic draws.
package primegen

import (
	"math/big"

	"rsalab/src/numbertheory"
	"rsalab/src/prng"
	"rsalab/src/telemetry"
)

var two = big.NewInt(2)

// GeneratePrime draws odd candidates from [2^(bitWidth-1), 2^bitWidth) and
// returns the first one that passes k rounds of Miller–Rabin. Never
// returns if no such prime exists in range (it doesn't, for any bitWidth
// >= 2) or if the caller picks an infeasible bit width for their time
// budget — callers bound runtime by choosing a feasible bitWidth.
func GeneratePrime(nt numbertheory.Service, rng prng.PRNG, counter *prng.Counter, bitWidth uint, k int) *big.Int {
	lower := new(big.Int).Lsh(big.NewInt(1), bitWidth-1)
	// TakeOdd may return its upper bound plus one, so draw from
	// [lower, 2^bitWidth - 1] to keep every candidate below 2^bitWidth.
	upper := new(big.Int).Lsh(big.NewInt(1), bitWidth)
	upper.Sub(upper, big.NewInt(1))

	for {
		candidate := rng.TakeOdd(lower, upper, counter)
		if nt.IsProbablyPrime(candidate, k, rng, counter) {
			telemetry.Logger().Sugar().Debugw("accepted prime candidate", "bits", bitWidth, "p", candidate.String())
			return candidate
		}
		telemetry.Logger().Sugar().Debugw("rejected prime candidate", "bits", bitWidth, "p", candidate.String())
	}
}

// GenerateSafePrimeWithPrimitiveRoot returns a safe prime p (where
// q = (p-1)/2 is also prime) of the given bit width, together with a
// primitive root g of the multiplicative group mod p.
func GenerateSafePrimeWithPrimitiveRoot(nt numbertheory.Service, rng prng.PRNG, counter *prng.Counter, bitWidth uint, k int) (p, g *big.Int) {
	var q *big.Int
	for {
		p = GeneratePrime(nt, rng, counter, bitWidth, k)
		q = new(big.Int).Sub(p, big.NewInt(1))
		q.Rsh(q, 1)
		if nt.IsProbablyPrime(q, k, rng, counter) {
			telemetry.Logger().Sugar().Debugw("accepted safe prime", "p", p.String(), "q", q.String())
			break
		}
		telemetry.Logger().Sugar().Debugw("rejected safe prime candidate", "p", p.String())
	}

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	pMinus2 := new(big.Int).Sub(p, two)

	for {
		candidate := rng.Take(two, pMinus2, counter)
		// g is a primitive root of a safe prime p iff g^q mod p = p-1:
		// the only nontrivial subgroup order dividing p-1 besides 2 is q
		// itself, so failing to generate -1 here rules out every proper
		// subgroup at once.
		if nt.FastExp(candidate, q, p).Cmp(pMinus1) == 0 {
			g = candidate
			telemetry.Logger().Sugar().Debugw("accepted primitive root", "p", p.String(), "g", g.String())
			return p, g
		}
	}
}
