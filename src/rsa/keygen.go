package rsa

import (
	"math/big"

	"rsalab/src/numbertheory"
	"rsalab/src/primegen"
	"rsalab/src/prng"
	"rsalab/src/telemetry"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	// minPublicExponent is the smallest odd candidate considered for e:
	// the first acceptable odd integer >= 2^16 + 1.
	minPublicExponent = new(big.Int).Add(new(big.Int).Lsh(one, 16), one)
)

// GenerateKeypair generates an RSA keypair with the given modulus bit
// width, Miller-Rabin round count k, deterministic seed, and codec radix.
// nt selects the fast_exp variant used throughout generation and later
// operations.
func GenerateKeypair(modulusBits uint, k int, seed uint32, radix uint32, nt numbertheory.Service) (PublicKey, PrivateKey, error) {
	rng := prng.New(seed)
	counter := prng.NewCounter(1)

	halfBits := (modulusBits + 1) / 2

	var p, q, n, phi *big.Int
	for {
		p = primegen.GeneratePrime(nt, rng, counter, halfBits, k)
		q = primegen.GeneratePrime(nt, rng, counter, halfBits, k)
		if p.Cmp(q) == 0 {
			telemetry.Logger().Sugar().Debugw("p == q, regenerating")
			continue
		}

		n = new(big.Int).Mul(p, q)
		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi = new(big.Int).Mul(pMinus1, qMinus1)
		break
	}

	e := new(big.Int).Set(minPublicExponent)
	for {
		g, _, _ := nt.ExtendedEuclid(e, phi)
		if g.Cmp(one) == 0 {
			break
		}
		e.Add(e, two)
	}

	d, err := nt.ModularInverse(e, phi)
	if err != nil {
		return PublicKey{}, PrivateKey{}, ErrInvalidKey
	}

	pubBlockSize := blockSizePub(n, radix)

	pub := PublicKey{N: n, E: e, Radix: radix, BlockSizePub: pubBlockSize}
	priv := PrivateKey{D: d, N: n, Radix: radix, BlockSizePriv: pubBlockSize + 1}
	return pub, priv, nil
}
