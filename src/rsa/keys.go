package rsa

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// PublicKey is the public half of an RSA keypair, plus the codec
// parameters needed to encrypt under it: radix and the plaintext block
// size bounded so that log_g(n) digits always fit under n.
type PublicKey struct {
	N            *big.Int
	E            *big.Int
	Radix        uint32
	BlockSizePub int
}

// PrivateKey is the private half of an RSA keypair. BlockSizePriv is
// BlockSizePub+1, sized so ciphertext blocks always accommodate n.
type PrivateKey struct {
	D             *big.Int
	N             *big.Int
	Radix         uint32
	BlockSizePriv int
}

// blockSizePub returns floor(log_radix(n)), the largest k such that
// radix^k <= n.
func blockSizePub(n *big.Int, radix uint32) int {
	if n.Sign() <= 0 {
		return 0
	}
	g := big.NewInt(int64(radix))
	t := new(big.Int).Set(n)
	count := 0
	for t.Cmp(g) >= 0 {
		t.Div(t, g)
		count++
	}
	return count
}

// BlockSizePub exports blockSizePub for callers (the surface dispatcher,
// CLI operations) that reconstruct a PublicKey/PrivateKey from a bare
// modulus and need to recompute the matching block size.
func BlockSizePub(n *big.Int, radix uint32) int {
	return blockSizePub(n, radix)
}

// EncodePublicKey renders pub as a plain "n:e:radix" line, the on-disk
// format written by the keypair generation operation and read back by
// encrypt/verify.
func EncodePublicKey(pub PublicKey) string {
	return strings.Join([]string{pub.N.String(), pub.E.String(), strconv.FormatUint(uint64(pub.Radix), 10)}, ":")
}

// DecodePublicKey parses the format EncodePublicKey produces.
func DecodePublicKey(s string) (PublicKey, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return PublicKey{}, ErrDecodeError
	}

	n, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return PublicKey{}, ErrDecodeError
	}
	e, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return PublicKey{}, ErrDecodeError
	}
	radix, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return PublicKey{}, fmt.Errorf("rsa: parsing radix: %v", err)
	}

	return PublicKey{N: n, E: e, Radix: uint32(radix), BlockSizePub: blockSizePub(n, uint32(radix))}, nil
}
