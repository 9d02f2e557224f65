package rsa

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"rsalab/src/codec"
	"rsalab/src/numbertheory"
)

// Encrypt splits text into plaintext blocks sized to pub's public block
// size, raises each to e mod n, and renders the result with the
// corresponding private block size so decrypt can always re-parse block
// boundaries.
func Encrypt(text string, pub PublicKey, nt numbertheory.Service) (string, error) {
	plainKey := codec.Key{Radix: pub.Radix, BlockSize: pub.BlockSizePub}
	plainBlocks, err := plainKey.Encode(text, true)
	if err != nil {
		return "", err
	}

	cipherBlocks := make([]*big.Int, len(plainBlocks))
	for i, m := range plainBlocks {
		if m.Cmp(pub.N) >= 0 {
			return "", ErrBlockTooLarge
		}
		cipherBlocks[i] = nt.FastExp(m, pub.E, pub.N)
	}

	cipherKey := codec.Key{Radix: pub.Radix, BlockSize: pub.BlockSizePub + 1}
	return cipherKey.FromDecimalBlock(cipherBlocks)
}

// Decrypt parses textCt with priv's private block size, raises each block
// to d mod n, renders with the public block size, and trims the trailing
// padding spaces Encrypt's final block may carry.
func Decrypt(textCt string, priv PrivateKey, nt numbertheory.Service) (string, error) {
	cipherKey := codec.Key{Radix: priv.Radix, BlockSize: priv.BlockSizePriv}
	cipherBlocks, err := cipherKey.ToDecimalBlock(textCt)
	if err != nil {
		return "", ErrDecodeError
	}

	plainBlocks := make([]*big.Int, len(cipherBlocks))
	for i, c := range cipherBlocks {
		plainBlocks[i] = nt.FastExp(c, priv.D, priv.N)
	}

	plainKey := codec.Key{Radix: priv.Radix, BlockSize: priv.BlockSizePriv - 1}
	text, err := plainKey.FromDecimalBlock(plainBlocks)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, " "), nil
}

// Sign hashes message to a BigInt in [0, n) via SHA-256 and raises it to d
// mod n, rendering the signature as a g-adic string.
func Sign(message string, priv PrivateKey, nt numbertheory.Service) (string, error) {
	h := hashToBigInt(message, priv.N)
	s := nt.FastExp(h, priv.D, priv.N)
	return codec.ToRadixString(s, priv.Radix)
}

// Verify parses signature as a g-adic sum, raises it to e mod n, and
// compares against a fresh hash of message.
func Verify(message, signature string, pub PublicKey, nt numbertheory.Service) (bool, error) {
	if signature == "" {
		return false, ErrInvalidSignature
	}

	s := codec.FromRadixString(signature, pub.Radix)
	hPrime := nt.FastExp(s, pub.E, pub.N)
	h := hashToBigInt(message, pub.N)
	return h.Cmp(hPrime) == 0, nil
}

func hashToBigInt(message string, n *big.Int) *big.Int {
	digest := sha256.Sum256([]byte(message))
	h := new(big.Int).SetBytes(digest[:])
	return h.Mod(h, n)
}
