// Package codec implements the reversible g-adic block codec that bridges
// Unicode text and the big-integer blocks RSA operates on. Radix is
// conventionally 55296 — the code-point ceiling excluding the UTF-16
// surrogate range — so that every Basic Multilingual Plane character below
// the surrogates maps to a single g-adic digit.
package codec

import "math/big"

// Key parameterizes the codec: Radix must be > 1, BlockSize must be > 0.
type Key struct {
	Radix     uint32
	BlockSize int
}

func (k Key) validate() error {
	if k.Radix < 2 || k.BlockSize < 1 {
		return ErrInvalidInput
	}
	return nil
}

// Encode splits text into consecutive BlockSize-codepoint chunks (padding
// the final chunk with U+0020 to length BlockSize when fill is true) and
// interprets each chunk as a big-endian g-adic integer.
func (k Key) Encode(text string, fill bool) ([]*big.Int, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}

	runes := []rune(text)
	var sums []*big.Int

	for i := 0; i < len(runes); i += k.BlockSize {
		end := i + k.BlockSize
		if end > len(runes) {
			end = len(runes)
		}
		chunk := runes[i:end]
		if fill {
			for len(chunk) < k.BlockSize {
				chunk = append(chunk, ' ')
			}
		}
		sums = append(sums, digitsToSum(chunk, k.Radix))
	}
	return sums, nil
}

// Decode renders each sum via ToRadixString and concatenates the results.
// Decode is not a total inverse of Encode: a block whose most-significant
// g-digit is zero loses that leading digit, so round-tripping through
// Decode(Encode(text)) is only identity when every block's leading digit is
// non-zero (see FromDecimalBlock/ToDecimalBlock for the variant RSA uses to
// sidestep this).
func (k Key) Decode(sums []*big.Int) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}

	result := ""
	for _, s := range sums {
		block, err := ToRadixString(s, k.Radix)
		if err != nil {
			return "", err
		}
		result += block
	}
	return result, nil
}

// ToRadixString renders n as a g-adic string: repeatedly extract n mod g as
// the next low-order digit, mapping digit -> code point, then reverse to
// big-endian order. Zero renders as the empty string. Fails with
// ErrUnmappableCodepoint if any digit exceeds the Unicode ceiling (U+10FFFF)
// or lands in the surrogate range (U+D800-U+DFFF).
func ToRadixString(n *big.Int, radix uint32) (string, error) {
	if radix < 2 {
		return "", ErrInvalidInput
	}

	decimal := new(big.Int).Set(n)
	base := big.NewInt(int64(radix))
	var digits []rune

	for decimal.Sign() > 0 {
		remainder := new(big.Int).Mod(decimal, base)
		decimal.Div(decimal, base)

		digit := uint32(remainder.Uint64())
		if digit > 0x10FFFF || (digit >= 0xD800 && digit <= 0xDFFF) {
			return "", ErrUnmappableCodepoint
		}
		digits = append(digits, rune(digit))
	}

	reversed := make([]rune, len(digits))
	for i, d := range digits {
		reversed[len(digits)-1-i] = d
	}
	return string(reversed), nil
}

// FromDecimalBlock renders each block via ToRadixString, left-padding with
// U+0000 to exactly BlockSize code points so that ToDecimalBlock can always
// re-parse the boundaries deterministically, even when a block's leading
// digit is zero.
func (k Key) FromDecimalBlock(blocks []*big.Int) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}

	result := ""
	for _, b := range blocks {
		s, err := ToRadixString(b, k.Radix)
		if err != nil {
			return "", err
		}
		runeLen := len([]rune(s))
		if runeLen < k.BlockSize {
			pad := make([]rune, k.BlockSize-runeLen)
			for i := range pad {
				pad[i] = 0
			}
			s = string(pad) + s
		}
		result += s
	}
	return result, nil
}

// ToDecimalBlock slices text into BlockSize-wide rune chunks and evaluates
// each as a g-adic sum. Fails with ErrDecodeError if text's rune length is
// not a multiple of BlockSize.
func (k Key) ToDecimalBlock(text string) ([]*big.Int, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}

	runes := []rune(text)
	if len(runes)%k.BlockSize != 0 {
		return nil, ErrDecodeError
	}

	var sums []*big.Int
	for i := 0; i < len(runes); i += k.BlockSize {
		sums = append(sums, digitsToSum(runes[i:i+k.BlockSize], k.Radix))
	}
	return sums, nil
}

// FromRadixString is the inverse of ToRadixString: it interprets text as a
// g-adic number under the given radix and returns the resulting sum. Used
// by signature verification, which receives a single g-adic string with no
// block boundaries to respect.
func FromRadixString(text string, radix uint32) *big.Int {
	return digitsToSum([]rune(text), radix)
}

// digitsToSum interprets chunk as a big-endian g-adic integer:
// sum_i codepoint(chunk[i]) * radix^(len-1-i).
func digitsToSum(chunk []rune, radix uint32) *big.Int {
	sum := big.NewInt(0)
	base := big.NewInt(1)
	g := big.NewInt(int64(radix))

	for i := len(chunk) - 1; i >= 0; i-- {
		digit := new(big.Int).Mul(base, big.NewInt(int64(chunk[i])))
		sum.Add(sum, digit)
		base.Mul(base, g)
	}
	return sum
}
