package rsa

import "errors"

// ErrInvalidKey is returned when gcd(e, phi) != 1 for a generated keypair.
var ErrInvalidKey = errors.New("rsa: e and phi(n) are not coprime")

// ErrBlockTooLarge is returned when a plaintext block does not fit under
// the modulus, indicating a mis-sized public block size.
var ErrBlockTooLarge = errors.New("rsa: plaintext block too large for modulus")

// ErrDecodeError is returned when ciphertext length is not a multiple of
// the private block size.
var ErrDecodeError = errors.New("rsa: malformed ciphertext length")

// ErrInvalidSignature is returned by Verify when given an empty signature.
var ErrInvalidSignature = errors.New("rsa: empty signature")
