package codec

import "errors"

// ErrInvalidInput covers precondition failures: radix < 2 or block size 0.
var ErrInvalidInput = errors.New("codec: invalid radix or block size")

// ErrUnmappableCodepoint is returned when a g-adic digit exceeds the
// Unicode code-point ceiling (0x10FFFF) or lands on a surrogate.
var ErrUnmappableCodepoint = errors.New("codec: digit is not a valid Unicode code point")

// ErrDecodeError is returned when a ciphertext's length is not a multiple
// of the expected block size.
var ErrDecodeError = errors.New("codec: ciphertext length is not a multiple of block size")
