// Package keystore seals a generated RSA private key to disk under a
// passphrase, deriving the wrapping key with Argon2id and sealing the
// payload with XChaCha20-Poly1305 so a single random nonce is safe to
// generate without a counter.
package keystore

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"rsalab/src/rsa"
	"rsalab/src/telemetry"
)

// Argon2idParams holds the Argon2id KDF tuning knobs.
type Argon2idParams struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
}

// DefaultArgon2idParams are conservative defaults suitable for interactive use.
var DefaultArgon2idParams = Argon2idParams{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 1,
	KeyLen:      32,
}

const envelopeVersion uint32 = 1

// KeyEnvelope is the on-disk representation of a passphrase-sealed RSA
// private key.
type KeyEnvelope struct {
	Version    uint32
	Salt       [16]byte
	KdfParams  Argon2idParams
	Nonce      [24]byte
	Ciphertext []byte
}

func deriveKey(passphrase []byte, salt [16]byte, params Argon2idParams) []byte {
	return argon2.IDKey(passphrase, salt[:], params.Time, params.Memory, params.Parallelism, params.KeyLen)
}

// Seal encrypts priv under passphrase, producing a KeyEnvelope fit for
// writing to disk. The private key is flattened to "D:N:Radix:BlockSizePriv"
// before encryption; Open reverses the same encoding.
func Seal(priv rsa.PrivateKey, passphrase []byte) (KeyEnvelope, error) {
	var env KeyEnvelope
	env.Version = envelopeVersion
	env.KdfParams = DefaultArgon2idParams

	if _, err := rand.Read(env.Salt[:]); err != nil {
		return KeyEnvelope{}, fmt.Errorf("keystore: generating salt: %v", err)
	}
	if _, err := rand.Read(env.Nonce[:]); err != nil {
		return KeyEnvelope{}, fmt.Errorf("keystore: generating nonce: %v", err)
	}

	key := deriveKey(passphrase, env.Salt, env.KdfParams)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return KeyEnvelope{}, fmt.Errorf("keystore: constructing AEAD: %v", err)
	}

	plaintext := []byte(encodePrivateKey(priv))
	env.Ciphertext = aead.Seal(nil, env.Nonce[:], plaintext, nil)

	telemetry.Logger().Sugar().Debugw("sealed private key", "ciphertext_len", len(env.Ciphertext))
	return env, nil
}

// Open decrypts env under passphrase, recovering the original private
// key. Returns ErrWrongPassphrase if authentication fails.
func Open(env KeyEnvelope, passphrase []byte) (rsa.PrivateKey, error) {
	if env.Version != envelopeVersion {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}

	key := deriveKey(passphrase, env.Salt, env.KdfParams)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return rsa.PrivateKey{}, fmt.Errorf("keystore: constructing AEAD: %v", err)
	}

	plaintext, err := aead.Open(nil, env.Nonce[:], env.Ciphertext, nil)
	if err != nil {
		return rsa.PrivateKey{}, ErrWrongPassphrase
	}

	return decodePrivateKey(string(plaintext))
}

// Marshal renders env as a fixed binary layout: version, salt, kdf
// params, nonce, then the raw ciphertext. Of the kdf params only Memory and
// Time are stored; Parallelism and KeyLen are not, and Unmarshal takes them
// from DefaultArgon2idParams.
func Marshal(env KeyEnvelope) []byte {
	buf := make([]byte, 0, 4+16+8+24+len(env.Ciphertext))

	var versionBuf [4]byte
	binary.BigEndian.PutUint32(versionBuf[:], env.Version)
	buf = append(buf, versionBuf[:]...)
	buf = append(buf, env.Salt[:]...)
	buf = append(buf, encodeKdfParams(env.KdfParams)...)
	buf = append(buf, env.Nonce[:]...)
	buf = append(buf, env.Ciphertext...)
	return buf
}

// Unmarshal parses the binary layout Marshal produces.
func Unmarshal(data []byte) (KeyEnvelope, error) {
	const headerLen = 4 + 16 + 8 + 24
	if len(data) < headerLen {
		return KeyEnvelope{}, ErrMalformedEnvelope
	}

	var env KeyEnvelope
	env.Version = binary.BigEndian.Uint32(data[0:4])
	copy(env.Salt[:], data[4:20])
	env.KdfParams = decodeKdfParams(data[20:28])
	copy(env.Nonce[:], data[28:52])
	env.Ciphertext = append([]byte(nil), data[52:]...)
	return env, nil
}

func encodeKdfParams(p Argon2idParams) []byte {
	encoded := make([]byte, 8)
	binary.BigEndian.PutUint32(encoded[0:4], p.Memory)
	binary.BigEndian.PutUint32(encoded[4:8], p.Time)
	return encoded
}

func decodeKdfParams(data []byte) Argon2idParams {
	return Argon2idParams{
		Memory:      binary.BigEndian.Uint32(data[0:4]),
		Time:        binary.BigEndian.Uint32(data[4:8]),
		Parallelism: DefaultArgon2idParams.Parallelism,
		KeyLen:      DefaultArgon2idParams.KeyLen,
	}
}

func encodePrivateKey(priv rsa.PrivateKey) string {
	return strings.Join([]string{
		priv.D.String(),
		priv.N.String(),
		big.NewInt(int64(priv.Radix)).String(),
		big.NewInt(int64(priv.BlockSizePriv)).String(),
	}, ":")
}

func decodePrivateKey(s string) (rsa.PrivateKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}

	d, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}
	n, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}
	radix, ok := new(big.Int).SetString(parts[2], 10)
	if !ok {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}
	blockSize, ok := new(big.Int).SetString(parts[3], 10)
	if !ok {
		return rsa.PrivateKey{}, ErrMalformedEnvelope
	}

	return rsa.PrivateKey{
		D:             d,
		N:             n,
		Radix:         uint32(radix.Int64()),
		BlockSizePriv: int(blockSize.Int64()),
	}, nil
}
