// Package surface defines the request/response shapes an external HTTP
// layer would expose, and a pure Dispatcher that implements them. It
// intentionally wires no transport: no net/http, no router, no
// middleware. Every BigInt crossing this boundary travels as a decimal
// string.
package surface

import (
	"math/big"

	"rsalab/src/numbertheory"
	"rsalab/src/rsa"
)

// CreateKeyPairRequest is the wire request body for key-pair creation.
type CreateKeyPairRequest struct {
	ModulusWidth      uint   `json:"modulus_width"`
	MillerRabinRounds int    `json:"miller_rabin_rounds"`
	RandomSeed        uint32 `json:"random_seed"`
	NumberSystemBase  uint32 `json:"number_system_base"`
	UseFast           bool   `json:"use_fast"`
}

// KeyPairResponse renders every BigInt as a decimal string.
type KeyPairResponse struct {
	N             string `json:"n"`
	E             string `json:"e"`
	D             string `json:"d"`
	BlockSizePub  string `json:"block_size_pub"`
	BlockSizePriv string `json:"block_size_priv"`
}

type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	N         string `json:"n"`
	E         string `json:"e"`
	Radix     uint32 `json:"radix"`
	UseFast   bool   `json:"use_fast"`
}

type CiphertextResponse struct {
	Ciphertext string `json:"ciphertext"`
}

type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	D          string `json:"d"`
	N          string `json:"n"`
	Radix      uint32 `json:"radix"`
	UseFast    bool   `json:"use_fast"`
}

type PlaintextResponse struct {
	Plaintext string `json:"plaintext"`
}

type SignRequest struct {
	Message string `json:"message"`
	D       string `json:"d"`
	N       string `json:"n"`
	Radix   uint32 `json:"radix"`
	UseFast bool   `json:"use_fast"`
}

type SignatureResponse struct {
	Signature string `json:"signature"`
}

type VerifyRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	N         string `json:"n"`
	E         string `json:"e"`
	Radix     uint32 `json:"radix"`
	UseFast   bool   `json:"use_fast"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type ExponentiationRequest struct {
	Base    string `json:"base"`
	Exp     string `json:"exp"`
	Mod     string `json:"mod"`
	UseFast bool   `json:"use_fast"`
}

type ExtendedEuclidRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type ExtendedEuclidResponse struct {
	G string `json:"g"`
	X string `json:"x"`
	Y string `json:"y"`
}

type ModularInverseRequest struct {
	A string `json:"a"`
	N string `json:"n"`
}

type ShanksRequest struct {
	Base    string `json:"base"`
	Element string `json:"element"`
	Mod     string `json:"mod"`
}

type MultiplicationRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type BigIntResponse struct {
	Value string `json:"value"`
}

// Dispatcher translates the wire-shaped requests above into
// numbertheory/rsa calls and decimal-string responses. It holds no state
// beyond what each call needs and is safe for concurrent use.
type Dispatcher struct{}

func speedOf(useFast bool) numbertheory.Speed {
	if useFast {
		return numbertheory.Fast
	}
	return numbertheory.Slow
}

func parseBig(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}

func (Dispatcher) CreateKeyPair(req CreateKeyPairRequest) (KeyPairResponse, error) {
	nt := numbertheory.New(speedOf(req.UseFast))
	pub, priv, err := rsa.GenerateKeypair(req.ModulusWidth, req.MillerRabinRounds, req.RandomSeed, req.NumberSystemBase, nt)
	if err != nil {
		return KeyPairResponse{}, err
	}
	return KeyPairResponse{
		N:             pub.N.String(),
		E:             pub.E.String(),
		D:             priv.D.String(),
		BlockSizePub:  intToString(pub.BlockSizePub),
		BlockSizePriv: intToString(priv.BlockSizePriv),
	}, nil
}

func (Dispatcher) Encrypt(req EncryptRequest) (CiphertextResponse, error) {
	n, ok1 := parseBig(req.N)
	e, ok2 := parseBig(req.E)
	if !ok1 || !ok2 {
		return CiphertextResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(speedOf(req.UseFast))
	pub := rsa.PublicKey{N: n, E: e, Radix: req.Radix, BlockSizePub: rsa.BlockSizePub(n, req.Radix)}
	ct, err := rsa.Encrypt(req.Plaintext, pub, nt)
	if err != nil {
		return CiphertextResponse{}, err
	}
	return CiphertextResponse{Ciphertext: ct}, nil
}

func (Dispatcher) Decrypt(req DecryptRequest) (PlaintextResponse, error) {
	d, ok1 := parseBig(req.D)
	n, ok2 := parseBig(req.N)
	if !ok1 || !ok2 {
		return PlaintextResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(speedOf(req.UseFast))
	priv := rsa.PrivateKey{D: d, N: n, Radix: req.Radix, BlockSizePriv: rsa.BlockSizePub(n, req.Radix) + 1}
	pt, err := rsa.Decrypt(req.Ciphertext, priv, nt)
	if err != nil {
		return PlaintextResponse{}, err
	}
	return PlaintextResponse{Plaintext: pt}, nil
}

func (Dispatcher) Sign(req SignRequest) (SignatureResponse, error) {
	d, ok1 := parseBig(req.D)
	n, ok2 := parseBig(req.N)
	if !ok1 || !ok2 {
		return SignatureResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(speedOf(req.UseFast))
	priv := rsa.PrivateKey{D: d, N: n, Radix: req.Radix}
	sig, err := rsa.Sign(req.Message, priv, nt)
	if err != nil {
		return SignatureResponse{}, err
	}
	return SignatureResponse{Signature: sig}, nil
}

func (Dispatcher) Verify(req VerifyRequest) (VerifyResponse, error) {
	n, ok1 := parseBig(req.N)
	e, ok2 := parseBig(req.E)
	if !ok1 || !ok2 {
		return VerifyResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(speedOf(req.UseFast))
	pub := rsa.PublicKey{N: n, E: e, Radix: req.Radix}
	valid, err := rsa.Verify(req.Message, req.Signature, pub, nt)
	if err != nil {
		return VerifyResponse{}, err
	}
	return VerifyResponse{Valid: valid}, nil
}

func (Dispatcher) Exponentiation(req ExponentiationRequest) (BigIntResponse, error) {
	base, ok1 := parseBig(req.Base)
	exp, ok2 := parseBig(req.Exp)
	mod, ok3 := parseBig(req.Mod)
	if !ok1 || !ok2 || !ok3 {
		return BigIntResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(speedOf(req.UseFast))
	return BigIntResponse{Value: nt.FastExp(base, exp, mod).String()}, nil
}

func (Dispatcher) ExtendedEuclid(req ExtendedEuclidRequest) (ExtendedEuclidResponse, error) {
	a, ok1 := parseBig(req.A)
	b, ok2 := parseBig(req.B)
	if !ok1 || !ok2 {
		return ExtendedEuclidResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(numbertheory.Fast)
	g, x, y := nt.ExtendedEuclid(a, b)
	return ExtendedEuclidResponse{G: g.String(), X: x.String(), Y: y.String()}, nil
}

func (Dispatcher) ModularInverse(req ModularInverseRequest) (BigIntResponse, error) {
	a, ok1 := parseBig(req.A)
	n, ok2 := parseBig(req.N)
	if !ok1 || !ok2 {
		return BigIntResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(numbertheory.Fast)
	inv, err := nt.ModularInverse(a, n)
	if err != nil {
		return BigIntResponse{}, err
	}
	return BigIntResponse{Value: inv.String()}, nil
}

func (Dispatcher) Shanks(req ShanksRequest) (BigIntResponse, error) {
	base, ok1 := parseBig(req.Base)
	elem, ok2 := parseBig(req.Element)
	mod, ok3 := parseBig(req.Mod)
	if !ok1 || !ok2 || !ok3 {
		return BigIntResponse{}, rsa.ErrDecodeError
	}
	nt := numbertheory.New(numbertheory.Fast)
	x, err := nt.Shanks(base, elem, mod)
	if err != nil {
		return BigIntResponse{}, err
	}
	return BigIntResponse{Value: x.String()}, nil
}

// Multiplication is the plaintext multiplication helper offered alongside
// the number-theory primitives.
func (Dispatcher) Multiplication(req MultiplicationRequest) (BigIntResponse, error) {
	a, ok1 := parseBig(req.A)
	b, ok2 := parseBig(req.B)
	if !ok1 || !ok2 {
		return BigIntResponse{}, rsa.ErrDecodeError
	}
	return BigIntResponse{Value: new(big.Int).Mul(a, b).String()}, nil
}

func intToString(v int) string {
	return big.NewInt(int64(v)).String()
}
