package keystore

import (
	"math/big"
	"testing"

	"rsalab/src/rsa"
)

func samplePrivateKey() rsa.PrivateKey {
	return rsa.PrivateKey{
		D:             big.NewInt(123456789),
		N:             big.NewInt(987654321987),
		Radix:         55296,
		BlockSizePriv: 5,
	}
}

func TestSealOpenRoundTrip(t *testing.T) {
	priv := samplePrivateKey()
	env, err := Seal(priv, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	recovered, err := Open(env, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if recovered.D.Cmp(priv.D) != 0 || recovered.N.Cmp(priv.N) != 0 {
		t.Fatalf("recovered key = %+v, want %+v", recovered, priv)
	}
	if recovered.Radix != priv.Radix || recovered.BlockSizePriv != priv.BlockSizePriv {
		t.Fatalf("recovered metadata = %+v, want %+v", recovered, priv)
	}
}

func TestOpenRejectsWrongPassphrase(t *testing.T) {
	priv := samplePrivateKey()
	env, err := Seal(priv, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if _, err := Open(env, []byte("wrong passphrase")); err != ErrWrongPassphrase {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	priv := samplePrivateKey()
	env, err := Seal(priv, []byte("a passphrase"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	data := Marshal(env)
	parsed, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	recovered, err := Open(parsed, []byte("a passphrase"))
	if err != nil {
		t.Fatalf("Open after Unmarshal failed: %v", err)
	}
	if recovered.D.Cmp(priv.D) != 0 {
		t.Fatalf("recovered.D = %v, want %v", recovered.D, priv.D)
	}
}

func TestUnmarshalRejectsTruncatedData(t *testing.T) {
	if _, err := Unmarshal([]byte("too short")); err != ErrMalformedEnvelope {
		t.Fatalf("err = %v, want ErrMalformedEnvelope", err)
	}
}
