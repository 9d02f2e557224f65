package codec

import (
	"math/big"
	"testing"
)

func TestToRadixStringExamples(t *testing.T) {
	got, err := ToRadixString(big.NewInt(123456789), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := string([]rune{7, 5, 11, 12, 13, 1, 5})
	if got != want {
		t.Fatalf("ToRadixString(123456789, 16) = %q, want %q", got, want)
	}
}

func TestToRadixStringZero(t *testing.T) {
	got, err := ToRadixString(big.NewInt(0), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("ToRadixString(0, 16) = %q, want empty string", got)
	}
}

func TestToRadixStringOverflowsUnicode(t *testing.T) {
	_, err := ToRadixString(big.NewInt(1114112), 11141120)
	if err != ErrUnmappableCodepoint {
		t.Fatalf("err = %v, want ErrUnmappableCodepoint", err)
	}
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid decimal literal %q", s)
	}
	return n
}

func TestEncodeKnownBlocks(t *testing.T) {
	key := Key{Radix: 55296, BlockSize: 8}
	text := "Da苉 ist eine Testnachricht"

	sums, err := key.Encode(text, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []*big.Int{
		mustBig(t, "107492014297546449612193802144047136"),
		mustBig(t, "159656113899559548508775364389320819"),
		mustBig(t, "183367115080887221772378868133959779"),
		mustBig(t, "164398599962708992705465769095004192"),
	}
	if len(sums) != len(want) {
		t.Fatalf("Encode returned %d blocks, want %d", len(sums), len(want))
	}
	for i, w := range want {
		if sums[i].Cmp(w) != 0 {
			t.Fatalf("block %d = %s, want %s", i, sums[i], w)
		}
	}

	decoded, err := key.Decode(sums)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != text+"      " {
		t.Fatalf("Decode = %q, want %q", decoded, text+"      ")
	}
}

func TestFromDecimalBlockRoundTrip(t *testing.T) {
	key := Key{Radix: 55296, BlockSize: 8}
	blocks := []*big.Int{
		mustBig(t, "107492014297546449612193802144047136"),
		mustBig(t, "159656113899559548508775364389320819"),
		mustBig(t, "183367115080887221772378868133959779"),
		big.NewInt(5750900),
	}

	ciphertext, err := key.FromDecimalBlock(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Da苉 ist eine Testnachric" + string([]rune{0, 0, 0, 0, 0, 0}) + "ht"
	if ciphertext != want {
		t.Fatalf("FromDecimalBlock = %q, want %q", ciphertext, want)
	}

	decoded, err := key.ToDecimalBlock(ciphertext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(blocks) {
		t.Fatalf("ToDecimalBlock returned %d blocks, want %d", len(decoded), len(blocks))
	}
	for i, b := range blocks {
		if decoded[i].Cmp(b) != 0 {
			t.Fatalf("block %d = %s, want %s", i, decoded[i], b)
		}
	}
}

func TestFromDecimalBlockEmpty(t *testing.T) {
	key := Key{Radix: 55296, BlockSize: 8}

	ciphertext, err := key.FromDecimalBlock(nil)
	if err != nil || ciphertext != "" {
		t.Fatalf("FromDecimalBlock(nil) = (%q, %v), want (\"\", nil)", ciphertext, err)
	}

	decoded, err := key.ToDecimalBlock("")
	if err != nil || len(decoded) != 0 {
		t.Fatalf("ToDecimalBlock(\"\") = (%v, %v), want (nil, nil)", decoded, err)
	}
}

func TestEncodeDecodeRoundTripAsciiPadded(t *testing.T) {
	key := Key{Radix: 55296, BlockSize: 4}
	text := "Das ist eine Testnachricht"

	sums, err := key.Encode(text, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := key.Decode(sums)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every block here starts with a non-zero-digit character, so
	// Decode(Encode(text)) reproduces text plus trailing pad spaces.
	padded := text
	for len([]rune(padded))%key.BlockSize != 0 {
		padded += " "
	}
	if decoded != padded {
		t.Fatalf("round trip = %q, want %q", decoded, padded)
	}
}

func TestEncodeInvalidKey(t *testing.T) {
	if _, err := (Key{Radix: 1, BlockSize: 4}).Encode("x", true); err != ErrInvalidInput {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := (Key{Radix: 55296, BlockSize: 0}).Encode("x", true); err != ErrInvalidInput {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestToDecimalBlockRejectsMisalignedLength(t *testing.T) {
	key := Key{Radix: 55296, BlockSize: 8}
	if _, err := key.ToDecimalBlock("short"); err != ErrDecodeError {
		t.Fatalf("err = %v, want ErrDecodeError", err)
	}
}
