package signer

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateEncodeDecode(t *testing.T) {
	s0, err := Generate()
	if err != nil {
		t.Fatalf("generating Ed25519 key: %v", err)
	}

	s1, err := Decode(s0.Encode())
	if err != nil {
		t.Fatalf("decoding Ed25519 key: %v", err)
	}

	if s0.DID().String() != s1.DID().String() {
		t.Fatalf("public key mismatch: %s != %s", s0.DID().String(), s1.DID().String())
	}
}

func TestGenerateFormatParse(t *testing.T) {
	s0, err := Generate()
	if err != nil {
		t.Fatalf("generating Ed25519 key: %v", err)
	}

	str, err := Format(s0)
	if err != nil {
		t.Fatalf("formatting Ed25519 key: %v", err)
	}

	s1, err := Parse(str)
	if err != nil {
		t.Fatalf("parsing Ed25519 key: %v", err)
	}

	if s0.DID().String() != s1.DID().String() {
		t.Fatalf("public key mismatch: %s != %s", s0.DID().String(), s1.DID().String())
	}
}

func TestVerify(t *testing.T) {
	s0, err := Generate()
	if err != nil {
		t.Fatalf("generating Ed25519 key: %v", err)
	}

	msg := []byte("testy")
	sig := s0.Sign(msg)

	res := s0.Verifier().Verify(msg, sig)
	if res != true {
		t.Fatalf("verify failed")
	}
}

func TestSignerRaw(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)

	msg := []byte{1, 2, 3}
	raw := s.Raw()
	sig := ed25519.Sign(raw, msg)
	require.Equal(t, sig, s.Sign(msg).Raw())
}

func TestFromSeed(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	s0, err := FromSeed(seed)
	require.NoError(t, err)

	s1, err := FromSeed(seed)
	require.NoError(t, err)

	// deterministic
	require.Equal(t, s0.Encode(), s1.Encode())
	require.Equal(t, s0.DID().String(), s1.DID().String())

	_, err = FromSeed(seed[:16])
	require.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	require.Error(t, err)

	s, err := Generate()
	require.NoError(t, err)

	b := make([]byte, len(s.Encode()))
	copy(b, s.Encode())
	b[0] = 0xff // clobber the private key tag
	_, err = Decode(b)
	require.Error(t, err)
}
