package signature

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-varint"
)

// EdDSA is the multicodec for an Ed25519 signature, the reference scheme
// for identity claims.
const EdDSA = 0xd0ed

// EdDSARawSize is the raw signature size for the EdDSA scheme.
const EdDSARawSize = 64

// CodeName returns the human readable name of a signature algorithm
// multicodec.
func CodeName(code uint64) (string, error) {
	switch code {
	case EdDSA:
		return "EdDSA", nil
	default:
		return "", fmt.Errorf("unknown signature algorithm code: 0x%x", code)
	}
}

// NameCode returns the multicodec of a signature algorithm from its human
// readable name.
func NameCode(name string) (uint64, error) {
	switch name {
	case "EdDSA":
		return EdDSA, nil
	default:
		return 0, fmt.Errorf("unknown signature algorithm: %s", name)
	}
}

// Signature is a self describing signature envelope. The bytes carry a
// varint algorithm tag and length followed by the raw signature. Off-chain
// collaborators exchange the envelope; an on-chain verifier consumes only
// Raw().
type Signature interface {
	Code() uint64
	Size() uint64
	Bytes() []byte
	// Raw signature (without the signature algorithm info).
	Raw() []byte
}

func NewSignature(code uint64, raw []byte) Signature {
	cl := varint.UvarintSize(code)
	rl := varint.UvarintSize(uint64(len(raw)))
	sig := make(signature, cl+rl+len(raw))
	varint.PutUvarint(sig, code)
	varint.PutUvarint(sig[cl:], uint64(len(raw)))
	copy(sig[cl+rl:], raw)
	return sig
}

func Encode(s Signature) []byte {
	return s.Bytes()
}

func Decode(b []byte) Signature {
	return signature(b)
}

// DecodeChecked decodes a signature envelope from untrusted bytes. Unlike
// Decode it fails when the envelope is structurally malformed: a missing
// or truncated varint header, or a raw payload whose length disagrees
// with the declared size. Accessors of the returned signature never read
// out of range.
func DecodeChecked(b []byte) (Signature, error) {
	r := bytes.NewReader(b)
	code, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading signature algorithm: %w", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading signature size: %w", err)
	}
	raw := len(b) - varint.UvarintSize(code) - varint.UvarintSize(size)
	if uint64(raw) != size {
		return nil, fmt.Errorf("signature envelope declares %d raw bytes but carries %d", size, raw)
	}
	return signature(b), nil
}

type signature []byte

func (s signature) Code() uint64 {
	c, _ := varint.ReadUvarint(bytes.NewReader(s))
	return c
}

func (s signature) Size() uint64 {
	n, _ := varint.ReadUvarint(bytes.NewReader(s[varint.UvarintSize(s.Code()):]))
	return n
}

func (s signature) Raw() []byte {
	cl := varint.UvarintSize(s.Code())
	rl := varint.UvarintSize(s.Size())
	return s[cl+rl:]
}

func (s signature) Bytes() []byte {
	return s
}

// SignatureView is a signature that can verify the message it was produced
// from.
type SignatureView interface {
	Signature
	// Verify that the signature was produced over the given message by the
	// signer corresponding to the passed verifier.
	Verify(msg []byte, verifier Verifier) bool
}

func NewSignatureView(s Signature) SignatureView {
	return signatureView(signature(s.Bytes()))
}

type signatureView signature

func (v signatureView) Bytes() []byte {
	return signature(v).Bytes()
}

func (v signatureView) Code() uint64 {
	return signature(v).Code()
}

func (v signatureView) Raw() []byte {
	return signature(v).Raw()
}

func (v signatureView) Size() uint64 {
	return signature(v).Size()
}

func (v signatureView) Verify(msg []byte, verifier Verifier) bool {
	return verifier.Verify(msg, v)
}
