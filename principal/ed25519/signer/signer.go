package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/kycgate/go-idclaim/claim/crypto/signature"
	"github.com/kycgate/go-idclaim/did"
	"github.com/kycgate/go-idclaim/principal"
	"github.com/kycgate/go-idclaim/principal/ed25519/verifier"
	"github.com/kycgate/go-idclaim/principal/multiformat"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

var Code = uint64(multicodec.Ed25519Priv)

const Name = verifier.Name

const SignatureCode = verifier.SignatureCode
const SignatureAlgorithm = verifier.SignatureAlgorithm

var privateTagSize = varint.UvarintSize(Code)
var publicTagSize = varint.UvarintSize(verifier.Code)

const keySize = 32

var size = privateTagSize + keySize + publicTagSize + keySize
var pubKeyOffset = privateTagSize + keySize

func Generate() (principal.Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 key: %w", err)
	}
	return FromRaw(priv, pub)
}

// FromSeed derives a signer from a 32 byte Ed25519 seed.
func FromSeed(seed []byte) (principal.Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: %d wanted: %d", len(seed), ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return FromRaw(priv, priv.Public().(ed25519.PublicKey))
}

// FromRaw wraps a raw Ed25519 private/public key pair in a signer.
func FromRaw(priv ed25519.PrivateKey, pub ed25519.PublicKey) (principal.Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d wanted: %d", len(priv), ed25519.PrivateKeySize)
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length: %d wanted: %d", len(pub), ed25519.PublicKeySize)
	}
	s := make(Ed25519Signer, size)
	varint.PutUvarint(s, Code)
	copy(s[privateTagSize:], priv.Seed())
	varint.PutUvarint(s[pubKeyOffset:], verifier.Code)
	copy(s[pubKeyOffset+publicTagSize:], pub)
	return s, nil
}

// Parse a multibase encoded signer.
func Parse(str string) (principal.Signer, error) {
	_, bytes, err := multibase.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("decoding multibase string: %w", err)
	}
	return Decode(bytes)
}

// Format encodes a signer as a multibase (base64pad) string, the inverse
// of Parse.
func Format(signer principal.Signer) (string, error) {
	return multibase.Encode(multibase.Base64pad, signer.Encode())
}

func Decode(b []byte) (principal.Signer, error) {
	if len(b) != size {
		return nil, fmt.Errorf("invalid length: %d wanted: %d", len(b), size)
	}

	if _, err := multiformat.UntagWith(Code, b, 0); err != nil {
		return nil, fmt.Errorf("decoding private key: %w", err)
	}

	if _, err := verifier.Decode(b[pubKeyOffset:]); err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}

	s := make(Ed25519Signer, size)
	copy(s, b)

	return s, nil
}

type Ed25519Signer []byte

func (s Ed25519Signer) Code() uint64 {
	return Code
}

func (s Ed25519Signer) SignatureCode() uint64 {
	return SignatureCode
}

func (s Ed25519Signer) SignatureAlgorithm() string {
	return SignatureAlgorithm
}

func (s Ed25519Signer) Verifier() principal.Verifier {
	return verifier.Ed25519Verifier(s[pubKeyOffset:])
}

func (s Ed25519Signer) DID() did.DID {
	id, _ := did.Decode(s[pubKeyOffset:])
	return id
}

func (s Ed25519Signer) Encode() []byte {
	return s
}

// Raw reconstructs the full Ed25519 private key from the stored seed and
// public key.
func (s Ed25519Signer) Raw() []byte {
	pk := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(pk, s[privateTagSize:pubKeyOffset])
	copy(pk[ed25519.SeedSize:], s[pubKeyOffset+publicTagSize:])
	return pk
}

func (s Ed25519Signer) Sign(msg []byte) signature.SignatureView {
	return signature.NewSignatureView(signature.NewSignature(SignatureCode, ed25519.Sign(s.Raw(), msg)))
}
