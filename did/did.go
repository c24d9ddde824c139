package did

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/kycgate/go-idclaim/principal/multiformat"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

const Prefix = "did:"
const KeyPrefix = Prefix + "key:"

// Code is the multicodec for a DID that is not a did:key. The method and
// method specific identifier are carried as plain UTF-8 after the tag.
const Code = 0x0d1d

var keyCode = uint64(multicodec.Ed25519Pub)

// Undef can be used to represent a nil or undefined DID, using DID{}
// directly is also acceptable.
var Undef = DID{}

// DID is a decentralized identifier. For a did:key the bytes are the
// multicodec tagged public key, for any other method they are the tagged
// method and identifier string.
type DID struct {
	bytes []byte
}

func (d DID) Defined() bool {
	return len(d.bytes) > 0
}

func (d DID) Bytes() []byte {
	return d.bytes
}

// Key returns true if this DID uses the did:key method.
func (d DID) Key() bool {
	code, err := varint.ReadUvarint(bytes.NewReader(d.bytes))
	if err != nil {
		return false
	}
	return code == keyCode
}

// DID implements the Principal interface for a DID by returning itself.
func (d DID) DID() DID {
	return d
}

func (d DID) String() string {
	if !d.Defined() {
		return ""
	}
	if d.Key() {
		str, _ := multibase.Encode(multibase.Base58BTC, d.bytes)
		return KeyPrefix + str
	}
	suffix, _ := multiformat.UntagWith(Code, d.bytes, 0)
	return Prefix + string(suffix)
}

// Decode a DID from its tagged byte representation.
func Decode(b []byte) (DID, error) {
	code, err := varint.ReadUvarint(bytes.NewReader(b))
	if err != nil {
		return Undef, fmt.Errorf("reading DID codec: %w", err)
	}
	switch code {
	case keyCode, Code:
		d := make([]byte, len(b))
		copy(d, b)
		return DID{d}, nil
	default:
		return Undef, fmt.Errorf("unsupported DID codec: 0x%x", code)
	}
}

// Parse a DID from its string representation e.g.
// did:key:z6Mkod5Jr3yd5SC7UDueqK4dAAw5xYJYjksy722tA9Boxc4z
func Parse(str string) (DID, error) {
	if !strings.HasPrefix(str, Prefix) {
		return Undef, fmt.Errorf("must start with 'did:'")
	}
	if strings.HasPrefix(str, KeyPrefix) {
		_, b, err := multibase.Decode(str[len(KeyPrefix):])
		if err != nil {
			return Undef, fmt.Errorf("decoding multibase string: %w", err)
		}
		if _, err := multiformat.UntagWith(keyCode, b, 0); err != nil {
			return Undef, err
		}
		return DID{b}, nil
	}
	return DID{multiformat.TagWith(Code, []byte(str[len(Prefix):]))}, nil
}
