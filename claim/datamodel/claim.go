package datamodel

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed claim.ipldsch
var claimsch []byte

var (
	once sync.Once
	ts   *schema.TypeSystem
	err  error
)

func mustLoadSchema() *schema.TypeSystem {
	once.Do(func() {
		ts, err = ipld.LoadSchemaBytes(claimsch)
	})
	if err != nil {
		panic(fmt.Errorf("failed to load IPLD schema: %s", err))
	}
	return ts
}

func Type() schema.Type {
	return mustLoadSchema().TypeByName("SignedClaim")
}

// SignedClaimModel is the schema bound archive form of a signed claim.
// It is self describing, unlike the canonical signing payload, so it can
// be stored or shipped without the out-of-band address length convention.
type SignedClaimModel struct {
	Add string
	Tir uint64
	Rsk uint64
	Exp uint64
	Iss string
	Sig []byte
}

// Encode the model as dag-cbor.
func Encode(m *SignedClaimModel) ([]byte, error) {
	return ipld.Marshal(dagcbor.Encode, m, Type())
}

// Decode dag-cbor bytes into a model.
func Decode(b []byte) (*SignedClaimModel, error) {
	m := SignedClaimModel{}
	_, err := ipld.Unmarshal(b, dagcbor.Decode, &m, Type())
	if err != nil {
		return nil, err
	}
	return &m, nil
}
