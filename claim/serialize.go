package claim

import (
	"encoding/binary"
)

// Serialize returns the canonical signing payload of a claim:
//
//	[address bytes][tier u32 BE][risk score u32 BE][expiry u64 BE][issuer bytes]
//
// This layout is the wire contract the on-chain verifier reproduces
// independently, so field order and widths must never change unilaterally.
// The two variable length fields carry no length prefix: the split between
// them is fixed only by the out-of-band address encoding convention shared
// with the on-chain side. Anything that needs a self describing encoding
// should archive the claim (see Archive) rather than touch this layout.
//
// Serialization is total: it succeeds for every claim value, well-formed
// or not. Sanity of the fields is Validate's job.
func Serialize(c IdentityClaim) []byte {
	b := make([]byte, 0, len(c.Address)+16+len(c.Issuer))
	b = append(b, c.Address...)
	b = binary.BigEndian.AppendUint32(b, uint32(c.Tier))
	b = binary.BigEndian.AppendUint32(b, c.RiskScore)
	b = binary.BigEndian.AppendUint64(b, c.Expiration)
	b = append(b, c.Issuer...)
	return b
}
