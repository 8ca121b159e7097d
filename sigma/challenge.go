package sigma

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"

	"github.com/takakv/msc-poc/group"
	"golang.org/x/crypto/sha3"
)

// HashID selects the hash function backing a protocol instance's challenge
// oracle. The zero value is SHA256, matching spec.md §4.4's default.
type HashID int

const (
	// SHA256 is the default Fiat-Shamir hash, giving a 32-byte digest.
	SHA256 HashID = iota
	// SHA3_256 is an alternate digest, useful when a caller wants to bind
	// proofs produced under distinct hash identities apart (spec.md §4.4:
	// "changing the hash between prover and verifier produces a validation
	// failure, not a protocol error").
	SHA3_256
)

func (h HashID) new() (hash.Hash, error) {
	switch h {
	case SHA256:
		return sha256.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("sigma: unknown hash id %d", int(h))
	}
}

// challenge recomputes the Fiat-Shamir challenge over the canonical
// transcript:
//
//	serialize(h1) || ... || serialize(hn) || serialize(z1) || ... ||
//	serialize(zm) || serialize(a1) || ... || serialize(am) || context
//
// where hi are the protocol's generators, zi is the statement, ai is the
// first message (rnd_statement), and context is the caller-supplied
// domain-separation string. The digest is interpreted as a big-endian
// unsigned integer and reduced mod the group order, so prover and verifier
// apply the same convention (spec.md §4.4, and the "Open Questions" note on
// reduced vs. unbounded interpretation — this module reduces mod q).
func challenge(hashID HashID, order *big.Int, generators, statement, rndStatement []group.Element, context []byte) (*big.Int, error) {
	h, err := hashID.new()
	if err != nil {
		return nil, err
	}

	for _, g := range generators {
		if err := writePoint(h, g); err != nil {
			return nil, err
		}
	}
	for _, z := range statement {
		if err := writePoint(h, z); err != nil {
			return nil, err
		}
	}
	for _, a := range rndStatement {
		if err := writePoint(h, a); err != nil {
			return nil, err
		}
	}
	h.Write(context)

	digest := h.Sum(nil)
	c := new(big.Int).SetBytes(digest)
	c.Mod(c, order)
	return c, nil
}

func writePoint(h hash.Hash, e group.Element) error {
	b, err := e.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGroupError, err)
	}
	h.Write(b)
	return nil
}
