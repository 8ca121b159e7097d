package sigma

import (
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// BatchProof is the "batch" proof shape: it carries the first message
// (rnd_statement) explicitly alongside the responses, so the verifier never
// needs to recompute it. It transmits O(num_statement) points plus
// O(num_witness) scalars (spec.md §4.2).
type BatchProof struct {
	Kind         Kind
	RndStatement []group.Element
	Responses    []*big.Int
}

// ShortProof is the "short" proof shape: it carries the challenge instead of
// the first message, and the verifier reconstructs rnd_statement from the
// kind-specific inversion equation. It transmits O(num_witness)+1 scalars,
// smaller on the wire than BatchProof at the cost of one extra group
// computation during verification (spec.md §4.2).
type ShortProof struct {
	Kind      Kind
	Challenge *big.Int
	Responses []*big.Int
}
