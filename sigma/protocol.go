package sigma

import (
	"fmt"
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// Protocol is an immutable instance of the generic Sigma engine, bound to a
// group, a fixed sequence of generators, a relation descriptor, and a hash
// identity. A single instance may serve many Prove/Verify calls with
// distinct witnesses; it holds non-owning references to the group and
// generators, whose lifetime must cover every call (spec.md §3 "Lifecycles").
type Protocol struct {
	grp        group.Group
	generators []group.Element
	descriptor RelationDescriptor
	hashID     HashID
	fam        family
}

// NewProtocol constructs a Protocol for the given relation, validating the
// descriptor's arity against its kind's required pattern and rejecting any
// generator that is the point at infinity. generators must have length at
// least descriptor.NumGenerator; extra entries are ignored.
func NewProtocol(grp group.Group, generators []group.Element, descriptor RelationDescriptor, hashID HashID) (*Protocol, error) {
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	if len(generators) < descriptor.NumGenerator {
		return nil, fmt.Errorf("%w: need %d generators, got %d",
			ErrArityMismatch, descriptor.NumGenerator, len(generators))
	}
	for i := 0; i < descriptor.NumGenerator; i++ {
		if generators[i] == nil || generators[i].IsIdentity() {
			return nil, fmt.Errorf("%w: generator %d is the identity", ErrGroupError, i)
		}
	}

	fam, err := descriptor.Kind.family()
	if err != nil {
		return nil, err
	}

	return &Protocol{
		grp:        grp,
		generators: generators[:descriptor.NumGenerator],
		descriptor: descriptor,
		hashID:     hashID,
		fam:        fam,
	}, nil
}

// Kind returns the relation kind this instance was built for.
func (p *Protocol) Kind() Kind { return p.descriptor.Kind }

// Descriptor returns the instance's relation descriptor.
func (p *Protocol) Descriptor() RelationDescriptor { return p.descriptor }

func (p *Protocol) checkWitness(witness []*big.Int) error {
	if len(witness) != p.descriptor.NumWitness {
		return fmt.Errorf("%w: expected %d witness scalars, got %d",
			ErrArityMismatch, p.descriptor.NumWitness, len(witness))
	}
	return nil
}

func (p *Protocol) checkStatement(statement []group.Element) error {
	if len(statement) != p.descriptor.NumStatement {
		return fmt.Errorf("%w: expected %d statement elements, got %d",
			ErrArityMismatch, p.descriptor.NumStatement, len(statement))
	}
	return nil
}

// ToStatement applies the relation's homomorphism to witness, producing the
// public statement z = f(witness). witness must have length NumWitness.
func (p *Protocol) ToStatement(witness []*big.Int) ([]group.Element, error) {
	if err := p.checkWitness(witness); err != nil {
		return nil, err
	}
	return apply(p.fam, p.generators, witness, p.grp), nil
}

// ProveBatch builds a BatchProof for witness against statement, using
// rnd_witness as the one-time random witness and context as the Fiat-Shamir
// domain separator. Both witness and rnd_witness must have length
// NumWitness, and statement must have length NumStatement.
func (p *Protocol) ProveBatch(witness []*big.Int, statement []group.Element, rndWitness []*big.Int, context []byte) (BatchProof, error) {
	if err := p.checkWitness(witness); err != nil {
		return BatchProof{}, err
	}
	if err := p.checkWitness(rndWitness); err != nil {
		return BatchProof{}, err
	}
	if err := p.checkStatement(statement); err != nil {
		return BatchProof{}, err
	}

	rndStatement := apply(p.fam, p.generators, rndWitness, p.grp)

	c, err := challenge(p.hashID, p.grp.N(), p.generators, statement, rndStatement, context)
	if err != nil {
		return BatchProof{}, err
	}

	return BatchProof{
		Kind:         p.descriptor.Kind,
		RndStatement: rndStatement,
		Responses:    responses(witness, rndWitness, c, p.grp.N()),
	}, nil
}

// VerifyBatch recomputes the challenge from (generators, statement,
// proof.RndStatement, context) and checks the kind-specific verification
// equations. It never errors on an invalid proof — it returns false. It
// returns ErrKindMismatch if proof.Kind does not match the instance, and
// ErrArityMismatch for malformed inputs.
func (p *Protocol) VerifyBatch(statement []group.Element, proof BatchProof, context []byte) (bool, error) {
	if proof.Kind != p.descriptor.Kind {
		return false, fmt.Errorf("%w: proof is %v, protocol is %v",
			ErrKindMismatch, proof.Kind, p.descriptor.Kind)
	}
	if err := p.checkStatement(statement); err != nil {
		return false, err
	}
	if len(proof.RndStatement) != p.descriptor.NumStatement {
		return false, fmt.Errorf("%w: expected %d rnd_statement elements, got %d",
			ErrArityMismatch, p.descriptor.NumStatement, len(proof.RndStatement))
	}
	if len(proof.Responses) != p.descriptor.NumWitness {
		return false, fmt.Errorf("%w: expected %d responses, got %d",
			ErrArityMismatch, p.descriptor.NumWitness, len(proof.Responses))
	}

	c, err := challenge(p.hashID, p.grp.N(), p.generators, statement, proof.RndStatement, context)
	if err != nil {
		return false, err
	}

	ok := verifyBatchEquations(p.fam, p.generators, statement, proof.RndStatement, proof.Responses, c, p.grp)
	return ok, nil
}

// ProveShort is identical to ProveBatch except the first message is not
// retained: the proof instead carries the challenge, making it smaller on
// the wire at the cost of an extra reconstruction step during verification.
func (p *Protocol) ProveShort(witness []*big.Int, statement []group.Element, rndWitness []*big.Int, context []byte) (ShortProof, error) {
	if err := p.checkWitness(witness); err != nil {
		return ShortProof{}, err
	}
	if err := p.checkWitness(rndWitness); err != nil {
		return ShortProof{}, err
	}
	if err := p.checkStatement(statement); err != nil {
		return ShortProof{}, err
	}

	rndStatement := apply(p.fam, p.generators, rndWitness, p.grp)

	c, err := challenge(p.hashID, p.grp.N(), p.generators, statement, rndStatement, context)
	if err != nil {
		return ShortProof{}, err
	}

	return ShortProof{
		Kind:      p.descriptor.Kind,
		Challenge: c,
		Responses: responses(witness, rndWitness, c, p.grp.N()),
	}, nil
}

// VerifyShort reconstructs rnd_statement from (generators, statement,
// proof.Challenge, proof.Responses) via the kind-specific inversion
// equation, recomputes the challenge over the reconstructed transcript, and
// checks it equals proof.Challenge.
func (p *Protocol) VerifyShort(statement []group.Element, proof ShortProof, context []byte) (bool, error) {
	if proof.Kind != p.descriptor.Kind {
		return false, fmt.Errorf("%w: proof is %v, protocol is %v",
			ErrKindMismatch, proof.Kind, p.descriptor.Kind)
	}
	if err := p.checkStatement(statement); err != nil {
		return false, err
	}
	if len(proof.Responses) != p.descriptor.NumWitness {
		return false, fmt.Errorf("%w: expected %d responses, got %d",
			ErrArityMismatch, p.descriptor.NumWitness, len(proof.Responses))
	}
	if proof.Challenge == nil {
		return false, fmt.Errorf("%w: missing challenge", ErrArityMismatch)
	}

	rndStatement := reconstructRndStatement(p.fam, p.generators, statement, proof.Responses, proof.Challenge, p.grp)

	c, err := challenge(p.hashID, p.grp.N(), p.generators, statement, rndStatement, context)
	if err != nil {
		return false, err
	}

	return c.Cmp(proof.Challenge) == 0, nil
}
