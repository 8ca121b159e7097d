package sigma

import (
	"fmt"
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// TranscriptPart is one relation's contribution to a joint Fiat-Shamir
// transcript: its generators, statement, and first message. JointChallenge
// concatenates several parts into a single challenge, letting an
// AND-composition of Protocol instances — possibly over different groups —
// share one challenge instead of deriving one per sub-relation.
type TranscriptPart struct {
	Generators   []group.Element
	Statement    []group.Element
	RndStatement []group.Element
}

// JointChallenge hashes every part's transcript, in order, into one
// challenge. Unlike the per-relation challenge a Protocol derives internally,
// the result is not reduced modulo any single group's order: composed
// relations may live in groups of different order, and each sub-relation
// reduces the shared challenge modulo its own order when it calls Respond or
// CheckEquations.
func JointChallenge(hashID HashID, parts []TranscriptPart, context []byte) (*big.Int, error) {
	h, err := hashID.new()
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		for _, g := range part.Generators {
			if err := writePoint(h, g); err != nil {
				return nil, err
			}
		}
		for _, z := range part.Statement {
			if err := writePoint(h, z); err != nil {
				return nil, err
			}
		}
		for _, a := range part.RndStatement {
			if err := writePoint(h, a); err != nil {
				return nil, err
			}
		}
	}
	h.Write(context)
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// Generators returns the instance's generator sequence, for building this
// relation's TranscriptPart in an AND-composition.
func (p *Protocol) Generators() []group.Element { return p.generators }

// Group returns the instance's group, so a composing caller can read its
// order or sample fresh randomness in it.
func (p *Protocol) Group() group.Group { return p.grp }

// FirstMessage computes the first message (rnd_statement) for rndWitness
// without deriving a challenge. It is the building block an AND-composition
// needs before a joint challenge can be computed across several relations.
func (p *Protocol) FirstMessage(rndWitness []*big.Int) ([]group.Element, error) {
	if err := p.checkWitness(rndWitness); err != nil {
		return nil, err
	}
	return apply(p.fam, p.generators, rndWitness, p.grp), nil
}

// Respond computes this relation's responses under an externally supplied
// challenge, e.g. one produced by JointChallenge. c is reduced modulo this
// instance's group order before use.
func (p *Protocol) Respond(witness, rndWitness []*big.Int, c *big.Int) ([]*big.Int, error) {
	if err := p.checkWitness(witness); err != nil {
		return nil, err
	}
	if err := p.checkWitness(rndWitness); err != nil {
		return nil, err
	}
	reduced := new(big.Int).Mod(c, p.grp.N())
	return responses(witness, rndWitness, reduced, p.grp.N()), nil
}

// CheckEquations checks this relation's batch verification equations under
// an externally supplied challenge. c is reduced modulo this instance's
// group order before use, matching Respond.
func (p *Protocol) CheckEquations(statement, rndStatement []group.Element, response []*big.Int, c *big.Int) (bool, error) {
	if err := p.checkStatement(statement); err != nil {
		return false, err
	}
	if len(rndStatement) != p.descriptor.NumStatement {
		return false, fmt.Errorf("%w: expected %d rnd_statement elements, got %d",
			ErrArityMismatch, p.descriptor.NumStatement, len(rndStatement))
	}
	if len(response) != p.descriptor.NumWitness {
		return false, fmt.Errorf("%w: expected %d responses, got %d",
			ErrArityMismatch, p.descriptor.NumWitness, len(response))
	}
	reduced := new(big.Int).Mod(c, p.grp.N())
	return verifyBatchEquations(p.fam, p.generators, statement, rndStatement, response, reduced, p.grp), nil
}
