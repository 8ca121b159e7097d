package sigma

import (
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// apply computes the kind's one-way homomorphism over scalars, using the
// generators in grp. It is used both to derive a statement from a witness
// (ToStatement) and to derive the first message from a random witness
// (ProveBatch/ProveShort), since both are the same formula applied to a
// different scalar vector (spec.md §2: "Data flows").
func apply(fam family, generators []group.Element, scalars []*big.Int, grp group.Group) []group.Element {
	switch fam {
	case perIndexFamily:
		out := make([]group.Element, len(generators))
		for i := range generators {
			out[i] = grp.Element().Scale(generators[i], scalars[i])
		}
		return out
	case sumFamily:
		acc := grp.Element().Scale(generators[0], scalars[0])
		for i := 1; i < len(generators); i++ {
			term := grp.Element().Scale(generators[i], scalars[i])
			acc = grp.Element().Add(acc, term)
		}
		return []group.Element{acc}
	case sharedWitnessFamily:
		x := scalars[0]
		out := make([]group.Element, len(generators))
		for i := range generators {
			out[i] = grp.Element().Scale(generators[i], x)
		}
		return out
	default:
		return nil
	}
}

// verifyBatchEquations checks the kind-specific batch verification
// equations of spec.md §4.3, returning the logical AND of every equation.
func verifyBatchEquations(fam family, generators, statement, rndStatement []group.Element, response []*big.Int, c *big.Int, grp group.Group) bool {
	switch fam {
	case perIndexFamily:
		ok := true
		for i := range statement {
			lhs := grp.Element().Add(rndStatement[i], grp.Element().Scale(statement[i], c))
			rhs := grp.Element().Scale(generators[i], response[i])
			ok = ok && lhs.IsEqual(rhs)
		}
		return ok
	case sumFamily:
		lhs := grp.Element().Add(rndStatement[0], grp.Element().Scale(statement[0], c))
		rhs := grp.Element().Scale(generators[0], response[0])
		for i := 1; i < len(generators); i++ {
			rhs = grp.Element().Add(rhs, grp.Element().Scale(generators[i], response[i]))
		}
		return lhs.IsEqual(rhs)
	case sharedWitnessFamily:
		ok := true
		for i := range statement {
			lhs := grp.Element().Add(rndStatement[i], grp.Element().Scale(statement[i], c))
			rhs := grp.Element().Scale(generators[i], response[0])
			ok = ok && lhs.IsEqual(rhs)
		}
		return ok
	default:
		return false
	}
}

// reconstructRndStatement inverts the kind-specific verification equation to
// recover rnd_statement from (generators, statement, challenge, response),
// as required by the short proof form (spec.md §4.3 "Short reconstruct").
func reconstructRndStatement(fam family, generators, statement []group.Element, response []*big.Int, c *big.Int, grp group.Group) []group.Element {
	switch fam {
	case perIndexFamily:
		out := make([]group.Element, len(statement))
		for i := range statement {
			term := grp.Element().Scale(generators[i], response[i])
			out[i] = grp.Element().Subtract(term, grp.Element().Scale(statement[i], c))
		}
		return out
	case sumFamily:
		acc := grp.Element().Scale(generators[0], response[0])
		for i := 1; i < len(generators); i++ {
			acc = grp.Element().Add(acc, grp.Element().Scale(generators[i], response[i]))
		}
		out := grp.Element().Subtract(acc, grp.Element().Scale(statement[0], c))
		return []group.Element{out}
	case sharedWitnessFamily:
		out := make([]group.Element, len(statement))
		for i := range statement {
			term := grp.Element().Scale(generators[i], response[0])
			out[i] = grp.Element().Subtract(term, grp.Element().Scale(statement[i], c))
		}
		return out
	default:
		return nil
	}
}

// responses computes, for every witness index, (challenge*witness[i] +
// rnd_witness[i]) mod q (spec.md §4.2 step 3), the same formula for every
// kind-family.
func responses(witness, rndWitness []*big.Int, c, order *big.Int) []*big.Int {
	out := make([]*big.Int, len(witness))
	for i := range witness {
		s := new(big.Int).Mul(c, witness[i])
		s.Add(s, rndWitness[i])
		s.Mod(s, order)
		out[i] = s
	}
	return out
}
