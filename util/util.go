// Package util holds small group-arithmetic helpers for callers of the sigma
// engine; the engine itself does not import it.
package util

import (
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// Represent computes h1*x1 + ... + hn*xn, the homomorphism behind the
// Pedersen and Representation relation kinds. PedersenCommit is the n=2
// case: a commitment to secret x using blinding factor r under generator h.
func Represent(xs []*big.Int, hs []group.Element, grp group.Group) group.Element {
	acc := grp.Element().Scale(hs[0], xs[0])
	for i := 1; i < len(xs); i++ {
		acc = grp.Element().Add(acc, grp.Element().Scale(hs[i], xs[i]))
	}
	return acc
}

// PedersenCommit creates a commitment to secret x using randomness r, base
// generator g and blinding generator h, both in group grp.
func PedersenCommit(x, r *big.Int, g, h group.Element, grp group.Group) group.Element {
	return Represent([]*big.Int{x, r}, []group.Element{g, h}, grp)
}
