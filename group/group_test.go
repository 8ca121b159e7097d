package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var allGroups = []Group{
	P256(),
	P384(),
	Ristretto255(),
	SecP256k1(),
}

func TestGroupMath(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name()+"/doubling", func(t *testing.T) {
			a := g.Element().BaseScale(big.NewInt(2))
			b := g.Element().Add(g.Generator(), g.Generator())
			require.True(t, a.IsEqual(b))
		})

		t.Run(g.Name()+"/tripling", func(t *testing.T) {
			a := g.Element().BaseScale(big.NewInt(2))
			a = g.Element().Add(a, g.Generator())
			b := g.Element().BaseScale(big.NewInt(3))
			require.True(t, a.IsEqual(b))
		})

		t.Run(g.Name()+"/subtract_inverts_add", func(t *testing.T) {
			e := g.Identity()
			r1 := g.Random()
			r2 := g.Random()
			e = g.Element().Add(r1, r2)
			e = g.Element().Subtract(e, r2)
			require.True(t, e.IsEqual(r1))
		})

		t.Run(g.Name()+"/order_annihilates", func(t *testing.T) {
			p := g.Random()
			q := g.Element().Scale(p, g.N())
			require.True(t, q.IsIdentity())
		})

		t.Run(g.Name()+"/negate_then_add_is_identity", func(t *testing.T) {
			p := g.Random()
			neg := g.Element().Negate(p)
			sum := g.Element().Add(p, neg)
			require.True(t, sum.IsIdentity())
		})

		t.Run(g.Name()+"/marshal_roundtrip", func(t *testing.T) {
			p := g.Random()
			b, err := p.MarshalBinary()
			require.NoError(t, err)
			q := g.Element()
			require.NoError(t, q.UnmarshalBinary(b))
			require.True(t, p.IsEqual(q))
		})

		t.Run(g.Name()+"/set", func(t *testing.T) {
			p := g.Random()
			q := g.Element().Set(p)
			require.True(t, p.IsEqual(q))
		})
	}
}

func TestDomainGenerators(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			gens, err := DomainGenerators(g, 3, "id")
			require.NoError(t, err)
			require.Len(t, gens, 3)
			for _, h := range gens {
				require.False(t, h.IsIdentity())
			}
			require.False(t, gens[0].IsEqual(gens[1]))
			require.False(t, gens[1].IsEqual(gens[2]))
		})
	}
}
