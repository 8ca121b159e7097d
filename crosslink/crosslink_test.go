package crosslink

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/msc-poc/group"
)

func commitmentSetup(t *testing.T, grp group.Group) (g, h group.Element) {
	t.Helper()
	g, err := grp.Element().MapToGroup("crosslink-g")
	require.NoError(t, err)
	h, err = grp.Element().MapToGroup("crosslink-h")
	require.NoError(t, err)
	return g, h
}

func TestEqualValueAcrossGroups(t *testing.T) {
	groupA := group.P256()
	groupB := group.SecP256k1()

	gA, hA := commitmentSetup(t, groupA)
	gB, hB := commitmentSetup(t, groupB)

	m := big.NewInt(1234567)
	rA, err := rand.Int(rand.Reader, groupA.N())
	require.NoError(t, err)
	rB, err := rand.Int(rand.Reader, groupB.N())
	require.NoError(t, err)

	cA := groupA.Element().Add(groupA.Element().Scale(gA, m), groupA.Element().Scale(hA, rA))
	cB := groupB.Element().Add(groupB.Element().Scale(gB, m), groupB.Element().Scale(hB, rB))

	context := []byte("crosslink-test")
	proof, err := ProveEqualValue(groupA, gA, hA, rA, groupB, gB, hB, rB, m, context)
	require.NoError(t, err)

	ok, err := VerifyEqualValue(groupA, gA, hA, cA, groupB, gB, hB, cB, proof, context)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEqualValueRejectsMismatchedValues(t *testing.T) {
	groupA := group.P256()
	groupB := group.Ristretto255()

	gA, hA := commitmentSetup(t, groupA)
	gB, hB := commitmentSetup(t, groupB)

	mA := big.NewInt(11)
	mB := big.NewInt(12)
	rA, err := rand.Int(rand.Reader, groupA.N())
	require.NoError(t, err)
	rB, err := rand.Int(rand.Reader, groupB.N())
	require.NoError(t, err)

	cA := groupA.Element().Add(groupA.Element().Scale(gA, mA), groupA.Element().Scale(hA, rA))
	cB := groupB.Element().Add(groupB.Element().Scale(gB, mB), groupB.Element().Scale(hB, rB))

	context := []byte("crosslink-test")
	// A dishonest prover proves mA against cA, but the verifier's cB commits
	// to a different value. The prover's transcript carries its own group-B
	// commitment gB*mA + hB*rB rather than cB, so the verifier recomputes a
	// different joint challenge, and the group-B equation cannot hold for cB
	// because the proof's responses open it to mA, not mB.
	proof, err := ProveEqualValue(groupA, gA, hA, rA, groupB, gB, hB, rB, mA, context)
	require.NoError(t, err)

	ok, err := VerifyEqualValue(groupA, gA, hA, cA, groupB, gB, hB, cB, proof, context)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEqualValueRejectsWrongContext(t *testing.T) {
	groupA := group.P256()
	groupB := group.SecP256k1()

	gA, hA := commitmentSetup(t, groupA)
	gB, hB := commitmentSetup(t, groupB)

	m := big.NewInt(7)
	rA, err := rand.Int(rand.Reader, groupA.N())
	require.NoError(t, err)
	rB, err := rand.Int(rand.Reader, groupB.N())
	require.NoError(t, err)

	cA := groupA.Element().Add(groupA.Element().Scale(gA, m), groupA.Element().Scale(hA, rA))
	cB := groupB.Element().Add(groupB.Element().Scale(gB, m), groupB.Element().Scale(hB, rB))

	proof, err := ProveEqualValue(groupA, gA, hA, rA, groupB, gB, hB, rB, m, []byte("context-1"))
	require.NoError(t, err)

	ok, err := VerifyEqualValue(groupA, gA, hA, cA, groupB, gB, hB, cB, proof, []byte("context-2"))
	require.NoError(t, err)
	require.False(t, ok)
}
