package elgamal

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/msc-poc/group"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(42)
	ct, _, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	got := Decrypt(g, kp.SK, ct)
	want := g.Element().BaseScale(message)
	require.True(t, got.IsEqual(want))
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)
	other, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(7)
	ct, _, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	got := Decrypt(g, other.SK, ct)
	want := g.Element().BaseScale(message)
	require.False(t, got.IsEqual(want))
}

func TestProveVerifyEncryptionRoundTrip(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(42)
	ct, r, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	rndWitness, err := rand.Int(rand.Reader, g.N())
	require.NoError(t, err)

	context := []byte("elgamal-proof-test")
	proof, err := ProveEncryption(g, kp.PK, message, ct, r, rndWitness, context)
	require.NoError(t, err)

	ok, err := VerifyEncryption(g, kp.PK, message, ct, proof, context)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyEncryptionRejectsWrongMessage(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(42)
	ct, r, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	rndWitness, err := rand.Int(rand.Reader, g.N())
	require.NoError(t, err)

	context := []byte("elgamal-proof-test")
	proof, err := ProveEncryption(g, kp.PK, message, ct, r, rndWitness, context)
	require.NoError(t, err)

	ok, err := VerifyEncryption(g, kp.PK, big.NewInt(43), ct, proof, context)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyEncryptionRejectsWrongCiphertext(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(42)
	ct, r, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	rndWitness, err := rand.Int(rand.Reader, g.N())
	require.NoError(t, err)

	context := []byte("elgamal-proof-test")
	proof, err := ProveEncryption(g, kp.PK, message, ct, r, rndWitness, context)
	require.NoError(t, err)

	otherCt, _, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	ok, err := VerifyEncryption(g, kp.PK, message, otherCt, proof, context)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyEncryptionRejectsWrongContext(t *testing.T) {
	g := group.P256()
	kp, err := GenerateKey(g)
	require.NoError(t, err)

	message := big.NewInt(42)
	ct, r, err := Encrypt(g, kp.PK, message)
	require.NoError(t, err)

	rndWitness, err := rand.Int(rand.Reader, g.N())
	require.NoError(t, err)

	proof, err := ProveEncryption(g, kp.PK, message, ct, r, rndWitness, []byte("context-1"))
	require.NoError(t, err)

	ok, err := VerifyEncryption(g, kp.PK, message, ct, proof, []byte("context-2"))
	require.NoError(t, err)
	require.False(t, ok)
}
