// Package elgamal implements additive ElGamal encryption over a
// group.Group. It exists to give the sigma engine's DlogEq and DHTriple
// relation kinds a realistic caller: a ciphertext's validity is exactly the
// kind of statement those kinds are built to certify knowledge of (the
// encryption randomness, or a shared Diffie-Hellman secret).
package elgamal

import (
	"crypto/rand"
	"math/big"

	"github.com/takakv/msc-poc/group"
)

// Ciphertext is an additive ElGamal ciphertext (U, V) = (r*G, m*G + r*PK).
type Ciphertext struct {
	U group.Element
	V group.Element
}

// KeyPair is an ElGamal key pair: SK is the private scalar, PK = SK*G.
type KeyPair struct {
	SK *big.Int
	PK group.Element
}

// GenerateKey samples a fresh ElGamal key pair in grp.
func GenerateKey(grp group.Group) (KeyPair, error) {
	sk, err := rand.Int(rand.Reader, grp.N())
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{SK: sk, PK: grp.Element().BaseScale(sk)}, nil
}

// Encrypt encrypts message (lifted additively onto the group, i.e. m*G) for
// pk, returning the ciphertext and the randomness used. The caller typically
// proves knowledge of that randomness for a publicly known message, without
// revealing it, with ProveEncryption (a DlogEq sigma.Protocol instance).
func Encrypt(grp group.Group, pk group.Element, message *big.Int) (Ciphertext, *big.Int, error) {
	r, err := rand.Int(rand.Reader, grp.N())
	if err != nil {
		return Ciphertext{}, nil, err
	}

	liftedMessage := grp.Element().BaseScale(message)
	mask := grp.Element().Scale(pk, r)

	return Ciphertext{
		U: grp.Element().BaseScale(r),
		V: grp.Element().Add(liftedMessage, mask),
	}, r, nil
}

// Decrypt recovers m*G from a ciphertext given the matching private key. The
// caller must solve the discrete log of the result to recover m itself; this
// is only practical for messages drawn from a small known range, which is
// the typical use case for additive ElGamal (e.g. encrypted vote tallies).
func Decrypt(grp group.Group, sk *big.Int, c Ciphertext) group.Element {
	mask := grp.Element().Scale(c.U, sk)
	negMask := grp.Element().Negate(mask)
	return grp.Element().Add(c.V, negMask)
}
