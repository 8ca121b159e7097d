package elgamal

import (
	"math/big"

	"github.com/takakv/msc-poc/group"
	"github.com/takakv/msc-poc/sigma"
)

// EncryptionProof is a proof of knowledge of the randomness behind an
// ElGamal ciphertext encrypting a publicly known message, e.g. a
// verifiable re-encryption or a proof that a published tally component was
// formed correctly. It is a direct application of the DlogEq relation kind:
// generators = (G, PK), statement = (U, V - message*G), witness = r.
type EncryptionProof = sigma.BatchProof

// encryptionProtocol builds the sigma.Protocol backing ProveEncryption and
// VerifyEncryption for a given group and public key.
func encryptionProtocol(grp group.Group, pk group.Element) (*sigma.Protocol, error) {
	descriptor := sigma.RelationDescriptor{Kind: sigma.DlogEq, NumWitness: 1, NumGenerator: 2, NumStatement: 2}
	return sigma.NewProtocol(grp, []group.Element{grp.Generator(), pk}, descriptor, sigma.SHA256)
}

// ProveEncryption proves knowledge of the randomness r used to encrypt the
// publicly known message under pk, given the ciphertext and the randomness
// used to produce it (e.g. the value returned by Encrypt).
func ProveEncryption(grp group.Group, pk group.Element, message *big.Int, ct Ciphertext, r, rndWitness *big.Int, context []byte) (EncryptionProof, error) {
	proto, err := encryptionProtocol(grp, pk)
	if err != nil {
		return sigma.BatchProof{}, err
	}

	liftedMessage := grp.Element().BaseScale(message)
	statement := []group.Element{ct.U, grp.Element().Subtract(ct.V, liftedMessage)}

	return proto.ProveBatch([]*big.Int{r}, statement, []*big.Int{rndWitness}, context)
}

// VerifyEncryption checks an EncryptionProof against the public message,
// ciphertext, and public key.
func VerifyEncryption(grp group.Group, pk group.Element, message *big.Int, ct Ciphertext, proof EncryptionProof, context []byte) (bool, error) {
	proto, err := encryptionProtocol(grp, pk)
	if err != nil {
		return false, err
	}

	liftedMessage := grp.Element().BaseScale(message)
	statement := []group.Element{ct.U, grp.Element().Subtract(ct.V, liftedMessage)}

	return proto.VerifyBatch(statement, proof, context)
}
