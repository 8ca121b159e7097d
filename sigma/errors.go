package sigma

import "errors"

// Structural errors abort an operation before any proof is produced or
// accepted. They indicate a programmer error or corrupted input, never an
// adversarial proof — a bad proof simply makes verification return false.
var (
	// ErrArityMismatch is returned when a witness, statement, or rnd_witness
	// vector has the wrong length for the protocol's relation descriptor.
	ErrArityMismatch = errors.New("sigma: arity mismatch")
	// ErrUnsupportedKind is returned for a relation kind the engine does not
	// implement.
	ErrUnsupportedKind = errors.New("sigma: unsupported relation kind")
	// ErrKindMismatch is returned when a proof's kind tag does not match the
	// kind the verifying protocol instance was constructed for.
	ErrKindMismatch = errors.New("sigma: proof kind does not match protocol")
	// ErrGroupError wraps a failure surfaced by the group adapter, e.g. an
	// attempt to use the point at infinity as a generator.
	ErrGroupError = errors.New("sigma: group adapter error")
)
