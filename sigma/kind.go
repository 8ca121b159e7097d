package sigma

import "fmt"

// Kind identifies which one-way group homomorphism a Protocol proves
// knowledge of a preimage for. See RelationDescriptor for the arity each
// kind requires.
type Kind int

const (
	// Dlog proves knowledge of x such that z = h1*x.
	Dlog Kind = iota
	// Pedersen proves knowledge of (x1, x2) such that z = h1*x1 + h2*x2.
	Pedersen
	// Representation generalizes Pedersen to n terms:
	// z = h1*x1 + ... + hn*xn.
	Representation
	// SeveralDlog proves n independent discrete logs: zi = hi*xi.
	SeveralDlog
	// DlogEq proves a single x satisfies (z1, z2) = (h1*x, h2*x).
	DlogEq
	// SeveralDlogEq generalizes DlogEq to n generators sharing one witness:
	// zi = hi*x.
	SeveralDlogEq
	// DHTriple proves a Diffie-Hellman triple (h1=G, h2, h3) with h3=x*h2,
	// reduced to DlogEq: the caller rebinds h2 as a generator and passes
	// statement = (x*G, x*h2). Handled identically to DlogEq by the engine.
	DHTriple
)

func (k Kind) String() string {
	switch k {
	case Dlog:
		return "Dlog"
	case Pedersen:
		return "Pedersen"
	case Representation:
		return "Representation"
	case SeveralDlog:
		return "SeveralDlog"
	case DlogEq:
		return "DlogEq"
	case SeveralDlogEq:
		return "SeveralDlogEq"
	case DHTriple:
		return "DHTriple"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// family groups kinds that share a homomorphism shape, a first-message
// computation, and a verification equation. The engine dispatches on
// family, not on every kind individually (spec §9: "the engine dispatches
// on kind-family, not on every kind").
type family int

const (
	// perIndexFamily: zi = hi*xi, one independent discrete log per index.
	perIndexFamily family = iota
	// sumFamily: z = sum(hi*xi), a single accumulated statement.
	sumFamily
	// sharedWitnessFamily: zi = hi*x, one shared witness across generators.
	sharedWitnessFamily
)

func (k Kind) family() (family, error) {
	switch k {
	case Dlog, SeveralDlog:
		return perIndexFamily, nil
	case Pedersen, Representation:
		return sumFamily, nil
	case DlogEq, SeveralDlogEq, DHTriple:
		return sharedWitnessFamily, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedKind, k)
	}
}

// RelationDescriptor names which relation kind a Protocol proves, together
// with its arity: the number of witnesses, generators, and statement
// elements. The arity triple must match the kind's required pattern (see
// the table in spec.md §4.1); variable-arity kinds (Representation,
// SeveralDlog, SeveralDlogEq) accept any n >= 1.
type RelationDescriptor struct {
	Kind         Kind
	NumWitness   int
	NumGenerator int
	NumStatement int
}

// Validate checks the descriptor's arity triple against the pattern its
// kind requires, failing with ErrArityMismatch if they disagree.
func (d RelationDescriptor) Validate() error {
	fam, err := d.Kind.family()
	if err != nil {
		return err
	}

	if d.NumWitness <= 0 || d.NumGenerator <= 0 || d.NumStatement <= 0 {
		return fmt.Errorf("%w: %s arity must be positive, got (%d,%d,%d)",
			ErrArityMismatch, d.Kind, d.NumWitness, d.NumGenerator, d.NumStatement)
	}

	switch d.Kind {
	case Dlog:
		if d.NumWitness != 1 || d.NumGenerator != 1 || d.NumStatement != 1 {
			return arityErr(d, "(1,1,1)")
		}
	case Pedersen:
		if d.NumWitness != 2 || d.NumGenerator != 2 || d.NumStatement != 1 {
			return arityErr(d, "(2,2,1)")
		}
	case DlogEq, DHTriple:
		if d.NumWitness != 1 || d.NumGenerator != 2 || d.NumStatement != 2 {
			return arityErr(d, "(1,2,2)")
		}
	}

	switch fam {
	case perIndexFamily:
		if d.NumGenerator != d.NumStatement || d.NumGenerator != d.NumWitness {
			return arityErr(d, "(n,n,n)")
		}
	case sumFamily:
		if d.NumStatement != 1 || d.NumGenerator != d.NumWitness {
			return arityErr(d, "(n,n,1)")
		}
	case sharedWitnessFamily:
		if d.NumWitness != 1 || d.NumGenerator != d.NumStatement {
			return arityErr(d, "(1,n,n)")
		}
	}

	return nil
}

func arityErr(d RelationDescriptor, want string) error {
	return fmt.Errorf("%w: %s requires arity %s, got (%d,%d,%d)",
		ErrArityMismatch, d.Kind, want, d.NumWitness, d.NumGenerator, d.NumStatement)
}
