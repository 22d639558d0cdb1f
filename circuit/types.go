package circuit

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
)

const (
	SignalPreimage      = "preimage"
	SignalCurValueHash  = "curValueHash"
	SignalNextValueHash = "nextValueHash"
	SignalDigest        = "digest"
)

// Assignment binds input signal names to field elements. Keys are unique; order is
// irrelevant.
type Assignment map[string]fr.Element

// Definition is the evaluator side of a circuit. It knows the named inputs, the
// public signal order and how to extend an input assignment into a complete gnark
// assignment, including derived output signals.
type Definition interface {
	Name() string
	Inputs() []string
	// PublicSignals lists public signals in declaration order.
	PublicSignals() []string
	// Skeleton returns an input-free instance, used for compilation and setup.
	Skeleton() frontend.Circuit
	Assign(in Assignment) (frontend.Circuit, error)
}

// Handle is a compiled circuit: a constraint system plus the evaluator that produces
// assignments for it. A Handle is never mutated after construction and may be shared
// across goroutines.
type Handle interface {
	Definition() Definition
	ConstraintSystem() constraint.ConstraintSystem
	// Evaluate computes the full variable assignment for the given inputs.
	Evaluate(in Assignment) (*Evaluation, error)
}

// Evaluation is the result of evaluating a Handle.
type Evaluation struct {
	// Witness holds the public and secret inputs in gnark's witness layout.
	Witness witness.Witness
	// Values holds every wire of the constraint system, as produced by the solver.
	Values fr.Vector
}
