package prover

import (
	"fmt"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/circuit"
	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"
)

// Witness is a full assignment that satisfies its circuit's constraints. It can only
// be obtained from ComputeWitness, so an unchecked assignment never reaches Prove.
type Witness struct {
	handle circuit.Handle
	full   witness.Witness
	values fr.Vector
	public fr.Vector
}

// ComputeWitness evaluates handle on the three authorization inputs and checks the
// result against every constraint. Inputs are reduced modulo the field modulus.
func ComputeWitness(handle circuit.Handle, preimage, curValueHash, nextValueHash *big.Int) (*Witness, error) {
	if handle == nil {
		return nil, zkerrors.Synthesis("nil circuit handle", nil)
	}
	in := circuit.Assignment{}
	for name, v := range map[string]*big.Int{
		circuit.SignalPreimage:      preimage,
		circuit.SignalCurValueHash:  curValueHash,
		circuit.SignalNextValueHash: nextValueHash,
	} {
		e, err := field.FromBigInt(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		in[name] = e
	}
	return ComputeAssignment(handle, in)
}

// ComputeAssignment is ComputeWitness for an arbitrary input assignment.
func ComputeAssignment(handle circuit.Handle, in circuit.Assignment) (*Witness, error) {
	eval, err := handle.Evaluate(in)
	if err != nil {
		return nil, err
	}
	if err := handle.ConstraintSystem().IsSolved(eval.Witness); err != nil {
		return nil, zkerrors.ConstraintViolation(err)
	}

	public, err := eval.Witness.Public()
	if err != nil {
		return nil, zkerrors.Synthesis("witness.Public failed", err)
	}
	publicVector, ok := public.Vector().(fr.Vector)
	if !ok {
		return nil, zkerrors.Synthesis(fmt.Sprintf("unexpected witness vector type %T", public.Vector()), nil)
	}

	return &Witness{
		handle: handle,
		full:   eval.Witness,
		values: eval.Values,
		public: publicVector,
	}, nil
}

func (w *Witness) Circuit() circuit.Handle {
	return w.handle
}

// PublicSignals returns the public signals in declaration order.
func (w *Witness) PublicSignals() fr.Vector {
	return append(fr.Vector(nil), w.public...)
}

// Values returns every wire value of the solved constraint system.
func (w *Witness) Values() fr.Vector {
	return append(fr.Vector(nil), w.values...)
}

// Signal returns the value of the named public signal.
func (w *Witness) Signal(name string) (fr.Element, bool) {
	for i, s := range w.handle.Definition().PublicSignals() {
		if s == name && i < len(w.public) {
			return w.public[i], true
		}
	}
	return fr.Element{}, false
}
