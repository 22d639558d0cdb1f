// Package circuit holds the hollow authorization circuit and the compiled-circuit
// handle consumed by the prover.
package circuit

import (
	"fmt"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/hasher"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// AuthzCircuit proves knowledge of a preimage whose MiMC digest is public, for a
// state transition from curValueHash to nextValueHash.
//
// Public signals are declared in the order curValueHash, nextValueHash, digest.
type AuthzCircuit struct {
	Preimage      frontend.Variable `gnark:"preimage"`
	CurValueHash  frontend.Variable `gnark:"curValueHash,public"`
	NextValueHash frontend.Variable `gnark:"nextValueHash,public"`
	Digest        frontend.Variable `gnark:"digest,public"`
}

func (circuit *AuthzCircuit) Define(api frontend.API) error {
	// value hashes are RIPEMD-160 outputs
	api.ToBinary(circuit.CurValueHash, hasher.DomainHashBits)
	api.ToBinary(circuit.NextValueHash, hasher.DomainHashBits)

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("mimc.NewMiMC::%w", err)
	}
	h.Write(circuit.Preimage)
	api.AssertIsEqual(h.Sum(), circuit.Digest)
	return nil
}

type authz struct{}

// Authz returns the definition of AuthzCircuit.
func Authz() Definition {
	return authz{}
}

func (authz) Name() string { return "hollow-authz" }

func (authz) Inputs() []string {
	return []string{SignalPreimage, SignalCurValueHash, SignalNextValueHash}
}

func (authz) PublicSignals() []string {
	return []string{SignalCurValueHash, SignalNextValueHash, SignalDigest}
}

func (authz) Skeleton() frontend.Circuit {
	return &AuthzCircuit{}
}

func (authz) Assign(in Assignment) (frontend.Circuit, error) {
	preimage := in[SignalPreimage]
	digest := hasher.Digest(preimage)
	cur := in[SignalCurValueHash]
	next := in[SignalNextValueHash]
	return &AuthzCircuit{
		Preimage:      field.BigInt(preimage),
		CurValueHash:  field.BigInt(cur),
		NextValueHash: field.BigInt(next),
		Digest:        field.BigInt(digest),
	}, nil
}
