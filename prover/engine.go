package prover

import (
	"fmt"
	"io"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/circuit"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

func logger() zerolog.Logger {
	return gnarklogger.Logger().With().Str("component", "prover").Logger()
}

// Setup generates a key pair for handle. The toxic waste of gnark's setup is
// followed by a delta contribution drawn from rnd, so the resulting keys depend on
// the injected randomness.
func Setup(handle circuit.Handle, rnd io.Reader) (*ProvingKey, error) {
	if handle == nil {
		return nil, zkerrors.Synthesis("nil circuit handle", nil)
	}
	log := logger().With().Str("circuit", handle.Definition().Name()).Logger()

	pk, vk, err := groth16.Setup(handle.ConstraintSystem())
	if err != nil {
		return nil, zkerrors.Synthesis("groth16.Setup failed", err)
	}
	key, err := NewProvingKey(pk, vk)
	if err != nil {
		return nil, err
	}
	if err := contributeDelta(key, rnd); err != nil {
		return nil, err
	}
	log.Debug().Int("public", key.vk.NbPublic()).Msg("setup done")
	return key, nil
}

// contributeDelta replaces delta with d·delta and rescales the delta-divided
// proving key elements by 1/d.
func contributeDelta(key *ProvingKey, rnd io.Reader) error {
	d, err := randomScalar(rnd)
	if err != nil {
		return err
	}
	dInv := new(big.Int).ModInverse(d, scalarModulus())

	pk, vk := key.pk, key.vk.vk
	pk.G1.Delta.ScalarMultiplication(&pk.G1.Delta, d)
	pk.G2.Delta.ScalarMultiplication(&pk.G2.Delta, d)
	for i := range pk.G1.Z {
		pk.G1.Z[i].ScalarMultiplication(&pk.G1.Z[i], dInv)
	}
	for i := range pk.G1.K {
		pk.G1.K[i].ScalarMultiplication(&pk.G1.K[i], dInv)
	}
	vk.G1.Delta.ScalarMultiplication(&vk.G1.Delta, d)
	vk.G2.Delta.ScalarMultiplication(&vk.G2.Delta, d)
	if err := vk.Precompute(); err != nil {
		return zkerrors.Synthesis("vk.Precompute failed", err)
	}
	return nil
}

// Prove produces a proof for w under key, re-randomized with scalars drawn from rnd.
// The key must have been generated for the witness's circuit shape.
func Prove(w *Witness, key *ProvingKey, rnd io.Reader) (proof *Proof, err error) {
	if w == nil {
		return nil, zkerrors.Synthesis("nil witness", nil)
	}
	if key == nil {
		return nil, zkerrors.Synthesis("nil proving key", nil)
	}
	if err := checkShape(w.handle, key); err != nil {
		return nil, err
	}
	log := logger().With().Str("circuit", w.handle.Definition().Name()).Logger()

	defer func() {
		if r := recover(); r != nil {
			proof, err = nil, zkerrors.Synthesis(fmt.Sprintf("prover panicked: %v", r), nil)
		}
	}()

	raw, err := groth16.Prove(w.handle.ConstraintSystem(), key.pk, w.full)
	if err != nil {
		return nil, zkerrors.Synthesis("groth16.Prove failed", err)
	}
	rawProof, ok := raw.(*groth16_bn254.Proof)
	if !ok {
		return nil, zkerrors.Synthesis(fmt.Sprintf("unexpected proof type %T", raw), nil)
	}
	proof, err = proofFromBackend(rawProof)
	if err != nil {
		return nil, err
	}
	if err := proof.Rerandomize(key.vk, rnd); err != nil {
		return nil, err
	}
	log.Debug().Msg("proof generated")
	return proof, nil
}

func checkShape(handle circuit.Handle, key *ProvingKey) error {
	ccs := handle.ConstraintSystem()
	_, _, nbPublic := ccs.GetNbVariables()
	if key.vk.NbPublic() != nbPublic-1 {
		return zkerrors.Synthesis(
			fmt.Sprintf("key expects %d public signals, circuit has %d", key.vk.NbPublic(), nbPublic-1),
			nil,
		)
	}
	if key.pk.Domain.Cardinality < uint64(ccs.GetNbConstraints()) {
		return zkerrors.Synthesis(
			fmt.Sprintf("key domain of size %d is too small for %d constraints", key.pk.Domain.Cardinality, ccs.GetNbConstraints()),
			nil,
		)
	}
	return nil
}
