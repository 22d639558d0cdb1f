package prover

import (
	"fmt"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
)

// Verify checks proof against the public signals, given in circuit declaration
// order. A proof that does not verify is reported as (false, nil); an error is only
// returned when the inputs do not match the key's shape.
func Verify(proof *Proof, public fr.Vector, key VerifyingKeySource) (bool, error) {
	if key == nil || key.VerifyingKey() == nil {
		return false, zkerrors.Synthesis("nil verifying key", nil)
	}
	if proof == nil {
		return false, zkerrors.Synthesis("nil proof", nil)
	}
	vk := key.VerifyingKey()
	if len(public) != vk.NbPublic() {
		return false, zkerrors.Synthesis(
			fmt.Sprintf("got %d public signals, key expects %d", len(public), vk.NbPublic()),
			nil,
		)
	}

	publicWitness, err := newPublicWitness(public)
	if err != nil {
		return false, err
	}
	if err := groth16.Verify(proof.backend(), vk.vk, publicWitness); err != nil {
		log := logger()
		log.Debug().Err(err).Msg("proof rejected")
		return false, nil
	}
	return true, nil
}

// VerifyWithRawInputs parses decimal public signals and verifies them in the order
// curValueHash, nextValueHash, digest.
func VerifyWithRawInputs(proof *Proof, digest, curValueHash, nextValueHash string, key VerifyingKeySource) (bool, error) {
	public, err := field.ParseVector([]string{curValueHash, nextValueHash, digest})
	if err != nil {
		return false, err
	}
	return Verify(proof, public, key)
}

func newPublicWitness(public fr.Vector) (witness.Witness, error) {
	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, zkerrors.Synthesis("witness.New failed", err)
	}
	values := make(chan any, len(public))
	for _, v := range public {
		values <- v
	}
	close(values)
	if err := w.Fill(len(public), 0, values); err != nil {
		return nil, zkerrors.Synthesis("witness.Fill failed", err)
	}
	return w, nil
}
