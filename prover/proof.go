package prover

import (
	"io"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// Proof is a Groth16 proof: A and C on G1, B on G2.
type Proof struct {
	A bn254.G1Affine
	B bn254.G2Affine
	C bn254.G1Affine
}

func proofFromBackend(proof *groth16_bn254.Proof) (*Proof, error) {
	if len(proof.Commitments) > 0 {
		return nil, zkerrors.Synthesis("proofs with commitments are not supported", nil)
	}
	return &Proof{A: proof.Ar, B: proof.Bs, C: proof.Krs}, nil
}

func (proof *Proof) backend() *groth16_bn254.Proof {
	return &groth16_bn254.Proof{Ar: proof.A, Bs: proof.B, Krs: proof.C}
}

// Equal reports whether both proofs hold the same points.
func (proof *Proof) Equal(other *Proof) bool {
	return proof.A.Equal(&other.A) && proof.B.Equal(&other.B) && proof.C.Equal(&other.C)
}

// IsValid reports whether every point is on the curve and in the prime order subgroup.
func (proof *Proof) IsValid() bool {
	return proof.A.IsInSubGroup() && proof.B.IsInSubGroup() && proof.C.IsInSubGroup()
}

// Rerandomize replaces the proof with a fresh proof of the same statement:
//
//	A' = A/r1, B' = r1·B + r1·r2·delta, C' = C + r2·A
//
// with r1, r2 drawn from rnd.
func (proof *Proof) Rerandomize(vk *VerifyingKey, rnd io.Reader) error {
	r1, err := randomScalar(rnd)
	if err != nil {
		return err
	}
	r2, err := randomScalar(rnd)
	if err != nil {
		return err
	}
	modulus := scalarModulus()
	r1Inv := new(big.Int).ModInverse(r1, modulus)
	r1r2 := new(big.Int).Mul(r1, r2)
	r1r2.Mod(r1r2, modulus)

	// C' = C + r2·A
	var aJac, cJac bn254.G1Jac
	aJac.FromAffine(&proof.A)
	aJac.ScalarMultiplication(&aJac, r2)
	cJac.FromAffine(&proof.C)
	cJac.AddAssign(&aJac)

	// B' = r1·B + r1·r2·delta
	var bJac, deltaJac bn254.G2Jac
	bJac.FromAffine(&proof.B)
	bJac.ScalarMultiplication(&bJac, r1)
	deltaJac.FromAffine(&vk.vk.G2.Delta)
	deltaJac.ScalarMultiplication(&deltaJac, r1r2)
	bJac.AddAssign(&deltaJac)

	proof.A.ScalarMultiplication(&proof.A, r1Inv)
	proof.B.FromJacobian(&bJac)
	proof.C.FromJacobian(&cJac)
	return nil
}
