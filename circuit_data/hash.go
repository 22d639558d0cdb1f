package circuitdata

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"golang.org/x/crypto/sha3"
)

func KeccakHashFunc(data []byte) ([]byte, error) {
	keccakFunc := sha3.NewLegacyKeccak256()
	keccakFunc.Write(data)
	return keccakFunc.Sum(nil), nil
}

func neg(elm bn254.G2Affine) *bn254.G2Affine {
	negElm := bn254.G2Affine{}
	negElm.Neg(&elm)
	return &negElm
}

// Fingerprint identifies a verifying key: keccak256(e(alpha, beta) || K || -gamma || -delta).
func Fingerprint(vk_ groth16.VerifyingKey) (KeccakHash, error) {
	vk, ok := vk_.(*groth16_bn254.VerifyingKey)
	if !ok {
		return nil, fmt.Errorf("unsupported verifying key type %T", vk_)
	}

	var sha3Input []byte
	e, err := bn254.Pair([]bn254.G1Affine{vk.G1.Alpha}, []bn254.G2Affine{vk.G2.Beta})
	if err != nil {
		return nil, fmt.Errorf("bn254.Pair::%w", err)
	}

	// E
	sha3Input = append(sha3Input, e.Marshal()...)

	// G1
	for i := 0; i < len(vk.G1.K); i++ {
		sha3Input = append(sha3Input, vk.G1.K[i].Marshal()...)
	}

	// G2
	sha3Input = append(sha3Input, neg(vk.G2.Gamma).Marshal()...)
	sha3Input = append(sha3Input, neg(vk.G2.Delta).Marshal()...)

	return KeccakHashFunc(sha3Input)
}
