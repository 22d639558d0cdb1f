package circuitdata

import (
	"bytes"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
)

// get CS from bytes
func GetNewCSFromBytes(csBytes []byte) (constraint.ConstraintSystem, error) {
	cs := groth16.NewCS(ecc.BN254)
	_, err := cs.ReadFrom(bytes.NewReader(csBytes))
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// get PK from bytes, raw (uncompressed) or compressed
func GetNewPKFromBytes(pkBytes []byte) (groth16.ProvingKey, error) {
	pk := groth16.NewProvingKey(ecc.BN254)
	_, err := pk.ReadFrom(bytes.NewReader(pkBytes))
	if err != nil {
		return nil, err
	}
	return pk, nil
}

// get VK from bytes
func GetNewVKFromBytes(vkBytes []byte) (groth16.VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	_, err := vk.ReadFrom(bytes.NewReader(vkBytes))
	if err != nil {
		return nil, err
	}
	return vk, nil
}

func CSBytes(cs constraint.ConstraintSystem) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := cs.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func PKBytes(pk groth16.ProvingKey) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := pk.WriteRawTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func VKBytes(vk groth16.VerifyingKey) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
