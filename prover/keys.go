package prover

import (
	"fmt"

	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// VerifyingKeySource is satisfied by both key types: a VerifyingKey is always
// derivable from a ProvingKey.
type VerifyingKeySource interface {
	VerifyingKey() *VerifyingKey
}

// VerifyingKey is a BN254 Groth16 verifying key. It is read-only after construction.
type VerifyingKey struct {
	vk *groth16_bn254.VerifyingKey
}

// ProvingKey is a BN254 Groth16 proving key together with its verifying key. It is
// read-only after construction and safe to share between concurrent Prove calls.
type ProvingKey struct {
	pk *groth16_bn254.ProvingKey
	vk *VerifyingKey
}

func NewVerifyingKey(vk groth16.VerifyingKey) (*VerifyingKey, error) {
	vk_, ok := vk.(*groth16_bn254.VerifyingKey)
	if !ok {
		return nil, zkerrors.Synthesis(fmt.Sprintf("unsupported verifying key type %T", vk), nil)
	}
	return &VerifyingKey{vk: vk_}, nil
}

// NewProvingKey pairs pk with the verifying key produced by the same setup.
func NewProvingKey(pk groth16.ProvingKey, vk groth16.VerifyingKey) (*ProvingKey, error) {
	pk_, ok := pk.(*groth16_bn254.ProvingKey)
	if !ok {
		return nil, zkerrors.Synthesis(fmt.Sprintf("unsupported proving key type %T", pk), nil)
	}
	verifyingKey, err := NewVerifyingKey(vk)
	if err != nil {
		return nil, err
	}
	return &ProvingKey{pk: pk_, vk: verifyingKey}, nil
}

// ReadProvingKey decodes a key pair serialized with circuit_data.PKBytes and
// circuit_data.VKBytes.
func ReadProvingKey(pkBytes, vkBytes []byte) (*ProvingKey, error) {
	pk, err := circuitData.GetNewPKFromBytes(pkBytes)
	if err != nil {
		return nil, zkerrors.Encoding("read proving key", err)
	}
	vk, err := circuitData.GetNewVKFromBytes(vkBytes)
	if err != nil {
		return nil, zkerrors.Encoding("read verifying key", err)
	}
	return NewProvingKey(pk, vk)
}

func ReadVerifyingKey(vkBytes []byte) (*VerifyingKey, error) {
	vk, err := circuitData.GetNewVKFromBytes(vkBytes)
	if err != nil {
		return nil, zkerrors.Encoding("read verifying key", err)
	}
	return NewVerifyingKey(vk)
}

func (k *VerifyingKey) VerifyingKey() *VerifyingKey {
	if k == nil || k.vk == nil {
		return nil
	}
	return k
}

// Backend exposes the gnark key. Callers must not mutate it.
func (k *VerifyingKey) Backend() *groth16_bn254.VerifyingKey {
	return k.vk
}

// NbPublic is the number of public signals the key verifies.
func (k *VerifyingKey) NbPublic() int {
	return k.vk.NbPublicWitness()
}

func (k *VerifyingKey) Fingerprint() (circuitData.KeccakHash, error) {
	return circuitData.Fingerprint(k.vk)
}

func (k *VerifyingKey) Bytes() ([]byte, error) {
	return circuitData.VKBytes(k.vk)
}

func (k *ProvingKey) VerifyingKey() *VerifyingKey {
	if k == nil {
		return nil
	}
	return k.vk.VerifyingKey()
}

// Backend exposes the gnark key. Callers must not mutate it.
func (k *ProvingKey) Backend() *groth16_bn254.ProvingKey {
	return k.pk
}

func (k *ProvingKey) Bytes() ([]byte, error) {
	return circuitData.PKBytes(k.pk)
}
