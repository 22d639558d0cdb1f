package circuitdata

import (
	"os"
	"path/filepath"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
)

// Paths locates the artifacts of one circuit inside an output directory.
type Paths struct {
	Dir  string
	Name string
}

func (p Paths) CS() string { return filepath.Join(p.Dir, p.Name+"_cs.bin") }
func (p Paths) PK() string { return filepath.Join(p.Dir, p.Name+"_pk.bin") }
func (p Paths) VK() string { return filepath.Join(p.Dir, p.Name+"_vk.bin") }

// VKJSON is where the snarkjs verification key is exported.
func (p Paths) VKJSON() string { return filepath.Join(p.Dir, "verification_key.json") }

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(data)
	return err
}

// WritePkVkCs serializes cs, pk and vk under p, creating the directory if needed.
func WritePkVkCs(p Paths, cs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey) error {
	err := os.MkdirAll(p.Dir, os.ModePerm)
	if err != nil {
		return err
	}

	csBytes, err := CSBytes(cs)
	if err != nil {
		return err
	}
	pkBytes, err := PKBytes(pk)
	if err != nil {
		return err
	}
	vkBytes, err := VKBytes(vk)
	if err != nil {
		return err
	}

	if err := writeFile(p.CS(), csBytes); err != nil {
		return err
	}
	if err := writeFile(p.PK(), pkBytes); err != nil {
		return err
	}
	return writeFile(p.VK(), vkBytes)
}

func ReadCS(p Paths) (constraint.ConstraintSystem, error) {
	csBytes, err := os.ReadFile(p.CS())
	if err != nil {
		return nil, err
	}
	return GetNewCSFromBytes(csBytes)
}

// ReadPkVk returns the raw proving and verifying key bytes.
func ReadPkVk(p Paths) ([]byte, []byte, error) {
	pkBytes, err := os.ReadFile(p.PK())
	if err != nil {
		return nil, nil, err
	}
	vkBytes, err := os.ReadFile(p.VK())
	if err != nil {
		return nil, nil, err
	}
	return pkBytes, vkBytes, nil
}
