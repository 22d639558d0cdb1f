package circuitdata

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const N_BYTES_HASH = 32

// KeccakHash is a 32 byte Keccak-256 digest. It marshals as 0x-prefixed hex.
type KeccakHash []byte

func (hash KeccakHash) Hex() string {
	return "0x" + hex.EncodeToString(hash)
}

func (hash KeccakHash) MarshalText() ([]byte, error) {
	return []byte(hash.Hex()), nil
}

func (hash *KeccakHash) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(strings.TrimPrefix(string(text), "0x"))
	if err != nil {
		return err
	}
	if len(b) != N_BYTES_HASH {
		return fmt.Errorf("keccak hash must be %d bytes, got %d", N_BYTES_HASH, len(b))
	}
	*hash = b
	return nil
}
