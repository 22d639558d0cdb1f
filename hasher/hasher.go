// Package hasher maps application values into circuit inputs.
//
// DomainHash compresses an arbitrary JSON-serializable value into a 160-bit integer
// with RIPEMD-160. Digest is the circuit-native MiMC hash over the BN254 scalar field;
// the authz circuit recomputes it in-circuit, and DeriveKey renders it as a lookup key.
package hasher

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the wire contract is RIPEMD-160
)

// DomainHashBits is the width of DomainHash outputs.
const DomainHashBits = 160

// DomainHash serializes v as compact JSON and returns RIPEMD-160 of the bytes as a
// big-endian unsigned integer. Struct fields are emitted in declaration order, so
// reordering fields changes the hash.
func DomainHash(v any) (*big.Int, error) {
	payload, err := marshal(v)
	if err != nil {
		return nil, zkerrors.Encoding("json encode value", err)
	}
	h := ripemd160.New()
	h.Write(payload)
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// Digest returns MiMC(preimage).
func Digest(preimage fr.Element) fr.Element {
	h := mimc.NewMiMC()
	b := preimage.Bytes()
	// a canonical element is always a valid block
	_, _ = h.Write(b[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// DeriveKey reduces preimage into the field and returns its digest as a lowercase
// 0x-prefixed hex string without leading zeros.
func DeriveKey(preimage *big.Int) (string, error) {
	e, err := field.FromBigInt(preimage)
	if err != nil {
		return "", err
	}
	d := Digest(e)
	return "0x" + field.BigInt(d).Text(16), nil
}

// encoding/json escapes <, > and & by default; the digest is taken over the plain
// compact form.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
