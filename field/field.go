// Package field converts between unbounded integers, BN254 scalar field elements and
// their canonical decimal string form.
package field

import (
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Modulus returns a copy of the scalar field modulus p.
func Modulus() *big.Int {
	return fr.Modulus()
}

// FromBigInt reduces a non-negative integer into the field.
func FromBigInt(v *big.Int) (fr.Element, error) {
	var e fr.Element
	if v == nil {
		return e, zkerrors.Parse("nil integer")
	}
	if v.Sign() < 0 {
		return e, zkerrors.Parse("negative integer %s", v.String())
	}
	reduced := new(big.Int).Mod(v, fr.Modulus())
	e.SetBigInt(reduced)
	return e, nil
}

// ParseBigInt parses a non-negative decimal integer of any width.
func ParseBigInt(s string) (*big.Int, error) {
	if !isDecimal(s) {
		return nil, zkerrors.Parse("not a decimal integer: %q", s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, zkerrors.Parse("not a decimal integer: %q", s)
	}
	return v, nil
}

// ParseElement parses the canonical decimal representative of a field element.
// Values outside [0, p) are rejected instead of reduced.
func ParseElement(s string) (fr.Element, error) {
	var e fr.Element
	v, err := ParseBigInt(s)
	if err != nil {
		return e, err
	}
	if !IsCanonicalDecimal(s) {
		return e, zkerrors.Parse("non-canonical decimal %q", s)
	}
	if v.Cmp(fr.Modulus()) >= 0 {
		return e, zkerrors.Parse("%q is not below the field modulus", s)
	}
	e.SetBigInt(v)
	return e, nil
}

func ParseVector(ss []string) (fr.Vector, error) {
	vec := make(fr.Vector, len(ss))
	for i, s := range ss {
		e, err := ParseElement(s)
		if err != nil {
			return nil, err
		}
		vec[i] = e
	}
	return vec, nil
}

// String renders e in canonical decimal form.
func String(e fr.Element) string {
	return BigInt(e).String()
}

func Strings(vec fr.Vector) []string {
	out := make([]string, len(vec))
	for i := range vec {
		out[i] = BigInt(vec[i]).String()
	}
	return out
}

// BigInt returns the canonical representative of e.
func BigInt(e fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// IsCanonicalDecimal reports whether s is digits only, without leading zeros.
func IsCanonicalDecimal(s string) bool {
	return isDecimal(s) && (s == "0" || s[0] != '0')
}

// leading "+", whitespace, hex prefixes and the empty string are all refused;
// big.Int.SetString alone would accept some of them.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
