// Package codec renders proofs, public signals and verifying keys in the JSON
// layouts understood by snarkjs.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/prover"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, zkerrors.Encoding("json encode", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (proof SnarkjsProof) Groth16Proof(layout Layout) (*prover.Proof, error) {
	if proof.Protocol != Protocol {
		return nil, zkerrors.Encoding(fmt.Sprintf("unsupported protocol %q", proof.Protocol), nil)
	}
	if proof.Curve != "" && proof.Curve != Curve {
		return nil, zkerrors.Encoding(fmt.Sprintf("unsupported curve %q", proof.Curve), nil)
	}
	a, err := parseG1(proof.A, layout)
	if err != nil {
		return nil, fmt.Errorf("pi_a: %w", err)
	}
	b, err := parseG2(proof.B, layout)
	if err != nil {
		return nil, fmt.Errorf("pi_b: %w", err)
	}
	c, err := parseG1(proof.C, layout)
	if err != nil {
		return nil, fmt.Errorf("pi_c: %w", err)
	}
	return &prover.Proof{A: a, B: b, C: c}, nil
}

func NewSnarkjsProof(proof *prover.Proof, layout Layout) SnarkjsProof {
	return SnarkjsProof{
		A:        g1Strings(&proof.A, layout),
		B:        g2Strings(&proof.B, layout),
		C:        g1Strings(&proof.C, layout),
		Protocol: Protocol,
	}
}

// ExportProof renders proof as {"pi_a","pi_b","pi_c","protocol"}. Coordinates are
// canonical decimal strings and pi_b coordinates are [c0, c1] pairs.
func ExportProof(proof *prover.Proof, layout Layout) ([]byte, error) {
	if proof == nil {
		return nil, zkerrors.Encoding("nil proof", nil)
	}
	return marshal(NewSnarkjsProof(proof, layout))
}

// ImportProof decodes a proof written with layout; the other layout is rejected.
// Every point must be on the curve and in the prime order subgroup.
func ImportProof(data []byte, layout Layout) (*prover.Proof, error) {
	var proof SnarkjsProof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, zkerrors.Encoding("json decode proof", err)
	}
	return proof.Groth16Proof(layout)
}

// ExportPublicSignals renders public signals as a JSON array of decimal strings,
// in circuit declaration order.
func ExportPublicSignals(public fr.Vector) ([]byte, error) {
	return marshal(field.Strings(public))
}

func ImportPublicSignals(data []byte) (fr.Vector, error) {
	var signals []string
	if err := json.Unmarshal(data, &signals); err != nil {
		return nil, zkerrors.Encoding("json decode public signals", err)
	}
	return field.ParseVector(signals)
}

func NewSnarkjsVK(vk *prover.VerifyingKey, layout Layout) (SnarkjsVK, error) {
	vk_ := vk.Backend()
	alphabeta, err := bn254.Pair([]bn254.G1Affine{vk_.G1.Alpha}, []bn254.G2Affine{vk_.G2.Beta})
	if err != nil {
		return SnarkjsVK{}, zkerrors.Encoding("pair alpha beta", err)
	}
	IC := make([][]string, len(vk_.G1.K))
	for i := range vk_.G1.K {
		IC[i] = g1Strings(&vk_.G1.K[i], layout)
	}
	return SnarkjsVK{
		Protocol:  Protocol,
		Curve:     Curve,
		NPublic:   vk.NbPublic(),
		Alpha:     g1Strings(&vk_.G1.Alpha, layout),
		Beta:      g2Strings(&vk_.G2.Beta, layout),
		Gamma:     g2Strings(&vk_.G2.Gamma, layout),
		Delta:     g2Strings(&vk_.G2.Delta, layout),
		Alphabeta: e12Strings(&alphabeta),
		IC:        IC,
	}, nil
}

// Groth16VK rebuilds a verifying key. vk_alphabeta_12 is recomputed, not read.
func (vk SnarkjsVK) Groth16VK(layout Layout) (*prover.VerifyingKey, error) {
	if vk.Protocol != Protocol {
		return nil, zkerrors.Encoding(fmt.Sprintf("unsupported protocol %q", vk.Protocol), nil)
	}
	if vk.Curve != Curve {
		return nil, zkerrors.Encoding(fmt.Sprintf("unsupported curve %q", vk.Curve), nil)
	}
	if len(vk.IC) != vk.NPublic+1 {
		return nil, zkerrors.Encoding(fmt.Sprintf("nPublic is %d but IC has %d points", vk.NPublic, len(vk.IC)), nil)
	}

	vk_ := groth16_bn254.VerifyingKey{}
	var err error
	if vk_.G1.Alpha, err = parseG1(vk.Alpha, layout); err != nil {
		return nil, fmt.Errorf("vk_alpha_1: %w", err)
	}
	if vk_.G2.Beta, err = parseG2(vk.Beta, layout); err != nil {
		return nil, fmt.Errorf("vk_beta_2: %w", err)
	}
	if vk_.G2.Gamma, err = parseG2(vk.Gamma, layout); err != nil {
		return nil, fmt.Errorf("vk_gamma_2: %w", err)
	}
	if vk_.G2.Delta, err = parseG2(vk.Delta, layout); err != nil {
		return nil, fmt.Errorf("vk_delta_2: %w", err)
	}
	vk_.G1.K = make([]bn254.G1Affine, len(vk.IC))
	for i := range vk.IC {
		if vk_.G1.K[i], err = parseG1(vk.IC[i], layout); err != nil {
			return nil, fmt.Errorf("IC[%d]: %w", i, err)
		}
	}
	if err := vk_.Precompute(); err != nil {
		return nil, zkerrors.Encoding("vk.Precompute", err)
	}
	return prover.NewVerifyingKey(&vk_)
}

func ExportVerifyingKey(vk *prover.VerifyingKey, layout Layout) ([]byte, error) {
	if vk == nil {
		return nil, zkerrors.Encoding("nil verifying key", nil)
	}
	out, err := NewSnarkjsVK(vk, layout)
	if err != nil {
		return nil, err
	}
	return marshal(out)
}

// ImportVerifyingKey decodes a verification key written with layout.
func ImportVerifyingKey(data []byte, layout Layout) (*prover.VerifyingKey, error) {
	var vk SnarkjsVK
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, zkerrors.Encoding("json decode verifying key", err)
	}
	return vk.Groth16VK(layout)
}
