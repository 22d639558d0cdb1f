package codec

import (
	"fmt"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

func fpString(e *fp.Element) string {
	return e.BigInt(new(big.Int)).String()
}

func parseFp(s string) (fp.Element, error) {
	var e fp.Element
	if !field.IsCanonicalDecimal(s) {
		return e, zkerrors.Encoding(fmt.Sprintf("invalid coordinate %q", s), nil)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Cmp(fp.Modulus()) >= 0 {
		return e, zkerrors.Encoding(fmt.Sprintf("invalid coordinate %q", s), nil)
	}
	e.SetBigInt(v)
	return e, nil
}

func g1Strings(p *bn254.G1Affine, layout Layout) []string {
	out := []string{fpString(&p.X), fpString(&p.Y)}
	if layout == LayoutProjective {
		out = append(out, "1")
	}
	return out
}

func g2Strings(p *bn254.G2Affine, layout Layout) [][]string {
	out := [][]string{
		{fpString(&p.X.A0), fpString(&p.X.A1)},
		{fpString(&p.Y.A0), fpString(&p.Y.A1)},
	}
	if layout == LayoutProjective {
		out = append(out, []string{"1", "0"})
	}
	return out
}

// parseG1 accepts only the given layout and checks curve and subgroup membership.
func parseG1(coords []string, layout Layout) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	switch {
	case layout == LayoutAffine && len(coords) == 2:
	case layout == LayoutProjective && len(coords) == 3 && coords[2] == "1":
	default:
		return p, zkerrors.Encoding(fmt.Sprintf("malformed G1 point %v", coords), nil)
	}
	var err error
	if p.X, err = parseFp(coords[0]); err != nil {
		return p, err
	}
	if p.Y, err = parseFp(coords[1]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, zkerrors.Encoding("G1 point is not in the prime order subgroup", nil)
	}
	return p, nil
}

func parseG2(coords [][]string, layout Layout) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	switch {
	case layout == LayoutAffine && len(coords) == 2:
	case layout == LayoutProjective && len(coords) == 3 && len(coords[2]) == 2 && coords[2][0] == "1" && coords[2][1] == "0":
	default:
		return p, zkerrors.Encoding(fmt.Sprintf("malformed G2 point %v", coords), nil)
	}
	if err := parseE2(coords[0], &p.X.A0, &p.X.A1); err != nil {
		return p, err
	}
	if err := parseE2(coords[1], &p.Y.A0, &p.Y.A1); err != nil {
		return p, err
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, zkerrors.Encoding("G2 point is not in the prime order subgroup", nil)
	}
	return p, nil
}

func parseE2(coords []string, a0, a1 *fp.Element) error {
	if len(coords) != 2 {
		return zkerrors.Encoding(fmt.Sprintf("malformed G2 coordinate %v", coords), nil)
	}
	var err error
	if *a0, err = parseFp(coords[0]); err != nil {
		return err
	}
	if *a1, err = parseFp(coords[1]); err != nil {
		return err
	}
	return nil
}

func e12Strings(e *bn254.GT) [][][]string {
	return [][][]string{
		{
			{fpString(&e.C0.B0.A0), fpString(&e.C0.B0.A1)},
			{fpString(&e.C0.B1.A0), fpString(&e.C0.B1.A1)},
			{fpString(&e.C0.B2.A0), fpString(&e.C0.B2.A1)},
		},
		{
			{fpString(&e.C1.B0.A0), fpString(&e.C1.B0.A1)},
			{fpString(&e.C1.B1.A0), fpString(&e.C1.B1.A1)},
			{fpString(&e.C1.B2.A0), fpString(&e.C1.B2.A1)},
		},
	}
}
