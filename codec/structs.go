package codec

import "fmt"

const (
	Protocol = "groth16"
	Curve    = "bn128"
)

// Layout selects how curve points are rendered.
type Layout int

const (
	// LayoutAffine renders points as their affine coordinates. It is the canonical
	// wire layout, version 1.
	LayoutAffine Layout = iota
	// LayoutProjective appends the projective z coordinate ("1" on G1, ["1","0"] on
	// G2), as emitted by older snarkjs-compatible tooling.
	LayoutProjective
)

const WireVersion = 1

func (l Layout) String() string {
	switch l {
	case LayoutAffine:
		return "affine"
	case LayoutProjective:
		return "projective"
	default:
		return "unknown"
	}
}

// SnarkjsProof is the snarkjs proof.json object.
type SnarkjsProof struct {
	A        []string   `json:"pi_a"`
	B        [][]string `json:"pi_b"`
	C        []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve,omitempty"`
}

// SnarkjsVK is the snarkjs verification_key.json object.
type SnarkjsVK struct {
	Protocol  string       `json:"protocol"`
	Curve     string       `json:"curve"`
	NPublic   int          `json:"nPublic"`
	Alpha     []string     `json:"vk_alpha_1"`
	Beta      [][]string   `json:"vk_beta_2"`
	Gamma     [][]string   `json:"vk_gamma_2"`
	Delta     [][]string   `json:"vk_delta_2"`
	Alphabeta [][][]string `json:"vk_alphabeta_12"`
	IC        [][]string
}

func ParseLayout(s string) (Layout, error) {
	switch s {
	case "affine", "":
		return LayoutAffine, nil
	case "projective":
		return LayoutProjective, nil
	default:
		return LayoutAffine, fmt.Errorf("unknown layout %q, want affine or projective", s)
	}
}
