package batch

import (
	"math/big"

	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	mt "github.com/txaty/go-merkletree"
)

// Request is one hashed authorization statement.
type Request struct {
	Preimage      *big.Int
	CurValueHash  *big.Int
	NextValueHash *big.Int
}

// MerkleProof is an inclusion proof in the batch tree. Bit i of Path is 1 when
// the node at level i is a right child.
type MerkleProof struct {
	Siblings []circuitData.KeccakHash `json:"siblings"`
	Path     uint32                   `json:"path"`
}

// Receipt is a proved request together with its place in the batch commitment.
type Receipt struct {
	Index     int                    `json:"index"`
	Proof     string                 `json:"proof"`
	Public    string                 `json:"publicSignals"`
	Leaf      circuitData.KeccakHash `json:"leaf"`
	Inclusion MerkleProof            `json:"inclusion"`
}

// Batch commits to every receipt with a Keccak-256 Merkle root.
type Batch struct {
	Root     circuitData.KeccakHash `json:"root"`
	VKHash   circuitData.KeccakHash `json:"vkHash"`
	Receipts []Receipt              `json:"receipts"`
}

// leaf is the tree data block of a receipt: keccak(proof) || keccak(publicSignals).
type leaf struct {
	proof  []byte
	public []byte
}

func (l leaf) Serialize() ([]byte, error) {
	proofHash, err := circuitData.KeccakHashFunc(l.proof)
	if err != nil {
		return nil, err
	}
	publicHash, err := circuitData.KeccakHashFunc(l.public)
	if err != nil {
		return nil, err
	}
	return append(proofHash, publicHash...), nil
}

func treeConfig() *mt.Config {
	return &mt.Config{
		HashFunc: circuitData.KeccakHashFunc,
		Mode:     mt.ModeTreeBuild,
	}
}

func toMerkleProof(proof *mt.Proof) MerkleProof {
	siblings := make([]circuitData.KeccakHash, len(proof.Siblings))
	for i := range proof.Siblings {
		siblings[i] = proof.Siblings[i]
	}
	return MerkleProof{Siblings: siblings, Path: proof.Path}
}

func (proof MerkleProof) mtProof() *mt.Proof {
	siblings := make([][]byte, len(proof.Siblings))
	for i := range proof.Siblings {
		siblings[i] = proof.Siblings[i]
	}
	return &mt.Proof{Siblings: siblings, Path: proof.Path}
}
