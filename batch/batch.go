// Package batch proves many authorization requests concurrently and commits to the
// results with a Merkle tree, so a single root identifies the whole batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	"github.com/Electron-Labs/hollow-gnark-prover/hollow"
	gnarklogger "github.com/consensys/gnark/logger"
	mt "github.com/txaty/go-merkletree"
	"golang.org/x/sync/errgroup"
)

var ErrBatchSize = errors.New("batch needs at least two requests")

// Prove proves every request with p, at most one per CPU at a time. It fails as a
// whole if any request fails or ctx is cancelled.
func Prove(ctx context.Context, p *hollow.Prover, requests []Request) (*Batch, error) {
	if len(requests) < 2 {
		return nil, ErrBatchSize
	}
	log := gnarklogger.Logger().With().Str("component", "batch").Int("size", len(requests)).Logger()
	p.Metrics().ObserveBatch(len(requests))
	start := time.Now()

	leaves := make([]leaf, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range requests {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := requests[i]
			proofJSON, publicJSON, err := p.ProveHashed(req.Preimage, req.CurValueHash, req.NextValueHash)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			leaves[i] = leaf{proof: proofJSON, public: publicJSON}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Dur("took", time.Since(start)).Msg("batch proved")

	return commit(p, leaves)
}

func commit(p *hollow.Prover, leaves []leaf) (*Batch, error) {
	blocks := make([]mt.DataBlock, len(leaves))
	for i := range leaves {
		blocks[i] = leaves[i]
	}
	tree, err := mt.New(treeConfig(), blocks)
	if err != nil {
		return nil, fmt.Errorf("mt.New::%w", err)
	}

	vkHash, err := p.VerifyingKey().Fingerprint()
	if err != nil {
		return nil, err
	}

	receipts := make([]Receipt, len(leaves))
	for i, l := range leaves {
		proof, err := tree.Proof(l)
		if err != nil {
			return nil, fmt.Errorf("tree.Proof::%w", err)
		}
		receipts[i] = Receipt{
			Index:     i,
			Proof:     string(l.proof),
			Public:    string(l.public),
			Leaf:      tree.Leaves[i],
			Inclusion: toMerkleProof(proof),
		}
	}
	return &Batch{Root: tree.Root, VKHash: vkHash, Receipts: receipts}, nil
}

// VerifyInclusion checks that receipt is committed to by root. It does not verify
// the proof itself.
func VerifyInclusion(root circuitData.KeccakHash, receipt Receipt) (bool, error) {
	l := leaf{proof: []byte(receipt.Proof), public: []byte(receipt.Public)}
	return mt.Verify(l, receipt.Inclusion.mtProof(), root, treeConfig())
}
