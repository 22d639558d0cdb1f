// Package hollow is the application-facing prover: it turns a preimage and a
// state transition into a snarkjs-compatible proof and its public signals.
package hollow

import (
	"crypto/rand"
	"io"
	"math/big"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/circuit"
	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	"github.com/Electron-Labs/hollow-gnark-prover/codec"
	"github.com/Electron-Labs/hollow-gnark-prover/hasher"
	"github.com/Electron-Labs/hollow-gnark-prover/metrics"
	"github.com/Electron-Labs/hollow-gnark-prover/prover"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	gnarklogger "github.com/consensys/gnark/logger"
)

// Prover proves authorization statements for one circuit and key pair. It is safe
// for concurrent use.
type Prover struct {
	handle  circuit.Handle
	key     *prover.ProvingKey
	rnd     io.Reader
	layout  codec.Layout
	metrics *metrics.Collector
}

// Result is a proof in both decoded and exported form.
type Result struct {
	Proof      *prover.Proof
	Witness    *prover.Witness
	ProofJSON  []byte
	PublicJSON []byte
}

func New(handle circuit.Handle, key *prover.ProvingKey, opts ...Option) (*Prover, error) {
	if handle == nil {
		return nil, zkerrors.Synthesis("nil circuit handle", nil)
	}
	if key == nil {
		return nil, zkerrors.Synthesis("nil proving key", nil)
	}
	p := &Prover{
		handle: handle,
		key:    key,
		rnd:    rand.Reader,
		layout: codec.LayoutAffine,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Open loads the authorization circuit and its keys from artifacts written by
// the build command.
func Open(paths circuitData.Paths, opts ...Option) (*Prover, error) {
	cs, err := circuitData.ReadCS(paths)
	if err != nil {
		return nil, zkerrors.Encoding("read constraint system", err)
	}
	handle, err := circuit.Load(circuit.Authz(), cs)
	if err != nil {
		return nil, err
	}
	pkBytes, vkBytes, err := circuitData.ReadPkVk(paths)
	if err != nil {
		return nil, zkerrors.Encoding("read keys", err)
	}
	key, err := prover.ReadProvingKey(pkBytes, vkBytes)
	if err != nil {
		return nil, err
	}
	return New(handle, key, opts...)
}

// Prove hashes curValue and nextValue with hasher.DomainHash and proves the
// transition. It returns the proof and public signals as JSON.
func (p *Prover) Prove(preimage *big.Int, curValue, nextValue any) ([]byte, []byte, error) {
	curValueHash, err := hasher.DomainHash(curValue)
	if err != nil {
		return nil, nil, err
	}
	nextValueHash, err := hasher.DomainHash(nextValue)
	if err != nil {
		return nil, nil, err
	}
	return p.ProveHashed(preimage, curValueHash, nextValueHash)
}

// ProveHashed proves a transition between already hashed values.
func (p *Prover) ProveHashed(preimage, curValueHash, nextValueHash *big.Int) ([]byte, []byte, error) {
	res, err := p.ProveResult(preimage, curValueHash, nextValueHash)
	if err != nil {
		return nil, nil, err
	}
	return res.ProofJSON, res.PublicJSON, nil
}

// ProveResult is ProveHashed returning the decoded proof and witness as well.
func (p *Prover) ProveResult(preimage, curValueHash, nextValueHash *big.Int) (*Result, error) {
	log := gnarklogger.Logger().With().Str("component", "hollow").Logger()

	start := time.Now()
	w, err := prover.ComputeWitness(p.handle, preimage, curValueHash, nextValueHash)
	p.metrics.Observe(metrics.OpWitness, start, err)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	proof, err := prover.Prove(w, p.key, p.rnd)
	p.metrics.Observe(metrics.OpProve, start, err)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	res, err := p.export(proof, w)
	p.metrics.Observe(metrics.OpExport, start, err)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("circuit", p.handle.Definition().Name()).Msg("proof exported")
	return res, nil
}

func (p *Prover) export(proof *prover.Proof, w *prover.Witness) (*Result, error) {
	proofJSON, err := codec.ExportProof(proof, p.layout)
	if err != nil {
		return nil, err
	}
	publicJSON, err := codec.ExportPublicSignals(w.PublicSignals())
	if err != nil {
		return nil, err
	}
	return &Result{Proof: proof, Witness: w, ProofJSON: proofJSON, PublicJSON: publicJSON}, nil
}

// Verify checks exported proof and public signal JSON against the prover's key.
func (p *Prover) Verify(proofJSON, publicJSON []byte) (bool, error) {
	start := time.Now()
	ok, err := p.verify(proofJSON, publicJSON)
	p.metrics.ObserveVerify(start, ok, err)
	return ok, err
}

func (p *Prover) verify(proofJSON, publicJSON []byte) (bool, error) {
	proof, err := codec.ImportProof(proofJSON, p.layout)
	if err != nil {
		return false, err
	}
	public, err := codec.ImportPublicSignals(publicJSON)
	if err != nil {
		return false, err
	}
	return prover.Verify(proof, public, p.key)
}

// Key derives the lookup key of preimage, as used by the hollow store.
func (p *Prover) Key(preimage *big.Int) (string, error) {
	return hasher.DeriveKey(preimage)
}

func (p *Prover) VerifyingKey() *prover.VerifyingKey {
	return p.key.VerifyingKey()
}

func (p *Prover) Circuit() circuit.Handle {
	return p.handle
}

func (p *Prover) Metrics() *metrics.Collector {
	return p.metrics
}
