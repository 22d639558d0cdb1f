package hollow

import (
	"io"
	"sync"

	"github.com/Electron-Labs/hollow-gnark-prover/codec"
	"github.com/Electron-Labs/hollow-gnark-prover/metrics"
)

type Option func(*Prover)

// WithRand sets the randomness source used to re-randomize proofs. Reads are
// serialized, so rnd does not need to be safe for concurrent use.
func WithRand(rnd io.Reader) Option {
	return func(p *Prover) {
		p.rnd = &lockedReader{r: rnd}
	}
}

// WithLayout sets the point layout of exported proofs.
func WithLayout(layout codec.Layout) Option {
	return func(p *Prover) {
		p.layout = layout
	}
}

func WithMetrics(c *metrics.Collector) Option {
	return func(p *Prover) {
		p.metrics = c
	}
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(b)
}
