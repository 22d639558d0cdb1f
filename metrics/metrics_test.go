package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.Equal(t, ResultOK, Result(nil))
	assert.Equal(t, "parse_error", Result(zkerrors.Parse("bad %d", 1)))
	assert.Equal(t, "constraint_violation", Result(zkerrors.ConstraintViolation(errors.New("x"))))
	assert.Equal(t, "synthesis_error", Result(fmt.Errorf("wrapped: %w", zkerrors.Synthesis("x", nil))))
	assert.Equal(t, "encoding_error", Result(zkerrors.Encoding("x", nil)))
	assert.Equal(t, "error", Result(errors.New("other")))
}

func TestObserve(t *testing.T) {
	c := New()
	start := time.Now()
	c.Observe(OpProve, start, nil)
	c.Observe(OpProve, start, nil)
	c.Observe(OpWitness, start, zkerrors.ConstraintViolation(errors.New("x")))
	c.ObserveVerify(start, true, nil)
	c.ObserveVerify(start, false, nil)
	c.ObserveBatch(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("prove", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("witness", "constraint_violation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("verify", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("verify", ResultRejected)))

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(c))
	assert.Equal(t, 3, testutil.CollectAndCount(c, "hollow_prover_duration_seconds"))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.Observe(OpProve, time.Now(), nil)
		c.ObserveVerify(time.Now(), false, nil)
		c.ObserveBatch(2)
	})
}

func TestWriteToTextfile(t *testing.T) {
	c := New()
	c.Observe(OpExport, time.Now(), nil)

	path := filepath.Join(t.TempDir(), "prover.prom")
	require.NoError(t, c.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `hollow_prover_operations_total{op="export",result="ok"} 1`))
}
