// Package metrics counts and times prover operations with Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "hollow"
	subsystem = "prover"
)

type Op string

const (
	OpWitness Op = "witness"
	OpProve   Op = "prove"
	OpVerify  Op = "verify"
	OpExport  Op = "export"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Collector holds the prover metrics. It implements prometheus.Collector so it can be
// registered on any registry; a nil *Collector discards observations.
type Collector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	batchSize  prometheus.Histogram
}

func New() *Collector {
	return &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Total number of prover operations by operation and result",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Duration of prover operations in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "batch_size",
			Help:      "Number of requests per proving batch",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 8),
		}),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.operations.Describe(ch)
	c.duration.Describe(ch)
	c.batchSize.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.operations.Collect(ch)
	c.duration.Collect(ch)
	c.batchSize.Collect(ch)
}

// Observe records one operation that started at start and ended with err.
func (c *Collector) Observe(op Op, start time.Time, err error) {
	if c == nil {
		return
	}
	c.duration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
	c.operations.WithLabelValues(string(op), Result(err)).Inc()
}

// ObserveVerify records a verification; a proof that does not verify counts as
// rejected.
func (c *Collector) ObserveVerify(start time.Time, ok bool, err error) {
	if c == nil {
		return
	}
	if err == nil && !ok {
		c.duration.WithLabelValues(string(OpVerify)).Observe(time.Since(start).Seconds())
		c.operations.WithLabelValues(string(OpVerify), ResultRejected).Inc()
		return
	}
	c.Observe(OpVerify, start, err)
}

func (c *Collector) ObserveBatch(size int) {
	if c == nil {
		return
	}
	c.batchSize.Observe(float64(size))
}

// Counter returns the operation counter for op and result.
func (c *Collector) Counter(op Op, result string) prometheus.Counter {
	return c.operations.WithLabelValues(string(op), result)
}

// Result maps an error onto its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, zkerrors.ErrParse):
		return "parse_error"
	case errors.Is(err, zkerrors.ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, zkerrors.ErrSynthesis):
		return "synthesis_error"
	case errors.Is(err, zkerrors.ErrEncoding):
		return "encoding_error"
	default:
		return "error"
	}
}

// WriteToTextfile writes the collected metrics in the node exporter textfile format.
func (c *Collector) WriteToTextfile(path string) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, registry)
}
