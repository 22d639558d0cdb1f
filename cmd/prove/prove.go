package prove

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/Electron-Labs/hollow-gnark-prover/codec"
	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/hollow"
	"github.com/Electron-Labs/hollow-gnark-prover/metrics"
	"github.com/spf13/cobra"
)

var layoutName string
var metricsFile string

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate authorization proofs",
}

func init() {
	cmd.RootCmd.AddCommand(proveCmd)

	proveCmd.PersistentFlags().StringVar(&layoutName, "layout", "affine", "point layout of exported proofs (affine or projective)")
	proveCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prover metrics to this file in textfile collector format")
}

// openProver loads the artifacts written by `build authz`.
func openProver() (*hollow.Prover, *metrics.Collector, error) {
	layout, err := codec.ParseLayout(layoutName)
	if err != nil {
		return nil, nil, err
	}
	collector := metrics.New()
	p, err := hollow.Open(cmd.AuthzPaths(), hollow.WithLayout(layout), hollow.WithMetrics(collector))
	if err != nil {
		return nil, nil, err
	}
	return p, collector, nil
}

func writeMetrics(collector *metrics.Collector) error {
	if metricsFile == "" {
		return nil
	}
	return collector.WriteToTextfile(metricsFile)
}

func parseBigInt(name, value string) (*big.Int, error) {
	v, err := field.ParseBigInt(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return v, nil
}

// jsonValue wraps a raw JSON flag so it is hashed exactly as given, modulo
// insignificant whitespace.
func jsonValue(name, value string) (json.RawMessage, error) {
	if !json.Valid([]byte(value)) {
		return nil, fmt.Errorf("--%s is not valid JSON: %s", name, value)
	}
	return json.RawMessage(value), nil
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(data)
	return err
}
