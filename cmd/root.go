package cmd

import (
	"os"
	"path/filepath"

	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hollow-gnark-prover",
	Short: "CLI for building, proving and verifying hollow authorization proofs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(LogLevel)
		if err != nil {
			return err
		}
		gnarklogger.Set(gnarklogger.Logger().Level(level))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var OutputDir string
var LogLevel string

func init() {
	RootCmd.PersistentFlags().StringVar(&OutputDir, "out", "artifacts", "Output directory for storing artifacts")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}

// AuthzPaths locates the authorization circuit artifacts under the output directory.
func AuthzPaths() circuitData.Paths {
	return circuitData.Paths{Dir: filepath.Join(OutputDir, "authz"), Name: "authz"}
}
