package build

import (
	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build cs, pk, and vk files for specific circuits",
}

func init() {
	cmd.RootCmd.AddCommand(buildCmd)
}
