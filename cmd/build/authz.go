package build

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/Electron-Labs/hollow-gnark-prover/circuit"
	circuitData "github.com/Electron-Labs/hollow-gnark-prover/circuit_data"
	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/Electron-Labs/hollow-gnark-prover/codec"
	"github.com/Electron-Labs/hollow-gnark-prover/prover"
	"github.com/spf13/cobra"
)

var vkLayout string

// authzCmd represents the authz command
var authzCmd = &cobra.Command{
	Use:   "authz",
	Short: "Build cs, pk and vk for the hollow authorization circuit",
	Run: func(cmd *cobra.Command, args []string) {
		err := buildAuthz()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	buildCmd.AddCommand(authzCmd)

	authzCmd.Flags().StringVar(&vkLayout, "layout", "affine", "point layout of verification_key.json (affine or projective)")
}

func buildAuthz() error {
	layout, err := codec.ParseLayout(vkLayout)
	if err != nil {
		return err
	}

	fmt.Println("compiling...")
	handle, err := circuit.Compile(circuit.Authz())
	if err != nil {
		return err
	}
	fmt.Println("compiling done, constraints:", handle.ConstraintSystem().GetNbConstraints())

	fmt.Println("setting up...")
	key, err := prover.Setup(handle, rand.Reader)
	if err != nil {
		return err
	}
	fmt.Println("done")

	paths := cmd.AuthzPaths()
	err = circuitData.WritePkVkCs(paths, handle.ConstraintSystem(), key.Backend(), key.VerifyingKey().Backend())
	if err != nil {
		return err
	}

	vkJSON, err := codec.ExportVerifyingKey(key.VerifyingKey(), layout)
	if err != nil {
		return err
	}
	err = os.WriteFile(paths.VKJSON(), vkJSON, 0644)
	if err != nil {
		return err
	}

	vkHash, err := key.VerifyingKey().Fingerprint()
	if err != nil {
		return err
	}
	fmt.Println("artifacts written to", paths.Dir)
	fmt.Println("vk hash", vkHash.Hex())
	return nil
}
