package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/Electron-Labs/hollow-gnark-prover/codec"
	"github.com/Electron-Labs/hollow-gnark-prover/metrics"
	"github.com/Electron-Labs/hollow-gnark-prover/prover"
	"github.com/spf13/cobra"
)

var proofFile string
var publicFile string
var vkFile string
var metricsFile string
var layoutName string
var vkLayoutName string

var errRejected = errors.New("proof rejected")

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify an authorization proof against its public signals",
	Run: func(cmd *cobra.Command, args []string) {
		err := verifyAuthz()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "proof.json path, defaults to the build output")
	verifyCmd.Flags().StringVar(&publicFile, "public", "", "public.json path, defaults to the build output")
	verifyCmd.Flags().StringVar(&vkFile, "vk", "", "verification_key.json path, defaults to the build output")
	verifyCmd.Flags().StringVar(&layoutName, "layout", "affine", "point layout of proof.json (affine or projective)")
	verifyCmd.Flags().StringVar(&vkLayoutName, "vk-layout", "affine", "point layout of verification_key.json (affine or projective)")
	verifyCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write verifier metrics to this file in textfile collector format")
}

func orDefault(path, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(cmd.AuthzPaths().Dir, name)
}

func verifyAuthz() error {
	bytesProof, err := os.ReadFile(orDefault(proofFile, "proof.json"))
	if err != nil {
		return err
	}
	bytesPublic, err := os.ReadFile(orDefault(publicFile, "public.json"))
	if err != nil {
		return err
	}
	bytesVK, err := os.ReadFile(orDefault(vkFile, "verification_key.json"))
	if err != nil {
		return err
	}

	layout, err := codec.ParseLayout(layoutName)
	if err != nil {
		return err
	}
	vkLayout, err := codec.ParseLayout(vkLayoutName)
	if err != nil {
		return err
	}

	vk, err := codec.ImportVerifyingKey(bytesVK, vkLayout)
	if err != nil {
		return err
	}
	proof, err := codec.ImportProof(bytesProof, layout)
	if err != nil {
		return err
	}
	public, err := codec.ImportPublicSignals(bytesPublic)
	if err != nil {
		return err
	}

	collector := metrics.New()
	start := time.Now()
	ok, err := prover.Verify(proof, public, vk)
	collector.ObserveVerify(start, ok, err)
	if metricsFile != "" {
		if err := collector.WriteToTextfile(metricsFile); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	if !ok {
		return errRejected
	}
	fmt.Println("proof verified")
	return nil
}
