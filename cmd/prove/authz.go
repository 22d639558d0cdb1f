package prove

import (
	"encoding/json"
	"fmt"
	"math/big"
	"path/filepath"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/spf13/cobra"
)

var preimage string
var curValue string
var nextValue string
var curValueHash string
var nextValueHash string

// authzCmd represents the authz command
var authzCmd = &cobra.Command{
	Use:   "authz",
	Short: "Prove knowledge of a preimage for a value transition",
	Long: "Prove knowledge of a preimage for a value transition. Values given with --cur/--next are\n" +
		"JSON documents and are hashed first; --cur-hash/--next-hash take hashed values directly.",
	Run: func(cmd *cobra.Command, args []string) {
		err := proveAuthz()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	proveCmd.AddCommand(authzCmd)

	authzCmd.Flags().StringVar(&preimage, "preimage", "", "secret preimage, decimal")
	authzCmd.Flags().StringVar(&curValue, "cur", "", "current value, JSON")
	authzCmd.Flags().StringVar(&nextValue, "next", "", "next value, JSON")
	authzCmd.Flags().StringVar(&curValueHash, "cur-hash", "", "hashed current value, decimal")
	authzCmd.Flags().StringVar(&nextValueHash, "next-hash", "", "hashed next value, decimal")
	authzCmd.MarkFlagRequired("preimage")
	authzCmd.MarkFlagsMutuallyExclusive("cur", "cur-hash")
	authzCmd.MarkFlagsMutuallyExclusive("next", "next-hash")
	authzCmd.MarkFlagsOneRequired("cur", "cur-hash")
	authzCmd.MarkFlagsOneRequired("next", "next-hash")
	authzCmd.MarkFlagsRequiredTogether("cur", "next")
	authzCmd.MarkFlagsRequiredTogether("cur-hash", "next-hash")
}

func proveAuthz() error {
	fmt.Println("loading authz artifacts...")
	p, collector, err := openProver()
	if err != nil {
		return err
	}
	fmt.Println("done")

	preimage_, err := parseBigInt("preimage", preimage)
	if err != nil {
		return err
	}

	start := time.Now()
	fmt.Println("creating proof...")
	var proofJSON, publicJSON []byte
	if curValueHash != "" {
		var cur, next *big.Int
		if cur, err = parseBigInt("cur-hash", curValueHash); err != nil {
			return err
		}
		if next, err = parseBigInt("next-hash", nextValueHash); err != nil {
			return err
		}
		proofJSON, publicJSON, err = p.ProveHashed(preimage_, cur, next)
	} else {
		var cur, next json.RawMessage
		if cur, err = jsonValue("cur", curValue); err != nil {
			return err
		}
		if next, err = jsonValue("next", nextValue); err != nil {
			return err
		}
		proofJSON, publicJSON, err = p.Prove(preimage_, cur, next)
	}
	if err != nil {
		return err
	}
	fmt.Printf("total proving time %.2f seconds\n", time.Since(start).Seconds())

	key, err := p.Key(preimage_)
	if err != nil {
		return err
	}
	fmt.Println("key", key)

	fmt.Println("dumping proof and public signals")
	outputDir := cmd.AuthzPaths().Dir
	if err := writeFile(filepath.Join(outputDir, "proof.json"), proofJSON); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outputDir, "public.json"), publicJSON); err != nil {
		return err
	}
	return writeMetrics(collector)
}
