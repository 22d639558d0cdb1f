package hash

import (
	"encoding/json"
	"fmt"

	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/hasher"
	"github.com/spf13/cobra"
)

var value string
var preimage string

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash a JSON value to a 160 bit circuit input",
	Run: func(cmd *cobra.Command, args []string) {
		if !json.Valid([]byte(value)) {
			panic(fmt.Errorf("error: --value is not valid JSON: %s", value))
		}
		h, err := hasher.DomainHash(json.RawMessage(value))
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
		fmt.Println(h.String())
	},
}

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Derive the lookup key of a preimage",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := field.ParseBigInt(preimage)
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
		key, err := hasher.DeriveKey(p)
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
		fmt.Println(key)
	},
}

func init() {
	cmd.RootCmd.AddCommand(hashCmd)
	cmd.RootCmd.AddCommand(keyCmd)

	hashCmd.Flags().StringVar(&value, "value", "", "value to hash, JSON")
	hashCmd.MarkFlagRequired("value")
	keyCmd.Flags().StringVar(&preimage, "preimage", "", "preimage, decimal")
	keyCmd.MarkFlagRequired("preimage")
}
