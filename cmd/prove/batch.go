package prove

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Electron-Labs/hollow-gnark-prover/batch"
	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	"github.com/spf13/cobra"
)

var requestsFile string

// requestJSON is one entry of the --requests file; all values are decimal strings.
type requestJSON struct {
	Preimage      string `json:"preimage"`
	CurValueHash  string `json:"curValueHash"`
	NextValueHash string `json:"nextValueHash"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Prove a batch of hashed requests and commit to them with a merkle root",
	Run: func(cmd *cobra.Command, args []string) {
		err := proveBatch()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	proveCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&requestsFile, "requests", "", "path of file containing the requests")
	batchCmd.MarkFlagRequired("requests")
}

func readRequests() ([]batch.Request, error) {
	bytesRequests, err := os.ReadFile(requestsFile)
	if err != nil {
		return nil, err
	}
	var raw []requestJSON
	err = json.Unmarshal(bytesRequests, &raw)
	if err != nil {
		return nil, err
	}

	requests := make([]batch.Request, len(raw))
	for i, r := range raw {
		if requests[i].Preimage, err = parseBigInt("preimage", r.Preimage); err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		if requests[i].CurValueHash, err = parseBigInt("curValueHash", r.CurValueHash); err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		if requests[i].NextValueHash, err = parseBigInt("nextValueHash", r.NextValueHash); err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
	}
	return requests, nil
}

func proveBatch() error {
	fmt.Println("loading authz artifacts...")
	p, collector, err := openProver()
	if err != nil {
		return err
	}
	fmt.Println("done")

	requests, err := readRequests()
	if err != nil {
		return err
	}

	start := time.Now()
	fmt.Println("creating proofs...")
	b, err := batch.Prove(context.Background(), p, requests)
	if err != nil {
		return err
	}
	fmt.Println("done")
	fmt.Printf("total proving time %.2f seconds\n", time.Since(start).Seconds())
	fmt.Println("batch root", b.Root.Hex())

	fmt.Println("dumping receipts")
	batchBytes, err := json.MarshalIndent(b, "", "    ")
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(cmd.AuthzPaths().Dir, "batch.json"), batchBytes); err != nil {
		return err
	}
	return writeMetrics(collector)
}
