package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"veridex/internal/batch"
	"veridex/internal/checker"
)

var (
	batchJSON        string
	batchTimeout     time.Duration
	batchConcurrency int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <claims-file>",
	Short: "Adjudicate many claims from a file",
	Long: `Batch reads one claim per line (blank lines and # comments are skipped)
and checks them concurrently. A failure on one claim never aborts the
rest of the batch.

Example:
  veridex batch claims.txt
  veridex batch claims.txt --concurrency 4 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write all results JSON to this path")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 2, "claims checked in parallel")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	chk, err := checker.New(cfg, buildRegistry(cfg))
	if err != nil {
		return err
	}

	processor := batch.NewProcessor(chk, batchConcurrency)
	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Printf("%-50s ERROR: %v\n", truncate(r.Claim, 50), r.Error)
			continue
		}
		fmt.Printf("%-50s %s (%d%%)\n", truncate(r.Claim, 50), r.Result.Verdict, r.Result.ConfidencePercentage)
	}
	fmt.Printf("\n%d claims, %d failed\n", len(results), failed)

	if batchJSON != "" {
		if err := writeBatchJSON(batchJSON, results); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Results written to %s\n", batchJSON)
		}
	}

	return nil
}

// batchEntry is the serialized form of one batch result
type batchEntry struct {
	Claim  string          `json:"claim"`
	Error  string          `json:"error,omitempty"`
	Result *checker.Result `json:"result,omitempty"`
}

func writeBatchJSON(path string, results []*batch.CheckResult) error {
	entries := make([]batchEntry, 0, len(results))
	for _, r := range results {
		entry := batchEntry{Claim: r.Claim, Result: r.Result}
		if r.Error != nil {
			entry.Error = r.Error.Error()
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
