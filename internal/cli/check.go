package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"veridex/internal/checker"
)

var (
	checkJSON      string
	checkTimeout   time.Duration
	checkResponses bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Adjudicate a single factual claim",
	Long: `Check sends one claim to every configured AI provider, classifies each
answer as TRUE, FALSE, UNCERTAIN, RECUSE or POLICY_LIMITED, and prints
the consensus verdict with its confidence score.

At least one provider API key must be set in the environment:
OPENAI_API_KEY, CLAUDE_API_KEY, MISTRAL_API_KEY or DEEPSEEK_API_KEY.

Example:
  veridex check "napoleon was born in corsica"
  veridex check "the moon is made of cheese" --json verdict.json
  veridex check "vaccines cause autism" --responses`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkJSON, "json", "", "write full result JSON to this path")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall check timeout")
	checkCmd.Flags().BoolVar(&checkResponses, "responses", false, "include raw provider responses in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	chk, err := checker.New(cfg, buildRegistry(cfg))
	if err != nil {
		return err
	}

	result, err := chk.Check(ctx, args[0])
	if err != nil {
		return err
	}

	if !checkResponses {
		result.Responses = nil
	}

	printVerdict(result)

	if checkJSON != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(checkJSON, data, 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Result written to %s\n", checkJSON)
		}
	}

	return nil
}

// printVerdict renders a human-readable summary to stdout
func printVerdict(result *checker.Result) {
	fmt.Printf("Claim:      %s\n", result.Claim)
	fmt.Printf("Verdict:    %s\n", result.Verdict)
	fmt.Printf("Confidence: %d%% (%s)\n", result.ConfidencePercentage, result.ConfidenceLevel)

	if len(result.Judgments) > 0 {
		fmt.Println("\nPanel:")
		for source, outcome := range result.Judgments {
			fmt.Printf("  %-12s %s\n", source, outcome)
		}
	}
	if len(result.PolicyLimitedSources) > 0 {
		fmt.Printf("\nDeclined on policy grounds: %v\n", result.PolicyLimitedSources)
	}
	if len(result.UncertainSources) > 0 {
		fmt.Printf("Hedged or uncertain: %v\n", result.UncertainSources)
	}
}
