package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"veridex/internal/model"
	"veridex/internal/query"
)

var modelsRefresh bool

// modelsCmd represents the models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show or refresh the provider model table",
	Long: `Models prints the model ID used for each provider. With --refresh it
queries every provider with an API key for its current model list,
picks the preferred model, and caches the result; the account credit
balance is checked on the same pass. Providers that cannot be reached
keep their last known good entry.

Example:
  veridex models
  veridex models --refresh`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().BoolVar(&modelsRefresh, "refresh", false, "query providers for current model lists")
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := buildRegistry(cfg)

	mc := reg.Load()
	credit, haveCredit := reg.LoadCredits()

	if modelsRefresh {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		providers := discoveryProviders(cfg)
		if len(providers) == 0 {
			return fmt.Errorf("no provider API keys set: cannot refresh model lists")
		}

		mc, err = reg.Discover(ctx, providers)
		if err != nil {
			// Partial discovery still yields a usable table
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		credit = reg.CheckCredits(ctx, providers)
		haveCredit = true
	}

	fmt.Printf("Source:  %s\n", mc.Source)
	if !mc.LastUpdated.IsZero() {
		fmt.Printf("Updated: %s\n", mc.LastUpdated.Format(time.RFC3339))
	}
	fmt.Println()
	for _, name := range query.ProviderNames {
		info, ok := mc.Models[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s %s\n", name, info.ID)
	}

	if haveCredit {
		fmt.Printf("\nCredit:  %s (%d%%", credit.Status, credit.Percentage)
		if credit.Provider != "" {
			fmt.Printf(", %s", credit.Provider)
		}
		fmt.Println(")")
	}

	return nil
}

// discoveryProviders builds one provider per available API key, ignoring
// per-provider enable flags so a refresh covers everything reachable
func discoveryProviders(cfg model.Config) []query.Provider {
	var providers []query.Provider
	for _, name := range query.ProviderNames {
		apiKey := query.APIKeyFromEnv(name)
		if apiKey == "" {
			continue
		}
		prov, err := query.NewProvider(query.Config{
			Name:        name,
			APIKey:      apiKey,
			Timeout:     int(cfg.Query.Timeout.Std().Seconds()),
			MaxTokens:   cfg.Query.MaxTokens,
			Temperature: cfg.Query.Temperature,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			continue
		}
		providers = append(providers, prov)
	}
	return providers
}
