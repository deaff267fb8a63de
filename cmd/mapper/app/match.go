package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mapper "github.com/loukach/infocar-eurotax-mapper"
)

// NewMatchCommand creates the match command.
func (a *App) NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <code>",
		Short: "Match one Infocar code against the Eurotax catalogue",
		Long: `Match resolves a single Infocar provider code and prints the ranked
Eurotax candidates. The dataset is loaded for the run; use the serve
command for repeated lookups.`,
		Example: `  # Match with the default weight profile
  mapper match 201812128598

  # Use a different profile and JSON output
  mapper match 201812128598 --profile trim_heavy -o json`,
		Args: cobra.ExactArgs(1),
		RunE: a.runMatch,
	}

	cmd.Flags().String("profile", "", "weight profile (default, flat, trim_heavy)")
	cmd.Flags().Int("top", 5, "number of candidates to print")

	return cmd
}

func (a *App) runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	code := args[0]
	profile := mustGetString(cmd, "profile")
	top, _ := cmd.Flags().GetInt("top")

	m, err := a.Mapper()
	if err != nil {
		return err
	}
	if err := m.Load(ctx); err != nil {
		return err
	}

	result, err := m.Match(ctx, code, profile)
	if err != nil {
		return err
	}

	if a.config.Output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result, top)
	return nil
}

// printResult renders a match result for the terminal.
func printResult(result *mapper.Result, top int) {
	if !result.Found {
		fmt.Printf("code %s: not found upstream\n", result.OriginalCode)
		return
	}

	fmt.Printf("source   %s  %s (%s, %s)\n", result.SourceCode, result.SourceName, result.Brand, result.Class)
	if result.WasInverted {
		fmt.Printf("         resolved via inverted code (original %s)\n", result.OriginalCode)
	}
	fmt.Printf("profile  %s (max score %d)\n", result.Profile, result.MaxScore)
	fmt.Printf("decision %s", result.Decision)
	if result.RecommendedNatcode != "" {
		fmt.Printf("  ->  %s (%.1f%%)", result.RecommendedNatcode, result.Confidence*100)
	}
	fmt.Println()

	if len(result.Candidates) == 0 {
		return
	}
	fmt.Println()
	for i, c := range result.Candidates {
		if i >= top {
			fmt.Printf("  ... and %d more\n", len(result.Candidates)-top)
			break
		}
		fmt.Printf("  %2d. %-14s %4d  %-8s  %s\n", i+1, c.Natcode, c.Score, c.Confidence, c.Name)
	}
}
