package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptnovax/internal/catalog"
	"promptnovax/internal/recommend"
)

var recommendFlags struct {
	promptType string
	complexity string
	budget     string
	prompt     string
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank providers and models for a prompt",
	Long: `Rank providers and models for a prompt.

With --prompt, complexity is derived from the prompt's word count and the
result is limited to providers with an active integration. Otherwise
--complexity and --budget are used directly against the full catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		promptType := catalog.PromptType(recommendFlags.promptType)

		var recs []recommend.Recommendation
		if recommendFlags.prompt != "" {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			recs = a.orchestrator.RecommendForPrompt(cmd.Context(), recommendFlags.prompt, promptType)
		} else {
			recs = recommend.Models(
				promptType,
				recommend.Complexity(recommendFlags.complexity),
				recommend.Budget(recommendFlags.budget),
			)
		}

		if len(recs) == 0 {
			fmt.Println("No matching providers.")
			return nil
		}
		for _, rec := range recs {
			fmt.Printf("%.2f  %-12s %-28s %s", rec.Confidence, rec.ProviderID, rec.Model, rec.Reason)
			if rec.EstimatedCost > 0 {
				fmt.Printf(" (~$%g per unit)", rec.EstimatedCost)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recommendFlags.promptType, "type", string(catalog.PromptText), "prompt type (text, image, code, chat)")
	f.StringVar(&recommendFlags.complexity, "complexity", string(recommend.ComplexityMedium), "prompt complexity (simple, medium, complex)")
	f.StringVar(&recommendFlags.budget, "budget", string(recommend.BudgetMedium), "budget tier (free, low, medium, high)")
	f.StringVar(&recommendFlags.prompt, "prompt", "", "prompt text to analyze")

	rootCmd.AddCommand(recommendCmd)
}
