package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptnovax/internal/catalog"
	"promptnovax/internal/codegen"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported AI providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range catalog.Descriptors() {
			fmt.Printf("%-12s %-14s %s\n", d.ID, d.Name, d.Description)
		}
		return nil
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models <provider>",
	Short: "List a provider's models in priority order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := catalog.Models(catalog.ProviderID(args[0]))
		if err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}
		for i, m := range models {
			marker := " "
			if i == 0 {
				marker = "*" // default model
			}
			fmt.Printf("%s %s\n", marker, m)
		}
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats <provider>",
	Short: "List output formats for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := catalog.ProviderID(args[0])
		if _, err := catalog.GetDescriptor(id); err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}
		for _, f := range codegen.SupportedFormats(id) {
			fmt.Println(f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(formatsCmd)
}
