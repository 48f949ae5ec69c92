package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"promptnovax/internal/catalog"
	"promptnovax/internal/integrations"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage provider API credentials",
}

var keysAddFlags struct {
	label    string
	inactive bool
}

var keysAddCmd = &cobra.Command{
	Use:   "add <provider> <api-key>",
	Short: "Add or replace the credential for a provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		providerID := catalog.ProviderID(args[0])
		apiKey := args[1]

		if validation := integrations.ValidateKeyFormat(providerID, apiKey); !validation.Valid {
			fmt.Printf("Invalid key: %s\n", validation.Error)
			return nil
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Upsert(cmd.Context(), integrations.Credential{
			ProviderID: providerID,
			APIKey:     apiKey,
			Label:      keysAddFlags.label,
			IsActive:   !keysAddFlags.inactive,
			CreatedAt:  time.Now(),
		})
		fmt.Printf("Stored credential for %s.\n", providerID)
		return nil
	},
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove <provider>",
	Short: "Remove the credential for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Remove(cmd.Context(), catalog.ProviderID(args[0]))
		fmt.Printf("Removed credential for %s.\n", args[0])
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		creds := a.store.Load(cmd.Context())
		if len(creds) == 0 {
			fmt.Println("No credentials configured.")
			return nil
		}
		for _, d := range catalog.Descriptors() {
			cred, ok := creds[d.ID]
			if !ok {
				continue
			}
			state := "inactive"
			if cred.IsActive {
				state = "active"
			}
			fmt.Printf("%-12s %-8s %s\n", cred.ProviderID, state, cred.Label)
		}
		return nil
	},
}

var keysCheckCmd = &cobra.Command{
	Use:   "check <provider> <api-key>",
	Short: "Validate and test an API key without storing it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		result := integrations.TestKey(cmd.Context(), a.checker, catalog.ProviderID(args[0]), args[1])
		if !result.Success {
			fmt.Printf("Key test failed: %s\n", result.Error)
			return nil
		}
		fmt.Println("Key test passed.")
		return nil
	},
}

func init() {
	keysAddCmd.Flags().StringVar(&keysAddFlags.label, "label", "", "optional credential label")
	keysAddCmd.Flags().BoolVar(&keysAddFlags.inactive, "inactive", false, "store the credential without activating it")

	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysRemoveCmd)
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysCheckCmd)
	rootCmd.AddCommand(keysCmd)
}
