package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"promptnovax/internal/catalog"
	"promptnovax/internal/testrun"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Execute prompt test runs",
}

var testRunFlags struct {
	promptID string
	prompt   string
	provider string
	model    string
	input    string
}

var testRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a single test run",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		run := a.orchestrator.CreateRun(
			testRunFlags.promptID,
			testRunFlags.prompt,
			catalog.ProviderID(testRunFlags.provider),
			testRunFlags.model,
			testRunFlags.input,
		)
		a.orchestrator.Execute(cmd.Context(), run)
		printRun(run)
		return nil
	},
}

// testPlan is the YAML batch description consumed by `test batch`.
type testPlan struct {
	PromptID string             `yaml:"prompt_id"`
	Prompt   string             `yaml:"prompt"`
	Input    string             `yaml:"input"`
	Models   []testrun.ModelRef `yaml:"models"`
}

var testBatchFlags struct {
	planPath string
}

var testBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Execute a batch of test runs from a YAML plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(testBatchFlags.planPath)
		if err != nil {
			return fmt.Errorf("failed to read plan: %w", err)
		}
		var plan testPlan
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return fmt.Errorf("failed to parse plan: %w", err)
		}
		if len(plan.Models) == 0 {
			return fmt.Errorf("plan lists no models")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		runs := a.orchestrator.BatchTest(cmd.Context(), plan.PromptID, plan.Prompt, plan.Models, plan.Input)
		for _, run := range runs {
			printRun(run)
			fmt.Println()
		}
		return nil
	},
}

var testScenariosFlags struct {
	prompt string
}

var testScenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Generate starter test scenarios for a prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, s := range a.orchestrator.Scenarios(testScenariosFlags.prompt) {
			fmt.Printf("%-10s %-18s %s\n", s.Category, s.Name, s.Input)
		}
		return nil
	},
}

func printRun(run *testrun.Run) {
	fmt.Printf("run %s  %s/%s  status=%s\n", run.ID, run.ProviderID, run.Model, run.Status)
	switch run.Status {
	case testrun.StatusCompleted:
		m := run.Metrics
		fmt.Printf("  tokens=%d cost=$%.4f latency=%dms quality=%.2f\n",
			m.TokensUsed, m.Cost, m.LatencyMs, m.QualityScore)
		fmt.Printf("  %s\n", run.Output)
	case testrun.StatusFailed:
		fmt.Printf("  error: %s\n", run.Error)
	}
}

func init() {
	f := testRunCmd.Flags()
	f.StringVar(&testRunFlags.promptID, "prompt-id", "", "prompt identifier")
	f.StringVar(&testRunFlags.prompt, "prompt", "", "prompt text")
	f.StringVar(&testRunFlags.provider, "provider", "", "provider id")
	f.StringVar(&testRunFlags.model, "model", "", "model id")
	f.StringVar(&testRunFlags.input, "input", "", "optional input override")
	testRunCmd.MarkFlagRequired("prompt")
	testRunCmd.MarkFlagRequired("provider")
	testRunCmd.MarkFlagRequired("model")

	testBatchCmd.Flags().StringVar(&testBatchFlags.planPath, "plan", "", "YAML test plan path")
	testBatchCmd.MarkFlagRequired("plan")

	testScenariosCmd.Flags().StringVar(&testScenariosFlags.prompt, "prompt", "", "prompt text")

	testCmd.AddCommand(testRunCmd)
	testCmd.AddCommand(testBatchCmd)
	testCmd.AddCommand(testScenariosCmd)
	rootCmd.AddCommand(testCmd)
}
