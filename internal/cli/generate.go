package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptnovax/internal/catalog"
	"promptnovax/internal/codegen"
)

var generateFlags struct {
	provider         string
	model            string
	format           string
	prompt           string
	system           string
	apiKey           string
	temperature      float64
	maxTokens        int
	topP             float64
	frequencyPenalty float64
	presencePenalty  float64
	stop             []string
	size             string
	quality          string
	style            string
	duration         int
	aspectRatio      string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a request snippet for a prompt configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := codegen.Config{
			Provider:     catalog.ProviderID(generateFlags.provider),
			Model:        generateFlags.model,
			APIKey:       generateFlags.apiKey,
			SystemPrompt: generateFlags.system,
			UserPrompt:   generateFlags.prompt,
			Stop:         generateFlags.stop,
			Size:         generateFlags.size,
			Quality:      generateFlags.quality,
			Style:        generateFlags.style,
			AspectRatio:  generateFlags.aspectRatio,
		}

		// Optional numerics count only when the flag was actually given.
		if cmd.Flags().Changed("temperature") {
			cfg.Temperature = codegen.Float64(generateFlags.temperature)
		}
		if cmd.Flags().Changed("max-tokens") {
			cfg.MaxTokens = codegen.Int(generateFlags.maxTokens)
		}
		if cmd.Flags().Changed("top-p") {
			cfg.TopP = codegen.Float64(generateFlags.topP)
		}
		if cmd.Flags().Changed("frequency-penalty") {
			cfg.FrequencyPenalty = codegen.Float64(generateFlags.frequencyPenalty)
		}
		if cmd.Flags().Changed("presence-penalty") {
			cfg.PresencePenalty = codegen.Float64(generateFlags.presencePenalty)
		}
		if cmd.Flags().Changed("duration") {
			cfg.Duration = codegen.Int(generateFlags.duration)
		}

		snippet := codegen.Generate(cfg, catalog.OutputFormat(generateFlags.format))
		if snippet == "" {
			fmt.Printf("No %s snippet is available for %s/%s.\n",
				generateFlags.format, generateFlags.provider, generateFlags.model)
			return nil
		}
		fmt.Println(snippet)
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.provider, "provider", "", "provider id")
	f.StringVar(&generateFlags.model, "model", "", "model id")
	f.StringVar(&generateFlags.format, "format", string(catalog.FormatRawHTTP), "output format (raw-http, python, shell, typed-http, server-sdk)")
	f.StringVar(&generateFlags.prompt, "prompt", "", "user prompt")
	f.StringVar(&generateFlags.system, "system", "", "system prompt")
	f.StringVar(&generateFlags.apiKey, "api-key", "", "API key to embed (placeholder when omitted)")
	f.Float64Var(&generateFlags.temperature, "temperature", 0, "sampling temperature")
	f.IntVar(&generateFlags.maxTokens, "max-tokens", 0, "maximum output tokens")
	f.Float64Var(&generateFlags.topP, "top-p", 0, "nucleus sampling probability")
	f.Float64Var(&generateFlags.frequencyPenalty, "frequency-penalty", 0, "frequency penalty")
	f.Float64Var(&generateFlags.presencePenalty, "presence-penalty", 0, "presence penalty")
	f.StringSliceVar(&generateFlags.stop, "stop", nil, "stop sequences")
	f.StringVar(&generateFlags.size, "size", "", "image size, e.g. 1024x1024")
	f.StringVar(&generateFlags.quality, "quality", "", "image quality")
	f.StringVar(&generateFlags.style, "style", "", "image style")
	f.IntVar(&generateFlags.duration, "duration", 0, "video duration in seconds")
	f.StringVar(&generateFlags.aspectRatio, "aspect-ratio", "", "video aspect ratio")

	generateCmd.MarkFlagRequired("provider")
	generateCmd.MarkFlagRequired("model")
	generateCmd.MarkFlagRequired("prompt")

	rootCmd.AddCommand(generateCmd)
}
