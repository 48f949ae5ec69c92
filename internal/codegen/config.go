// Package codegen renders ready-to-run request snippets for a prompt
// configuration, dispatching on provider and task type. Formats a provider
// generator does not implement render as an empty string; callers treat that
// as "format unsupported", not an error.
package codegen

import "promptnovax/internal/catalog"

// Config is the unified input to code generation. Optional numeric
// parameters are pointers so that "unset" is representable: a nil field is
// omitted from the generated request entirely. Optional strings use the
// empty string as absent. The model is not checked against the provider's
// model list; that is the caller's responsibility.
type Config struct {
	Provider catalog.ProviderID
	Model    string
	// APIKey, when set, is embedded literally into key-inlining formats.
	APIKey       string
	SystemPrompt string
	UserPrompt   string

	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
	Stop             []string

	// Image generation
	Size    string
	Quality string
	Style   string

	// Video generation
	Duration    *int
	AspectRatio string
}

// Float64 returns a pointer to v, for building configs inline.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for building configs inline.
func Int(v int) *int { return &v }

const keyPlaceholder = "YOUR_API_KEY"

// keyOrPlaceholder returns the literal key for inlining formats, or the
// placeholder when no key was provided.
func (c Config) keyOrPlaceholder() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return keyPlaceholder
}
