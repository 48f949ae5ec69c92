package codegen

import "promptnovax/internal/catalog"

// generatorFunc renders a snippet for one provider. Returning "" means the
// (provider, format) combination is not implemented.
type generatorFunc func(Config, catalog.OutputFormat) string

// generators is the provider dispatch table. Providers without an entry fall
// back to the chat-style generator in Generate.
var generators = map[catalog.ProviderID]generatorFunc{
	catalog.ProviderOpenAI:    generateOpenAI,
	catalog.ProviderAnthropic: generateAnthropic,
	catalog.ProviderGoogle:    generateGoogle,
	catalog.ProviderStability: generateStability,
	catalog.ProviderReplicate: generateVideo,
}

// Generate renders a snippet for the config in the requested format.
//
// Unknown or unhandled providers fall back to the default chat-style
// generator instead of failing. This is deliberate graceful degradation: a
// newly added provider produces a plausible chat snippet before its dedicated
// generator exists, and the calling UI never hard-fails on generation.
func Generate(cfg Config, format catalog.OutputFormat) string {
	if gen, ok := generators[cfg.Provider]; ok {
		return gen(cfg, format)
	}
	return generateOpenAI(cfg, format)
}

// ProviderModels returns the provider's model list, or an empty list for
// unknown providers. Contrast with catalog.Models, which reports the error.
func ProviderModels(providerID catalog.ProviderID) []string {
	models, err := catalog.Models(providerID)
	if err != nil {
		return []string{}
	}
	return models
}

// SupportedFormats returns the formats supported at the interface level. All
// five are always advertised even though specific generators render empty
// strings for some of them; callers probe with Generate.
func SupportedFormats(providerID catalog.ProviderID) []catalog.OutputFormat {
	return catalog.OutputFormats(providerID)
}
