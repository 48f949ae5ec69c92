// Package catalog is the static registry of supported AI providers. It is a
// pure lookup table: descriptors are defined at init and never mutated, so
// every function here is safe for concurrent use.
package catalog

import "errors"

// ProviderID identifies a supported AI provider.
type ProviderID string

const (
	ProviderOpenAI      ProviderID = "openai"
	ProviderAnthropic   ProviderID = "anthropic"
	ProviderOpenRouter  ProviderID = "openrouter"
	ProviderHuggingFace ProviderID = "huggingface"
	ProviderMistral     ProviderID = "mistral"
	ProviderGoogle      ProviderID = "google"
	ProviderCohere      ProviderID = "cohere"
	ProviderStability   ProviderID = "stability"
	ProviderMidjourney  ProviderID = "midjourney"
	ProviderReplicate   ProviderID = "replicate"
)

// ErrUnknownProvider is returned when a provider id is not in the registry.
var ErrUnknownProvider = errors.New("unknown provider")

// PromptType classifies what kind of output a prompt targets.
type PromptType string

const (
	PromptText  PromptType = "text"
	PromptImage PromptType = "image"
	PromptCode  PromptType = "code"
	PromptChat  PromptType = "chat"
)

// Capabilities flags what a provider can do.
type Capabilities struct {
	Text  bool
	Image bool
	Code  bool
	Chat  bool
}

// Supports reports whether the capability flag for a prompt type is set.
func (c Capabilities) Supports(pt PromptType) bool {
	switch pt {
	case PromptText:
		return c.Text
	case PromptImage:
		return c.Image
	case PromptCode:
		return c.Code
	case PromptChat:
		return c.Chat
	}
	return false
}

// Pricing holds per-unit price hints. A zero value means the provider does
// not publish that unit price.
type Pricing struct {
	PerToken float64
	PerImage float64
	Notes    string
}

// Descriptor is the static, immutable description of one provider. The model
// list is order-significant: the first entry is the provider's default model.
type Descriptor struct {
	ID          ProviderID
	Name        string
	Description string
	Website     string
	APIKeyURL   string
	Models      []string
	Supports    Capabilities
	Pricing     *Pricing
}

// OutputFormat tags a target rendering of a generated request.
type OutputFormat string

const (
	FormatRawHTTP   OutputFormat = "raw-http"
	FormatPython    OutputFormat = "python"
	FormatShell     OutputFormat = "shell"
	FormatTypedHTTP OutputFormat = "typed-http"
	FormatServerSDK OutputFormat = "server-sdk"
)

// outputFormats is currently identical for every provider. It exists as an
// extension point should providers diverge later.
var outputFormats = []OutputFormat{
	FormatRawHTTP,
	FormatPython,
	FormatShell,
	FormatTypedHTTP,
	FormatServerSDK,
}

// GetDescriptor resolves a provider id to its descriptor.
func GetDescriptor(id ProviderID) (*Descriptor, error) {
	d, ok := descriptors[id]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return d, nil
}

// Models returns the provider's declared model list, verbatim and in order.
func Models(id ProviderID) ([]string, error) {
	d, err := GetDescriptor(id)
	if err != nil {
		return nil, err
	}
	return d.Models, nil
}

// OutputFormats returns the format tags supported at the interface level.
// Individual generators may still render an empty snippet for some of them.
func OutputFormats(id ProviderID) []OutputFormat {
	formats := make([]OutputFormat, len(outputFormats))
	copy(formats, outputFormats)
	return formats
}

// Descriptors returns all registered providers in registration order.
func Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(order))
	for _, id := range order {
		out = append(out, descriptors[id])
	}
	return out
}

// IsKnown reports whether the id resolves to a registered provider.
func IsKnown(id ProviderID) bool {
	_, ok := descriptors[id]
	return ok
}
