package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDescriptor_KnownProviders(t *testing.T) {
	for _, d := range Descriptors() {
		t.Run(string(d.ID), func(t *testing.T) {
			got, err := GetDescriptor(d.ID)
			require.NoError(t, err)
			assert.Equal(t, d.ID, got.ID)
			assert.NotEmpty(t, got.Name)
			assert.NotEmpty(t, got.Models, "every registered provider declares models")
		})
	}
}

func TestGetDescriptor_Unknown(t *testing.T) {
	_, err := GetDescriptor("grok")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = Models("grok")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestModels_VerbatimAndOrdered(t *testing.T) {
	models, err := Models(ProviderOpenAI)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", models[0], "first model is the default")
	assert.Contains(t, models, "dall-e-3")
	assert.Contains(t, models, "whisper-1")
}

func TestOutputFormats(t *testing.T) {
	want := []OutputFormat{FormatRawHTTP, FormatPython, FormatShell, FormatTypedHTTP, FormatServerSDK}

	// Currently identical for every provider, including unknown ids.
	assert.Equal(t, want, OutputFormats(ProviderOpenAI))
	assert.Equal(t, want, OutputFormats(ProviderMidjourney))

	// Mutating the returned slice must not affect the registry.
	formats := OutputFormats(ProviderOpenAI)
	formats[0] = "mangled"
	assert.Equal(t, want, OutputFormats(ProviderOpenAI))
}

func TestCapabilities_Supports(t *testing.T) {
	tests := []struct {
		provider ProviderID
		pt       PromptType
		want     bool
	}{
		{ProviderOpenAI, PromptImage, true},
		{ProviderAnthropic, PromptImage, false},
		{ProviderAnthropic, PromptChat, true},
		{ProviderMidjourney, PromptText, false},
		{ProviderMidjourney, PromptImage, true},
		{ProviderCohere, PromptCode, false},
	}

	for _, tt := range tests {
		d, err := GetDescriptor(tt.provider)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.Supports.Supports(tt.pt), "%s supports %s", tt.provider, tt.pt)
	}
}

func TestCapabilities_UnknownPromptType(t *testing.T) {
	d, err := GetDescriptor(ProviderOpenAI)
	require.NoError(t, err)
	assert.False(t, d.Supports.Supports("video"))
}

func TestDescriptors_Order(t *testing.T) {
	all := Descriptors()
	require.Len(t, all, 10)
	assert.Equal(t, ProviderOpenAI, all[0].ID)
	assert.Equal(t, ProviderAnthropic, all[1].ID)
	assert.Equal(t, ProviderReplicate, all[9].ID)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(ProviderStability))
	assert.False(t, IsKnown("runway"))
}
