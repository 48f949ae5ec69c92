package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptnovax/internal/catalog"
)

var promptTypes = []catalog.PromptType{catalog.PromptText, catalog.PromptImage, catalog.PromptCode, catalog.PromptChat}
var complexities = []Complexity{ComplexitySimple, ComplexityMedium, ComplexityComplex}
var budgets = []Budget{BudgetFree, BudgetLow, BudgetMedium, BudgetHigh}

func TestModels_ConfidenceBoundsAndOrdering(t *testing.T) {
	for _, pt := range promptTypes {
		for _, cx := range complexities {
			for _, b := range budgets {
				recs := Models(pt, cx, b)
				assert.LessOrEqual(t, len(recs), 5)
				for i, rec := range recs {
					assert.GreaterOrEqual(t, rec.Confidence, 0.0)
					assert.LessOrEqual(t, rec.Confidence, 1.0)
					if i > 0 {
						assert.GreaterOrEqual(t, recs[i-1].Confidence, rec.Confidence,
							"list must be sorted non-increasing (%s/%s/%s)", pt, cx, b)
					}
				}
			}
		}
	}
}

func TestModels_FreeBudgetHardFilter(t *testing.T) {
	for _, pt := range promptTypes {
		for _, cx := range complexities {
			for _, rec := range Models(pt, cx, BudgetFree) {
				assert.Contains(t,
					[]catalog.ProviderID{catalog.ProviderGoogle, catalog.ProviderHuggingFace},
					rec.ProviderID,
					"free budget must only surface free-tier providers")
			}
		}
	}
}

func TestModels_FreeImageSimple(t *testing.T) {
	recs := Models(catalog.PromptImage, ComplexitySimple, BudgetFree)

	require.Len(t, recs, 2, "google and huggingface both support image")
	ids := []catalog.ProviderID{recs[0].ProviderID, recs[1].ProviderID}
	assert.ElementsMatch(t, ids, []catalog.ProviderID{catalog.ProviderGoogle, catalog.ProviderHuggingFace})
}

func TestModels_ComplexityModelSelection(t *testing.T) {
	t.Run("simple prefers small-tier markers", func(t *testing.T) {
		recs := Models(catalog.PromptChat, ComplexitySimple, BudgetMedium)
		byProvider := indexByProvider(recs)

		if rec, ok := byProvider[catalog.ProviderAnthropic]; ok {
			assert.Equal(t, "claude-3-haiku-20240307", rec.Model)
		}
	})

	t.Run("complex prefers large-tier markers", func(t *testing.T) {
		recs := Models(catalog.PromptChat, ComplexityComplex, BudgetMedium)
		byProvider := indexByProvider(recs)

		if rec, ok := byProvider[catalog.ProviderMistral]; ok {
			assert.Equal(t, "mistral-large", rec.Model)
		}
	})

	t.Run("medium uses the default model", func(t *testing.T) {
		recs := Models(catalog.PromptChat, ComplexityMedium, BudgetMedium)
		byProvider := indexByProvider(recs)

		if rec, ok := byProvider[catalog.ProviderOpenAI]; ok {
			assert.Equal(t, "gpt-4o-mini", rec.Model)
		}
	})

	t.Run("no marker match falls back to the default model", func(t *testing.T) {
		recs := Models(catalog.PromptChat, ComplexityComplex, BudgetFree)
		byProvider := indexByProvider(recs)

		rec, ok := byProvider[catalog.ProviderGoogle]
		require.True(t, ok)
		assert.Equal(t, "gemini-pro", rec.Model)
	})
}

func TestModels_ConfidenceScores(t *testing.T) {
	recs := Models(catalog.PromptText, ComplexityMedium, BudgetMedium)
	byProvider := indexByProvider(recs)

	// Flagship + paid-budget alignment.
	openai, ok := byProvider[catalog.ProviderOpenAI]
	require.True(t, ok)
	assert.InDelta(t, 0.8, openai.Confidence, 1e-9)

	// Aggregator bonus + paid-budget alignment.
	openrouter, ok := byProvider[catalog.ProviderOpenRouter]
	require.True(t, ok)
	assert.InDelta(t, 0.75, openrouter.Confidence, 1e-9)
}

func TestModels_StableTieBreak(t *testing.T) {
	recs := Models(catalog.PromptText, ComplexityMedium, BudgetMedium)
	require.NotEmpty(t, recs)

	// openai and anthropic tie at 0.8; catalog order puts openai first.
	assert.Equal(t, catalog.ProviderOpenAI, recs[0].ProviderID)
	assert.Equal(t, catalog.ProviderAnthropic, recs[1].ProviderID)
}

func TestModels_Reasons(t *testing.T) {
	recs := Models(catalog.PromptChat, ComplexityComplex, BudgetMedium)
	byProvider := indexByProvider(recs)

	if rec, ok := byProvider[catalog.ProviderOpenRouter]; ok {
		assert.Equal(t, "Best for trying multiple models with one API key", rec.Reason)
	}
	if rec, ok := byProvider[catalog.ProviderOpenAI]; ok {
		assert.Equal(t, "GPT-4 Turbo excels at complex reasoning tasks", rec.Reason)
	}
	if rec, ok := byProvider[catalog.ProviderAnthropic]; ok {
		assert.Equal(t, "Claude has excellent conversation capabilities", rec.Reason)
	}

	free := indexByProvider(Models(catalog.PromptText, ComplexityMedium, BudgetFree))
	google, ok := free[catalog.ProviderGoogle]
	require.True(t, ok)
	assert.Equal(t, "Generous free tier, great for testing", google.Reason)

	hf, ok := free[catalog.ProviderHuggingFace]
	require.True(t, ok)
	assert.Equal(t, "Hugging Face is well-suited for text prompts", hf.Reason)
}

func TestModels_EstimatedCost(t *testing.T) {
	recs := Models(catalog.PromptImage, ComplexityMedium, BudgetMedium)
	byProvider := indexByProvider(recs)

	// Per-token price wins when both are set.
	if rec, ok := byProvider[catalog.ProviderOpenAI]; ok {
		assert.InDelta(t, 0.00001, rec.EstimatedCost, 1e-12)
	}
	// Image-only providers fall back to the per-image price.
	if rec, ok := byProvider[catalog.ProviderStability]; ok {
		assert.InDelta(t, 0.02, rec.EstimatedCost, 1e-12)
	}
}

func TestModels_CapabilityFilter(t *testing.T) {
	for _, rec := range Models(catalog.PromptCode, ComplexityMedium, BudgetMedium) {
		d, err := catalog.GetDescriptor(rec.ProviderID)
		require.NoError(t, err)
		assert.True(t, d.Supports.Code, "%s must support code prompts", rec.ProviderID)
	}
}

func indexByProvider(recs []Recommendation) map[catalog.ProviderID]Recommendation {
	out := make(map[catalog.ProviderID]Recommendation, len(recs))
	for _, rec := range recs {
		out[rec.ProviderID] = rec
	}
	return out
}
