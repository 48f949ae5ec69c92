// Package recommend scores providers and models against a requested prompt
// type, complexity, and budget tier. It is pure: deterministic over its
// inputs and the static catalog, no I/O.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"promptnovax/internal/catalog"
)

// Complexity tiers a prompt's difficulty.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Budget tiers what the user is willing to spend.
type Budget string

const (
	BudgetFree   Budget = "free"
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Recommendation is a scored provider/model suggestion. EstimatedCost is the
// provider's per-token price, else its per-image price, else zero.
type Recommendation struct {
	ProviderID    catalog.ProviderID
	Model         string
	Reason        string
	Confidence    float64
	EstimatedCost float64
}

const maxRecommendations = 5

// freeTierProviders is the hard allow-list for the free budget: only these
// offer a genuinely free tier.
var freeTierProviders = map[catalog.ProviderID]bool{
	catalog.ProviderGoogle:      true,
	catalog.ProviderHuggingFace: true,
}

// flagshipProviders get a reputation bonus.
var flagshipProviders = map[catalog.ProviderID]bool{
	catalog.ProviderOpenAI:    true,
	catalog.ProviderAnthropic: true,
}

// Model identifier substrings marking the largest and smallest tiers.
var (
	largeTierMarkers = []string{"4", "opus", "large"}
	smallTierMarkers = []string{"light", "small", "haiku"}
)

// Models returns up to five recommendations ordered by descending
// confidence. Ties keep catalog registration order.
func Models(promptType catalog.PromptType, complexity Complexity, budget Budget) []Recommendation {
	var recs []Recommendation

	for _, provider := range catalog.Descriptors() {
		if !provider.Supports.Supports(promptType) {
			continue
		}
		if budget == BudgetFree && !freeTierProviders[provider.ID] {
			continue
		}

		model := pickModel(provider, complexity)
		recs = append(recs, Recommendation{
			ProviderID:    provider.ID,
			Model:         model,
			Reason:        reasonFor(provider, promptType, complexity, budget),
			Confidence:    confidenceFor(provider, model, complexity, budget),
			EstimatedCost: estimatedCost(provider),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// pickModel chooses one representative model for the complexity tier,
// falling back to the provider's default (first) model.
func pickModel(provider *catalog.Descriptor, complexity Complexity) string {
	if len(provider.Models) > 1 {
		switch complexity {
		case ComplexityComplex:
			if m, ok := findMarked(provider.Models, largeTierMarkers); ok {
				return m
			}
		case ComplexitySimple:
			if m, ok := findMarked(provider.Models, smallTierMarkers); ok {
				return m
			}
		}
	}
	return provider.Models[0]
}

func findMarked(models []string, markers []string) (string, bool) {
	for _, m := range models {
		for _, marker := range markers {
			if strings.Contains(m, marker) {
				return m, true
			}
		}
	}
	return "", false
}

func confidenceFor(provider *catalog.Descriptor, model string, complexity Complexity, budget Budget) float64 {
	confidence := 0.5

	if flagshipProviders[provider.ID] {
		confidence += 0.2
	}
	if provider.ID == catalog.ProviderOpenRouter {
		confidence += 0.15
	}

	if budget == BudgetFree && freeTierProviders[provider.ID] {
		confidence += 0.2
	}
	if budget != BudgetFree && !freeTierProviders[provider.ID] {
		confidence += 0.1
	}

	if complexity == ComplexityComplex {
		for _, marker := range largeTierMarkers {
			if strings.Contains(model, marker) {
				confidence += 0.15
				break
			}
		}
	}

	return clamp(confidence, 0, 1)
}

func reasonFor(provider *catalog.Descriptor, promptType catalog.PromptType, complexity Complexity, budget Budget) string {
	switch {
	case provider.ID == catalog.ProviderOpenRouter:
		return "Best for trying multiple models with one API key"
	case provider.ID == catalog.ProviderOpenAI && complexity == ComplexityComplex:
		return "GPT-4 Turbo excels at complex reasoning tasks"
	case provider.ID == catalog.ProviderAnthropic && promptType == catalog.PromptChat:
		return "Claude has excellent conversation capabilities"
	case provider.ID == catalog.ProviderGoogle && budget == BudgetFree:
		return "Generous free tier, great for testing"
	}
	return fmt.Sprintf("%s is well-suited for %s prompts", provider.Name, promptType)
}

func estimatedCost(provider *catalog.Descriptor) float64 {
	if provider.Pricing == nil {
		return 0
	}
	if provider.Pricing.PerToken > 0 {
		return provider.Pricing.PerToken
	}
	return provider.Pricing.PerImage
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
