package testrun

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"promptnovax/internal/catalog"
	"promptnovax/internal/integrations"
	"promptnovax/internal/recommend"
	"promptnovax/internal/utils"
)

// Orchestrator creates, executes, and batches test runs. All collaborators
// are injected: the caller is the backend seam, the credential store scopes
// recommendations to configured providers.
type Orchestrator struct {
	caller ProviderCaller
	store  *integrations.Store
	logger *utils.Logger
	now    func() time.Time
}

// NewOrchestrator wires an orchestrator. A nil caller defaults to the
// simulated backend.
func NewOrchestrator(caller ProviderCaller, store *integrations.Store, logger *utils.Logger) *Orchestrator {
	if caller == nil {
		caller = NewSimulatedCaller(0)
	}
	return &Orchestrator{
		caller: caller,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateRun constructs a run in the queued state. Run ids are unique within
// a process lifetime: a ULID already encodes timestamp plus random suffix.
func (o *Orchestrator) CreateRun(promptID, promptText string, providerID catalog.ProviderID, model, input string) *Run {
	return &Run{
		ID:         fmt.Sprintf("test_%s", ulid.Make()),
		PromptID:   promptID,
		PromptText: promptText,
		ProviderID: providerID,
		Model:      model,
		Status:     StatusQueued,
		Input:      input,
		CreatedAt:  o.now(),
	}
}

// Execute drives a run to a terminal state and returns it. Failures are data:
// the run comes back with StatusFailed and Error set, never a Go error, so a
// batch caller can render partial results.
func (o *Orchestrator) Execute(ctx context.Context, run *Run) *Run {
	if run.Status.Terminal() {
		return run
	}

	run.Status = StatusRunning

	result, err := o.caller.Call(ctx, CallRequest{
		ProviderID: run.ProviderID,
		Model:      run.Model,
		PromptText: run.PromptText,
		Input:      run.Input,
	})

	completedAt := o.now()
	run.CompletedAt = &completedAt

	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
		o.logger.Warn("test run failed", "run", run.ID, "provider", run.ProviderID, "error", err)
		return run
	}

	run.Status = StatusCompleted
	run.Output = result.Output
	run.Metrics = &Metrics{
		TokensUsed:   result.TokensUsed,
		Cost:         result.Cost,
		LatencyMs:    result.LatencyMs,
		QualityScore: result.QualityScore,
	}
	o.logger.Debug("test run completed", "run", run.ID, "provider", run.ProviderID, "latency_ms", result.LatencyMs)
	return run
}

// BatchTest creates one run per (provider, model) pair and executes them all
// concurrently, returning the full list of terminal-state runs in input
// order once every run has settled. There is no short-circuit: failed runs
// ride alongside completed ones and the caller inspects each status.
//
// Fan-out is uncapped here; a deployment delegating to real provider APIs
// must rate-limit at the ProviderCaller seam.
func (o *Orchestrator) BatchTest(ctx context.Context, promptID, promptText string, models []ModelRef, testInput string) []*Run {
	batchID := uuid.New().String()
	o.logger.Info("starting batch test", "batch", batchID, "prompt", promptID, "runs", len(models))

	runs := make([]*Run, len(models))
	for i, ref := range models {
		runs[i] = o.CreateRun(promptID, promptText, ref.ProviderID, ref.Model, testInput)
	}

	var wg sync.WaitGroup
	for _, run := range runs {
		wg.Add(1)
		go func(r *Run) {
			defer wg.Done()
			o.Execute(ctx, r)
		}(run)
	}
	wg.Wait()

	o.logger.Info("batch test settled", "batch", batchID, "runs", len(runs))
	return runs
}

// Word-count thresholds for deriving prompt complexity.
const (
	simpleWordLimit = 50
	mediumWordLimit = 200
)

// RecommendForPrompt derives a complexity tier from the prompt's word count,
// asks the recommendation engine at a fixed medium budget, and keeps only
// providers with an active integration. Unconfigured providers are
// suppressed rather than shown disabled.
func (o *Orchestrator) RecommendForPrompt(ctx context.Context, promptText string, promptType catalog.PromptType) []recommend.Recommendation {
	wordCount := len(strings.Fields(promptText))
	complexity := recommend.ComplexityComplex
	switch {
	case wordCount < simpleWordLimit:
		complexity = recommend.ComplexitySimple
	case wordCount < mediumWordLimit:
		complexity = recommend.ComplexityMedium
	}

	active := make(map[catalog.ProviderID]bool)
	for _, cred := range o.store.ListActive(ctx) {
		active[cred.ProviderID] = true
	}

	recs := recommend.Models(promptType, complexity, recommend.BudgetMedium)
	filtered := recs[:0]
	for _, rec := range recs {
		if active[rec.ProviderID] {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Scenarios returns the three starter test scenarios. They are static
// templates: the prompt text does not shape them yet.
func (o *Orchestrator) Scenarios(promptText string) []Scenario {
	return []Scenario{
		{
			ID:       "scenario_1",
			Name:     "Standard Input",
			Input:    "Test input for standard use case",
			Category: ScenarioSimple,
		},
		{
			ID:       "scenario_2",
			Name:     "Edge Case",
			Input:    "Extreme or unusual input to test robustness",
			Category: ScenarioEdgeCase,
		},
		{
			ID:       "scenario_3",
			Name:     "Complex Scenario",
			Input:    "Multi-part complex input requiring detailed reasoning",
			Category: ScenarioComplex,
		},
	}
}
