// Package testrun manages the lifecycle of prompt test executions across
// provider/model pairs: single runs, concurrent batches, prompt-aware model
// recommendations, and starter test scenarios.
package testrun

import (
	"time"

	"promptnovax/internal/catalog"
)

// Status is a test run's lifecycle state.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is an end state. Runs never leave a
// terminal state; a failed run is retried by creating a new run.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Metrics holds per-run execution measurements.
type Metrics struct {
	TokensUsed int     `json:"tokensUsed"`
	Cost       float64 `json:"cost"`
	LatencyMs  int     `json:"latencyMs"`
	// QualityScore is in [0,1].
	QualityScore float64 `json:"qualityScore"`
}

// Run is one execution attempt of a prompt against one provider/model pair.
type Run struct {
	ID          string             `json:"id"`
	PromptID    string             `json:"promptId"`
	PromptText  string             `json:"promptText"`
	ProviderID  catalog.ProviderID `json:"providerId"`
	Model       string             `json:"model"`
	Status      Status             `json:"status"`
	Input       string             `json:"input,omitempty"`
	Output      string             `json:"output,omitempty"`
	Metrics     *Metrics           `json:"metrics,omitempty"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
}

// ModelRef names one (provider, model) pair in a batch.
type ModelRef struct {
	ProviderID catalog.ProviderID `json:"provider" yaml:"provider"`
	Model      string             `json:"model" yaml:"model"`
}

// ScenarioCategory classifies a test scenario.
type ScenarioCategory string

const (
	ScenarioSimple   ScenarioCategory = "simple"
	ScenarioEdgeCase ScenarioCategory = "edge-case"
	ScenarioComplex  ScenarioCategory = "complex"
)

// Scenario is a starter exemplar input for manual or batch testing.
type Scenario struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Input          string           `json:"input"`
	ExpectedOutput string           `json:"expectedOutput,omitempty"`
	Category       ScenarioCategory `json:"category"`
}
