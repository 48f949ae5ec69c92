package testrun

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"promptnovax/internal/catalog"
)

// CallResult is what a provider call produces on success.
type CallResult struct {
	Output       string
	TokensUsed   int
	Cost         float64
	LatencyMs    int
	QualityScore float64
}

// CallRequest carries everything a backend needs to execute one test call.
// The credential stays behind the backend; the engine never sends key
// material to a provider itself.
type CallRequest struct {
	ProviderID catalog.ProviderID
	Model      string
	PromptText string
	Input      string
}

// ProviderCaller is the seam where a real backend-delegated provider call is
// inserted. The orchestrator never contacts a third-party AI API directly;
// doing so from the client would leak credentials.
type ProviderCaller interface {
	Call(ctx context.Context, req CallRequest) (CallResult, error)
}

// SimulatedCaller stands in for the backend: a fixed delay, a canned
// response, and randomized metrics in realistic ranges.
type SimulatedCaller struct {
	Delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedCaller creates a simulated caller with the given delay.
func NewSimulatedCaller(delay time.Duration) *SimulatedCaller {
	return &SimulatedCaller{
		Delay: delay,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Call waits for the configured delay, then fabricates a response. Tokens
// land in [100,1100), cost in [0,0.1), latency in [500,2500) ms, and quality
// in [0.7,1.0].
func (c *SimulatedCaller) Call(ctx context.Context, req CallRequest) (CallResult, error) {
	delay := c.Delay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return CallResult{}, ctx.Err()
	}

	c.mu.Lock()
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tokens := c.rng.Intn(1000) + 100
	cost := c.rng.Float64() * 0.1
	latency := c.rng.Intn(2000) + 500
	quality := c.rng.Float64()*0.3 + 0.7
	c.mu.Unlock()

	return CallResult{
		Output:       simulatedOutput(req),
		TokensUsed:   tokens,
		Cost:         cost,
		LatencyMs:    latency,
		QualityScore: quality,
	}, nil
}

func simulatedOutput(req CallRequest) string {
	return fmt.Sprintf("[Simulated response from %s/%s]\n\nThis is a test output for the prompt: %q",
		req.ProviderID, req.Model, truncate(req.PromptText, 50)+"...")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
