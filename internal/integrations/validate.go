package integrations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promptnovax/internal/catalog"
)

// ValidationResult reports the outcome of a syntactic key check. Bad keys are
// data, not errors: callers branch on Valid.
type ValidationResult struct {
	Valid bool
	Error string
}

// keyPrefixes maps providers with a public key-prefix convention to their
// required prefix. Providers not listed get no prefix check.
var keyPrefixes = map[catalog.ProviderID]string{
	catalog.ProviderOpenAI:     "sk-",
	catalog.ProviderAnthropic:  "sk-ant-",
	catalog.ProviderOpenRouter: "sk-or-",
}

// ValidateKeyFormat performs a syntactic sanity check of an API key. It never
// contacts the network.
func ValidateKeyFormat(providerID catalog.ProviderID, apiKey string) ValidationResult {
	if len(strings.TrimSpace(apiKey)) < 10 {
		return ValidationResult{Valid: false, Error: "API key is too short"}
	}

	if !catalog.IsKnown(providerID) {
		return ValidationResult{Valid: false, Error: "Unknown provider"}
	}

	if prefix, ok := keyPrefixes[providerID]; ok && !strings.HasPrefix(apiKey, prefix) {
		desc, _ := catalog.GetDescriptor(providerID)
		return ValidationResult{
			Valid: false,
			Error: fmt.Sprintf("%s keys should start with %q", desc.Name, prefix),
		}
	}

	return ValidationResult{Valid: true}
}

// TestResult reports the outcome of a key test.
type TestResult struct {
	Success bool
	Error   string
}

// KeyChecker is the seam where a real backend-delegated key verification call
// would be inserted. The engine never contacts a provider directly.
type KeyChecker interface {
	CheckKey(ctx context.Context, providerID catalog.ProviderID, apiKey string) TestResult
}

// SimulatedKeyChecker validates the key format after a fixed delay, standing
// in for the backend round trip.
type SimulatedKeyChecker struct {
	Delay time.Duration
}

// CheckKey waits for the configured delay, then reports success iff the
// format validates.
func (c *SimulatedKeyChecker) CheckKey(ctx context.Context, providerID catalog.ProviderID, apiKey string) TestResult {
	delay := c.Delay
	if delay <= 0 {
		delay = time.Second
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return TestResult{Success: false, Error: "Failed to test API key"}
	}

	if validation := ValidateKeyFormat(providerID, apiKey); !validation.Valid {
		return TestResult{Success: false, Error: validation.Error}
	}
	return TestResult{Success: true}
}

// TestKey checks a key through the given checker, falling back to the
// simulated checker when none is supplied.
func TestKey(ctx context.Context, checker KeyChecker, providerID catalog.ProviderID, apiKey string) TestResult {
	if checker == nil {
		checker = &SimulatedKeyChecker{}
	}
	return checker.CheckKey(ctx, providerID, apiKey)
}
