package integrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptnovax/internal/catalog"
	"promptnovax/internal/storage"
	"promptnovax/internal/utils"
)

func testStore(t *testing.T, opts ...Option) (*Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return NewStore(kv, utils.NewLogger("test", utils.Error), opts...), kv
}

func TestStore_UpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store, _ := testStore(t, WithClock(func() time.Time { return fixed }))

	store.Upsert(ctx, Credential{
		ProviderID: catalog.ProviderOpenAI,
		APIKey:     "sk-test-1234567890",
		Label:      "work",
		IsActive:   true,
		CreatedAt:  fixed,
	})

	cred := store.Get(ctx, catalog.ProviderOpenAI)
	require.NotNil(t, cred)
	assert.Equal(t, "sk-test-1234567890", cred.APIKey)
	assert.Equal(t, "work", cred.Label)
	assert.True(t, cred.IsActive)
	require.NotNil(t, cred.LastUsed, "upsert stamps LastUsed")
	assert.Equal(t, fixed, *cred.LastUsed)
}

func TestStore_UpsertReplacesWholeEntry(t *testing.T) {
	ctx := context.Background()
	store, _ := testStore(t)

	store.Upsert(ctx, Credential{
		ProviderID: catalog.ProviderOpenAI,
		APIKey:     "sk-old-1234567890",
		Label:      "old",
		IsActive:   true,
	})
	store.Upsert(ctx, Credential{
		ProviderID: catalog.ProviderOpenAI,
		APIKey:     "sk-new-1234567890",
		IsActive:   false,
	})

	cred := store.Get(ctx, catalog.ProviderOpenAI)
	require.NotNil(t, cred)
	assert.Equal(t, "sk-new-1234567890", cred.APIKey)
	assert.Empty(t, cred.Label, "replacement does not merge old fields")
	assert.False(t, cred.IsActive)
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, _ := testStore(t)

	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderOpenAI, APIKey: "sk-test-1234567890"})
	store.Remove(ctx, catalog.ProviderOpenAI)

	assert.Nil(t, store.Get(ctx, catalog.ProviderOpenAI))
}

func TestStore_RemoveAbsentLeavesMappingUnchanged(t *testing.T) {
	ctx := context.Background()
	store, kv := testStore(t)

	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderOpenAI, APIKey: "sk-test-1234567890", IsActive: true})
	before, err := kv.Get(ctx, "pnx_seller_integrations")
	require.NoError(t, err)

	store.Remove(ctx, catalog.ProviderMistral)

	after, err := kv.Get(ctx, "pnx_seller_integrations")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	require.NotNil(t, store.Get(ctx, catalog.ProviderOpenAI))
}

func TestStore_LoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store, _ := testStore(t)
		assert.Empty(t, store.Load(ctx))
	})

	t.Run("corrupt payload", func(t *testing.T) {
		store, kv := testStore(t)
		require.NoError(t, kv.Set(ctx, "pnx_seller_integrations", "not json"))
		assert.Empty(t, store.Load(ctx))
	})

	t.Run("undecryptable payload", func(t *testing.T) {
		enc, err := storage.NewEncryption(make([]byte, 32))
		require.NoError(t, err)
		store, kv := testStore(t, WithEncryption(enc))
		require.NoError(t, kv.Set(ctx, "pnx_seller_integrations", "garbage"))
		assert.Empty(t, store.Load(ctx))
	})
}

func TestStore_Encryption(t *testing.T) {
	ctx := context.Background()
	enc, err := storage.NewEncryption(make([]byte, 32))
	require.NoError(t, err)
	store, kv := testStore(t, WithEncryption(enc))

	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderOpenAI, APIKey: "sk-secret-1234567890", IsActive: true})

	raw, err := kv.Get(ctx, "pnx_seller_integrations")
	require.NoError(t, err)
	assert.NotContains(t, raw, "sk-secret", "persisted payload must be sealed")

	cred := store.Get(ctx, catalog.ProviderOpenAI)
	require.NotNil(t, cred)
	assert.Equal(t, "sk-secret-1234567890", cred.APIKey)
}

func TestStore_ListActive(t *testing.T) {
	ctx := context.Background()
	store, _ := testStore(t)

	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderOpenAI, APIKey: "sk-a-1234567890", IsActive: true})
	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderAnthropic, APIKey: "sk-ant-1234567890", IsActive: true})
	store.Upsert(ctx, Credential{ProviderID: catalog.ProviderGoogle, APIKey: "g-key-1234567890", IsActive: false})

	active := store.ListActive(ctx)
	require.Len(t, active, 2)
	assert.Equal(t, catalog.ProviderAnthropic, active[0].ProviderID, "sorted by provider id")
	assert.Equal(t, catalog.ProviderOpenAI, active[1].ProviderID)
}

func TestValidateKeyFormat(t *testing.T) {
	tests := []struct {
		name     string
		provider catalog.ProviderID
		apiKey   string
		valid    bool
		errMsg   string
	}{
		{"valid openai", catalog.ProviderOpenAI, "sk-abcdefghij", true, ""},
		{"valid anthropic", catalog.ProviderAnthropic, "sk-ant-abcdefghij", true, ""},
		{"valid openrouter", catalog.ProviderOpenRouter, "sk-or-abcdefghij", true, ""},
		{"no prefix convention", catalog.ProviderCohere, "whatever-key-here", true, ""},
		{"too short", catalog.ProviderOpenAI, "sk-short", false, "API key is too short"},
		{"whitespace only", catalog.ProviderOpenAI, "              ", false, "API key is too short"},
		{"unknown provider", "grok", "long-enough-key", false, "Unknown provider"},
		{"wrong openai prefix", catalog.ProviderOpenAI, "pk-abcdefghij", false, `OpenAI keys should start with "sk-"`},
		{"anthropic missing ant", catalog.ProviderAnthropic, "sk-abcdefghij", false, `Anthropic keys should start with "sk-ant-"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateKeyFormat(tt.provider, tt.apiKey)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.errMsg, result.Error)
		})
	}
}

func TestSimulatedKeyChecker(t *testing.T) {
	t.Run("valid key succeeds after the delay", func(t *testing.T) {
		checker := &SimulatedKeyChecker{Delay: time.Millisecond}
		result := checker.CheckKey(context.Background(), catalog.ProviderOpenAI, "sk-abcdefghij")
		assert.True(t, result.Success)
		assert.Empty(t, result.Error)
	})

	t.Run("invalid key fails with the validation message", func(t *testing.T) {
		checker := &SimulatedKeyChecker{Delay: time.Millisecond}
		result := checker.CheckKey(context.Background(), catalog.ProviderOpenAI, "pk-abcdefghij")
		assert.False(t, result.Success)
		assert.Equal(t, `OpenAI keys should start with "sk-"`, result.Error)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		checker := &SimulatedKeyChecker{Delay: time.Minute}
		result := checker.CheckKey(ctx, catalog.ProviderOpenAI, "sk-abcdefghij")
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to test API key", result.Error)
	})
}

func TestTestKey_CustomChecker(t *testing.T) {
	checker := checkerFunc(func(ctx context.Context, providerID catalog.ProviderID, apiKey string) TestResult {
		return TestResult{Success: false, Error: "quota exceeded"}
	})

	result := TestKey(context.Background(), checker, catalog.ProviderOpenAI, "sk-abcdefghij")
	assert.False(t, result.Success)
	assert.Equal(t, "quota exceeded", result.Error)
}

type checkerFunc func(context.Context, catalog.ProviderID, string) TestResult

func (f checkerFunc) CheckKey(ctx context.Context, providerID catalog.ProviderID, apiKey string) TestResult {
	return f(ctx, providerID, apiKey)
}
