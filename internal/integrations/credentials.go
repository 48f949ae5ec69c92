// Package integrations manages per-provider API credentials: one slot per
// provider, persisted as a single JSON mapping under a namespaced storage
// key, optionally sealed with AES-GCM before it reaches the backend.
package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"promptnovax/internal/catalog"
	"promptnovax/internal/storage"
	"promptnovax/internal/utils"
)

// storageKey is the single namespaced key the whole mapping lives under.
const storageKey = "pnx_seller_integrations"

// Credential is one configured provider integration.
type Credential struct {
	ProviderID catalog.ProviderID `json:"providerId"`
	APIKey     string             `json:"apiKey"`
	Label      string             `json:"label,omitempty"`
	IsActive   bool               `json:"isActive"`
	CreatedAt  time.Time          `json:"createdAt"`
	LastUsed   *time.Time         `json:"lastUsed,omitempty"`
}

// Store persists credentials through a KeyValue backend. Mutations are
// mutex-guarded: upsert and remove are read-modify-write over the shared
// mapping and callers may be concurrent.
type Store struct {
	mu     sync.Mutex
	kv     storage.KeyValue
	enc    *storage.Encryption
	logger *utils.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithEncryption seals the persisted mapping with the given encryption
// service.
func WithEncryption(enc *storage.Encryption) Option {
	return func(s *Store) { s.enc = enc }
}

// WithClock overrides the time source; used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a credential store over the given backend.
func NewStore(kv storage.KeyValue, logger *utils.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the full provider -> credential mapping. A missing key or
// unparsable content degrades to an empty mapping, never an error.
func (s *Store) Load(ctx context.Context) map[catalog.ProviderID]Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save serializes and writes the full mapping in a single write.
// Persistence is best-effort: failures are logged, not propagated.
func (s *Store) Save(ctx context.Context, creds map[catalog.ProviderID]Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, creds)
}

// Upsert inserts or fully replaces the entry for the credential's provider,
// stamping LastUsed with the current time.
func (s *Store) Upsert(ctx context.Context, cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load(ctx)
	now := s.now()
	cred.LastUsed = &now
	creds[cred.ProviderID] = cred
	s.save(ctx, creds)
}

// Remove deletes the entry for a provider. Removing an absent provider is a
// no-op that still rewrites the (unchanged) mapping.
func (s *Store) Remove(ctx context.Context, providerID catalog.ProviderID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load(ctx)
	delete(creds, providerID)
	s.save(ctx, creds)
}

// Get returns the credential for a provider, or nil.
func (s *Store) Get(ctx context.Context, providerID catalog.ProviderID) *Credential {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load(ctx)
	if cred, ok := creds[providerID]; ok {
		return &cred
	}
	return nil
}

// ListActive returns all credentials with IsActive set, in catalog order.
func (s *Store) ListActive(ctx context.Context) []Credential {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load(ctx)
	active := make([]Credential, 0, len(creds))
	for _, cred := range creds {
		if cred.IsActive {
			active = append(active, cred)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].ProviderID < active[j].ProviderID
	})
	return active
}

func (s *Store) load(ctx context.Context) map[catalog.ProviderID]Credential {
	empty := make(map[catalog.ProviderID]Credential)

	raw, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("failed to load integrations", "error", err)
		}
		return empty
	}

	data := []byte(raw)
	if s.enc != nil {
		plaintext, err := s.enc.Decrypt(raw)
		if err != nil {
			s.logger.Warn("failed to decrypt integrations, starting empty", "error", err)
			return empty
		}
		data = plaintext
	}

	creds := make(map[catalog.ProviderID]Credential)
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn("failed to parse integrations, starting empty", "error", err)
		return empty
	}
	return creds
}

func (s *Store) save(ctx context.Context, creds map[catalog.ProviderID]Credential) {
	data, err := json.Marshal(creds)
	if err != nil {
		s.logger.Error("failed to serialize integrations", "error", err)
		return
	}

	payload := string(data)
	if s.enc != nil {
		sealed, err := s.enc.Encrypt(data)
		if err != nil {
			s.logger.Error("failed to encrypt integrations", "error", err)
			return
		}
		payload = sealed
	}

	if err := s.kv.Set(ctx, storageKey, payload); err != nil {
		s.logger.Error("failed to save integrations", "error", err)
	}
}
