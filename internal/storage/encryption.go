package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Encryption seals the serialized credential mapping with AES-GCM before it
// reaches a KeyValue backend, so API keys are never persisted in the clear.
type Encryption struct {
	key []byte
}

// NewEncryption creates an encryption service. The key must be 16, 24, or 32
// bytes for AES-128, AES-192, or AES-256.
func NewEncryption(key []byte) (*Encryption, error) {
	switch len(key) {
	case 16, 24, 32:
		return &Encryption{key: key}, nil
	}
	return nil, fmt.Errorf("invalid key size: must be 16, 24, or 32 bytes, got %d", len(key))
}

// NewEncryptionFromBase64 creates an encryption service from a base64-encoded
// key, the form it takes in environment configuration.
func NewEncryptionFromBase64(encodedKey string) (*Encryption, error) {
	if encodedKey == "" {
		return nil, fmt.Errorf("encryption key cannot be empty")
	}
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 key: %w", err)
	}
	return NewEncryption(key)
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext).
func (e *Encryption) Encrypt(plaintext []byte) (string, error) {
	gcm, err := e.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a base64-encoded payload produced by Encrypt.
func (e *Encryption) Decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	gcm, err := e.gcm()
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	plaintext, err := gcm.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

func (e *Encryption) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// GenerateKey generates a random key of the given size and returns it
// base64-encoded for storage in environment variables.
func GenerateKey(keySize int) (string, error) {
	switch keySize {
	case 16, 24, 32:
	default:
		return "", fmt.Errorf("invalid key size: must be 16, 24, or 32 bytes")
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
