package kv

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "quizmaster"

// KeyringStore implements Store on top of the OS keyring. Entries are
// namespaced by a prefix derived from the server base URL so tokens for
// different deployments don't collide.
type KeyringStore struct {
	prefix string
}

// NewKeyringStore creates a keyring-backed store scoped to the given base URL.
func NewKeyringStore(baseURL string) *KeyringStore {
	return &KeyringStore{prefix: normalizeKey(baseURL)}
}

// normalizeKey converts a baseURL into a stable key prefix for keyring
// storage. It trims trailing slashes and lowercases to avoid accidental
// duplicates like https://example.com/ and https://example.com.
func normalizeKey(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	s = strings.TrimRight(s, "/")
	s = strings.ToLower(s)
	if s == "" {
		s = "default"
	}
	return s
}

func (s *KeyringStore) entry(key string) string {
	return s.prefix + "/" + key
}

func (s *KeyringStore) Set(key, value string) error {
	return keyring.Set(keyringService, s.entry(key), value)
}

func (s *KeyringStore) Get(key string) (string, error) {
	v, err := keyring.Get(keyringService, s.entry(key))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *KeyringStore) Delete(key string) error {
	if err := keyring.Delete(keyringService, s.entry(key)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

var _ Store = (*KeyringStore)(nil)
