// Package storage holds small named entries that must survive process restarts,
// such as the persisted console session and the refresh token.
package storage

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/temco-admin/internal/errors"
)

// ErrNotFound is returned by Get when no entry exists for the key.
var ErrNotFound = errors.ErrNotFound

// Storage is a named key/value store. Values are opaque bytes.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// GetString returns the value for key as a string, or "" when it is missing.
func GetString(s Storage, key string) (string, error) {
	v, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetString stores value under key; an empty value removes the entry.
func SetString(s Storage, key, value string) error {
	if value == "" {
		return s.Remove(key)
	}
	return s.Set(key, []byte(value))
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
