// Package settings stores mailtrans user settings — translation
// provider API keys.
//
// Credentials live in the XDG data directory:
//
//	$XDG_DATA_HOME/mailtrans/auth.json  (default: ~/.local/share/mailtrans/)
//
// The file is a JSON object keyed by provider ID with 0600
// permissions. Lookup order for an API key:
//
//  1. --api-key flag (highest priority)
//  2. MAILTRANS_API_KEY environment variable
//  3. This credential store
//
// A .env file in the project root is loaded into the environment at
// startup, so step 2 also covers keys kept out of the shell profile.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dataDirName = "mailtrans"
	fileName    = "auth.json"

	// EnvAPIKey is the environment variable consulted for an API key.
	EnvAPIKey = "MAILTRANS_API_KEY"
)

// Info is the credential entry stored per provider in auth.json.
type Info struct {
	// Key is the provider API key.
	Key string `json:"key,omitempty"`
	// BaseURL is an optional custom endpoint URL.
	BaseURL string `json:"baseUrl,omitempty"`
}

// Store holds all provider credentials, keyed by provider ID.
type Store map[string]*Info

// dataDir returns the XDG data directory for mailtrans.
// Respects $XDG_DATA_HOME, falling back to ~/.local/share.
func dataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, dataDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", dataDirName), nil
}

// filePath returns the path to the auth file.
func filePath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// FilePath returns the auth.json path for display purposes.
func FilePath() string {
	p, err := filePath()
	if err != nil {
		return ""
	}
	return p
}

// Load reads the credential store from disk. Returns an empty store
// if the file doesn't exist or is invalid.
func Load() Store {
	path, err := filePath()
	if err != nil {
		return make(Store)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return make(Store)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return make(Store)
	}
	if store == nil {
		return make(Store)
	}
	return store
}

// Save writes the credential store to disk with 0600 permissions.
func Save(store Store) error {
	path, err := filePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing auth file: %w", err)
	}
	return nil
}

// Set stores a credential entry for a provider (upsert).
func Set(providerID string, info *Info) error {
	store := Load()
	store[providerID] = info
	return Save(store)
}

// Remove deletes credentials for a provider.
func Remove(providerID string) error {
	store := Load()
	delete(store, providerID)
	return Save(store)
}

// APIKey resolves the API key for a provider: flag value, then the
// environment, then the credential store. Empty when none is set.
func APIKey(flagValue, providerID string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvAPIKey); env != "" {
		return env
	}
	if info := Load()[providerID]; info != nil {
		return info.Key
	}
	return ""
}
