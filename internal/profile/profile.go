// Package profile persists the user's state: the installed addon list and,
// when logged in, the account auth. The profile lives as a single JSON file
// under the FlixKit home directory.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/flixkit-labs/flixkit/internal/addon"
	"github.com/flixkit-labs/flixkit/internal/config"
)

const fileName = "profile.json"

// GDPRConsent records what the user agreed to when registering.
type GDPRConsent struct {
	TOS       bool      `json:"tos"`
	Privacy   bool      `json:"privacy"`
	Marketing bool      `json:"marketing"`
	Time      time.Time `json:"time"`
	From      string    `json:"from"`
}

// User is the account the profile belongs to.
type User struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	FBID           *string     `json:"fbId"`
	Avatar         *string     `json:"avatar"`
	LastModified   time.Time   `json:"lastModified"`
	DateRegistered time.Time   `json:"dateRegistered"`
	GDPRConsent    GDPRConsent `json:"gdprConsent"`
}

// Auth couples the backend session key with the account it belongs to.
type Auth struct {
	Key  string `json:"key"`
	User User   `json:"user"`
}

// Profile is the persisted user state. Each addon keeps the manifest that
// was current when it was installed or last re-fetched.
type Profile struct {
	Auth   *Auth            `json:"auth"`
	Addons addon.Collection `json:"addons"`
}

// DefaultPath returns the profile location under the FlixKit home
// directory (~/.flixkit/profile.json).
func DefaultPath() string {
	return filepath.Join(config.Dir(), fileName)
}

// Load reads the profile at path. A missing file yields an empty default
// profile rather than an error.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Profile{Addons: addon.Collection{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Addons == nil {
		p.Addons = addon.Collection{}
	}
	return &p, nil
}

// Save writes the profile atomically: to a temp file in the target
// directory first, then renamed over the destination.
func Save(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing profile write: %w", err)
	}
	return nil
}
