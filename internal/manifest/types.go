package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Manifest is the capability document an addon publishes. It is decoded
// once, from the addon's manifest endpoint or from a persisted profile, and
// never mutated afterwards.
//
// Field order mirrors the account backend sync payload. Optional fields are
// encoded as explicit null rather than being omitted, to match that payload
// byte for byte.
type Manifest struct {
	ID            string                 `json:"id"`
	Version       semver.Version         `json:"version"`
	Name          string                 `json:"name"`
	ContactEmail  *string                `json:"contactEmail"`
	Description   *string                `json:"description"`
	Logo          *string                `json:"logo"`
	Background    *string                `json:"background"`
	Types         []string               `json:"types"`
	Resources     ResourceList           `json:"resources"`
	IDPrefixes    []string               `json:"idPrefixes"`
	Catalogs      []Catalog              `json:"catalogs"`
	AddonCatalogs []Catalog              `json:"addonCatalogs"`
	BehaviorHints map[string]interface{} `json:"behaviorHints"`
}

// manifestWire mirrors Manifest with pointer fields for the required
// members, so their absence on the wire is detectable.
type manifestWire struct {
	ID            *string                `json:"id"`
	Version       *semver.Version        `json:"version"`
	Name          *string                `json:"name"`
	ContactEmail  *string                `json:"contactEmail"`
	Description   *string                `json:"description"`
	Logo          *string                `json:"logo"`
	Background    *string                `json:"background"`
	Types         []string               `json:"types"`
	Resources     *ResourceList          `json:"resources"`
	IDPrefixes    []string               `json:"idPrefixes"`
	Catalogs      []Catalog              `json:"catalogs"`
	AddonCatalogs []Catalog              `json:"addonCatalogs"`
	BehaviorHints map[string]interface{} `json:"behaviorHints"`
}

// UnmarshalJSON decodes a manifest object, requiring id, version, name, and
// resources. Catalog lists and behavior hints default to empty when absent.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var w manifestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.ID == nil:
		return fmt.Errorf("missing required field %q", "id")
	case w.Version == nil:
		return fmt.Errorf("missing required field %q", "version")
	case w.Name == nil:
		return fmt.Errorf("missing required field %q", "name")
	case w.Resources == nil:
		return fmt.Errorf("missing required field %q", "resources")
	}

	*m = Manifest{
		ID:            *w.ID,
		Version:       *w.Version,
		Name:          *w.Name,
		ContactEmail:  w.ContactEmail,
		Description:   w.Description,
		Logo:          w.Logo,
		Background:    w.Background,
		Types:         w.Types,
		Resources:     *w.Resources,
		IDPrefixes:    w.IDPrefixes,
		Catalogs:      w.Catalogs,
		AddonCatalogs: w.AddonCatalogs,
		BehaviorHints: w.BehaviorHints,
	}
	if m.Catalogs == nil {
		m.Catalogs = []Catalog{}
	}
	if m.AddonCatalogs == nil {
		m.AddonCatalogs = []Catalog{}
	}
	if m.BehaviorHints == nil {
		m.BehaviorHints = map[string]interface{}{}
	}
	return nil
}

// Decode parses manifest bytes. Every failure (malformed JSON, a missing
// required field, a non-semver version, a resource entry of an unsupported
// shape) surfaces as a single "invalid manifest" error carrying the field
// or position context. The decoder never substitutes defaults for
// required-but-malformed fields.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// Encode serializes a manifest to its wire form.
func Encode(m *Manifest) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}
