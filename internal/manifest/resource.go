package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Resource declares one resource kind an addon offers (e.g. "stream"),
// optionally narrowed to specific content types and id prefixes. A nil
// Types or IDPrefixes means the narrowing is absent and the manifest-wide
// default applies during matching.
type Resource struct {
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	IDPrefixes []string `json:"idPrefixes"`
}

// UnmarshalJSON accepts either the compact notation (a bare string naming
// the resource) or the structured object notation. Any other value shape
// is rejected.
func (r *Resource) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("expected string or object for resource entry")
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = Resource{Name: name}
		return nil
	case '{':
		type plain Resource
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*r = Resource(p)
		return nil
	default:
		return fmt.Errorf("expected string or object for resource entry")
	}
}

// ResourceList is a sequence of resource declarations. Compact and
// structured entries may be mixed within one list; decode failures are
// reported with the offending entry's position.
type ResourceList []Resource

// UnmarshalJSON decodes each entry individually so errors can name the
// entry index.
func (l *ResourceList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ResourceList, len(raw))
	for i, entry := range raw {
		if err := json.Unmarshal(entry, &out[i]); err != nil {
			return fmt.Errorf("resources[%d]: %w", i, err)
		}
	}
	*l = out
	return nil
}
