package manifest

import "encoding/json"

// Catalog is one catalog offering: a typed, named listing with its own
// accepted extra parameters. The extra declaration is flattened into the
// catalog object on the wire.
type Catalog struct {
	Type  string
	ID    string
	Name  *string
	Extra Extra
}

// catalogWire carries both extra notations side by side. A present "extra"
// key selects the modern notation; otherwise the legacy lists are used,
// defaulting to empty when absent. An object carrying none of the three
// keys is a fully permissive legacy declaration, not an error.
type catalogWire struct {
	Type           string       `json:"type"`
	ID             string       `json:"id"`
	Name           *string      `json:"name"`
	Extra          *[]ExtraProp `json:"extra"`
	ExtraRequired  []string     `json:"extraRequired"`
	ExtraSupported []string     `json:"extraSupported"`
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	var w catalogWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Type = w.Type
	c.ID = w.ID
	c.Name = w.Name
	if w.Extra != nil {
		c.Extra = FullExtra(*w.Extra...)
	} else {
		c.Extra = SimpleExtra(w.ExtraRequired, w.ExtraSupported)
	}
	return nil
}

// MarshalJSON emits exactly the notation the catalog was built with.
func (c Catalog) MarshalJSON() ([]byte, error) {
	if c.Extra.legacy {
		return json.Marshal(struct {
			Type           string   `json:"type"`
			ID             string   `json:"id"`
			Name           *string  `json:"name"`
			ExtraRequired  []string `json:"extraRequired"`
			ExtraSupported []string `json:"extraSupported"`
		}{c.Type, c.ID, c.Name, c.Extra.required, c.Extra.supported})
	}
	return json.Marshal(struct {
		Type  string      `json:"type"`
		ID    string      `json:"id"`
		Name  *string     `json:"name"`
		Extra []ExtraProp `json:"extra"`
	}{c.Type, c.ID, c.Name, c.Extra.props})
}

// SupportsExtra reports whether the catalog accepts a request carrying the
// given extra parameter names.
func (c Catalog) SupportsExtra(names []string) bool {
	return c.Extra.Supports(names)
}
