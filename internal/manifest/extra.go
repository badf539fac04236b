package manifest

import "slices"

// ExtraProp declares one extra parameter a catalog accepts, in the modern
// notation. Values enumerates the allowed values for the parameter; it is
// advisory only and never consulted by the matching predicate.
type ExtraProp struct {
	Name       string   `json:"name"`
	IsRequired bool     `json:"isRequired"`
	Values     []string `json:"values"`
}

// Extra declares which extra parameters a catalog accepts. It is a tagged
// union over the two wire generations: the modern per-property list
// ("extra") and the legacy flat name lists ("extraRequired" /
// "extraSupported"). The notation is decided once, when the catalog is
// decoded, and stored, so a catalog re-encodes in the notation it arrived
// in.
type Extra struct {
	legacy    bool
	props     []ExtraProp
	required  []string
	supported []string
}

// FullExtra builds an Extra in the modern per-property notation.
func FullExtra(props ...ExtraProp) Extra {
	if props == nil {
		props = []ExtraProp{}
	}
	return Extra{props: props}
}

// SimpleExtra builds an Extra in the legacy notation. Nil lists are
// normalized to empty: "nothing required" and "nothing supported" are the
// empty set, never an absent concept.
func SimpleExtra(required, supported []string) Extra {
	if required == nil {
		required = []string{}
	}
	if supported == nil {
		supported = []string{}
	}
	return Extra{legacy: true, required: required, supported: supported}
}

// Legacy reports whether the declaration arrived in the legacy notation.
func (e Extra) Legacy() bool { return e.legacy }

// Props returns the modern per-property declarations. Empty for legacy
// declarations.
func (e Extra) Props() []ExtraProp { return e.props }

// Required returns the legacy required-name list.
func (e Extra) Required() []string { return e.required }

// Supported returns the legacy supported-name list.
func (e Extra) Supported() []string { return e.supported }

// Supports reports whether a request carrying the given extra parameter
// names is acceptable: every requested name must be declared, and every
// required name must be requested. An empty request trivially satisfies
// the first condition and fails only when a required name is missing.
func (e Extra) Supports(names []string) bool {
	if e.legacy {
		for _, n := range names {
			if !slices.Contains(e.supported, n) {
				return false
			}
		}
		for _, r := range e.required {
			if !slices.Contains(names, r) {
				return false
			}
		}
		return true
	}

	for _, n := range names {
		if !e.declares(n) {
			return false
		}
	}
	for _, p := range e.props {
		if p.IsRequired && !slices.Contains(names, p.Name) {
			return false
		}
	}
	return true
}

func (e Extra) declares(name string) bool {
	for _, p := range e.props {
		if p.Name == name {
			return true
		}
	}
	return false
}
