package manifest

import (
	"slices"
	"strings"
)

// ResourceCatalog is the resource name the matching predicate treats
// specially: catalog requests are matched against the manifest's catalog
// list instead of its resource declarations.
const ResourceCatalog = "catalog"

// IsSupported reports whether the manifest declares the capability to
// answer the given request. It is a pure, total predicate: absent
// resources, catalogs, or whitelists resolve through the default policy
// below, never through an error.
//
// For non-catalog resources two whitelists are consulted, each falling back
// from the resource declaration to the manifest-wide default when the
// resource carries none. The two fallbacks end asymmetrically:
//
//   - content types: no whitelist anywhere means the type check fails
//   - id prefixes: no whitelist anywhere means any id is accepted
func (m *Manifest) IsSupported(ref ResourceRef) bool {
	if ref.Resource == ResourceCatalog {
		names := ref.ExtraNames()
		for _, c := range m.Catalogs {
			if c.Type == ref.Type && c.ID == ref.ID && c.SupportsExtra(names) {
				return true
			}
		}
		return false
	}

	res := m.findResource(ref.Resource)
	if res == nil {
		return false
	}

	types := res.Types
	if types == nil {
		types = m.Types
	}
	typeOK := types != nil && slices.Contains(types, ref.Type)

	prefixes := res.IDPrefixes
	if prefixes == nil {
		prefixes = m.IDPrefixes
	}
	idOK := prefixes == nil || hasPrefixIn(ref.ID, prefixes)

	return typeOK && idOK
}

// findResource returns the first declaration with the given name, or nil.
func (m *Manifest) findResource(name string) *Resource {
	for i := range m.Resources {
		if m.Resources[i].Name == name {
			return &m.Resources[i]
		}
	}
	return nil
}

func hasPrefixIn(id string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
