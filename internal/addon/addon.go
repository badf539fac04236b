// Package addon holds the installed-addon record: a decoded manifest bound
// to the transport URL it was fetched from, plus install flags, and the
// collection operations the client applies to the user's addon list.
package addon

import "github.com/flixkit-labs/flixkit/internal/manifest"

// Flags carries per-install markers. Protected addons cannot be
// uninstalled; official addons are the ones shipped with the client.
type Flags struct {
	Official  bool `json:"official"`
	Protected bool `json:"protected"`
}

// Descriptor is one installed addon inside a user's profile. The manifest
// is the copy that was current when the addon was installed or last
// re-fetched; it is replaced wholesale when a fresh manifest supersedes it.
type Descriptor struct {
	Manifest     manifest.Manifest `json:"manifest"`
	TransportURL string            `json:"transportUrl"`
	Flags        Flags             `json:"flags"`
}

// Collection is the user's ordered addon list, keyed by transport URL.
type Collection []Descriptor

// Install adds the descriptor to the collection. An addon already installed
// from the same transport URL is replaced in place so the user's ordering
// survives upgrades.
func (c Collection) Install(d Descriptor) Collection {
	for i := range c {
		if c[i].TransportURL == d.TransportURL {
			c[i] = d
			return c
		}
	}
	return append(c, d)
}

// Uninstall removes the addon installed from the given transport URL.
// Protected addons are kept. The second result reports whether anything was
// removed.
func (c Collection) Uninstall(transportURL string) (Collection, bool) {
	for i := range c {
		if c[i].TransportURL == transportURL {
			if c[i].Flags.Protected {
				return c, false
			}
			return append(c[:i:i], c[i+1:]...), true
		}
	}
	return c, false
}

// Get returns the addon installed from the given transport URL.
func (c Collection) Get(transportURL string) (Descriptor, bool) {
	for _, d := range c {
		if d.TransportURL == transportURL {
			return d, true
		}
	}
	return Descriptor{}, false
}

// FindByID returns the first addon whose manifest id matches.
func (c Collection) FindByID(id string) (Descriptor, bool) {
	for _, d := range c {
		if d.Manifest.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Select returns the addons able to answer the request, in install order.
// This is the per-request filter the resolution runtime applies to every
// installed addon; the predicate is pure, so callers may evaluate
// collections concurrently.
func (c Collection) Select(ref manifest.ResourceRef) []Descriptor {
	var out []Descriptor
	for _, d := range c {
		if d.Manifest.IsSupported(ref) {
			out = append(out, d)
		}
	}
	return out
}
