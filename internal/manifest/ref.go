package manifest

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtraValue is one requested extra parameter: a name and the value picked
// for it. A request may repeat a name; order carries no meaning for
// matching.
type ExtraValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResourceRef is a concrete request for one resource of one content type
// and id, with optional extra parameters. Refs are produced by the
// resolution runtime and matched against installed manifests.
type ResourceRef struct {
	Resource string
	Type     string
	ID       string
	Extra    []ExtraValue
}

// NewResourceRef builds a ref without extra parameters.
func NewResourceRef(resource, typeName, id string) ResourceRef {
	return ResourceRef{Resource: resource, Type: typeName, ID: id}
}

// ExtraNames returns the requested extra parameter names in request order.
func (r ResourceRef) ExtraNames() []string {
	if len(r.Extra) == 0 {
		return nil
	}
	names := make([]string, len(r.Extra))
	for i, ev := range r.Extra {
		names[i] = ev.Name
	}
	return names
}

// Path renders the ref as the addon endpoint path for the resource:
// /{resource}/{type}/{id}.json, with a query-style segment before the
// extension when extra parameters are present. Each segment is
// percent-encoded.
func (r ResourceRef) Path() string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(url.PathEscape(r.Resource))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(r.Type))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(r.ID))
	if len(r.Extra) > 0 {
		b.WriteByte('/')
		for i, ev := range r.Extra {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(ev.Name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(ev.Value))
		}
	}
	b.WriteString(".json")
	return b.String()
}

// ParseRef parses the URL-path form produced by Path.
func ParseRef(path string) (ResourceRef, error) {
	trimmed, found := strings.CutSuffix(path, ".json")
	if !found {
		return ResourceRef{}, fmt.Errorf("resource path %q: missing .json suffix", path)
	}
	trimmed = strings.TrimPrefix(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 && len(parts) != 4 {
		return ResourceRef{}, fmt.Errorf("resource path %q: expected 3 or 4 segments", path)
	}

	var ref ResourceRef
	var err error
	if ref.Resource, err = url.PathUnescape(parts[0]); err != nil {
		return ResourceRef{}, fmt.Errorf("resource path %q: %w", path, err)
	}
	if ref.Type, err = url.PathUnescape(parts[1]); err != nil {
		return ResourceRef{}, fmt.Errorf("resource path %q: %w", path, err)
	}
	if ref.ID, err = url.PathUnescape(parts[2]); err != nil {
		return ResourceRef{}, fmt.Errorf("resource path %q: %w", path, err)
	}

	if len(parts) == 4 && parts[3] != "" {
		for _, pair := range strings.Split(parts[3], "&") {
			rawName, rawValue, _ := strings.Cut(pair, "=")
			name, err := url.QueryUnescape(rawName)
			if err != nil {
				return ResourceRef{}, fmt.Errorf("resource path %q: %w", path, err)
			}
			value, err := url.QueryUnescape(rawValue)
			if err != nil {
				return ResourceRef{}, fmt.Errorf("resource path %q: %w", path, err)
			}
			ref.Extra = append(ref.Extra, ExtraValue{Name: name, Value: value})
		}
	}
	return ref, nil
}
