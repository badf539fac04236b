package manifest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

// minimalManifest mirrors the manifest fragment used by the account backend
// sync payload.
func minimalManifest() *Manifest {
	return &Manifest{
		ID:            "id",
		Version:       *semver.MustParse("0.0.1"),
		Name:          "name",
		Types:         []string{},
		Resources:     ResourceList{},
		Catalogs:      []Catalog{},
		AddonCatalogs: []Catalog{},
		BehaviorHints: map[string]interface{}{},
	}
}

func strPtr(s string) *string { return &s }

func TestDecode_MinimalFragment(t *testing.T) {
	raw := `{
		"id": "id", "version": "0.0.1", "name": "name",
		"description": null, "logo": null, "background": null,
		"types": [], "resources": [], "idPrefixes": null,
		"catalogs": [], "behaviorHints": {}
	}`

	m, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !reflect.DeepEqual(m, minimalManifest()) {
		t.Errorf("Decode = %+v, want %+v", m, minimalManifest())
	}
}

func TestEncode_ExplicitNulls(t *testing.T) {
	data, err := Encode(minimalManifest())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// The backend sync contract requires absent optionals as explicit null
	// and all keys in lower camel case.
	want := `{"id":"id","version":"0.0.1","name":"name","contactEmail":null,` +
		`"description":null,"logo":null,"background":null,"types":[],"resources":[],` +
		`"idPrefixes":null,"catalogs":[],"addonCatalogs":[],"behaviorHints":{}}`
	if string(data) != want {
		t.Errorf("Encode = %s, want %s", data, want)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	manifests := map[string]*Manifest{
		"minimal": minimalManifest(),
		"full": {
			ID:          "org.example.cinemeta",
			Version:     *semver.MustParse("1.2.3"),
			Name:        "Cinemeta",
			Description: strPtr("Movie and series metadata"),
			Types:       []string{"movie", "series"},
			Resources: ResourceList{
				{Name: "meta", Types: []string{"movie"}, IDPrefixes: []string{"tt"}},
				{Name: "stream"},
			},
			IDPrefixes: []string{"tt"},
			Catalogs: []Catalog{
				{Type: "movie", ID: "top", Name: strPtr("Top"), Extra: FullExtra(
					ExtraProp{Name: "genre", Values: []string{"Action", "Drama"}},
					ExtraProp{Name: "search", IsRequired: true},
				)},
				{Type: "series", ID: "top", Extra: SimpleExtra([]string{"genre"}, []string{"genre", "year"})},
			},
			AddonCatalogs: []Catalog{},
			BehaviorHints: map[string]interface{}{},
		},
	}

	for name, m := range manifests {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(m)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			back, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if !reflect.DeepEqual(back, m) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, m)
			}
		})
	}
}

func TestDecode_ResourceNotations(t *testing.T) {
	compact, err := Decode([]byte(`{"id":"a","version":"1.0.0","name":"a","resources":["stream"]}`))
	if err != nil {
		t.Fatalf("Decode compact error: %v", err)
	}
	structured, err := Decode([]byte(`{"id":"a","version":"1.0.0","name":"a","resources":[{"name":"stream"}]}`))
	if err != nil {
		t.Fatalf("Decode structured error: %v", err)
	}
	if !reflect.DeepEqual(compact.Resources, structured.Resources) {
		t.Errorf("compact = %+v, structured = %+v, want equal", compact.Resources, structured.Resources)
	}
	want := ResourceList{{Name: "stream"}}
	if !reflect.DeepEqual(compact.Resources, want) {
		t.Errorf("Resources = %+v, want %+v", compact.Resources, want)
	}
}

func TestDecode_MixedResourceList(t *testing.T) {
	raw := `{"id":"a","version":"1.0.0","name":"a",
		"resources":["catalog",{"name":"stream","types":["movie"],"idPrefixes":["tt"]}]}`
	m, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	want := ResourceList{
		{Name: "catalog"},
		{Name: "stream", Types: []string{"movie"}, IDPrefixes: []string{"tt"}},
	}
	if !reflect.DeepEqual(m.Resources, want) {
		t.Errorf("Resources = %+v, want %+v", m.Resources, want)
	}
}

func TestDecode_BadResourceShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"number", `{"id":"a","version":"1.0.0","name":"a","resources":["stream",5]}`},
		{"array", `{"id":"a","version":"1.0.0","name":"a","resources":["stream",[]]}`},
		{"null", `{"id":"a","version":"1.0.0","name":"a","resources":["stream",null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "resources[1]") {
				t.Errorf("error %q does not name the entry position", err)
			}
			if !strings.Contains(err.Error(), "expected string or object for resource entry") {
				t.Errorf("error %q does not describe the shape failure", err)
			}
		})
	}
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"id", `{"version":"1.0.0","name":"a","resources":[]}`},
		{"version", `{"id":"a","name":"a","resources":[]}`},
		{"name", `{"id":"a","version":"1.0.0","resources":[]}`},
		{"resources", `{"id":"a","version":"1.0.0","name":"a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "invalid manifest") {
				t.Errorf("error %q is not an invalid-manifest error", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error %q does not name the missing field %q", err, tt.name)
			}
		})
	}
}

func TestDecode_MalformedVersion(t *testing.T) {
	_, err := Decode([]byte(`{"id":"a","version":"not-a-version","name":"a","resources":[]}`))
	if err == nil {
		t.Fatal("expected error for malformed version, got nil")
	}
	if !strings.Contains(err.Error(), "invalid manifest") {
		t.Errorf("error %q is not an invalid-manifest error", err)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"id":`))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestDecode_CatalogNotationSelection(t *testing.T) {
	raw := `{"id":"a","version":"1.0.0","name":"a","resources":[],"catalogs":[
		{"type":"movie","id":"modern","extra":[{"name":"genre","isRequired":false,"values":["a","b"]}]},
		{"type":"movie","id":"legacy","extraRequired":["genre"],"extraSupported":["genre","year"]},
		{"type":"movie","id":"bare"}
	]}`
	m, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(m.Catalogs) != 3 {
		t.Fatalf("Catalogs len = %d, want 3", len(m.Catalogs))
	}

	modern := m.Catalogs[0].Extra
	if modern.Legacy() {
		t.Error("catalog with modern key decoded as legacy")
	}
	if len(modern.Props()) != 1 || modern.Props()[0].Name != "genre" {
		t.Errorf("Props = %+v, want single genre prop", modern.Props())
	}

	legacy := m.Catalogs[1].Extra
	if !legacy.Legacy() {
		t.Error("catalog with legacy keys decoded as modern")
	}
	if !reflect.DeepEqual(legacy.Required(), []string{"genre"}) {
		t.Errorf("Required = %v, want [genre]", legacy.Required())
	}

	// No extra keys at all decodes to the fully permissive legacy shape.
	bare := m.Catalogs[2].Extra
	if !bare.Legacy() {
		t.Error("catalog without extra keys decoded as modern")
	}
	if len(bare.Required()) != 0 || len(bare.Supported()) != 0 {
		t.Errorf("bare catalog = required %v supported %v, want both empty", bare.Required(), bare.Supported())
	}
	if bare.Required() == nil || bare.Supported() == nil {
		t.Error("legacy lists must be empty, not nil")
	}
}

func TestCatalog_MarshalKeepsNotation(t *testing.T) {
	modern := Catalog{Type: "movie", ID: "top", Extra: FullExtra(ExtraProp{Name: "genre"})}
	data, err := modern.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if !strings.Contains(string(data), `"extra":[`) || strings.Contains(string(data), "extraRequired") {
		t.Errorf("modern catalog marshaled as %s", data)
	}

	legacy := Catalog{Type: "movie", ID: "top", Extra: SimpleExtra(nil, []string{"genre"})}
	data, err = legacy.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if !strings.Contains(string(data), `"extraRequired":[]`) || strings.Contains(string(data), `"extra":[`) {
		t.Errorf("legacy catalog marshaled as %s", data)
	}
}
