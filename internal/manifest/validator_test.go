package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading testdata %s: %v", name, err)
	}
	return data
}

func TestValidate_ValidManifests(t *testing.T) {
	validFiles := []string{
		"valid-modern.json",
		"valid-legacy.json",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, file))
			if err != nil {
				t.Fatalf("Validate(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidate_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-id.json", "missing required id field"},
		{"invalid-bad-version.json", "version is not a semantic version"},
		{"invalid-bad-resource.json", "resource entry of an unsupported shape"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Validate(readTestdata(t, tt.file))
			if err != nil {
				t.Fatalf("Validate(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"id":`))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidate_AgreesWithDecode(t *testing.T) {
	// The testdata manifests that pass the schema must also decode, and the
	// ones that fail it must be rejected by the decoder too.
	for _, file := range []string{"valid-modern.json", "valid-legacy.json"} {
		if _, err := Decode(readTestdata(t, file)); err != nil {
			t.Errorf("Decode(%s) error: %v", file, err)
		}
	}
	for _, file := range []string{"invalid-missing-id.json", "invalid-bad-version.json", "invalid-bad-resource.json"} {
		if _, err := Decode(readTestdata(t, file)); err == nil {
			t.Errorf("Decode(%s) succeeded, want error", file)
		}
	}
}
