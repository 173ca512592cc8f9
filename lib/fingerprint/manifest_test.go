package fingerprint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectManifestFile(t *testing.T) {

	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			"TOML manifest",
			"fingerprints.toml",
			"[fingerprints]\n\"styles/app.css\" = \"v=9\"\ndefault = \"v=1\"\n",
		},
		{
			"JSON manifest",
			"fingerprints.json",
			`{"fingerprints": {"styles/app.css": "v=9", "default": "v=1"}}`,
		},
		{
			"JSONC manifest with comments",
			"fingerprints.jsonc",
			"{\n  // deploy 2026-08-26\n  \"fingerprints\": {\"styles/app.css\": \"v=9\", \"default\": \"v=1\"}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			err := os.WriteFile(filepath.Join(dir, tt.filename), []byte(tt.content), 0644)
			if err != nil {
				t.Fatal(err)
			}

			manifest, err := DetectManifestFile(&dir)
			if err != nil {
				t.Fatalf("DetectManifestFile returned error: %v", err)
			}

			config, err := Resolve(manifest)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}

			if got := config.PerModule["styles/app.css"]; got != "v=9" {
				t.Errorf("PerModule[styles/app.css] = %q, want v=9", got)
			}
			if config.Default != "v=1" {
				t.Errorf("Default = %q, want v=1", config.Default)
			}
		})
	}
}

func TestDetectManifestFileMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := DetectManifestFile(&dir)
	if err == nil {
		t.Error("Expected error when no manifest found")
	}
}
