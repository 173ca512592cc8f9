package bundler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"micromachine.dev/fingerprint/lib/fingerprint"
)

func TestPackWritesFingerprintedBundle(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "index.js"), []byte(`import "./app.css";
export const ready = true;
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	config, err := fingerprint.Resolve(map[string]any{
		"fingerprints": map[string]any{"./app.css": "v=9"},
	})
	if err != nil {
		t.Fatal(err)
	}

	b := Bundle{
		RootDir:    dir,
		EntryPoint: "index.js",
		OutDir:     "dist",
		Config:     config,
	}

	if err := b.Pack(); err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "dist", "index.js"))
	if err != nil {
		t.Fatalf("bundle output missing: %v", err)
	}

	if !strings.Contains(string(out), `"app.css?v=9"`) {
		t.Errorf("bundle does not reference the fingerprinted asset:\n%s", out)
	}
}

func TestPackReportsBuildErrors(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "index.js"), []byte(`import "./missing.js";`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// The missing import carries no fingerprint, so esbuild must try to
	// resolve it on disk and fail.
	config, err := fingerprint.Resolve(map[string]any{
		"fingerprints": map[string]any{"./app.css": "v=1"},
	})
	if err != nil {
		t.Fatal(err)
	}

	b := Bundle{
		RootDir:    dir,
		EntryPoint: "index.js",
		OutDir:     "dist",
		Config:     config,
	}

	if err := b.Pack(); err == nil {
		t.Error("Expected error for an unresolvable import")
	}
}
