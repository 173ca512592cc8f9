package fingerprint

import (
	"errors"
	"testing"
)

func TestResolveAcceptedShapes(t *testing.T) {

	tests := []struct {
		name          string
		raw           any
		wantDefault   string
		wantPerModule map[string]string
	}{
		{
			"Plain string becomes the global default",
			"v=2026",
			"v=2026",
			nil,
		},
		{
			"Object with a string fingerprint key",
			map[string]any{"fingerprint": "abc123"},
			"abc123",
			nil,
		},
		{
			"Object with a fingerprint mapping",
			map[string]any{"fingerprint": map[string]any{"app/main": ".7"}},
			"",
			map[string]string{"app/main": ".7"},
		},
		{
			"Object with a fingerprints mapping",
			map[string]any{"fingerprints": map[string]any{"app/main": ".7", "default": ".1"}},
			".1",
			map[string]string{"app/main": ".7", "default": ".1"},
		},
		{
			"Direct mapping keyed by module name",
			map[string]any{"styles/app.css": "v=9"},
			"",
			map[string]string{"styles/app.css": "v=9"},
		},
		{
			"Direct mapping with a default entry",
			map[string]any{"styles/app.css": "v=9", "default": "v=1"},
			"v=1",
			map[string]string{"styles/app.css": "v=9", "default": "v=1"},
		},
		{
			"Mapping default overrides the fingerprint precedence",
			map[string]any{"fingerprint": map[string]any{"default": ".5"}},
			".5",
			map[string]string{"default": ".5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Resolve(tt.raw)
			if err != nil {
				t.Fatalf("Resolve(%v) returned error: %v", tt.raw, err)
			}

			if config.Default != tt.wantDefault {
				t.Errorf("Default = %q, want %q", config.Default, tt.wantDefault)
			}

			if tt.wantPerModule == nil && config.PerModule != nil {
				t.Errorf("PerModule = %v, want nil", config.PerModule)
			}

			for module, want := range tt.wantPerModule {
				if got := config.PerModule[module]; got != want {
					t.Errorf("PerModule[%q] = %q, want %q", module, got, want)
				}
			}
		})
	}
}

func TestResolveMissingConfiguration(t *testing.T) {

	tests := []struct {
		name string
		raw  any
	}{
		{"Nil configuration", nil},
		{"Empty string", ""},
		{"Empty object", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.raw)
			if !errors.Is(err, ErrMissingConfiguration) {
				t.Errorf("Resolve(%v) error = %v, want ErrMissingConfiguration", tt.raw, err)
			}
		})
	}
}

func TestResolveOptionsMerge(t *testing.T) {
	raw := map[string]any{
		"fingerprint": "v=1",
		"options": map[string]any{
			"mode":       "beforeExtension",
			"prefix":     "",
			"extensions": []any{".js", "SVG"},
		},
	}

	config, err := Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if config.Options.Mode != ModeBeforeExtension {
		t.Errorf("Mode = %v, want ModeBeforeExtension", config.Options.Mode)
	}

	// Explicit empty prefix must win over the built-in "?".
	if config.Options.Prefix != "" {
		t.Errorf("Prefix = %q, want empty", config.Options.Prefix)
	}

	// Unspecified keys keep their built-in values.
	if config.Options.Suffix != "" {
		t.Errorf("Suffix = %q, want empty default", config.Options.Suffix)
	}
	if config.Options.DefaultExtension != ".js" {
		t.Errorf("DefaultExtension = %q, want .js", config.Options.DefaultExtension)
	}

	want := []string{"js", "svg"}
	if len(config.Options.Extensions) != len(want) {
		t.Fatalf("Extensions = %v, want %v", config.Options.Extensions, want)
	}
	for i, ext := range want {
		if config.Options.Extensions[i] != ext {
			t.Errorf("Extensions[%d] = %q, want %q", i, config.Options.Extensions[i], ext)
		}
	}
}

func TestResolveInvalidMode(t *testing.T) {
	raw := map[string]any{
		"fingerprint": "v=1",
		"options":     map[string]any{"mode": "sideways"},
	}

	if _, err := Resolve(raw); err == nil {
		t.Error("Expected error for invalid mode")
	}
}

func TestResolveDirectMappingSkipsOptionsEntry(t *testing.T) {
	raw := map[string]any{
		"app/main": ".3",
		"options":  map[string]any{"prefix": "#"},
	}

	config, err := Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if _, ok := config.PerModule["options"]; ok {
		t.Error("PerModule must not contain the reserved options entry")
	}
	if config.Options.Prefix != "#" {
		t.Errorf("Prefix = %q, want #", config.Options.Prefix)
	}
}
