package fingerprint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingConfiguration is returned when no raw configuration was supplied
// at all. There is no safe default, so plugin setup must not proceed.
var ErrMissingConfiguration = errors.New("no fingerprint configuration supplied")

// Mode selects where the fingerprint is inserted into a URL.
type Mode int

const (
	// ModeAppend places the fingerprint after the full URL, e.g. `style.css?v=5`.
	ModeAppend Mode = iota
	// ModeBeforeExtension splices the fingerprint in front of a recognized
	// extension, e.g. `main.999.js`.
	ModeBeforeExtension
)

type Options struct {
	Mode             Mode
	Prefix           string
	Suffix           string
	DefaultExtension string
	// Extensions are matched case-insensitively at the end of a URL,
	// stored without the leading dot.
	Extensions []string
}

// Config is the resolved fingerprint configuration. It is built once per
// plugin instantiation and never mutated afterwards.
type Config struct {
	// Default applies when no per-module entry matches.
	Default string
	// PerModule maps logical module names to fingerprints. The reserved
	// key "default" acts as a fallback within the mapping.
	PerModule map[string]string
	Options   Options
}

func defaultOptions() Options {
	return Options{
		Mode:             ModeAppend,
		Prefix:           "?",
		Suffix:           "",
		DefaultExtension: ".js",
		Extensions:       []string{"js", "css", "json"},
	}
}

// Resolve normalizes the accepted raw configuration shapes into a Config.
// Raw may be a plain string (the global default fingerprint), an object with
// optional `fingerprint`, `fingerprints` and `options` keys, or a mapping
// keyed directly by module name with reserved `default` and `options` entries.
func Resolve(raw any) (*Config, error) {
	config := &Config{Options: defaultOptions()}

	switch value := raw.(type) {
	case nil:
		return nil, ErrMissingConfiguration

	case string:
		if value == "" {
			return nil, ErrMissingConfiguration
		}
		config.Default = value
		return config, nil

	case map[string]string:
		converted := make(map[string]any, len(value))
		for k, v := range value {
			converted[k] = v
		}
		return Resolve(converted)

	case map[string]any:
		if len(value) == 0 {
			return nil, ErrMissingConfiguration
		}

		candidate, ok := value["fingerprint"]
		if !ok {
			candidate, ok = value["fingerprints"]
		}
		if !ok {
			candidate = value
		}

		switch entries := candidate.(type) {
		case string:
			config.Default = entries
		case map[string]any:
			config.PerModule = map[string]string{}
			for module, fp := range entries {
				if module == "options" {
					continue
				}
				if s, ok := fp.(string); ok {
					config.PerModule[module] = s
				}
			}
			if def, ok := config.PerModule["default"]; ok {
				config.Default = def
			}
		default:
			return nil, fmt.Errorf("invalid fingerprint configuration type %T", candidate)
		}

		if rawOptions, ok := value["options"].(map[string]any); ok {
			if err := mergeOptions(&config.Options, rawOptions); err != nil {
				return nil, err
			}
		}

		return config, nil
	}

	return nil, fmt.Errorf("invalid fingerprint configuration type %T", raw)
}

// mergeOptions overlays the supplied raw option fields over the built-in
// defaults. The merge is shallow; unspecified keys keep their default.
func mergeOptions(options *Options, raw map[string]any) error {
	if mode, ok := raw["mode"].(string); ok {
		parsed, err := parseMode(mode)
		if err != nil {
			return err
		}
		options.Mode = parsed
	}
	if prefix, ok := raw["prefix"].(string); ok {
		options.Prefix = prefix
	}
	if suffix, ok := raw["suffix"].(string); ok {
		options.Suffix = suffix
	}
	if ext, ok := raw["defaultExtension"].(string); ok {
		options.DefaultExtension = ext
	}
	if extensions, ok := raw["extensions"]; ok {
		normalized, err := normalizeExtensions(extensions)
		if err != nil {
			return err
		}
		options.Extensions = normalized
	}
	return nil
}

func parseMode(mode string) (Mode, error) {
	switch strings.ToLower(mode) {
	case "", "append":
		return ModeAppend, nil
	case "beforeextension", "before-extension":
		return ModeBeforeExtension, nil
	}
	return 0, fmt.Errorf("invalid fingerprint mode %q", mode)
}

func normalizeExtensions(raw any) ([]string, error) {
	var entries []string
	switch list := raw.(type) {
	case []string:
		entries = list
	case []any:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("invalid extension entry %v", item)
			}
			entries = append(entries, s)
		}
	default:
		return nil, fmt.Errorf("invalid extensions type %T", raw)
	}

	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		normalized = append(normalized, strings.ToLower(strings.TrimPrefix(entry, ".")))
	}
	return normalized, nil
}
