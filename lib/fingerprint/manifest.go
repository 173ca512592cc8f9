package fingerprint

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
)

// DetectManifestFile locates and decodes the fingerprint manifest in root,
// trying fingerprints.toml, fingerprints.json and fingerprints.jsonc in
// order. The decoded value feeds Resolve unchanged.
func DetectManifestFile(root *string) (map[string]any, error) {
	rootDir := ""
	if root != nil {
		rootDir = *root
	}

	paths := []string{rootDir + "/fingerprints.toml", rootDir + "/fingerprints.json", rootDir + "/fingerprints.jsonc"}

	content := ""
	usedPath := ""

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}

		usedPath = path
		content = string(data)
	}

	if content == "" || usedPath == "" {
		return nil, errors.New("no fingerprint manifest found")
	}

	manifest := map[string]any{}
	switch filepath.Ext(usedPath) {
	case ".json", ".jsonc":
		err := json.Unmarshal(jsonc.ToJSON([]byte(content)), &manifest)
		if err != nil {
			return nil, err
		}
	case ".toml":
		err := toml.Unmarshal([]byte(content), &manifest)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("invalid fingerprint manifest")
	}

	return manifest, nil
}
