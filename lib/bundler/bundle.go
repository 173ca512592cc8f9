package bundler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"micromachine.dev/fingerprint/lib/bundler/plugins"
	"micromachine.dev/fingerprint/lib/fingerprint"
	"micromachine.dev/fingerprint/lib/utils"
)

type Bundle struct {
	RootDir    string
	EntryPoint string
	OutDir     string
	Config     *fingerprint.Config
	// ExternalExtensions lists assets kept out of the bundle verbatim,
	// fingerprinted or not.
	ExternalExtensions []string
}

// Pack bundles the entrypoint with the fingerprint plugin attached. Asset
// imports covered by the configuration come out of the bundle rewritten to
// their fingerprinted URLs.
func (b *Bundle) Pack() error {
	absDir, err := filepath.Abs(b.RootDir)
	if err != nil {
		slog.Error(fmt.Sprintf("✗ %v", err))
		return fmt.Errorf("could not resolve absolute path: %w", err)
	}

	err = os.MkdirAll(filepath.Join(absDir, b.OutDir), 0755)
	if err != nil {
		slog.Error(fmt.Sprintf("✗ %v", err))
		return fmt.Errorf("could not create output directory: %w", err)
	}

	start := time.Now()
	utils.LogWithColor(utils.Cyan, "Bundling application...")

	fingerprintPlugin := plugins.FingerprintPlugin{Config: b.Config}

	externalExtensions := b.ExternalExtensions
	if externalExtensions == nil {
		externalExtensions = []string{".wasm", ".bin"}
	}
	externalFilesPlugin := plugins.ExternalFilePlugin{Extensions: externalExtensions}

	result := api.Build(api.BuildOptions{
		Plugins:        []api.Plugin{fingerprintPlugin.New(), externalFilesPlugin.New()},
		EntryPoints:    []string{b.EntryPoint},
		Outdir:         b.OutDir,
		AbsWorkingDir:  absDir,
		Bundle:         true,
		Write:          true,
		AllowOverwrite: true,
		Format:         api.FormatESModule,
		Platform:       api.PlatformBrowser,
		TreeShaking:    api.TreeShakingTrue,
		Target:         api.ESNext,
		Sourcemap:      api.SourceMapLinked,
	})

	if len(result.Errors) > 0 {
		for _, err := range result.Errors {
			slog.Error(fmt.Sprintf("✗ %v", err))
		}

		return fmt.Errorf("bundle failed with %d error(s)", len(result.Errors))
	}

	elapsed := time.Since(start)
	utils.LogWithColor(utils.Success, fmt.Sprintf("✓ Bundling completed in %s", elapsed))

	return nil
}
