package plugins

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"micromachine.dev/fingerprint/lib/fingerprint"
)

// FingerprintPlugin rewrites asset import paths with their configured
// fingerprint and marks them external, so the bundler never attempts to
// resolve a fingerprinted URL on disk. The emitted bundle then references the
// cache-busted physical path.
type FingerprintPlugin struct {
	Config *fingerprint.Config
}

func (p *FingerprintPlugin) New() api.Plugin {
	return api.Plugin{
		Name: "fingerprint",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				if args.Kind == api.ResolveEntryPoint {
					return api.OnResolveResult{}, nil
				}

				_, recognized := p.Config.RecognizedExtension(args.Path)
				_, listed := p.Config.PerModule[args.Path]
				if !recognized && !listed {
					return api.OnResolveResult{}, nil
				}

				fp, ok := p.Config.Effective(args.Path)
				if !ok {
					return api.OnResolveResult{}, nil
				}

				loadName := p.Config.Rewrite(args.Path, args.Path, fp)
				if loadName == args.Path {
					return api.OnResolveResult{}, nil
				}

				return api.OnResolveResult{
					Path:     strings.TrimPrefix(loadName, "./"),
					External: true,
				}, nil
			})
		},
	}
}
