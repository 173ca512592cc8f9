package fingerprint

import "strings"

// Host is the capability surface the module loader exposes to the resolver.
// The resolver performs no I/O itself; fetching and dependency tracking stay
// with the host.
type Host interface {
	// IsSpecified reports whether the name is already being resolved,
	// e.g. it was requested earlier under another plugin or alias.
	IsSpecified(name string) bool
	// IsDefined reports whether the name has already resolved to a value.
	IsDefined(name string) bool
	// ToURL converts a logical module name to a fetchable URL.
	ToURL(name string) string
	// Request resolves a physical name asynchronously and invokes
	// onComplete exactly once with the resolved value.
	Request(name string, onComplete func(value any))
	// Resolution returns the host's mutable resolution state.
	Resolution() *ResolutionConfig
}

// ResolutionConfig is the host-owned resolution state. The resolver only
// ever writes into the "*" wildcard bucket, redirecting a logical name to
// its fingerprinted load name for every module that depends on it.
type ResolutionConfig struct {
	Map map[string]map[string]string
}

// LoadContext carries the per-call flags supplied by the host.
type LoadContext struct {
	// IsBuildPass is set when an optimizer drives the load. Fingerprinted
	// URLs must not be resolved during a build, so the load completes
	// immediately with a nil value.
	IsBuildPass bool
}

// Resolver rewrites logical module names into fingerprinted load names.
// The configuration is immutable after construction, so a single Resolver
// may serve any number of Load calls.
type Resolver struct {
	Config *Config
}

// NewResolver builds a Resolver from a raw configuration value.
// It fails with ErrMissingConfiguration when no configuration was supplied.
func NewResolver(raw any) (*Resolver, error) {
	config, err := Resolve(raw)
	if err != nil {
		return nil, err
	}
	return &Resolver{Config: config}, nil
}

// Load resolves a logical module name through the host, rewriting it into a
// fingerprinted load name first when one applies. The host's resolved value
// is forwarded to onLoad unchanged.
func (r *Resolver) Load(name string, host Host, onLoad func(value any), ctx LoadContext) {
	if ctx.IsBuildPass {
		onLoad(nil)
		return
	}

	loadName := name
	if !host.IsSpecified(name) && !host.IsDefined(name) {
		if fp, ok := r.Config.Effective(name); ok {
			url := name
			if !strings.ContainsRune(name, LoaderDelimiter) {
				url = host.ToURL(name)
			}
			loadName = r.Config.Rewrite(name, url, fp)
		}
	}

	if loadName != name {
		r.recordRemap(host, name, loadName)
	}

	host.Request(loadName, onLoad)
}

// recordRemap writes the logical-to-physical redirect into the host's
// wildcard mapping bucket so nested requires of the logical name resolve to
// the fingerprinted resource.
func (r *Resolver) recordRemap(host Host, name, loadName string) {
	resolution := host.Resolution()
	if resolution.Map == nil {
		resolution.Map = map[string]map[string]string{}
	}
	bucket := resolution.Map["*"]
	if bucket == nil {
		bucket = map[string]string{}
		resolution.Map["*"] = bucket
	}
	bucket[name] = strings.TrimPrefix(loadName, "./")
}
