package fingerprint

import "strings"

// LoaderDelimiter marks a name that is already addressed to another loader
// plugin (e.g. `css!styles/app`). Such names are used verbatim as URLs.
const LoaderDelimiter = '!'

// Lookup returns the fingerprint configured for a logical module name.
// Precedence: per-module entry, the mapping's "default" entry, then the
// global default. The second return is false when nothing resolves.
func (c *Config) Lookup(name string) (string, bool) {
	if c.PerModule != nil {
		if fp, ok := c.PerModule[name]; ok {
			return fp, true
		}
		if fp, ok := c.PerModule["default"]; ok {
			return fp, true
		}
	}
	if c.Default != "" {
		return c.Default, true
	}
	return "", false
}

// Effective returns the fingerprint for name wrapped in the configured
// prefix and suffix.
func (c *Config) Effective(name string) (string, bool) {
	fp, ok := c.Lookup(name)
	if !ok {
		return "", false
	}
	if c.Options.Prefix != "" || c.Options.Suffix != "" {
		fp = c.Options.Prefix + fp + c.Options.Suffix
	}
	return fp, true
}

// RecognizedExtension reports whether url ends in one of the configured
// extensions and returns the matched extension as it appears in the URL.
func (c *Config) RecognizedExtension(url string) (string, bool) {
	lower := strings.ToLower(url)
	for _, ext := range c.Options.Extensions {
		if strings.HasSuffix(lower, "."+ext) {
			return url[len(url)-len(ext):], true
		}
	}
	return "", false
}

// Rewrite transforms a resolved URL into the physical load name carrying the
// fingerprint. Name is the logical module name the URL was derived from; it
// decides whether the default extension may be appended.
func (c *Config) Rewrite(name, url, fp string) string {
	ext, ok := c.RecognizedExtension(url)

	switch {
	case ok && c.Options.Mode == ModeBeforeExtension:
		// Strip a single leading delimiter (`.999` -> `999`) so the splice
		// yields `main.999.js` rather than `main..999.js`. The remainder of
		// the fingerprint is kept verbatim, hash-based values included.
		return url[:len(url)-len(ext)] + stripDelimiter(fp) + "." + ext

	case ok:
		return url + fp

	case c.Options.Mode == ModeBeforeExtension:
		// No extension boundary to splice before.
		return url + fp

	default:
		if !strings.ContainsRune(name, LoaderDelimiter) && c.Options.DefaultExtension != "" {
			url += c.Options.DefaultExtension
		}
		return url + fp
	}
}

func stripDelimiter(fp string) string {
	if fp != "" && (fp[0] < '0' || fp[0] > '9') {
		return fp[1:]
	}
	return fp
}
