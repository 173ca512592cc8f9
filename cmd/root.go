package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Cache-busting URL rewriter for JS/CSS/JSON assets",
	Long: `Fingerprint rewrites the physical URLs of your assets with a
cache-busting token (a version id, hash, or timestamp) while the logical
module names used across the codebase stay untouched. Tokens are supplied
through a fingerprints.toml, fingerprints.json or fingerprints.jsonc manifest.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
