package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"micromachine.dev/fingerprint/lib/bundler"
	"micromachine.dev/fingerprint/lib/fingerprint"
	"micromachine.dev/fingerprint/lib/utils"
)

var bundleRootDir string
var bundleEntry string
var bundleOutDir string

// bundleCmd represents the bundle command
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Bundles an entrypoint with fingerprinted asset references",
	Long: `The bundle command runs esbuild over the given entrypoint with the
fingerprint plugin attached. Asset imports covered by the manifest are left
external and rewritten to their fingerprinted URLs, so the emitted bundle
references the cache-busted paths directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		manifest, err := fingerprint.DetectManifestFile(&bundleRootDir)
		if err != nil {
			utils.LogWithColor(utils.Fail, fmt.Sprintf("✗ %v", err))
			os.Exit(1)
		}

		config, err := fingerprint.Resolve(manifest)
		if err != nil {
			utils.LogWithColor(utils.Fail, fmt.Sprintf("✗ %v", err))
			os.Exit(1)
		}

		b := bundler.Bundle{
			RootDir:    bundleRootDir,
			EntryPoint: bundleEntry,
			OutDir:     bundleOutDir,
			Config:     config,
		}

		start := time.Now()
		utils.LogWithColor(utils.Cyan, "Running `fingerprint bundle`...")

		if err := b.Pack(); err != nil {
			os.Exit(1)
		}

		elapsed := time.Since(start)
		utils.LogWithColor(utils.Success, fmt.Sprintf("✓ Completed `fingerprint bundle` in %s", elapsed))
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)

	bundleCmd.PersistentFlags().StringVarP(&bundleRootDir, "rootdir", "r", ".", "--rootdir ./apps/hello-world")
	bundleCmd.PersistentFlags().StringVarP(&bundleEntry, "entry", "e", "src/index.js", "--entry src/index.js")
	bundleCmd.PersistentFlags().StringVarP(&bundleOutDir, "outdir", "o", "dist", "--outdir dist")
}
