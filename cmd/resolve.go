package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"micromachine.dev/fingerprint/lib/fingerprint"
	"micromachine.dev/fingerprint/lib/utils"
)

var resolveRootDir string
var resolveBaseURL string

// staticHost resolves names for the offline CLI pass. Nothing is in flight
// and nothing is defined; URLs are built by joining the base URL.
type staticHost struct {
	base       string
	resolution fingerprint.ResolutionConfig
}

func (h *staticHost) IsSpecified(_ string) bool { return false }
func (h *staticHost) IsDefined(_ string) bool   { return false }

func (h *staticHost) ToURL(name string) string {
	if h.base == "" {
		return name
	}
	return strings.TrimSuffix(h.base, "/") + "/" + strings.TrimPrefix(name, "./")
}

func (h *staticHost) Request(name string, onComplete func(value any)) {
	onComplete(name)
}

func (h *staticHost) Resolution() *fingerprint.ResolutionConfig {
	return &h.resolution
}

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [module names]",
	Short: "Rewrites logical module names into fingerprinted load names",
	Long: `The resolve command runs the fingerprint resolver over the given
logical module names and prints the physical load names a loader would fetch,
along with the name remaps recorded for nested requires. It performs the
following steps:
1. Locates and parses the fingerprint manifest (toml, json, or jsonc).
2. Resolves each name, applying per-module and default fingerprints.
3. Prints the resulting load names and the wildcard remap table.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifest, err := fingerprint.DetectManifestFile(&resolveRootDir)
		if err != nil {
			utils.LogWithColor(utils.Fail, fmt.Sprintf("✗ %v", err))
			os.Exit(1)
		}

		resolver, err := fingerprint.NewResolver(manifest)
		if err != nil {
			utils.LogWithColor(utils.Fail, fmt.Sprintf("✗ %v", err))
			os.Exit(1)
		}

		host := &staticHost{base: resolveBaseURL}

		for _, name := range args {
			resolver.Load(name, host, func(value any) {
				utils.LogWithColor(utils.Default, fmt.Sprintf("%s -> %v", name, value))
			}, fingerprint.LoadContext{})
		}

		bucket := host.resolution.Map["*"]
		if len(bucket) == 0 {
			return
		}

		utils.LogWithColor(utils.Cyan, "Recorded remaps:")
		remapped := make([]string, 0, len(bucket))
		for logical := range bucket {
			remapped = append(remapped, logical)
		}
		slices.Sort(remapped)
		for _, logical := range remapped {
			utils.LogWithColor(utils.Muted, fmt.Sprintf("  %s => %s", logical, bucket[logical]))
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.PersistentFlags().StringVarP(&resolveRootDir, "rootdir", "r", ".", "--rootdir ./apps/hello-world")
	resolveCmd.PersistentFlags().StringVarP(&resolveBaseURL, "base", "b", "", "--base https://cdn.example.com/assets")
}
