package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var flagListSources bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Load and list the sprite set",
	Long: `Load every sprite the runner needs from an asset source and print
its intrinsic size. Exits non-zero if any sprite fails to load.

Examples:
  runner assets
  runner assets --assets dir:./sprites
  runner assets --list`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagAssets, "assets", registry.DefaultSource, "Asset source: builtin or dir:/path")
	assetsCmd.Flags().BoolVar(&flagListSources, "list", false, "List the available asset sources")
}

func runAssets(_ *cobra.Command, _ []string) error {
	if flagListSources {
		listSources()
		return nil
	}

	provider, err := registry.Create(flagAssets)
	if err != nil {
		return err
	}

	fmt.Printf("Loading %s\n", flagAssets)
	catalog, err := assets.Load(context.Background(), provider, assets.DefaultIDs())
	if err != nil {
		fmt.Println(assets.StatusFailed)
		return err
	}
	fmt.Println()

	images := catalog.Images()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, img := range images {
		maxIDLen = max(maxIDLen, len(img.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Size")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, img := range images {
		fmt.Printf("  %-*s  %dx%d\n", maxIDLen, img.ID, img.Width, img.Height)
	}

	fmt.Println()
	fmt.Printf("%d images, %d run frames, %d enemy variants\n",
		len(images), catalog.RunFrames(), catalog.EnemyVariants())
	return nil
}

func listSources() {
	sources := registry.List()

	fmt.Println("Available asset sources:")
	fmt.Println()

	maxLen := 6 // "Scheme" header
	for _, s := range sources {
		maxLen = max(maxLen, len(s.Scheme))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Scheme", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "-----------")
	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxLen, s.Scheme, s.Description)
	}

	fmt.Println()
	fmt.Println("Use 'runner play --assets <scheme>[:arg]' to pick one.")
}
