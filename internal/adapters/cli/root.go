package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	ownerID    int
	raceIndex  int
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starship",
		Short: "Starship engine - design ships and resolve space combat",
		Long: `Starship engine builds ships from a catalog of hulls and components,
derives their combat statistics and resolves engagements between fleets.

Ships are stored in the configured database; single ships can be exported
to and imported from binary .ship save files.

Examples:
  starship catalog list hulls
  starship ship stats --hull "Destroyer Mk1" --component "Laser Mk1" --component "Fission source Mk1"
  starship ship commission --owner 1 --name Lancer --hull "Destroyer Mk1" --component "Laser Mk1"
  starship ship repair --ship destroyer-mk1-1a2b3c4d --full
  starship combat simulate --ship destroyer-mk1-1a2b3c4d --ship scout-mk1-9f8e7d6c --seed 42
  starship save encode --ship destroyer-mk1-1a2b3c4d --name lancer`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./starship.yaml)")
	rootCmd.PersistentFlags().IntVar(&ownerID, "owner", 0,
		"Owning player ID (falls back to the user config default)")
	rootCmd.PersistentFlags().IntVar(&raceIndex, "race", -1,
		"Race index for hull variants (falls back to the user config default, then 0)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewShipCommand())
	rootCmd.AddCommand(NewCombatCommand())
	rootCmd.AddCommand(NewSaveCommand())
	rootCmd.AddCommand(NewMetricsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
