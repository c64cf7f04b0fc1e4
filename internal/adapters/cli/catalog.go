package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse races, hulls and components",
		Long: `Browse the archetype catalog ships are built from.

The embedded catalog is used unless catalog.path (SE_CATALOG_PATH) points
at a YAML document.

Examples:
  starship catalog list races
  starship catalog list hulls --race 6
  starship catalog list components`,
	}

	cmd.AddCommand(newCatalogListCommand())

	return cmd
}

// newCatalogListCommand creates the catalog list subcommand
func newCatalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list <races|hulls|components>",
		Short:     "List catalog entries",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"races", "hulls", "components"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := configuredCatalog()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			switch args[0] {
			case "races":
				fmt.Fprintln(w, "INDEX\tNAME\tCLOAK BONUS\tTROOPER POWER")
				for _, race := range cat.Races() {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", race.Index, race.Name, race.CloakBonus, race.TrooperPower)
				}
			case "hulls":
				race := resolveRace()
				fmt.Fprintln(w, "NAME\tSIZE\tTYPE\tSLOTS\tHP/SLOT\tMAX HP\tSPY")
				for _, name := range cat.HullNames() {
					hull, err := cat.HullByName(name, race)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%t\n",
						hull.Name, hull.Size, hull.Type, hull.MaxSlot, hull.SlotHull, hull.MaxHullPoints(), hull.SpyCapable)
				}
			case "components":
				fmt.Fprintln(w, "NAME\tTYPE\tDAMAGE\tDEFENSE\tENERGY +/-\tRANGE\tHIT%")
				for _, comp := range cat.Components() {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t+%d/-%d\t%d\t%d\n",
						comp.Name, comp.Type, comp.Damage, comp.DefenseValue,
						comp.EnergyResource, comp.EnergyRequirement, comp.WeaponRange, comp.HitChance)
				}
			}
			return nil
		},
	}
}

// configuredCatalog loads the catalog without opening the database
func configuredCatalog() (*catalog.Catalog, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	return loadCatalog(afero.NewOsFs(), &cfg.Catalog)
}
