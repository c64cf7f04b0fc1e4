package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starship-engine/internal/application/ship/dtos"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
	"github.com/andrescamacho/starship-engine/pkg/utils"
)

// NewSaveCommand creates the save command with subcommands
func NewSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Export and import binary ship save files",
		Long: `Export and import binary ship save files.

Save files hold one ship in the binary save format and live in savefile.dir
(SE_SAVEFILE_DIR). Archetypes are stored by name, so a save only loads
against a catalog that still knows its hull and components.

Examples:
  starship save encode --ship cruiser-mk1-1a2b3c4d --name warden
  starship save decode warden
  starship save decode warden --import --owner 2
  starship save list`,
	}

	cmd.AddCommand(newSaveEncodeCommand())
	cmd.AddCommand(newSaveDecodeCommand())
	cmd.AddCommand(newSaveListCommand())

	return cmd
}

// newSaveEncodeCommand creates the save encode subcommand
func newSaveEncodeCommand() *cobra.Command {
	var shipID, name string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write a stored ship to a save file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID == "" {
				return fmt.Errorf("--ship flag is required")
			}
			if name == "" {
				name = shipID
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			fs, err := e.ships.FindByID(e.ctx(), shipID)
			if err != nil {
				return err
			}
			if err := e.saves.Save(e.ctx(), name, fs.Ship); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s as %s\n", shipID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Save name (defaults to the ship ID)")

	return cmd
}

// newSaveDecodeCommand creates the save decode subcommand
func newSaveDecodeCommand() *cobra.Command {
	var importShip bool

	cmd := &cobra.Command{
		Use:   "decode <name>",
		Short: "Read a save file, optionally importing it as a new ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			loaded, err := e.saves.Load(e.ctx(), args[0])
			if err != nil {
				return err
			}

			if !importShip {
				printShipStats(cmd.OutOrStdout(), dtos.ToShipStatsDTOFromShip(loaded))
				return nil
			}

			owner, err := resolveOwner()
			if err != nil {
				return err
			}
			playerID, err := shared.NewPlayerID(owner)
			if err != nil {
				return err
			}

			fs := &ship.FleetShip{
				ID:    utils.GenerateShipID(loaded.Hull().Name),
				Owner: playerID,
				Ship:  loaded,
			}
			if err := e.ships.Save(e.ctx(), fs); err != nil {
				return fmt.Errorf("failed to import ship: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %s as %s\n", args[0], fs.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&importShip, "import", false, "Store the ship for --owner")

	return cmd
}

// newSaveListCommand creates the save list subcommand
func newSaveListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			names, err := e.saves.List(e.ctx())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saves found.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
