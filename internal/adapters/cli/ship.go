package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	shipApp "github.com/andrescamacho/starship-engine/internal/application/ship"
	"github.com/andrescamacho/starship-engine/internal/application/ship/dtos"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// NewShipCommand creates the ship command with subcommands
func NewShipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Design, commission and maintain ships",
		Long: `Design, commission and maintain ships.

A ship is a hull plus an ordered list of components. Component order matters:
energy is handed out in slot order and damage prefers the first slots.

Examples:
  starship ship stats --hull "Cruiser Mk1" --component "Fusion source Mk1" --component "Laser Mk2"
  starship ship stats --ship cruiser-mk1-1a2b3c4d
  starship ship commission --owner 1 --name Warden --hull "Cruiser Mk1" --component "Laser Mk2"
  starship ship list --owner 1
  starship ship repair --ship cruiser-mk1-1a2b3c4d --full
  starship ship trade --ship small-freighter-mk1-0badf00d --x 30 --y 0 --port-owner 2`,
	}

	cmd.AddCommand(newShipStatsCommand())
	cmd.AddCommand(newShipCommissionCommand())
	cmd.AddCommand(newShipListCommand())
	cmd.AddCommand(newShipRepairCommand())
	cmd.AddCommand(newShipTradeCommand())

	return cmd
}

// newShipStatsCommand creates the ship stats subcommand
func newShipStatsCommand() *cobra.Command {
	var (
		shipID     string
		hullName   string
		components []string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show derived statistics of a stored ship or an unsaved design",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (shipID == "") == (hullName == "") {
				return fmt.Errorf("exactly one of --ship or --hull is required")
			}

			if hullName != "" {
				cat, err := configuredCatalog()
				if err != nil {
					return err
				}
				hull, err := cat.HullByName(hullName, resolveRace())
				if err != nil {
					return err
				}
				comps, err := cat.ComponentsByName(components)
				if err != nil {
					return err
				}
				design, err := ship.NewDesign(hullName, hull, comps, 0, 0)
				if err != nil {
					return err
				}
				s := ship.NewShip(design)
				s.InitializeShieldAndArmor()
				printShipStats(cmd.OutOrStdout(), dtos.ToShipStatsDTOFromShip(s))
				return nil
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&shipApp.GetShipStatsQuery{ShipID: shipID})
			if err != nil {
				return err
			}
			printShipStats(cmd.OutOrStdout(), response.(*dtos.ShipStatsDTO))
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "Stored ship ID")
	cmd.Flags().StringVar(&hullName, "hull", "", "Hull name for an unsaved design")
	cmd.Flags().StringArrayVar(&components, "component", nil, "Component name, repeat in slot order")

	return cmd
}

// newShipCommissionCommand creates the ship commission subcommand
func newShipCommissionCommand() *cobra.Command {
	var (
		name       string
		hullName   string
		components []string
		cost       int
		metalCost  int
	)

	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Build a ship and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hullName == "" {
				return fmt.Errorf("--hull flag is required")
			}
			owner, err := resolveOwner()
			if err != nil {
				return err
			}
			if name == "" {
				name = hullName
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&shipApp.CommissionShipCommand{
				Owner:          owner,
				Name:           name,
				HullName:       hullName,
				RaceIndex:      resolveRace(),
				Components:     components,
				ProductionCost: cost,
				MetalCost:      metalCost,
			})
			if err != nil {
				return fmt.Errorf("failed to commission ship: %w", err)
			}

			result := response.(*shipApp.CommissionShipResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Commissioned %s\n", result.ShipID)
			printShipStats(cmd.OutOrStdout(), dtos.ToShipStatsDTO(result.Ship))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Design name (defaults to the hull name)")
	cmd.Flags().StringVar(&hullName, "hull", "", "Hull name (required)")
	cmd.Flags().StringArrayVar(&components, "component", nil, "Component name, repeat in slot order")
	cmd.Flags().IntVar(&cost, "cost", 0, "Production cost")
	cmd.Flags().IntVar(&metalCost, "metal-cost", 0, "Metal cost")

	return cmd
}

// newShipListCommand creates the ship list subcommand
func newShipListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a player's ships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := resolveOwner()
			if err != nil {
				return err
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&shipApp.ListShipsQuery{Owner: owner, IncludeDestroyed: all})
			if err != nil {
				return err
			}

			result := response.(*shipApp.ListShipsResponse)
			if len(result.Ships) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ships found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHIP ID\tNAME\tHULL\tHP\tPOWER\tDAMAGE")
			fmt.Fprintln(w, "-------\t----\t----\t--\t-----\t------")
			for _, s := range result.Ships {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d\t%s\n",
					s.ID, s.Name, s.Hull, s.HullPoints, s.MaxHullPoints, s.MilitaryPower, s.DamageLevel)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include destroyed ships")

	return cmd
}

// newShipRepairCommand creates the ship repair subcommand
func newShipRepairCommand() *cobra.Command {
	var (
		shipID string
		full   bool
	)

	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Repair a stored ship",
		Long: `Repair a stored ship.

Without --full the first damaged slot gains one hull point. Shield and armor
are re-initialized either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID == "" {
				return fmt.Errorf("--ship flag is required")
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&shipApp.RepairShipCommand{ShipID: shipID, Full: full})
			if err != nil {
				return fmt.Errorf("failed to repair ship: %w", err)
			}

			result := response.(*shipApp.RepairShipResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s repaired: +%d hull points (%d/%d), shield %d, armor %d\n",
				result.ShipID, result.Restored, result.HullPoints, result.MaxHullPoints, result.Shield, result.Armor)
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID (required)")
	cmd.Flags().BoolVar(&full, "full", false, "Restore every slot")

	return cmd
}

// newShipTradeCommand creates the ship trade subcommand
func newShipTradeCommand() *cobra.Command {
	var (
		shipID    string
		x, y      int
		portOwner int
	)

	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Dock a trade ship at a planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID == "" {
				return fmt.Errorf("--ship flag is required")
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&shipApp.RunTradeCommand{ShipID: shipID, PortX: x, PortY: y, PortOwner: portOwner})
			if err != nil {
				return fmt.Errorf("failed to trade: %w", err)
			}

			result := response.(*shipApp.RunTradeResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "Credits earned: %d\n", result.Credits)
			if result.TradeCoordinate != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Route anchor:   %s\n", result.TradeCoordinate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID (required)")
	cmd.Flags().IntVar(&x, "x", 0, "Planet X coordinate")
	cmd.Flags().IntVar(&y, "y", 0, "Planet Y coordinate")
	cmd.Flags().IntVar(&portOwner, "port-owner", 0, "Planet owner (0 for unowned)")

	return cmd
}

func printShipStats(out io.Writer, s *dtos.ShipStatsDTO) {
	fmt.Fprintf(out, "Ship Information\n")
	fmt.Fprintf(out, "================\n\n")
	if s.ID != "" {
		fmt.Fprintf(out, "Ship ID:         %s (owner %d)\n", s.ID, s.Owner)
	}
	fmt.Fprintf(out, "Name:            %s\n", s.Name)
	fmt.Fprintf(out, "Hull:            %s (%s)\n", s.Hull, s.Race)
	fmt.Fprintf(out, "Hull Points:     %d / %d (%s)\n", s.HullPoints, s.MaxHullPoints, s.DamageLevel)
	fmt.Fprintf(out, "Shield / Armor:  %d / %d\n", s.Shield, s.Armor)
	fmt.Fprintf(out, "Speed:           %d (tactic %d, ftl %d)\n", s.Speed, s.TacticSpeed, s.FtlSpeed)
	fmt.Fprintf(out, "Initiative:      %d\n", s.Initiative)
	fmt.Fprintf(out, "Military Power:  %d\n", s.MilitaryPower)
	fmt.Fprintf(out, "Defense:         %d\n", s.DefenseValue)
	fmt.Fprintf(out, "Cloak / Scanner: %d / %d (detect %d)\n", s.CloakingValue, s.ScannerLevel, s.ScannerDetect)
	if s.MaxWeaponRange > 0 {
		fmt.Fprintf(out, "Weapon Range:    %d - %d\n", s.MinWeaponRange, s.MaxWeaponRange)
	}
	fmt.Fprintf(out, "Energy:          %d\n", s.TotalEnergy)
	if s.IsTradeShip {
		fmt.Fprintf(out, "Cargo:           %s (room: %d metal, %d colonists)\n", s.CargoType, s.FreeCargoMetal, s.FreeColonists)
	}

	if len(s.Slots) == 0 {
		return
	}
	fmt.Fprintf(out, "\nSlots:\n")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, slot := range s.Slots {
		status := "working"
		if !slot.Working {
			status = "offline"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%d hp\t%s\n", i, slot.Component, slot.Type, slot.HullPoints, status)
	}
	w.Flush()
}
