package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	combatApp "github.com/andrescamacho/starship-engine/internal/application/combat"
)

// NewCombatCommand creates the combat command with subcommands
func NewCombatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combat",
		Short: "Resolve engagements between stored ships",
		Long: `Resolve engagements between stored ships.

Ships fire in initiative order at the first hostile ship still flying.
Shields regenerate after every round. The fight ends when one owner is left,
nobody can shoot, or the round limit is reached. Ship damage is saved.

Examples:
  starship combat simulate --ship cruiser-mk1-1a2b3c4d --ship scout-mk1-9f8e7d6c
  starship combat simulate --ship a --ship b --seed 42 --rounds 5 --trace
  starship combat log engagement-0f1e2d3c --limit 20`,
	}

	cmd.AddCommand(newCombatSimulateCommand())
	cmd.AddCommand(newCombatLogCommand())

	return cmd
}

// newCombatSimulateCommand creates the combat simulate subcommand
func newCombatSimulateCommand() *cobra.Command {
	var (
		shipIDs      []string
		engagementID string
		seed         uint64
		rounds       int
		trace        bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fight stored ships against each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(shipIDs) < 2 {
				return fmt.Errorf("at least two --ship flags are required")
			}

			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			command := &combatApp.SimulateEngagementCommand{
				EngagementID: engagementID,
				ShipIDs:      shipIDs,
				MaxRounds:    rounds,
			}
			switch {
			case cmd.Flags().Changed("seed"):
				command.Seed = &seed
			case e.cfg.Combat.Seed != 0:
				command.Seed = &e.cfg.Combat.Seed
			}

			response, err := e.send(command)
			if err != nil {
				return fmt.Errorf("engagement failed: %w", err)
			}
			result := response.(*combatApp.SimulateEngagementResponse)

			out := cmd.OutOrStdout()
			if trace {
				round := 0
				for _, report := range result.Reports {
					if report.Round != round {
						round = report.Round
						fmt.Fprintf(out, "-- Round %d --\n", round)
					}
					for _, line := range report.Trace {
						fmt.Fprintf(out, "  %s\n", line)
					}
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Engagement %s\n", result.EngagementID)
			fmt.Fprintf(out, "  Rounds:     %d\n", result.Rounds)
			fmt.Fprintf(out, "  Attacks:    %d\n", len(result.Reports))
			if result.Winner != nil {
				fmt.Fprintf(out, "  Winner:     player %d\n", result.Winner.Value())
			} else {
				fmt.Fprintln(out, "  Winner:     none")
			}
			fmt.Fprintf(out, "  Survivors:  %v\n", result.Survivors)
			fmt.Fprintf(out, "  Destroyed:  %v\n", result.Destroyed)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&shipIDs, "ship", nil, "Ship ID, repeat for every combatant")
	cmd.Flags().StringVar(&engagementID, "id", "", "Engagement ID (generated when empty)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Dice seed for a reproducible fight")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Round limit (defaults to combat.max_rounds)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the combat trace")

	return cmd
}

// newCombatLogCommand creates the combat log subcommand
func newCombatLogCommand() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "log <engagement-id>",
		Short: "Show the stored trace of an engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEngine()
			if err != nil {
				return err
			}
			defer e.close()

			response, err := e.send(&combatApp.GetCombatLogQuery{EngagementID: args[0], Limit: limit, Offset: offset})
			if err != nil {
				return err
			}

			entries := response.(*combatApp.GetCombatLogResponse).Entries
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No combat log found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROUND\tATTACKER\tDEFENDER\tOUTCOME\tMESSAGE")
			for _, entry := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", entry.Round, entry.AttackerID, entry.DefenderID, entry.Outcome, entry.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum lines (0 for all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Lines to skip")

	return cmd
}
