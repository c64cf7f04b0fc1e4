package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage starship engine configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SE_* prefix)
2. Config file (starship.yaml)
3. Default values

User preferences (default owner and race) are stored in ~/.starship/config.json

Examples:
  starship config show
  starship config set-owner 1
  starship config set-race 6
  starship config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetOwnerCommand())
	cmd.AddCommand(newConfigSetRaceCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Starship Engine Configuration")
			fmt.Fprintln(out, "=============================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.DefaultOwner != nil {
				fmt.Fprintf(out, "  Default Owner:    %d\n", *userCfg.DefaultOwner)
			} else {
				fmt.Fprintln(out, "  Default Owner:    (not set)")
			}
			if userCfg.DefaultRace != nil {
				fmt.Fprintf(out, "  Default Race:     %d\n", *userCfg.DefaultRace)
			} else {
				fmt.Fprintln(out, "  Default Race:     (not set)")
			}

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nCombat:")
			fmt.Fprintf(out, "  Max Rounds:       %d\n", cfg.Combat.MaxRounds)
			if cfg.Combat.Seed != 0 {
				fmt.Fprintf(out, "  Seed:             %d\n", cfg.Combat.Seed)
			} else {
				fmt.Fprintln(out, "  Seed:             (clock)")
			}

			fmt.Fprintln(out, "\nCatalog:")
			if cfg.Catalog.Path != "" {
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Catalog.Path)
			} else {
				fmt.Fprintln(out, "  Path:             (embedded)")
			}
			fmt.Fprintf(out, "  Save Directory:   %s\n", cfg.SaveFile.Dir)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

// newConfigSetOwnerCommand creates the config set-owner subcommand
func newConfigSetOwnerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-owner <player-id>",
		Short: "Set the default owning player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int
			if _, err := fmt.Sscan(args[0], &id); err != nil || id <= 0 {
				return fmt.Errorf("player id must be a positive number: %s", args[0])
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultOwner(id); err != nil {
				return fmt.Errorf("failed to set default owner: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default owner set to %d\n", id)
			return nil
		},
	}
}

// newConfigSetRaceCommand creates the config set-race subcommand
func newConfigSetRaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-race <race-index>",
		Short: "Set the default race for hull variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var index int
			if _, err := fmt.Sscan(args[0], &index); err != nil {
				return fmt.Errorf("race index must be a number: %s", args[0])
			}
			race, err := catalog.Default().Race(index)
			if err != nil {
				return err
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultRace(index); err != nil {
				return fmt.Errorf("failed to set default race: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default race set to %s (%d)\n", race.Name, index)
			return nil
		},
	}
}

// newConfigClearCommand creates the config clear subcommand
func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear user preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.Clear(); err != nil {
				return fmt.Errorf("failed to clear user config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ User preferences cleared")
			return nil
		},
	}
}
