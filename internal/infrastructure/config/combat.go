package config

// CombatConfig holds engagement defaults
type CombatConfig struct {
	// Round limit used when a simulate command does not give one
	MaxRounds int `mapstructure:"max_rounds" validate:"min=1,max=1000"`

	// Dice seed for reproducible engagements; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
}

// CatalogConfig points at an external catalog document
type CatalogConfig struct {
	// YAML file with races, hulls and components; empty uses the embedded catalog
	Path string `mapstructure:"path"`
}

// SaveFileConfig holds the save-file store location
type SaveFileConfig struct {
	// Directory holding .ship files
	Dir string `mapstructure:"dir" validate:"required"`
}
