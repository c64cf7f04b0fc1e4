package catalog

// Race carries the per-race traits the ship engine reads.
// Racial bonuses such as the Teuthidaes cloak bonus
// live here as plain data.
type Race struct {
	Index        int    `yaml:"index" validate:"min=0"`
	Name         string `yaml:"name" validate:"required"`
	CloakBonus   int    `yaml:"cloak_bonus" validate:"min=0"`
	TrooperPower int    `yaml:"trooper_power" validate:"min=0"`
}
