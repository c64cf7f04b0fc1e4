package catalog

// ComponentType identifies what an installed module does
type ComponentType string

const (
	ComponentWeaponBeam          ComponentType = "WEAPON_BEAM"
	ComponentWeaponRailgun       ComponentType = "WEAPON_RAILGUN"
	ComponentWeaponPhotonTorpedo ComponentType = "WEAPON_PHOTON_TORPEDO"
	ComponentWeaponHEMissile     ComponentType = "WEAPON_HE_MISSILE"
	ComponentWeaponECMTorpedo    ComponentType = "WEAPON_ECM_TORPEDO"
	ComponentPlasmaBeam          ComponentType = "PLASMA_BEAM"
	ComponentOrbitalBombs        ComponentType = "ORBITAL_BOMBS"
	ComponentOrbitalNuke         ComponentType = "ORBITAL_NUKE"
	ComponentShield              ComponentType = "SHIELD"
	ComponentArmor               ComponentType = "ARMOR"
	ComponentShieldGenerator     ComponentType = "SHIELD_GENERATOR"
	ComponentEngine              ComponentType = "ENGINE"
	ComponentPowerSource         ComponentType = "POWERSOURCE"
	ComponentThrusters           ComponentType = "THRUSTERS"
	ComponentScanner             ComponentType = "SCANNER"
	ComponentCloakingDevice      ComponentType = "CLOAKING_DEVICE"
	ComponentJammer              ComponentType = "JAMMER"
	ComponentTargetingComputer   ComponentType = "TARGETING_COMPUTER"
	ComponentFighterBay          ComponentType = "FIGHTER_BAY"
	ComponentColonyModule        ComponentType = "COLONY_MODULE"
	ComponentPlanetaryInvasion   ComponentType = "PLANETARY_INVASION_MODULE"
	ComponentEspionageModule     ComponentType = "ESPIONAGE_MODULE"
	ComponentStarbaseComponent   ComponentType = "STARBASE_COMPONENT"
)

var validComponentTypes = map[ComponentType]bool{
	ComponentWeaponBeam:          true,
	ComponentWeaponRailgun:       true,
	ComponentWeaponPhotonTorpedo: true,
	ComponentWeaponHEMissile:     true,
	ComponentWeaponECMTorpedo:    true,
	ComponentPlasmaBeam:          true,
	ComponentOrbitalBombs:        true,
	ComponentOrbitalNuke:         true,
	ComponentShield:              true,
	ComponentArmor:               true,
	ComponentShieldGenerator:     true,
	ComponentEngine:              true,
	ComponentPowerSource:         true,
	ComponentThrusters:           true,
	ComponentScanner:             true,
	ComponentCloakingDevice:      true,
	ComponentJammer:              true,
	ComponentTargetingComputer:   true,
	ComponentFighterBay:          true,
	ComponentColonyModule:        true,
	ComponentPlanetaryInvasion:   true,
	ComponentEspionageModule:     true,
	ComponentStarbaseComponent:   true,
}

// IsValid reports whether the type is one the engine knows
func (t ComponentType) IsValid() bool {
	return validComponentTypes[t]
}

// Component is an immutable module archetype. Fields that do not apply to a
// component type are zero.
type Component struct {
	Name              string        `yaml:"name" validate:"required"`
	Type              ComponentType `yaml:"type" validate:"required,component_type"`
	Damage            int           `yaml:"damage" validate:"min=0"`
	DefenseValue      int           `yaml:"defense_value" validate:"min=0"`
	EnergyRequirement int           `yaml:"energy_requirement" validate:"min=0"`
	EnergyResource    int           `yaml:"energy_resource" validate:"min=0"`
	Speed             int           `yaml:"speed" validate:"min=0"`
	TacticSpeed       int           `yaml:"tactic_speed" validate:"min=0"`
	FtlSpeed          int           `yaml:"ftl_speed" validate:"min=0"`
	InitiativeBoost   int           `yaml:"initiative_boost" validate:"min=0"`
	WeaponRange       int           `yaml:"weapon_range" validate:"min=0"`
	HitChance         int           `yaml:"hit_chance" validate:"min=0,max=100"`
	ScannerRange      int           `yaml:"scanner_range" validate:"min=0"`
	CloakDetection    int           `yaml:"cloak_detection" validate:"min=0"`
	Cloaking          int           `yaml:"cloaking" validate:"min=0"`
	BaySize           int           `yaml:"bay_size" validate:"min=0"`
	EspionageBonus    int           `yaml:"espionage_bonus" validate:"min=0"`
	ResearchBonus     int           `yaml:"research_bonus" validate:"min=0"`
	CreditBonus       int           `yaml:"credit_bonus" validate:"min=0"`
	CultureBonus      int           `yaml:"culture_bonus" validate:"min=0"`
}

// IsWeapon reports whether the component fires at other ships
func (c *Component) IsWeapon() bool {
	switch c.Type {
	case ComponentWeaponBeam, ComponentWeaponRailgun, ComponentWeaponPhotonTorpedo,
		ComponentWeaponHEMissile, ComponentWeaponECMTorpedo, ComponentPlasmaBeam:
		return true
	}
	return false
}

// IsBomb reports whether the component attacks planets
func (c *Component) IsBomb() bool {
	return c.Type == ComponentOrbitalBombs || c.Type == ComponentOrbitalNuke
}

// RequiresEnergy reports whether the component draws from the ship's energy budget
func (c *Component) RequiresEnergy() bool {
	return c.EnergyRequirement > 0
}
