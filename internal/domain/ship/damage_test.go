package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// pooledShip returns a three-slot ship with explicit shield and armor pools
func pooledShip(t *testing.T, shield, armor int) *ship.Ship {
	t.Helper()
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 4, 1)
	s := buildShip(t, hull, armorComp(1), shieldComp(1), engine(1, 1, 1))
	s.SetShield(shield)
	s.SetArmor(armor)
	return s
}

func TestDamageBy_DestroyedShipIsLeftAlone(t *testing.T) {
	// Arrange
	s := pooledShip(t, 3, 3)
	withHullPoints(s, 0, 0, 0)
	dice := shared.NewMockDice(0)

	// Act
	result := s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 50), dice)

	// Assert
	assert.Equal(t, ship.OutcomeDestroyed, result.Outcome)
	assert.Equal(t, 3, s.Shield())
	assert.Equal(t, 3, s.Armor())
	assert.Zero(t, dice.Calls)
}

func TestDamageBy_PlasmaAlwaysChipsShield(t *testing.T) {
	// Arrange
	s := pooledShip(t, 3, 0)
	dice := shared.NewMockDice(99)

	// Act
	result := s.DamageBy(weapon("Plasma", catalog.ComponentPlasmaBeam, 2), dice)

	// Assert
	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Equal(t, []string{"Attack hit the shield!"}, result.Trace)
	assert.Equal(t, 2, s.Shield())
	assert.Zero(t, dice.Calls, "plasma never rolls")
}

func TestDamageBy_PlasmaChipsArmorWhenThroughShield(t *testing.T) {
	s := pooledShip(t, 1, 5)

	result := s.DamageBy(weapon("Plasma", catalog.ComponentPlasmaBeam, 3), shared.NewMockDice())

	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Equal(t, []string{"Attack hit the armor!"}, result.Trace)
	assert.Equal(t, 0, s.Shield())
	assert.Equal(t, 4, s.Armor())
}

func TestDamageBy_BeamAgainstStrongShield(t *testing.T) {
	tests := []struct {
		name       string
		roll       int
		outcome    ship.DamageOutcome
		message    string
		wantShield int
	}{
		{"deflected", 99, ship.OutcomeNoDamageNoDent, "Attack deflected to shield!", 10},
		{"lucky penetration", 0, ship.OutcomeNoDamage, "Attack hit the shield!", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pooledShip(t, 10, 0)

			result := s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 1), shared.NewMockDice(tt.roll))

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, []string{tt.message}, result.Trace)
			assert.Equal(t, tt.wantShield, s.Shield())
		})
	}
}

func TestDamageBy_ExperienceImprovesPenetrationChance(t *testing.T) {
	s := pooledShip(t, 10, 0)
	s.SetExperience(20)

	// roll 25 misses the base 10% beam chance but not 10+20
	result := s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 1), shared.NewMockDice(25))

	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Equal(t, 9, s.Shield())
}

func TestDamageBy_WeaponClassBranches(t *testing.T) {
	tests := []struct {
		name       string
		class      catalog.ComponentType
		damage     int
		shield     int
		armor      int
		experience int
		roll       int
		outcome    ship.DamageOutcome
		message    string
		wantShield int
		wantArmor  int
		wantRolls  int
	}{
		// shield stage: beams penetrate on 10, torpedoes on 5
		{"beam lucky at 7", catalog.ComponentWeaponBeam, 1, 10, 0, 0, 7, ship.OutcomeNoDamage, "Attack hit the shield!", 9, 0, 1},
		{"photon unlucky at 7", catalog.ComponentWeaponPhotonTorpedo, 1, 10, 0, 0, 7, ship.OutcomeNoDamageNoDent, "Attack deflected to shield!", 10, 0, 1},
		{"photon lucky at 4", catalog.ComponentWeaponPhotonTorpedo, 1, 10, 0, 0, 4, ship.OutcomeNoDamage, "Attack hit the shield!", 9, 0, 1},

		// half armor stage of beams and torpedoes
		{"beam deflected to armor", catalog.ComponentWeaponBeam, 3, 0, 20, 0, 50, ship.OutcomeNoDamage, "Attack deflected to armor!", 0, 20, 1},
		{"beam lucky on armor", catalog.ComponentWeaponBeam, 3, 0, 20, 0, 3, ship.OutcomeNoDamage, "Attack hit the armor!", 0, 19, 1},
		{"beam dents light armor without a roll", catalog.ComponentWeaponBeam, 3, 0, 8, 0, 99, ship.OutcomeNoDamage, "Attack hit the armor!", 0, 7, 0},

		// kinetic weapons ignore experience
		{"railgun veteran still deflected", catalog.ComponentWeaponRailgun, 1, 0, 10, 50, 7, ship.OutcomeNoDamageNoDent, "Attack deflected to armor!", 0, 10, 1},
		{"missile veteran still deflected", catalog.ComponentWeaponHEMissile, 1, 0, 10, 50, 7, ship.OutcomeNoDamageNoDent, "Attack deflected to armor!", 0, 10, 1},
		{"railgun lucky on armor", catalog.ComponentWeaponRailgun, 1, 0, 10, 0, 3, ship.OutcomeNoDamage, "Attack hit the armor!", 0, 9, 1},

		// half shield stage of railguns and missiles
		{"missile deflected to shield", catalog.ComponentWeaponHEMissile, 3, 20, 0, 0, 50, ship.OutcomeNoDamage, "Attack deflected to shield!", 20, 0, 1},
		{"railgun deflected to shield", catalog.ComponentWeaponRailgun, 3, 20, 0, 0, 50, ship.OutcomeNoDamage, "Attack deflected to shield!", 20, 0, 1},
		{"missile lucky on shield", catalog.ComponentWeaponHEMissile, 3, 20, 0, 0, 2, ship.OutcomeNoDamage, "Attack hit the shield!", 19, 0, 1},
		{"railgun dents light shield without a roll", catalog.ComponentWeaponRailgun, 3, 8, 0, 0, 99, ship.OutcomeNoDamage, "Attack hit the shield!", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := pooledShip(t, tt.shield, tt.armor)
			s.SetExperience(tt.experience)
			dice := shared.NewMockDice(tt.roll)

			// Act
			result := s.DamageBy(weapon("Gun", tt.class, tt.damage), dice)

			// Assert
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, []string{tt.message}, result.Trace)
			assert.Equal(t, tt.wantShield, s.Shield())
			assert.Equal(t, tt.wantArmor, s.Armor())
			assert.Equal(t, tt.wantRolls, dice.Calls)
			assert.Equal(t, 3, s.HullPoints())
		})
	}
}

func TestDamageBy_NilWeaponDoesNothing(t *testing.T) {
	s := pooledShip(t, 2, 2)
	dice := shared.NewMockDice(0)

	result := s.DamageBy(nil, dice)

	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Empty(t, result.Trace)
	assert.Equal(t, 2, s.Shield())
	assert.Equal(t, 2, s.Armor())
	assert.Equal(t, 3, s.HullPoints())
	assert.Zero(t, dice.Calls)
}

func TestDamageBy_ResidualDamageCascadesToDestruction(t *testing.T) {
	// Arrange: no pools, three slots of 1 hull point
	s := pooledShip(t, 0, 0)
	dice := shared.NewMockDice(0)

	// Act
	result := s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 3), dice)

	// Assert
	assert.Equal(t, ship.OutcomeDestroyed, result.Outcome)
	require.Len(t, result.Trace, 5)
	assert.Equal(t, "Attack hit causing 3 damage!", result.Trace[0])
	assert.Equal(t, "Armor is destroyed!", result.Trace[1])
	assert.Equal(t, "Shield is destroyed!", result.Trace[2])
	assert.Equal(t, "Drive is destroyed!", result.Trace[3])
	assert.Equal(t, "Test ship is destroyed!", result.Trace[4])
	assert.Equal(t, 0, s.HullPoints())
	assert.Equal(t, 2, dice.Calls, "the last live slot is hit without a roll")
}

func TestDamageBy_PartialDamageLeavesSlotAlive(t *testing.T) {
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 3, 5)
	s := buildShip(t, hull, engine(1, 1, 1), engine(1, 1, 1))

	result := s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 2), shared.NewMockDice(1))

	assert.Equal(t, ship.OutcomeDamaged, result.Outcome)
	assert.Equal(t, []string{"Attack hit causing 2 damage!", "Drive damaged!"}, result.Trace)
	assert.Equal(t, 5, s.HullPointsAt(0))
	assert.Equal(t, 3, s.HullPointsAt(1))
}

func TestDamageBy_RailgunHitsArmorFirst(t *testing.T) {
	// Arrange
	hull := newHull(catalog.HullSizeSmall, catalog.HullTypeNormal, 4, 5)
	s := buildShip(t, hull, armorComp(1), shieldComp(1), engine(1, 1, 1))
	s.SetShield(4)
	s.SetArmor(0)

	// Act: 3 damage, nothing in armor, half of shield 4 soaks 2
	result := s.DamageBy(weapon("Railgun", catalog.ComponentWeaponRailgun, 3), shared.NewMockDice(0))

	// Assert
	assert.Equal(t, ship.OutcomeDamaged, result.Outcome)
	assert.Equal(t, "Attack hit causing 1 damage!", result.Trace[0])
	assert.Equal(t, 3, s.Shield())
	assert.Equal(t, 0, s.Armor())
	assert.Equal(t, 14, s.HullPoints())
}

func TestDamageBy_RailgunDeflectedByHeavyArmor(t *testing.T) {
	s := pooledShip(t, 0, 10)

	result := s.DamageBy(weapon("Railgun", catalog.ComponentWeaponRailgun, 1), shared.NewMockDice(50))

	assert.Equal(t, ship.OutcomeNoDamageNoDent, result.Outcome)
	assert.Equal(t, []string{"Attack deflected to armor!"}, result.Trace)
	assert.Equal(t, 10, s.Armor())
}

func TestDamageBy_ECMTorpedoDrainsShield(t *testing.T) {
	s := pooledShip(t, 3, 2)

	result := s.DamageBy(weapon("ECM", catalog.ComponentWeaponECMTorpedo, 5), shared.NewMockDice())

	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Equal(t, []string{"Attacked damage shield by 5!"}, result.Trace)
	assert.Equal(t, 0, s.Shield())
	assert.Equal(t, 2, s.Armor())
	assert.Equal(t, 3, s.HullPoints())
}

func TestDamageBy_NonWeaponDoesNothing(t *testing.T) {
	s := pooledShip(t, 1, 1)

	result := s.DamageBy(weapon("Bombs", catalog.ComponentOrbitalBombs, 10), shared.NewMockDice())

	assert.Equal(t, ship.OutcomeNoDamage, result.Outcome)
	assert.Equal(t, []string{"Attack hit but caused no damage!"}, result.Trace)
	assert.Equal(t, 3, s.HullPoints())
}

func TestDamageBy_PoolsNeverGoNegative(t *testing.T) {
	classes := []catalog.ComponentType{
		catalog.ComponentWeaponBeam,
		catalog.ComponentWeaponPhotonTorpedo,
		catalog.ComponentPlasmaBeam,
		catalog.ComponentWeaponRailgun,
		catalog.ComponentWeaponHEMissile,
		catalog.ComponentWeaponECMTorpedo,
	}
	dice := shared.NewSeededDice(42)

	for _, class := range classes {
		t.Run(string(class), func(t *testing.T) {
			hull := newHull(catalog.HullSizeHuge, catalog.HullTypeNormal, 8, 50)
			s := buildShip(t, hull, armorComp(3), shieldComp(3), engine(1, 1, 1))

			for i := 0; i < 40; i++ {
				s.DamageBy(weapon("Big gun", class, 1000*(i%3)), dice)

				require.GreaterOrEqual(t, s.Shield(), 0)
				require.GreaterOrEqual(t, s.Armor(), 0)
				for slot := 0; slot < s.NumberOfComponents(); slot++ {
					require.GreaterOrEqual(t, s.HullPointsAt(slot), 0)
				}
			}
		})
	}
}

func TestDamageBy_SameSeedReplaysSameFight(t *testing.T) {
	run := func() []string {
		hull := newHull(catalog.HullSizeLarge, catalog.HullTypeNormal, 8, 4)
		s := buildShip(t, hull, armorComp(2), shieldComp(2), engine(1, 1, 1), engine(1, 1, 1))
		dice := shared.NewSeededDice(7)
		var trace []string
		for i := 0; i < 10; i++ {
			trace = append(trace, s.DamageBy(weapon("Laser", catalog.ComponentWeaponBeam, 3), dice).Trace...)
		}
		return trace
	}

	assert.Equal(t, run(), run())
}
