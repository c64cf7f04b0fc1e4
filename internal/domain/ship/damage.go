package ship

import (
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// DamageOutcome grades what a single weapon hit did to a ship
type DamageOutcome int

const (
	OutcomeNoDamageNoDent DamageOutcome = 1
	OutcomeNoDamage       DamageOutcome = 0
	OutcomeDamaged        DamageOutcome = -1
	OutcomeDestroyed      DamageOutcome = -2
)

func (o DamageOutcome) String() string {
	switch o {
	case OutcomeNoDamageNoDent:
		return "NO_DAMAGE_NO_DENT"
	case OutcomeNoDamage:
		return "NO_DAMAGE"
	case OutcomeDamaged:
		return "DAMAGED"
	case OutcomeDestroyed:
		return "DESTROYED"
	default:
		return fmt.Sprintf("DamageOutcome(%d)", int(o))
	}
}

// Damage is the result of one weapon hit with an ordered trace for combat reports
type Damage struct {
	Outcome DamageOutcome
	Trace   []string
}

func (d *Damage) addText(line string) {
	d.Trace = append(d.Trace, line)
}

// Base penetration chances out of 100
const (
	beamPenetrationChance    = 10
	torpedoPenetrationChance = 5
	kineticPenetrationChance = 5
	penetrationRollSides     = 100
)

// defense is what a weapon-class branch decided about the shield and armor pools.
// When stopped is true the hit ended at the pools and message is the whole report.
type defense struct {
	shield   int
	armor    int
	residual int
	outcome  DamageOutcome
	message  string
	stopped  bool
}

func stoppedAt(shield, armor int, outcome DamageOutcome, message string) defense {
	return defense{
		shield:  max(shield, 0),
		armor:   max(armor, 0),
		outcome: outcome,
		message: message,
		stopped: true,
	}
}

func pierced(shield, armor, residual int) defense {
	return defense{
		shield:   max(shield, 0),
		armor:    max(armor, 0),
		residual: residual,
	}
}

// resolveDefense dispatches on weapon class. Every branch is a pure function
// of its inputs; dice is only rolled where a branch allows lucky penetration.
func resolveDefense(weapon *catalog.Component, shield, armor, experience int, dice shared.Dice) defense {
	switch weapon.Type {
	case catalog.ComponentWeaponBeam, catalog.ComponentWeaponPhotonTorpedo:
		return resolveShieldThenHalfArmor(weapon, shield, armor, experience, dice)
	case catalog.ComponentPlasmaBeam:
		return resolvePlasma(weapon, shield, armor)
	case catalog.ComponentWeaponRailgun, catalog.ComponentWeaponHEMissile:
		return resolveArmorThenHalfShield(weapon, shield, armor, dice)
	case catalog.ComponentWeaponECMTorpedo:
		return stoppedAt(shield-weapon.Damage, armor, OutcomeNoDamage,
			fmt.Sprintf("Attacked damage shield by %d!", weapon.Damage))
	default:
		return pierced(shield, armor, 0)
	}
}

func resolveShieldThenHalfArmor(weapon *catalog.Component, shield, armor, experience int, dice shared.Dice) defense {
	chance := torpedoPenetrationChance + experience
	if weapon.Type == catalog.ComponentWeaponBeam {
		chance = beamPenetrationChance + experience
	}

	damage := weapon.Damage - shield
	if damage <= 0 {
		if shield/2 <= weapon.Damage || dice.Intn(penetrationRollSides) < chance {
			return stoppedAt(shield-1, armor, OutcomeNoDamage, "Attack hit the shield!")
		}
		return stoppedAt(shield, armor, OutcomeNoDamageNoDent, "Attack deflected to shield!")
	}
	shield--

	if damage-armor/2 >= 0 {
		return pierced(shield, armor-1, damage-armor/2)
	}
	if armor/4 <= damage || dice.Intn(penetrationRollSides) < chance {
		return stoppedAt(shield, armor-1, OutcomeNoDamage, "Attack hit the armor!")
	}
	return stoppedAt(shield, armor, OutcomeNoDamage, "Attack deflected to armor!")
}

// resolvePlasma never deflects: both pools lose a point whenever the bolt reaches them
func resolvePlasma(weapon *catalog.Component, shield, armor int) defense {
	damage := weapon.Damage - shield
	shield--
	if damage <= 0 {
		return stoppedAt(shield, armor, OutcomeNoDamage, "Attack hit the shield!")
	}

	damage -= armor
	armor--
	if damage < 0 {
		return stoppedAt(shield, armor, OutcomeNoDamage, "Attack hit the armor!")
	}
	return pierced(shield, armor, damage)
}

func resolveArmorThenHalfShield(weapon *catalog.Component, shield, armor int, dice shared.Dice) defense {
	damage := weapon.Damage - armor
	if damage <= 0 {
		if armor/2 <= weapon.Damage || dice.Intn(penetrationRollSides) < kineticPenetrationChance {
			return stoppedAt(shield, armor-1, OutcomeNoDamage, "Attack hit the armor!")
		}
		return stoppedAt(shield, armor, OutcomeNoDamageNoDent, "Attack deflected to armor!")
	}
	armor--

	if damage-shield/2 >= 0 {
		return pierced(shield-1, armor, damage-shield/2)
	}
	if shield/4 <= damage || dice.Intn(penetrationRollSides) < kineticPenetrationChance {
		return stoppedAt(shield-1, armor, OutcomeNoDamage, "Attack hit the shield!")
	}
	return stoppedAt(shield, armor, OutcomeNoDamage, "Attack deflected to shield!")
}

// DamageBy applies one hit of weapon to the ship. Whatever gets past the
// shield and armor pools is spread over random live slots. A ship with no
// hull points left reports DESTROYED and is not touched. A nil weapon does nothing.
func (s *Ship) DamageBy(weapon *catalog.Component, dice shared.Dice) Damage {
	if weapon == nil {
		return Damage{Outcome: OutcomeNoDamage}
	}
	if s.IsDestroyed() {
		return Damage{Outcome: OutcomeDestroyed, Trace: []string{s.name + " is destroyed!"}}
	}

	d := resolveDefense(weapon, s.shield, s.armor, s.experience, dice)
	s.SetShield(d.shield)
	s.SetArmor(d.armor)
	if d.stopped {
		return Damage{Outcome: d.outcome, Trace: []string{d.message}}
	}

	var result Damage
	if d.residual > 0 {
		result = Damage{Outcome: OutcomeDamaged}
		result.addText(fmt.Sprintf("Attack hit causing %d damage!", d.residual))
	} else {
		result = Damage{Outcome: OutcomeNoDamage}
		result.addText("Attack hit but caused no damage!")
	}

	for remaining := d.residual; remaining > 0; {
		remaining = s.damageComponent(remaining, dice, &result)
	}

	if s.IsDestroyed() {
		result.Outcome = OutcomeDestroyed
		result.addText(s.name + " is destroyed!")
	}
	return result
}

// damageComponent hits one random live slot and returns the damage that
// pierced through it
func (s *Ship) damageComponent(damage int, dice shared.Dice, result *Damage) int {
	live := make([]int, 0, len(s.hullPoints))
	for i, hp := range s.hullPoints {
		if hp > 0 {
			live = append(live, i)
		}
	}
	if len(live) == 0 {
		return 0
	}

	target := live[0]
	if len(live) > 1 {
		target = live[dice.Intn(len(live))]
	}

	hp := s.hullPoints[target]
	s.hullPoints[target] = max(hp-damage, 0)
	if s.hullPoints[target] == 0 {
		result.addText(s.components[target].Name + " is destroyed!")
	} else {
		result.addText(s.components[target].Name + " damaged!")
	}
	return damage - hp
}
