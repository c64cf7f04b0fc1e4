package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

type shipContext struct {
	hull   *catalog.Hull
	ship   *ship.Ship
	dice   *shared.MockDice
	damage *ship.Damage
}

func (sc *shipContext) reset() {
	sc.hull = nil
	sc.ship = nil
	sc.dice = shared.NewMockDice()
	sc.damage = nil
}

// Given steps

func (sc *shipContext) aHullWithSlots(size, hullType string, slots, hullPoints int) error {
	sc.hull = &catalog.Hull{
		Name:     "Test hull",
		Size:     catalog.HullSize(size),
		Type:     catalog.HullType(hullType),
		MaxSlot:  slots,
		SlotHull: hullPoints,
		Race:     catalog.Race{Index: 0, Name: "Humans", TrooperPower: 10},
	}
	return nil
}

func (sc *shipContext) theShipIsFittedWith(table *godog.Table) error {
	if sc.hull == nil {
		return fmt.Errorf("no hull defined")
	}
	components, err := componentsFromTable(table)
	if err != nil {
		return err
	}
	return sc.build(components)
}

func (sc *shipContext) theShipHasNoComponents() error {
	if sc.hull == nil {
		return fmt.Errorf("no hull defined")
	}
	return sc.build(nil)
}

func (sc *shipContext) theShipHasShieldAndArmor(shield, armor int) error {
	sc.ship.SetShield(shield)
	sc.ship.SetArmor(armor)
	return nil
}

func (sc *shipContext) slotHasHullPoints(slot, hp int) error {
	sc.ship.SetHullPointsAt(slot, hp)
	return nil
}

func (sc *shipContext) everySlotHasHullPoints(hp int) error {
	for i := 0; i < sc.ship.NumberOfComponents(); i++ {
		sc.ship.SetHullPointsAt(i, hp)
	}
	return nil
}

func (sc *shipContext) theDiceWillRoll(rolls string) error {
	var values []int
	for _, raw := range strings.Split(rolls, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid roll %q", raw)
		}
		values = append(values, v)
	}
	sc.dice = shared.NewMockDice(values...)
	return nil
}

// When steps

func (sc *shipContext) theShipIsHitBy(weaponType string, damage int) error {
	weapon := &catalog.Component{
		Name:        "Test " + strings.ToLower(weaponType),
		Type:        catalog.ComponentType(weaponType),
		Damage:      damage,
		WeaponRange: 1,
		HitChance:   100,
	}
	if !weapon.IsWeapon() {
		return fmt.Errorf("%s is not a weapon type", weaponType)
	}
	result := sc.ship.DamageBy(weapon, sc.dice)
	sc.damage = &result
	return nil
}

func (sc *shipContext) theShipIsRepairedTimes(times int) error {
	for i := 0; i < times; i++ {
		sc.ship.FixShip(false)
	}
	return nil
}

func (sc *shipContext) theShipIsFullyRepaired() error {
	sc.ship.FixShip(true)
	return nil
}

func (sc *shipContext) theShieldRegenerates() error {
	sc.ship.RegenerateShield()
	return nil
}

// Then steps

func (sc *shipContext) theOutcomeShouldBe(expected string) error {
	if sc.damage == nil {
		return fmt.Errorf("the ship was not hit")
	}
	if sc.damage.Outcome.String() != expected {
		return fmt.Errorf("expected outcome %s, got %s", expected, sc.damage.Outcome)
	}
	return nil
}

func (sc *shipContext) theReportShouldRead(table *godog.Table) error {
	if sc.damage == nil {
		return fmt.Errorf("the ship was not hit")
	}
	var expected []string
	for _, row := range table.Rows {
		expected = append(expected, row.Cells[0].Value)
	}
	if strings.Join(expected, "|") != strings.Join(sc.damage.Trace, "|") {
		return fmt.Errorf("expected trace %q, got %q", expected, sc.damage.Trace)
	}
	return nil
}

func (sc *shipContext) theShieldShouldBe(expected int) error {
	if sc.ship.Shield() != expected {
		return fmt.Errorf("expected shield %d, got %d", expected, sc.ship.Shield())
	}
	return nil
}

func (sc *shipContext) theArmorShouldBe(expected int) error {
	if sc.ship.Armor() != expected {
		return fmt.Errorf("expected armor %d, got %d", expected, sc.ship.Armor())
	}
	return nil
}

func (sc *shipContext) slotShouldHaveHullPoints(slot, expected int) error {
	if hp := sc.ship.HullPointsAt(slot); hp != expected {
		return fmt.Errorf("expected slot %d to have %d hull points, got %d", slot, expected, hp)
	}
	return nil
}

func (sc *shipContext) theDiceShouldNotHaveBeenRolled() error {
	if sc.dice.Calls != 0 {
		return fmt.Errorf("expected no dice rolls, got %d", sc.dice.Calls)
	}
	return nil
}

func (sc *shipContext) theShipShouldBeDestroyed() error {
	if !sc.ship.IsDestroyed() {
		return fmt.Errorf("expected the ship to be destroyed, it has %d hull points", sc.ship.HullPoints())
	}
	return nil
}

func (sc *shipContext) theTotalEnergyShouldBe(expected int) error {
	if sc.ship.TotalEnergy() != expected {
		return fmt.Errorf("expected total energy %d, got %d", expected, sc.ship.TotalEnergy())
	}
	return nil
}

func (sc *shipContext) slotShouldBeWorking(slot int) error {
	if !sc.ship.IsWorking(slot) {
		return fmt.Errorf("expected slot %d to be working (remaining energy %d)", slot, sc.ship.RemainingEnergy(slot))
	}
	return nil
}

func (sc *shipContext) slotShouldNotBeWorking(slot int) error {
	if sc.ship.IsWorking(slot) {
		return fmt.Errorf("expected slot %d not to be working", slot)
	}
	return nil
}

func (sc *shipContext) theInitiativeShouldBe(expected int) error {
	if sc.ship.Initiative() != expected {
		return fmt.Errorf("expected initiative %d, got %d", expected, sc.ship.Initiative())
	}
	return nil
}

func (sc *shipContext) theMilitaryPowerShouldBe(expected int) error {
	if sc.ship.TotalMilitaryPower() != expected {
		return fmt.Errorf("expected military power %d, got %d", expected, sc.ship.TotalMilitaryPower())
	}
	return nil
}

func (sc *shipContext) build(components []*catalog.Component) error {
	design, err := ship.NewDesign("Test ship", sc.hull, components, 0, 0)
	if err != nil {
		return err
	}
	sc.ship = ship.NewShip(design)
	return nil
}

// componentsFromTable reads a component table. The name and type columns are
// required; damage, defense, resource and requirement default to 0.
func componentsFromTable(table *godog.Table) ([]*catalog.Component, error) {
	if len(table.Rows) < 1 {
		return nil, fmt.Errorf("component table needs a header row")
	}
	header := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}
	for _, required := range []string{"name", "type"} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("component table is missing the %s column", required)
		}
	}

	intCell := func(row *messages.PickleTableRow, column string) (int, error) {
		i, ok := header[column]
		if !ok || row.Cells[i].Value == "" {
			return 0, nil
		}
		return strconv.Atoi(row.Cells[i].Value)
	}

	var components []*catalog.Component
	for _, row := range table.Rows[1:] {
		comp := &catalog.Component{
			Name: row.Cells[header["name"]].Value,
			Type: catalog.ComponentType(row.Cells[header["type"]].Value),
		}
		if !comp.Type.IsValid() {
			return nil, fmt.Errorf("unknown component type %s", comp.Type)
		}
		var err error
		if comp.Damage, err = intCell(row, "damage"); err != nil {
			return nil, err
		}
		if comp.DefenseValue, err = intCell(row, "defense"); err != nil {
			return nil, err
		}
		if comp.EnergyResource, err = intCell(row, "resource"); err != nil {
			return nil, err
		}
		if comp.EnergyRequirement, err = intCell(row, "requirement"); err != nil {
			return nil, err
		}
		if comp.IsWeapon() {
			comp.WeaponRange = 1
			comp.HitChance = 100
		}
		components = append(components, comp)
	}
	return components, nil
}

func InitializeShipScenario(ctx *godog.ScenarioContext) {
	sc := &shipContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a (SMALL|MEDIUM|LARGE|HUGE) (NORMAL|FREIGHTER|PROBE|STARBASE|PRIVATEER) hull with (\d+) slots of (\d+) hull points$`, sc.aHullWithSlots)
	ctx.Step(`^the ship is fitted with:$`, sc.theShipIsFittedWith)
	ctx.Step(`^the ship has no components$`, sc.theShipHasNoComponents)
	ctx.Step(`^the ship has shield (\d+) and armor (\d+)$`, sc.theShipHasShieldAndArmor)
	ctx.Step(`^slot (\d+) has (\d+) hull points$`, sc.slotHasHullPoints)
	ctx.Step(`^every slot has (\d+) hull points$`, sc.everySlotHasHullPoints)
	ctx.Step(`^the dice will roll ([\d, ]+)$`, sc.theDiceWillRoll)

	// When steps
	ctx.Step(`^the ship is hit by a ([A-Z_]+) of damage (\d+)$`, sc.theShipIsHitBy)
	ctx.Step(`^the ship is repaired (\d+) times?$`, sc.theShipIsRepairedTimes)
	ctx.Step(`^the ship is fully repaired$`, sc.theShipIsFullyRepaired)
	ctx.Step(`^the shield regenerates$`, sc.theShieldRegenerates)

	// Then steps
	ctx.Step(`^the outcome should be ([A-Z_]+)$`, sc.theOutcomeShouldBe)
	ctx.Step(`^the report should read:$`, sc.theReportShouldRead)
	ctx.Step(`^the shield should be (\d+)$`, sc.theShieldShouldBe)
	ctx.Step(`^the armor should be (\d+)$`, sc.theArmorShouldBe)
	ctx.Step(`^slot (\d+) should have (\d+) hull points$`, sc.slotShouldHaveHullPoints)
	ctx.Step(`^the dice should not have been rolled$`, sc.theDiceShouldNotHaveBeenRolled)
	ctx.Step(`^the ship should be destroyed$`, sc.theShipShouldBeDestroyed)
	ctx.Step(`^the total energy should be (\d+)$`, sc.theTotalEnergyShouldBe)
	ctx.Step(`^slot (\d+) should be working$`, sc.slotShouldBeWorking)
	ctx.Step(`^slot (\d+) should not be working$`, sc.slotShouldNotBeWorking)
	ctx.Step(`^the initiative should be (\d+)$`, sc.theInitiativeShouldBe)
	ctx.Step(`^the military power should be (\d+)$`, sc.theMilitaryPowerShouldBe)
}
