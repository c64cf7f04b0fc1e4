package combat

import (
	"fmt"
	"sort"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

const (
	hitRollSides = 100
	// Accuracy never drops below this, so even a perfect defense can be hit
	minAccuracy = 5
	maxAccuracy = 95
)

// Combatant is one ship taking part in an engagement
type Combatant struct {
	ID    string
	Owner shared.PlayerID
	Ship  *ship.Ship
}

// IsHostileTo reports whether two combatants fight each other
func (c *Combatant) IsHostileTo(other *Combatant) bool {
	return !c.Owner.Equals(other.Owner)
}

// AttackReport describes one weapon discharge
type AttackReport struct {
	Round      int
	AttackerID string
	DefenderID string
	Weapon     string
	WeaponType catalog.ComponentType
	Hit        bool
	Outcome    ship.DamageOutcome
	Trace      []string
}

// Result summarizes a finished engagement
type Result struct {
	Rounds    int
	Reports   []AttackReport
	Survivors []*Combatant
	Destroyed []*Combatant
	// Winner is nil when more than one side survived or nobody did
	Winner *shared.PlayerID
}

// Engagement is the combat coordinator. It is the only writer of its ships'
// state while it runs, so fights are resolved strictly one shot at a time.
//
// Round structure:
// - live combatants act in initiative order, ties keep insertion order
// - each fires every working weapon at the first live hostile in turn order
// - surviving ships regenerate shields at the end of the round
type Engagement struct {
	id         string
	dice       shared.Dice
	combatants []*Combatant
	round      int
	reports    []AttackReport
}

// NewEngagement prepares a fight. Shield and armor pools of every ship are
// initialized from their working components.
func NewEngagement(id string, dice shared.Dice, combatants ...*Combatant) (*Engagement, error) {
	if id == "" {
		return nil, shared.NewValidationError("engagement_id", "cannot be empty")
	}
	if dice == nil {
		return nil, shared.NewValidationError("dice", "is required")
	}
	if len(combatants) < 2 {
		return nil, shared.NewValidationError("combatants", "an engagement needs at least two ships")
	}

	seen := make(map[string]bool, len(combatants))
	for _, c := range combatants {
		if c == nil || c.Ship == nil {
			return nil, shared.NewValidationError("combatants", "combatant without a ship")
		}
		if seen[c.ID] {
			return nil, shared.NewValidationError("combatants", fmt.Sprintf("duplicate combatant %s", c.ID))
		}
		seen[c.ID] = true
	}

	for _, c := range combatants {
		c.Ship.InitializeShieldAndArmor()
	}

	return &Engagement{
		id:         id,
		dice:       dice,
		combatants: append([]*Combatant(nil), combatants...),
	}, nil
}

func (e *Engagement) ID() string {
	return e.id
}

// Round returns the number of completed rounds
func (e *Engagement) Round() int {
	return e.round
}

// Reports returns every attack so far in firing order
func (e *Engagement) Reports() []AttackReport {
	return append([]AttackReport(nil), e.reports...)
}

// TurnOrder lists live combatants by initiative, highest first
func (e *Engagement) TurnOrder() []*Combatant {
	order := e.alive()
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Ship.Initiative() > order[j].Ship.Initiative()
	})
	return order
}

// Fire discharges one weapon slot of the attacker at the defender
func (e *Engagement) Fire(attacker *Combatant, weaponIndex int, defender *Combatant) (AttackReport, error) {
	weapon := attacker.Ship.ComponentAt(weaponIndex)
	if weapon == nil || !weapon.IsWeapon() || !attacker.Ship.IsWorking(weaponIndex) {
		return AttackReport{}, shared.NewWeaponNotReadyError(attacker.Ship.Name(), weaponIndex)
	}

	report := AttackReport{
		Round:      e.round + 1,
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		Weapon:     weapon.Name,
		WeaponType: weapon.Type,
	}

	accuracy := clamp(attacker.Ship.HitChance(weapon)-defender.Ship.DefenseValue(), minAccuracy, maxAccuracy)
	if e.dice.Intn(hitRollSides) >= accuracy {
		report.Outcome = ship.OutcomeNoDamageNoDent
		report.Trace = []string{fmt.Sprintf("%s missed %s!", weapon.Name, defender.Ship.Name())}
		e.reports = append(e.reports, report)
		return report, nil
	}

	damage := defender.Ship.DamageBy(weapon, e.dice)
	report.Hit = true
	report.Outcome = damage.Outcome
	report.Trace = damage.Trace
	e.reports = append(e.reports, report)
	return report, nil
}

// RunRound plays one full round and reports whether the fight can go on
func (e *Engagement) RunRound() bool {
	if e.decided() {
		return false
	}

	for _, attacker := range e.TurnOrder() {
		if attacker.Ship.IsDestroyed() {
			continue
		}
		for slot := 0; slot < attacker.Ship.NumberOfComponents(); slot++ {
			comp := attacker.Ship.ComponentAt(slot)
			if !comp.IsWeapon() || !attacker.Ship.IsWorking(slot) {
				continue
			}
			target := e.targetFor(attacker)
			if target == nil {
				break
			}
			// Cannot fail: the slot was checked above
			_, _ = e.Fire(attacker, slot, target)
		}
	}

	for _, c := range e.alive() {
		c.Ship.RegenerateShield()
	}
	e.round++

	return !e.decided()
}

// Run plays rounds until one side is left, nobody can shoot, or maxRounds is reached
func (e *Engagement) Run(maxRounds int) Result {
	for e.round < maxRounds {
		if !e.RunRound() {
			break
		}
	}
	return e.Result()
}

// Result summarizes the engagement in its current state
func (e *Engagement) Result() Result {
	result := Result{
		Rounds:  e.round,
		Reports: e.Reports(),
	}
	for _, c := range e.combatants {
		if c.Ship.IsDestroyed() {
			result.Destroyed = append(result.Destroyed, c)
		} else {
			result.Survivors = append(result.Survivors, c)
		}
	}
	if owners := survivingOwners(result.Survivors); len(owners) == 1 {
		winner := owners[0]
		result.Winner = &winner
	}
	return result
}

func (e *Engagement) alive() []*Combatant {
	live := make([]*Combatant, 0, len(e.combatants))
	for _, c := range e.combatants {
		if !c.Ship.IsDestroyed() {
			live = append(live, c)
		}
	}
	return live
}

func (e *Engagement) targetFor(attacker *Combatant) *Combatant {
	for _, c := range e.TurnOrder() {
		if c.IsHostileTo(attacker) {
			return c
		}
	}
	return nil
}

// decided is true when no two hostile ships are left or nobody can shoot
func (e *Engagement) decided() bool {
	live := e.alive()
	if len(survivingOwners(live)) < 2 {
		return true
	}
	for _, c := range live {
		if c.Ship.HasWeapons() {
			return false
		}
	}
	return true
}

func survivingOwners(combatants []*Combatant) []shared.PlayerID {
	var owners []shared.PlayerID
	for _, c := range combatants {
		known := false
		for _, o := range owners {
			if o.Equals(c.Owner) {
				known = true
				break
			}
		}
		if !known {
			owners = append(owners, c.Owner)
		}
	}
	return owners
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
