package steps

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/cucumber/godog"

	combatApp "github.com/andrescamacho/starship-engine/internal/application/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
	"github.com/andrescamacho/starship-engine/test/helpers"
)

const engagementID = "bdd-engagement"

type engagementContext struct {
	catalog  *catalog.Catalog
	shipRepo *helpers.MockShipRepository
	logRepo  *helpers.MockCombatLogRepository
	shipIDs  []string
	designs  map[string]commission
	response *combatApp.SimulateEngagementResponse
	err      error
}

// commission remembers how a ship was built so a fight can be replayed on fresh copies
type commission struct {
	owner      int
	hull       string
	components []string
}

func (ec *engagementContext) reset() {
	ec.catalog = catalog.Default()
	ec.shipRepo = helpers.NewMockShipRepository()
	ec.logRepo = helpers.NewMockCombatLogRepository()
	ec.shipIDs = nil
	ec.designs = make(map[string]commission)
	ec.response = nil
	ec.err = nil
}

// Given steps

func (ec *engagementContext) playerCommissionsWith(owner int, id, hullName, components string) error {
	var names []string
	for _, name := range strings.Split(components, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	c := commission{owner: owner, hull: hullName, components: names}
	fs, err := ec.build(id, c)
	if err != nil {
		return err
	}
	ec.designs[id] = c
	ec.shipIDs = append(ec.shipIDs, id)
	return ec.shipRepo.Save(context.Background(), fs)
}

func (ec *engagementContext) playerCommissions(owner int, id, hullName string) error {
	return ec.playerCommissionsWith(owner, id, hullName, "")
}

func (ec *engagementContext) theEngagementIncludesUnknownShip(id string) error {
	ec.shipIDs = append(ec.shipIDs, id)
	return nil
}

// When steps

func (ec *engagementContext) theShipsFight(seed uint64, rounds int) error {
	ec.response, ec.err = ec.fight(ec.shipRepo, ec.logRepo, seed, rounds)
	return nil
}

// Then steps

func (ec *engagementContext) theEngagementShouldLast(rounds int) error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	if ec.response.Rounds != rounds {
		return fmt.Errorf("expected %d rounds, got %d", rounds, ec.response.Rounds)
	}
	return nil
}

func (ec *engagementContext) theEngagementShouldLastAtMost(rounds int) error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	if ec.response.Rounds > rounds {
		return fmt.Errorf("expected at most %d rounds, got %d", rounds, ec.response.Rounds)
	}
	return nil
}

func (ec *engagementContext) playerShouldWin(owner int) error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	if ec.response.Winner == nil {
		return fmt.Errorf("expected player %d to win, nobody did", owner)
	}
	if ec.response.Winner.Value() != owner {
		return fmt.Errorf("expected player %d to win, got %s", owner, ec.response.Winner)
	}
	return nil
}

func (ec *engagementContext) thereShouldBeNoWinner() error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	if ec.response.Winner != nil {
		return fmt.Errorf("expected no winner, got %s", ec.response.Winner)
	}
	return nil
}

func (ec *engagementContext) shipShouldHaveFired(id string, shots int) error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	fired := 0
	for _, report := range ec.response.Reports {
		if report.AttackerID == id {
			fired++
		}
	}
	if fired != shots {
		return fmt.Errorf("expected %s to fire %d shots, got %d", id, shots, fired)
	}
	return nil
}

func (ec *engagementContext) everyShipShouldBeAccountedFor() error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	if got := len(ec.response.Survivors) + len(ec.response.Destroyed); got != len(ec.shipIDs) {
		return fmt.Errorf("expected %d ships between survivors and destroyed, got %d", len(ec.shipIDs), got)
	}
	for _, id := range ec.response.Destroyed {
		fs, err := ec.shipRepo.FindByID(context.Background(), id)
		if err != nil {
			return err
		}
		if !fs.Ship.IsDestroyed() {
			return fmt.Errorf("%s is reported destroyed but was saved with %d hull points", id, fs.Ship.HullPoints())
		}
	}
	return nil
}

func (ec *engagementContext) everyTraceLineShouldBeLogged() error {
	if err := ec.requireResponse(); err != nil {
		return err
	}
	var expected []string
	for _, report := range ec.response.Reports {
		expected = append(expected, report.Trace...)
	}
	entries := ec.logRepo.Logs[engagementID]
	if len(entries) != len(expected) {
		return fmt.Errorf("expected %d log entries, got %d", len(expected), len(entries))
	}
	for i, entry := range entries {
		if entry.Message != expected[i] {
			return fmt.Errorf("log entry %d: expected %q, got %q", i, expected[i], entry.Message)
		}
	}
	return nil
}

func (ec *engagementContext) theCombatLogShouldBeEmpty() error {
	if n := len(ec.logRepo.Logs[engagementID]); n != 0 {
		return fmt.Errorf("expected an empty combat log, got %d entries", n)
	}
	return nil
}

func (ec *engagementContext) replayingShouldGiveTheSameFight(seed uint64, rounds int) error {
	if err := ec.requireResponse(); err != nil {
		return err
	}

	replayRepo := helpers.NewMockShipRepository()
	for _, id := range ec.shipIDs {
		fs, err := ec.build(id, ec.designs[id])
		if err != nil {
			return err
		}
		if err := replayRepo.Save(context.Background(), fs); err != nil {
			return err
		}
	}

	replay, err := ec.fight(replayRepo, helpers.NewMockCombatLogRepository(), seed, rounds)
	if err != nil {
		return err
	}
	if replay.Rounds != ec.response.Rounds {
		return fmt.Errorf("replay lasted %d rounds, original %d", replay.Rounds, ec.response.Rounds)
	}
	if !reflect.DeepEqual(replay.Reports, ec.response.Reports) {
		return fmt.Errorf("replay produced a different sequence of attacks")
	}
	return nil
}

func (ec *engagementContext) theEngagementShouldFailWith(message string) error {
	if ec.err == nil {
		return fmt.Errorf("expected the engagement to fail with %q", message)
	}
	if !strings.Contains(ec.err.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, ec.err.Error())
	}
	return nil
}

func (ec *engagementContext) build(id string, c commission) (*ship.FleetShip, error) {
	hull, err := ec.catalog.HullByName(c.hull, 0)
	if err != nil {
		return nil, err
	}
	comps, err := ec.catalog.ComponentsByName(c.components)
	if err != nil {
		return nil, err
	}
	design, err := ship.NewDesign(id, hull, comps, 0, 0)
	if err != nil {
		return nil, err
	}
	owner, err := shared.NewPlayerID(c.owner)
	if err != nil {
		return nil, err
	}
	return &ship.FleetShip{ID: id, Owner: owner, Ship: ship.NewShip(design)}, nil
}

func (ec *engagementContext) fight(shipRepo *helpers.MockShipRepository, logRepo *helpers.MockCombatLogRepository, seed uint64, rounds int) (*combatApp.SimulateEngagementResponse, error) {
	handler := combatApp.NewSimulateEngagementHandler(shipRepo, logRepo, nil, rounds)
	resp, err := handler.Handle(context.Background(), &combatApp.SimulateEngagementCommand{
		EngagementID: engagementID,
		ShipIDs:      ec.shipIDs,
		Seed:         &seed,
	})
	if err != nil {
		return nil, err
	}
	return resp.(*combatApp.SimulateEngagementResponse), nil
}

func (ec *engagementContext) requireResponse() error {
	if ec.err != nil {
		return fmt.Errorf("the engagement failed: %w", ec.err)
	}
	if ec.response == nil {
		return fmt.Errorf("no engagement was fought")
	}
	return nil
}

func InitializeEngagementScenario(ctx *godog.ScenarioContext) {
	ec := &engagementContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^player (\d+) commissions "([^"]*)" from the "([^"]*)" hull with "([^"]*)"$`, ec.playerCommissionsWith)
	ctx.Step(`^player (\d+) commissions "([^"]*)" from the "([^"]*)" hull$`, ec.playerCommissions)
	ctx.Step(`^the engagement includes an unknown ship "([^"]*)"$`, ec.theEngagementIncludesUnknownShip)

	// When steps
	ctx.Step(`^the ships fight with seed (\d+) for at most (\d+) rounds$`, ec.theShipsFight)

	// Then steps
	ctx.Step(`^the engagement should last (\d+) rounds?$`, ec.theEngagementShouldLast)
	ctx.Step(`^the engagement should last at most (\d+) rounds$`, ec.theEngagementShouldLastAtMost)
	ctx.Step(`^player (\d+) should win$`, ec.playerShouldWin)
	ctx.Step(`^there should be no winner$`, ec.thereShouldBeNoWinner)
	ctx.Step(`^"([^"]*)" should have fired (\d+) shots?$`, ec.shipShouldHaveFired)
	ctx.Step(`^every ship should be a survivor or a saved wreck$`, ec.everyShipShouldBeAccountedFor)
	ctx.Step(`^every trace line should be in the combat log$`, ec.everyTraceLineShouldBeLogged)
	ctx.Step(`^the combat log should be empty$`, ec.theCombatLogShouldBeEmpty)
	ctx.Step(`^replaying with seed (\d+) for at most (\d+) rounds should give the same fight$`, ec.replayingShouldGiveTheSameFight)
	ctx.Step(`^the engagement should fail with "([^"]*)"$`, ec.theEngagementShouldFailWith)
}
