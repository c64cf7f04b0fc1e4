package combat

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/adapters/metrics"
	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/combat"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
	"github.com/andrescamacho/starship-engine/pkg/utils"
)

// SimulateEngagementCommand fights the given stored ships against each other
type SimulateEngagementCommand struct {
	EngagementID string   // Optional: generated when empty
	ShipIDs      []string // Required: at least two ships
	Seed         *uint64  // Optional: fixes the dice for a reproducible fight
	MaxRounds    int      // Optional: handler default when zero
}

// SimulateEngagementResponse summarizes the fight
type SimulateEngagementResponse struct {
	EngagementID string
	Rounds       int
	Winner       *shared.PlayerID
	Survivors    []string
	Destroyed    []string
	Reports      []combat.AttackReport
}

// SimulateEngagementHandler loads the ships, runs the engagement and stores
// the outcome: ship state, combat log and metrics.
type SimulateEngagementHandler struct {
	shipRepo         ship.Repository
	logRepo          combat.LogRepository
	clock            shared.Clock
	defaultMaxRounds int
}

// NewSimulateEngagementHandler creates a new SimulateEngagementHandler.
// If clock is nil, uses RealClock to seed unseeded fights.
func NewSimulateEngagementHandler(
	shipRepo ship.Repository,
	logRepo combat.LogRepository,
	clock shared.Clock,
	defaultMaxRounds int,
) *SimulateEngagementHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SimulateEngagementHandler{
		shipRepo:         shipRepo,
		logRepo:          logRepo,
		clock:            clock,
		defaultMaxRounds: defaultMaxRounds,
	}
}

// Handle executes the SimulateEngagement command
func (h *SimulateEngagementHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SimulateEngagementCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SimulateEngagementCommand")
	}

	logger := common.LoggerFromContext(ctx)

	if len(cmd.ShipIDs) < 2 {
		return nil, shared.NewValidationError("ship_ids", "at least two ships are required")
	}
	maxRounds := cmd.MaxRounds
	if maxRounds <= 0 {
		maxRounds = h.defaultMaxRounds
	}
	engagementID := cmd.EngagementID
	if engagementID == "" {
		engagementID = utils.GenerateEngagementID()
	}

	fleet, err := h.loadFleet(ctx, cmd.ShipIDs)
	if err != nil {
		return nil, err
	}

	combatants := make([]*combat.Combatant, len(fleet))
	owners := make(map[string]int, len(fleet))
	for i, fs := range fleet {
		combatants[i] = &combat.Combatant{ID: fs.ID, Owner: fs.Owner, Ship: fs.Ship}
		owners[fs.ID] = fs.Owner.Value()
	}

	engagement, err := combat.NewEngagement(engagementID, h.dice(cmd.Seed), combatants...)
	if err != nil {
		return nil, fmt.Errorf("failed to start engagement: %w", err)
	}

	logger.Log("INFO", fmt.Sprintf("[Combat] Engagement %s started with %d ships", engagementID, len(combatants)), map[string]interface{}{
		"engagement_id": engagementID,
		"max_rounds":    maxRounds,
	})

	result := engagement.Run(maxRounds)

	for _, fs := range fleet {
		if err := h.shipRepo.Save(ctx, fs); err != nil {
			return nil, fmt.Errorf("failed to save ship %s: %w", fs.ID, err)
		}
	}

	if h.logRepo != nil {
		if err := h.logRepo.Record(ctx, engagementID, result.Reports); err != nil {
			return nil, fmt.Errorf("failed to record combat log: %w", err)
		}
	}

	metrics.RecordEngagement(result, owners)

	response := &SimulateEngagementResponse{
		EngagementID: engagementID,
		Rounds:       result.Rounds,
		Winner:       result.Winner,
		Reports:      result.Reports,
	}
	for _, c := range result.Survivors {
		response.Survivors = append(response.Survivors, c.ID)
	}
	for _, c := range result.Destroyed {
		response.Destroyed = append(response.Destroyed, c.ID)
	}

	winner := "none"
	if result.Winner != nil {
		winner = result.Winner.String()
	}
	logger.Log("INFO", fmt.Sprintf("[Combat] Engagement %s finished after %d rounds", engagementID, result.Rounds), map[string]interface{}{
		"engagement_id": engagementID,
		"winner":        winner,
		"destroyed":     len(response.Destroyed),
		"attacks":       len(result.Reports),
	})

	return response, nil
}

func (h *SimulateEngagementHandler) loadFleet(ctx context.Context, ids []string) ([]*ship.FleetShip, error) {
	fleet := make([]*ship.FleetShip, 0, len(ids))
	for _, id := range ids {
		fs, err := h.shipRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("ship not found: %w", err)
		}
		fleet = append(fleet, fs)
	}
	return fleet, nil
}

func (h *SimulateEngagementHandler) dice(seed *uint64) shared.Dice {
	if seed != nil {
		return shared.NewSeededDice(*seed)
	}
	return shared.NewSeededDice(uint64(h.clock.Now().UnixNano()))
}
