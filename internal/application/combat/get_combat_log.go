package combat

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	"github.com/andrescamacho/starship-engine/internal/domain/combat"
)

// GetCombatLogQuery pages through the stored trace of an engagement
type GetCombatLogQuery struct {
	EngagementID string // Required
	Limit        int    // Optional: 0 returns every line
	Offset       int
}

// GetCombatLogResponse holds the trace lines in firing order
type GetCombatLogResponse struct {
	Entries []combat.LogEntry
}

// GetCombatLogHandler handles the GetCombatLog query
type GetCombatLogHandler struct {
	logRepo combat.LogRepository
}

// NewGetCombatLogHandler creates a new GetCombatLogHandler
func NewGetCombatLogHandler(logRepo combat.LogRepository) *GetCombatLogHandler {
	return &GetCombatLogHandler{logRepo: logRepo}
}

// Handle executes the GetCombatLog query
func (h *GetCombatLogHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetCombatLogQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCombatLogQuery")
	}

	if query.EngagementID == "" {
		return nil, fmt.Errorf("engagement_id is required")
	}
	if query.Limit < 0 || query.Offset < 0 {
		return nil, fmt.Errorf("limit and offset cannot be negative")
	}

	entries, err := h.logRepo.GetLogs(ctx, query.EngagementID, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get combat log: %w", err)
	}

	return &GetCombatLogResponse{Entries: entries}, nil
}
