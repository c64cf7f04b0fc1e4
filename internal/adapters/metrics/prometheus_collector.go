package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/starship-engine/internal/domain/combat"
)

const (
	// Namespace for all metrics
	namespace = "starship"
	// Subsystem for engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalCombatCollector is set by SetGlobalCombatCollector() when metrics are enabled
	globalCombatCollector CombatMetricsRecorder

	// globalFleetCollector is set by SetGlobalFleetCollector() when metrics are enabled
	globalFleetCollector FleetMetricsRecorder
)

// CombatMetricsRecorder defines the interface for recording combat events
type CombatMetricsRecorder interface {
	RecordEngagement(result combat.Result, owners map[string]int)
}

// FleetMetricsRecorder defines the interface for recording ship lifecycle events
type FleetMetricsRecorder interface {
	RecordShipCommissioned(playerID int, hullName string)
	RecordRepair(full bool, hullPointsRestored int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCombatCollector sets the global combat metrics collector
func SetGlobalCombatCollector(collector CombatMetricsRecorder) {
	globalCombatCollector = collector
}

// RecordEngagement records a finished engagement globally.
// owners maps combatant IDs to player IDs for the destroyed-ships counter.
func RecordEngagement(result combat.Result, owners map[string]int) {
	if globalCombatCollector != nil {
		globalCombatCollector.RecordEngagement(result, owners)
	}
}

// SetGlobalFleetCollector sets the global fleet metrics collector
func SetGlobalFleetCollector(collector FleetMetricsRecorder) {
	globalFleetCollector = collector
}

// RecordShipCommissioned records a new ship globally
func RecordShipCommissioned(playerID int, hullName string) {
	if globalFleetCollector != nil {
		globalFleetCollector.RecordShipCommissioned(playerID, hullName)
	}
}

// RecordRepair records a repair globally
func RecordRepair(full bool, hullPointsRestored int) {
	if globalFleetCollector != nil {
		globalFleetCollector.RecordRepair(full, hullPointsRestored)
	}
}
