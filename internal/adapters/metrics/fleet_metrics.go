package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// FleetMetricsCollector handles ship lifecycle metrics
type FleetMetricsCollector struct {
	shipsCommissioned  *prometheus.CounterVec
	repairsTotal       *prometheus.CounterVec
	hullPointsRepaired prometheus.Counter
}

// NewFleetMetricsCollector creates a new fleet metrics collector
func NewFleetMetricsCollector() *FleetMetricsCollector {
	return &FleetMetricsCollector{
		shipsCommissioned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ships_commissioned_total",
				Help:      "Total ships commissioned by owner and hull",
			},
			[]string{"player_id", "hull"},
		),

		repairsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "repairs_total",
				Help:      "Total repairs by mode (partial or full)",
			},
			[]string{"mode"},
		),

		hullPointsRepaired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "hull_points_repaired_total",
				Help:      "Total hull points restored by repairs",
			},
		),
	}
}

// Register registers all fleet metrics with the Prometheus registry
func (c *FleetMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.shipsCommissioned,
		c.repairsTotal,
		c.hullPointsRepaired,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordShipCommissioned records a newly built ship
func (c *FleetMetricsCollector) RecordShipCommissioned(playerID int, hullName string) {
	c.shipsCommissioned.WithLabelValues(strconv.Itoa(playerID), hullName).Inc()
}

// RecordRepair records one repair and the hull points it restored
func (c *FleetMetricsCollector) RecordRepair(full bool, hullPointsRestored int) {
	mode := "partial"
	if full {
		mode = "full"
	}
	c.repairsTotal.WithLabelValues(mode).Inc()
	if hullPointsRestored > 0 {
		c.hullPointsRepaired.Add(float64(hullPointsRestored))
	}
}
