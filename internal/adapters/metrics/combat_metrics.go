package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/starship-engine/internal/domain/combat"
)

// CombatMetricsCollector handles engagement and damage metrics
type CombatMetricsCollector struct {
	// Engagement metrics
	engagementsTotal *prometheus.CounterVec
	engagementRounds prometheus.Histogram

	// Attack metrics
	attacksTotal   *prometheus.CounterVec
	damageOutcomes *prometheus.CounterVec
	shipsDestroyed *prometheus.CounterVec
}

// NewCombatMetricsCollector creates a new combat metrics collector
func NewCombatMetricsCollector() *CombatMetricsCollector {
	return &CombatMetricsCollector{
		// Engagements by result: "decided" has a single surviving side, "draw" does not
		engagementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "engagements_total",
				Help:      "Total number of engagements by result",
			},
			[]string{"result"},
		),

		engagementRounds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "engagement_rounds",
				Help:      "Rounds fought per engagement",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 50},
			},
		),

		attacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "attacks_total",
				Help:      "Total weapon discharges by weapon type and hit/miss",
			},
			[]string{"weapon_type", "hit"},
		),

		damageOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "damage_outcomes_total",
				Help:      "Total damage resolutions by weapon type and outcome",
			},
			[]string{"weapon_type", "outcome"},
		),

		shipsDestroyed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ships_destroyed_total",
				Help:      "Total ships destroyed in combat by owner",
			},
			[]string{"player_id"},
		),
	}
}

// Register registers all combat metrics with the Prometheus registry
func (c *CombatMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.engagementsTotal,
		c.engagementRounds,
		c.attacksTotal,
		c.damageOutcomes,
		c.shipsDestroyed,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordEngagement records every attack of a finished engagement
func (c *CombatMetricsCollector) RecordEngagement(result combat.Result, owners map[string]int) {
	status := "draw"
	if result.Winner != nil {
		status = "decided"
	}
	c.engagementsTotal.WithLabelValues(status).Inc()
	c.engagementRounds.Observe(float64(result.Rounds))

	for _, report := range result.Reports {
		weaponType := string(report.WeaponType)
		c.attacksTotal.WithLabelValues(weaponType, strconv.FormatBool(report.Hit)).Inc()
		if report.Hit {
			c.damageOutcomes.WithLabelValues(weaponType, report.Outcome.String()).Inc()
		}
	}

	for _, destroyed := range result.Destroyed {
		c.shipsDestroyed.WithLabelValues(strconv.Itoa(owners[destroyed.ID])).Inc()
	}
}
