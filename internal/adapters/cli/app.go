package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/andrescamacho/starship-engine/internal/adapters/logging"
	"github.com/andrescamacho/starship-engine/internal/adapters/metrics"
	"github.com/andrescamacho/starship-engine/internal/adapters/persistence"
	"github.com/andrescamacho/starship-engine/internal/adapters/savefile"
	combatApp "github.com/andrescamacho/starship-engine/internal/application/combat"
	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
	shipApp "github.com/andrescamacho/starship-engine/internal/application/ship"
	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
	"github.com/andrescamacho/starship-engine/internal/infrastructure/config"
	"github.com/andrescamacho/starship-engine/internal/infrastructure/database"
)

// engine bundles everything a command needs: configuration, catalog,
// repositories and the mediator with every handler registered
type engine struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	db       *gorm.DB
	mediator mediator.Mediator
	ships    *persistence.GormShipRepository
	saves    *savefile.AferoSaveStore
	logger   common.Logger
	closers  []func() error
}

// openEngine loads configuration and wires the application. Call close when done.
func openEngine() (*engine, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	fs := afero.NewOsFs()
	e := &engine{cfg: cfg}

	logger, closeLog, err := logging.Open(fs, &cfg.Logging)
	if err != nil {
		return nil, err
	}
	e.logger = logger
	e.closers = append(e.closers, closeLog)

	e.catalog, err = loadCatalog(fs, &cfg.Catalog)
	if err != nil {
		e.close()
		return nil, err
	}

	e.db, err = database.NewConnection(&cfg.Database)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	e.closers = append(e.closers, func() error { return database.Close(e.db) })

	if err := database.AutoMigrate(e.db); err != nil {
		e.close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := e.initMetrics(); err != nil {
		e.close()
		return nil, err
	}

	clock := shared.NewRealClock()
	e.ships = persistence.NewGormShipRepository(e.db, e.catalog, clock)
	logs := persistence.NewGormCombatLogRepository(e.db, clock)
	e.saves = savefile.NewAferoSaveStore(fs, cfg.SaveFile.Dir, e.catalog)

	e.mediator, err = newMediator(e.ships, logs, e.catalog, clock, cfg.Combat.MaxRounds)
	if err != nil {
		e.close()
		return nil, err
	}

	return e, nil
}

// initMetrics registers every collector when metrics are enabled. Requests
// sent through the mediator are then timed by the Prometheus middleware.
func (e *engine) initMetrics() error {
	if !e.cfg.Metrics.Enabled {
		return nil
	}

	metrics.InitRegistry()

	combatCollector := metrics.NewCombatMetricsCollector()
	if err := combatCollector.Register(); err != nil {
		return fmt.Errorf("failed to register combat metrics: %w", err)
	}
	metrics.SetGlobalCombatCollector(combatCollector)

	fleetCollector := metrics.NewFleetMetricsCollector()
	if err := fleetCollector.Register(); err != nil {
		return fmt.Errorf("failed to register fleet metrics: %w", err)
	}
	metrics.SetGlobalFleetCollector(fleetCollector)

	return nil
}

// ctx returns a background context carrying the engine logger
func (e *engine) ctx() context.Context {
	return common.WithLogger(context.Background(), e.logger)
}

// send dispatches a request through the mediator with the engine logger attached
func (e *engine) send(request mediator.Request) (mediator.Response, error) {
	return e.mediator.Send(e.ctx(), request)
}

func (e *engine) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
	e.closers = nil
}

// newMediator registers every command and query handler
func newMediator(
	ships *persistence.GormShipRepository,
	logs *persistence.GormCombatLogRepository,
	cat *catalog.Catalog,
	clock shared.Clock,
	maxRounds int,
) (mediator.Mediator, error) {
	m := mediator.NewMediator()

	if metrics.IsEnabled() {
		collector := metrics.NewCommandMetricsCollector()
		if err := collector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register command metrics: %w", err)
		}
		m.RegisterMiddleware(metrics.PrometheusMiddleware(collector))
	}

	registrations := []error{
		mediator.RegisterHandler[*shipApp.CommissionShipCommand](m, shipApp.NewCommissionShipHandler(ships, cat)),
		mediator.RegisterHandler[*shipApp.RepairShipCommand](m, shipApp.NewRepairShipHandler(ships)),
		mediator.RegisterHandler[*shipApp.RunTradeCommand](m, shipApp.NewRunTradeHandler(ships)),
		mediator.RegisterHandler[*shipApp.GetShipStatsQuery](m, shipApp.NewGetShipStatsHandler(ships)),
		mediator.RegisterHandler[*shipApp.ListShipsQuery](m, shipApp.NewListShipsHandler(ships)),
		mediator.RegisterHandler[*combatApp.SimulateEngagementCommand](m, combatApp.NewSimulateEngagementHandler(ships, logs, clock, maxRounds)),
		mediator.RegisterHandler[*combatApp.GetCombatLogQuery](m, combatApp.NewGetCombatLogHandler(logs)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return m, nil
}

// loadCatalog reads the configured catalog file or falls back to the embedded one
func loadCatalog(fs afero.Fs, cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(fs, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
