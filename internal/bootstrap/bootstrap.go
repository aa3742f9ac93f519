package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"familyalter/assets"
	datasetinadapter "familyalter/internal/modules/dataset/adapter/in"
	datasetoutadapter "familyalter/internal/modules/dataset/adapter/out"
	datasetservice "familyalter/internal/modules/dataset/service"
	datasetusecase "familyalter/internal/modules/dataset/usecase"
	sessioninadapter "familyalter/internal/modules/session/adapter/in"
	sessionoutadapter "familyalter/internal/modules/session/adapter/out"
	sessionport "familyalter/internal/modules/session/port/out"
	sessionservice "familyalter/internal/modules/session/service"
	sessionusecase "familyalter/internal/modules/session/usecase"
	"familyalter/internal/platform/clock"
	"familyalter/internal/platform/config"
	"familyalter/internal/platform/launcher"
	"familyalter/internal/platform/locale"
	"familyalter/internal/platform/random"
	uiapp "familyalter/internal/ui/app"
)

// Options are per-invocation switches that do not belong in config.yaml.
type Options struct {
	// Ephemeral keeps session state in memory only.
	Ephemeral bool
	// Seed makes track picks reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

type App struct {
	DatasetCLI datasetinadapter.CLIHandler
	SessionCLI sessioninadapter.CLIHandler
	Launcher   launcher.Launcher
	Logger     *zap.Logger

	closers []func() error
}

func New(cfg config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}

	datasetUC := datasetusecase.NewInteractor(
		datasetservice.NewDatasetService(
			datasetoutadapter.NewFileTableSource(),
			datasetoutadapter.NewJSONBundleWriter(),
			logger.Named("dataset"),
		),
		logger.Named("dataset"),
	)

	app := &App{
		DatasetCLI: datasetinadapter.NewCLIHandler(datasetUC),
		Launcher:   launcher.OSLauncher{},
		Logger:     logger,
	}

	var store sessionport.StateStore
	if opts.Ephemeral {
		store = sessionoutadapter.NewMemoryStateStore(nil, logger.Named("state"))
	} else {
		sqliteStore, err := sessionoutadapter.NewSQLiteStateStore(cfg.DBPath, clk, logger.Named("state"))
		if err != nil {
			return nil, fmt.Errorf("new state store: %w", err)
		}
		app.closers = append(app.closers, sqliteStore.Close)
		store = sqliteStore
	}

	var rng random.Source = random.System{}
	if opts.HasSeed {
		rng = random.NewSeeded(opts.Seed)
	}

	dates := locale.New(cfg.Locale)
	logger.Debug("session wiring",
		zap.String("locale", dates.Tag()),
		zap.Bool("ephemeral", opts.Ephemeral),
		zap.String("data_dir", cfg.DataDir),
	)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, rng, dates),
		store,
		sessionoutadapter.NewJSONCatalog(catalogFS(cfg)),
		sessionoutadapter.NewMarkdownHistoryExporter(),
		logger.Named("session"),
	)
	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	return app, nil
}

// Close releases the state store. Safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.Launcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func catalogFS(cfg config.Config) fs.FS {
	if cfg.DataDir != "" {
		return os.DirFS(cfg.DataDir)
	}
	return assets.Catalog()
}
