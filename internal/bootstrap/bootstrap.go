package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	analyticsinadapter "switchsprint/internal/modules/analytics/adapter/in"
	analyticsoutadapter "switchsprint/internal/modules/analytics/adapter/out"
	analyticsservice "switchsprint/internal/modules/analytics/service"
	analyticsusecase "switchsprint/internal/modules/analytics/usecase"
	backupinadapter "switchsprint/internal/modules/backup/adapter/in"
	backupoutadapter "switchsprint/internal/modules/backup/adapter/out"
	backupdto "switchsprint/internal/modules/backup/dto"
	backupservice "switchsprint/internal/modules/backup/service"
	backupusecase "switchsprint/internal/modules/backup/usecase"
	documentoutadapter "switchsprint/internal/modules/document/adapter/out"
	documentservice "switchsprint/internal/modules/document/service"
	jobsearchinadapter "switchsprint/internal/modules/jobsearch/adapter/in"
	jobsearchoutadapter "switchsprint/internal/modules/jobsearch/adapter/out"
	jobsearchservice "switchsprint/internal/modules/jobsearch/service"
	jobsearchusecase "switchsprint/internal/modules/jobsearch/usecase"
	sessioninadapter "switchsprint/internal/modules/session/adapter/in"
	sessionservice "switchsprint/internal/modules/session/service"
	sessionusecase "switchsprint/internal/modules/session/usecase"
	studyinadapter "switchsprint/internal/modules/study/adapter/in"
	studyoutadapter "switchsprint/internal/modules/study/adapter/out"
	studyservice "switchsprint/internal/modules/study/service"
	studyusecase "switchsprint/internal/modules/study/usecase"
	timerinadapter "switchsprint/internal/modules/timer/adapter/in"
	timerdto "switchsprint/internal/modules/timer/dto"
	timerservice "switchsprint/internal/modules/timer/service"
	timerusecase "switchsprint/internal/modules/timer/usecase"
	"switchsprint/internal/platform/clock"
	"switchsprint/internal/platform/config"
	"switchsprint/internal/platform/id"
	"switchsprint/internal/platform/logging"
	"switchsprint/internal/platform/metrics"
	uiapp "switchsprint/internal/ui/app"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry

	SessionCLI   sessioninadapter.CLIHandler
	TimerCLI     timerinadapter.CLIHandler
	TimerTUI     timerinadapter.TUIHandler
	StudyCLI     studyinadapter.CLIHandler
	JobSearchCLI jobsearchinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	BackupCLI    backupinadapter.CLIHandler
	BackupTUI    backupinadapter.TUIHandler

	engine    *timerservice.Engine
	backup    *backupservice.BackupService
	projector *analyticsoutadapter.SQLiteHistoryProjector
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	reg := metrics.New()
	clk := clock.SystemClock{}
	ids := id.UUID{}

	docs := documentservice.NewDocumentService(documentoutadapter.NewFileDocumentStore(cfg.StatePath), logger, reg)
	if _, err := docs.Load(ctx); err != nil {
		return nil, err
	}

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, ids, docs, logger))

	engine := timerservice.NewEngine(sessionUC, clk, timerservice.Options{
		Interval: cfg.TickInterval,
		Logger:   logger,
		Metrics:  reg,
	})
	timerUC := timerusecase.NewInteractor(engine)

	studyUC := studyusecase.NewInteractor(studyservice.NewStudyService(
		clk,
		docs,
		sessionUC,
		studyoutadapter.NewMarkdownReportWriter(),
		studyoutadapter.NewFilePlanReader(),
		logger,
	))

	jobsUC := jobsearchusecase.NewInteractor(jobsearchservice.NewJobSearchService(
		clk,
		ids,
		docs,
		jobsearchoutadapter.NewLocalPDFInspector(),
		logger,
	))

	projector, err := analyticsoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	report := analyticsoutadapter.NewXLSXReportRenderer()
	analyticsSvc := analyticsservice.NewAnalyticsService(clk, docs, projector, report, analyticsoutadapter.NewFileReportStore(), logger)
	analyticsUC := analyticsusecase.NewInteractor(analyticsSvc)

	backupSvc := backupservice.NewBackupService(
		docs,
		backupoutadapter.NewFileGrantStore(cfg.GrantPath),
		backupoutadapter.NewOSFolder(),
		backupoutadapter.NewFSNotifyWatcher(logger),
		report,
		clk,
		backupservice.Options{
			Debounce:      cfg.BackupDebounce,
			IncludeReport: cfg.BackupReport,
			Logger:        logger,
			Metrics:       reg,
		},
	)
	if err := backupSvc.Restore(ctx); err != nil {
		logger.Warn("backup grant unreadable", "error", err)
	}
	backupUC := backupusecase.NewInteractor(backupSvc)

	docs.Subscribe(engine)
	docs.Subscribe(backupSvc)
	docs.Subscribe(analyticsSvc)

	return &App{
		Config:       cfg,
		Logger:       logger,
		Metrics:      reg,
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		TimerCLI:     timerinadapter.NewCLIHandler(timerUC),
		TimerTUI:     timerinadapter.NewTUIHandler(timerUC),
		StudyCLI:     studyinadapter.NewCLIHandler(studyUC),
		JobSearchCLI: jobsearchinadapter.NewCLIHandler(jobsUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		BackupCLI:    backupinadapter.NewCLIHandler(backupUC),
		BackupTUI:    backupinadapter.NewTUIHandler(backupUC),
		engine:       engine,
		backup:       backupSvc,
		projector:    projector,
	}, nil
}

// ServeMetrics exposes the registry while ctx is live, if an address is configured.
func (a *App) ServeMetrics(ctx context.Context) error {
	return a.Metrics.Serve(ctx, a.Config.MetricsAddr, a.Logger)
}

// Close stops the timer, writes any pending backup and releases the history database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.engine.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close timer: %w", err))
	}
	if err := a.backup.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush backup: %w", err))
	}
	if err := a.backup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close backup: %w", err))
	}
	if err := a.projector.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close history: %w", err))
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.Config.DataDir,
		app.SessionCLI,
		app.TimerTUI,
		app.StudyCLI,
		app.JobSearchCLI,
		app.AnalyticsCLI,
		app.BackupTUI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	app.TimerTUI.Subscribe(func(event timerdto.EventOutput) {
		program.Send(uiapp.TimerEventMsg{Event: event})
	})
	app.BackupTUI.Subscribe(func(status backupdto.StatusOutput) {
		program.Send(uiapp.BackupStatusMsg{Status: status})
	})
	_, err := program.Run()
	return err
}
