package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/config"
	"github.com/Rorical/NearCounter/internal/dispatcher"
	"github.com/Rorical/NearCounter/internal/eventbus"
	"github.com/Rorical/NearCounter/internal/executor"
	"github.com/Rorical/NearCounter/internal/gateway"
	"github.com/Rorical/NearCounter/internal/logging"
	"github.com/Rorical/NearCounter/internal/metrics"
	"github.com/Rorical/NearCounter/internal/models"
)

// Options are the command line overrides for an application.
type Options struct {
	Profile     string
	LogFile     string
	LogLevel    string
	LogOutput   io.Writer
	MetricsAddr string
}

// Application manages the complete application lifecycle
type Application struct {
	config   *config.Config
	profile  config.Profile
	log      *logrus.Logger
	closeLog func() error
	gateway  gateway.Gateway
	executor *executor.Executor
	metrics  *http.Server
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewApplication(opts Options) (*Application, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.Profile != "" {
		if err := cfg.UseProfile(opts.Profile); err != nil {
			return nil, err
		}
	}
	profile := cfg.Current()

	level := opts.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logFile := opts.LogFile
	if logFile == "" && opts.LogOutput == nil {
		logFile = cfg.LogFile()
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:  level,
		File:   logFile,
		Output: opts.LogOutput,
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithField("profile", cfg.ActiveProfile)
	gw, err := NewGateway(profile, log)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		config:   cfg,
		profile:  profile,
		log:      logger,
		closeLog: closeLog,
		gateway:  gw,
		executor: executor.New(ctx, gw, log),
		ctx:      ctx,
		cancel:   cancel,
	}

	if opts.MetricsAddr != "" {
		app.startMetrics(opts.MetricsAddr)
	}

	log.WithFields(logrus.Fields{
		"gateway":    profile.Gateway,
		"network":    profile.Network,
		"account_id": gw.AccountID(),
	}).Debug("Application created")

	return app, nil
}

// Start runs the terminal UI until the user quits.
func (app *Application) Start() error {
	p := tea.NewProgram(NewAppModel(app.executor, app.log), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

// Headless returns a dispatcher running the same state machine without a
// terminal. onChange may be nil.
func (app *Application) Headless(onChange func(models.State)) *dispatcher.EventDispatcher {
	var opts []dispatcher.Option
	if onChange != nil {
		opts = append(opts, dispatcher.OnChange(onChange))
	}
	return dispatcher.NewEventDispatcher(eventbus.NewEventBus(0), app.executor, app.log, opts...)
}

func (app *Application) Gateway() gateway.Gateway {
	return app.gateway
}

func (app *Application) Profile() config.Profile {
	return app.profile
}

func (app *Application) Logger() *logrus.Logger {
	return app.log
}

func (app *Application) Stop() {
	app.cancel()
	if app.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := app.metrics.Shutdown(ctx); err != nil {
			app.log.WithError(err).Warn("Metrics server shutdown failed")
		}
	}
	app.closeLog()
}

func (app *Application) startMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	app.metrics = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := app.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.log.WithError(err).Error("Metrics server stopped")
		}
	}()
	app.log.WithField("addr", addr).Info("Serving metrics")
}
