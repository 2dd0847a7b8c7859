package internal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"movie-alert/internal/persistence"
	"movie-alert/internal/pipeline/interfaces"
	"movie-alert/internal/providers"
	"movie-alert/internal/structures"
)

type App struct {
	conf        *structures.Config
	logger      providers.Logger
	scheduler   interfaces.SchedulerInterface
	fileManager *persistence.FileManager
}

func NewApp(conf *structures.Config, logger providers.Logger, scheduler interfaces.SchedulerInterface, fileManager *persistence.FileManager) *App {
	return &App{
		conf:        conf,
		logger:      logger,
		scheduler:   scheduler,
		fileManager: fileManager,
	}
}

// Run performs one check, or keeps checking every schedule.interval until
// SIGINT or SIGTERM arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Debugf(providers.TypeApp, "Starting %s", a.conf.AppName)

	if a.conf.Schedule.Interval <= 0 {
		return a.scheduler.RunOnce(ctx)
	}

	// in watch mode a failed run is reported and the schedule keeps going
	_ = a.scheduler.RunOnce(ctx)
	a.scheduler.Init(ctx)

	<-ctx.Done()
	a.logger.Infof(providers.TypeApp, "Shutdown signal received")

	a.scheduler.Stop()
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

func (a *App) Close() {
	a.fileManager.Close()
	a.logger.Close()
}
