package pipeline

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"movie-alert/internal/pipeline/interfaces"
	"movie-alert/internal/providers"
	"movie-alert/internal/structures"
)

// Scheduler repeats the pipeline every schedule.interval. Runs never overlap.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	pipeline interfaces.PipelineInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func (s *Scheduler) Init(ctx context.Context) {
	s.cron = gron.New()
	interval := s.config.Schedule.Interval

	s.cron.AddFunc(gron.Every(interval), func() {
		if ctx.Err() != nil {
			return
		}
		// failures are already reported by the pipeline; the next tick retries
		_ = s.RunOnce(ctx)
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Checking upcoming %s movies every %s", s.config.Alert.Genre, interval)
}

// Stop halts the ticker and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	return s.pipeline.Run(ctx)
}

func NewScheduler(config *structures.Config, logger providers.Logger, pipeline interfaces.PipelineInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		pipeline: pipeline,
	}
}
