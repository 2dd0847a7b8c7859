package interfaces

import "context"

type PipelineInterface interface {
	Run(ctx context.Context) error
}

type SchedulerInterface interface {
	Init(ctx context.Context)
	Stop()
	RunOnce(ctx context.Context) error
}
