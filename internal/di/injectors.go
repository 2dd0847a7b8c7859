//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"movie-alert/internal"
	"movie-alert/internal/persistence"
	"movie-alert/internal/persistence/interfaces"
	"movie-alert/internal/pipeline"
	"movie-alert/internal/providers"
	"movie-alert/internal/services"
	"movie-alert/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewHttpProvider,
		providers.NewBrowserProvider,

		persistence.NewCompressor,
		persistence.NewFileManager,
		wire.Bind(new(interfaces.SeenStoreInterface), new(*persistence.FileManager)),
		services.NewTmdbService,
		services.NewNotifierService,
		pipeline.NewPipeline,
		pipeline.NewScheduler,
		internal.NewApp,
	)

	return nil, nil
}
