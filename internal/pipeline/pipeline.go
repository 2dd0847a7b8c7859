package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"movie-alert/internal/apperr"
	persistence "movie-alert/internal/persistence/interfaces"
	"movie-alert/internal/pipeline/interfaces"
	"movie-alert/internal/providers"
	"movie-alert/internal/services"
	"movie-alert/internal/structures"
)

// DataFileName is the seen-set file kept in the user's home directory.
const DataFileName = ".movie_alert"

// Pipeline runs one pass: Init, LoadGenres, ResolveTargetGenreId,
// FetchAllPages, Filter, LoadSeenSet, Notify, SaveSeenSet. The first failing
// stage ends the run and nothing after it executes.
type Pipeline struct {
	conf     *structures.Config
	logger   providers.Logger
	tmdb     services.TmdbServiceInterface
	notifier services.NotifierServiceInterface
	store    persistence.SeenStoreInterface
	metrics  providers.MetricsProviderInterface
	homeDir  func() (string, error)
}

func NewPipeline(conf *structures.Config, logger providers.Logger, tmdb services.TmdbServiceInterface, notifier services.NotifierServiceInterface, store persistence.SeenStoreInterface, metrics providers.MetricsProviderInterface) interfaces.PipelineInterface {
	return &Pipeline{
		conf:     conf,
		logger:   logger,
		tmdb:     tmdb,
		notifier: notifier,
		store:    store,
		metrics:  metrics,
		homeDir:  os.UserHomeDir,
	}
}

// Run executes the pipeline and reports a failure exactly once before
// returning it.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := p.logger.With("run_id", uuid.NewString())
	start := time.Now()

	err := p.run(ctx, logger)

	status := "success"
	if err != nil {
		status = "failure"
		p.report(logger, err)
	} else {
		logger.Debugf(providers.TypeApp, "Run finished in %s", time.Since(start))
	}

	p.metrics.IncRunsTotal(status)
	if ferr := p.metrics.Flush(); ferr != nil {
		logger.Warnf(providers.TypeApp, "%s", ferr)
	}
	return err
}

func (p *Pipeline) run(ctx context.Context, logger providers.Logger) error {
	if p.conf.Tmdb.ApiKey == "" {
		return apperr.CredentialMissing()
	}
	logger.Debugf(providers.TypeApp, "API key is found")

	statePath, err := p.statePath()
	if err != nil {
		return err
	}
	logger.Debugf(providers.TypeApp, "Data file path is: %s", statePath)

	genres, err := p.tmdb.LoadGenres(ctx)
	if err != nil {
		return err
	}

	genreName := p.conf.Alert.Genre
	genreID, ok := genres.IDByName(genreName)
	if !ok {
		return apperr.GenreNotFound(genreName)
	}
	logger.Debugf(providers.TypeApp, "%s genre id is: %d", genreName, genreID)

	upcoming, err := p.tmdb.FetchAllUpcoming(ctx)
	if err != nil {
		return err
	}
	logger.Debugf(providers.TypeApp, "Total # of upcoming movies: %d", len(upcoming.Movies))

	matched := services.FilterByGenre(genreID, upcoming.Movies)
	p.metrics.SetMoviesTotal("fetched", len(upcoming.Movies))
	p.metrics.SetMoviesTotal("matched", len(matched))
	p.notifier.Announce(genreName, upcoming, len(matched))

	seen, err := p.store.Load(statePath)
	if err != nil {
		return err
	}

	p.notifier.Notify(matched, genres, seen)

	if err := p.store.Save(seen, statePath); err != nil {
		logger.Warnf(providers.TypeStore, "Browser tabs were already opened in this run; they will be opened again next run")
		return err
	}
	return nil
}

// statePath resolves persistence.filePath, falling back to ~/.movie_alert.
// A leading "~/" is expanded.
func (p *Pipeline) statePath() (string, error) {
	path := p.conf.Persistence.FilePath
	if path != "" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := p.homeDir()
	if err == nil && home == "" {
		err = errors.New("home directory is empty")
	}
	if err != nil {
		return "", apperr.HomeDirectoryUnresolvable(err)
	}

	if path == "" {
		return filepath.Join(home, DataFileName), nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

func (p *Pipeline) report(logger providers.Logger, err error) {
	e := apperr.Classify(err)
	for i, line := range e.Diagnostic() {
		if i == 0 {
			line = "Error: " + line
		}
		logger.Errorf(providers.TypeApp, "%s", line)
	}
}
