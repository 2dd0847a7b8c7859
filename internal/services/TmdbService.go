package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"movie-alert/internal/apperr"
	"movie-alert/internal/models"
	"movie-alert/internal/providers"
	"movie-alert/internal/structures"
)

const (
	genresEndpoint   = "/genre/movie/list"
	upcomingEndpoint = "/movie/upcoming"
)

type TmdbServiceInterface interface {
	LoadGenres(ctx context.Context) (models.GenreCatalog, error)
	FetchUpcomingPage(ctx context.Context, page uint32) (*models.UpcomingPage, error)
	FetchAllUpcoming(ctx context.Context) (*models.Upcoming, error)
}

type TmdbService struct {
	conf   *structures.Config
	http   providers.HttpProviderInterface
	cache  providers.CacheProviderInterface
	logger providers.Logger
}

func NewTmdbService(conf *structures.Config, httpProvider providers.HttpProviderInterface, cache providers.CacheProviderInterface, logger providers.Logger) TmdbServiceInterface {
	return &TmdbService{
		conf:   conf,
		http:   httpProvider,
		cache:  cache,
		logger: logger,
	}
}

func (s *TmdbService) baseParams() url.Values {
	return url.Values{
		"api_key":  {s.conf.Tmdb.ApiKey},
		"language": {s.conf.Tmdb.Language},
	}
}

func (s *TmdbService) endpoint(path string) string {
	return strings.TrimRight(s.conf.Tmdb.BaseURL, "/") + path
}

func (s *TmdbService) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	status, body, err := s.http.Get(ctx, s.endpoint(path), params)
	if err != nil {
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("TMDB returned %d", status)
	}
	return body, nil
}

// LoadGenres fetches the genre table once. The raw body is cached per language
// so scheduled runs do not refetch it.
func (s *TmdbService) LoadGenres(ctx context.Context) (models.GenreCatalog, error) {
	cacheKey := "genres:" + s.conf.Tmdb.Language

	body, cached := s.cache.Get(cacheKey)
	if !cached {
		var err error
		body, err = s.get(ctx, genresEndpoint, s.baseParams())
		if err != nil {
			return nil, apperr.RemoteCall("genre list", err)
		}
	}

	var resp models.GenreResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.RemoteCall("genre list", fmt.Errorf("failed to decode genre response: %w", err))
	}

	if !cached {
		s.cache.Set(cacheKey, body)
	}

	s.logger.Debugf(providers.TypeTmdb, "Loaded %d genres (cached=%t)", len(resp.Genres), cached)
	return models.NewGenreCatalog(resp.Genres), nil
}

func (s *TmdbService) FetchUpcomingPage(ctx context.Context, page uint32) (*models.UpcomingPage, error) {
	s.logger.Debugf(providers.TypeTmdb, "Getting upcoming movies, page=%d", page)

	params := s.baseParams()
	params.Set("page", strconv.FormatUint(uint64(page), 10))
	params.Set("region", s.conf.Tmdb.Region)

	body, err := s.get(ctx, upcomingEndpoint, params)
	if err != nil {
		return nil, apperr.RemoteCallPage(page, err)
	}

	var resp models.UpcomingPage
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.RemoteCallPage(page, fmt.Errorf("failed to decode upcoming response: %w", err))
	}
	return &resp, nil
}

// FetchAllUpcoming walks pages 1..total_pages in order. Page 1 decides the page
// count and the date range; any failing page aborts the whole fetch.
func (s *TmdbService) FetchAllUpcoming(ctx context.Context) (*models.Upcoming, error) {
	first, err := s.FetchUpcomingPage(ctx, 1)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf(providers.TypeTmdb, "Total # of pages for upcoming movies: %d", first.TotalPages)
	s.logger.Debugf(providers.TypeTmdb, "Total # of upcoming movies returned by page 1: %d", first.TotalResults)

	upcoming := &models.Upcoming{
		Movies:       first.Results,
		MinDate:      first.Dates.Minimum,
		MaxDate:      first.Dates.Maximum,
		TotalResults: first.TotalResults,
	}

	for page := uint32(2); page <= first.TotalPages; page++ {
		next, err := s.FetchUpcomingPage(ctx, page)
		if err != nil {
			return nil, err
		}
		upcoming.Movies = append(upcoming.Movies, next.Results...)
	}

	return upcoming, nil
}
