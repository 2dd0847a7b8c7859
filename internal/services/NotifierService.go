package services

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"movie-alert/internal/models"
	"movie-alert/internal/providers"
	"movie-alert/internal/structures"
)

type NotifierServiceInterface interface {
	Announce(genre string, upcoming *models.Upcoming, matched int)
	Notify(movies []*models.Movie, genres models.GenreCatalog, seen models.SeenSet)
}

type NotifierService struct {
	out          io.Writer
	movieURLBase string
	browser      providers.BrowserProviderInterface
	logger       providers.Logger
	metrics      providers.MetricsProviderInterface
}

func NewNotifierService(conf *structures.Config, browser providers.BrowserProviderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) NotifierServiceInterface {
	return &NotifierService{
		out:          os.Stdout,
		movieURLBase: strings.TrimRight(conf.Tmdb.MovieURLBase, "/"),
		browser:      browser,
		logger:       logger,
		metrics:      metrics,
	}
}

// SetOutput redirects the printed summaries, stdout by default.
func (n *NotifierService) SetOutput(w io.Writer) {
	n.out = w
}

func (n *NotifierService) MovieURL(id uint32) string {
	return n.movieURLBase + "/" + strconv.FormatUint(uint64(id), 10)
}

func (n *NotifierService) Announce(genre string, upcoming *models.Upcoming, matched int) {
	fmt.Fprintf(n.out, "Upcoming %s movies (from %s to %s): %d\n", genre, upcoming.MinDate, upcoming.MaxDate, matched)
}

// Notify prints every movie and opens the ones not in seen, adding them to it.
// A failed browser launch is logged and the id is still recorded.
func (n *NotifierService) Notify(movies []*models.Movie, genres models.GenreCatalog, seen models.SeenSet) {
	for _, movie := range movies {
		url := n.MovieURL(movie.ID)

		fmt.Fprintln(n.out, "***")
		fmt.Fprintf(n.out, "Title: %s\n", movie.Title)
		fmt.Fprintf(n.out, "Genres: %s\n", genres.NamesFor(movie.GenreIDs))
		fmt.Fprintf(n.out, "Release date: %s\n", movie.ReleaseDate)
		fmt.Fprintf(n.out, "URL: %s\n", url)

		if seen.Contains(movie.ID) {
			fmt.Fprintln(n.out, "URL was opened")
			continue
		}

		if err := n.browser.Open(url); err != nil {
			n.logger.Warnf(providers.TypeNotify, "Unable to open %s: %s", url, err)
			n.metrics.IncBrowserLaunches("failed")
		} else {
			n.metrics.IncBrowserLaunches("ok")
		}
		seen.Insert(movie.ID)
	}
	n.metrics.SetSeenTotal(seen.Len())
}
