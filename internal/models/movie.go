package models

import "slices"

type Movie struct {
	ID          uint32   `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	GenreIDs    []uint32 `json:"genre_ids"`
	PosterPath  *string  `json:"poster_path"`
	Adult       bool     `json:"adult"`
}

// HasGenre reports whether id is one of the movie's genres.
func (m *Movie) HasGenre(id uint32) bool {
	return slices.Contains(m.GenreIDs, id)
}

type DateRange struct {
	Minimum string `json:"minimum"`
	Maximum string `json:"maximum"`
}

// UpcomingPage is one page of GET /movie/upcoming.
type UpcomingPage struct {
	Page         uint32    `json:"page"`
	Results      []Movie   `json:"results"`
	Dates        DateRange `json:"dates"`
	TotalPages   uint32    `json:"total_pages"`
	TotalResults uint32    `json:"total_results"`
}

// Upcoming aggregates every page of a run. MinDate and MaxDate come from page 1.
type Upcoming struct {
	Movies       []Movie
	MinDate      string
	MaxDate      string
	TotalResults uint32
}
