package services

import "movie-alert/internal/models"

// FilterByGenre keeps the movies tagged with genreID, in input order. The
// result points into movies.
func FilterByGenre(genreID uint32, movies []models.Movie) []*models.Movie {
	var out []*models.Movie
	for i := range movies {
		if movies[i].HasGenre(genreID) {
			out = append(out, &movies[i])
		}
	}
	return out
}
