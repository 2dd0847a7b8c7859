package interfaces

import "movie-alert/internal/models"

type SeenStoreInterface interface {
	Load(fileName string) (models.SeenSet, error)
	Save(set models.SeenSet, fileName string) error
}
