package providers

import (
	"movie-alert/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Tmdb: structures.TmdbConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			MovieURLBase: "https://www.themoviedb.org/movie",
			Language:     "en-US",
			Region:       "US",
		},
		Alert: structures.AlertConfig{
			Genre: "Animation",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyGenre(t *testing.T) {
	c := validConfig()
	c.Alert.Genre = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyBaseURL(t *testing.T) {
	c := validConfig()
	c.Tmdb.BaseURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLanguage(t *testing.T) {
	c := validConfig()
	c.Tmdb.Language = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ApiKeyOptional(t *testing.T) {
	c := validConfig()
	c.Tmdb.ApiKey = ""
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}
