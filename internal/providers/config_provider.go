package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"movie-alert/internal/structures"
)

const AppName = "movie-alert"

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.baseUrl", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.movieUrlBase", "https://www.themoviedb.org/movie")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.region", "US")
	v.SetDefault("tmdb.timeout", 10*time.Second)
	v.SetDefault("alert.genre", "Animation")
	v.SetDefault("persistence.filePath", "")
	v.SetDefault("persistence.compress", false)
	v.SetDefault("schedule.interval", time.Duration(0))
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1)
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("browser.command", "")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setConfigDefaults(v)

	v.BindEnv("tmdb.apiKey", "TMD_API_V3")
	v.BindEnv("alert.genre", "MOVIE_ALERT_GENRE")
	v.BindEnv("persistence.filePath", "MOVIE_ALERT_STATE_FILE")
	v.BindEnv("logger.level", "MOVIE_ALERT_LOG_LEVEL")
	v.BindEnv("schedule.interval", "MOVIE_ALERT_INTERVAL")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("unable to read config %s: %w", flags.ConfigPath, err)
			}
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
