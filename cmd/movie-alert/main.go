package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"movie-alert/internal/di"
	"movie-alert/internal/structures"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "movie-alert", "config.yaml")
}

func main() {
	flags := &structures.CliFlags{}
	flag.StringVarP(&flags.ConfigPath, "config", "c", defaultConfigPath(), "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log at debug level")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app, err := di.InitApp(flags)
	if err != nil {
		log.Error().Err(err).Msg("unable to start movie-alert")
		os.Exit(1)
	}

	err = app.Run()
	app.Close()
	if err != nil {
		// already reported by the pipeline
		os.Exit(1)
	}
}
