package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"movie-alert/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeTmdb
	TypeStore
	TypeNotify
)

func (t TypeEnum) String() string {
	switch t {
	case TypeTmdb:
		return "tmdb"
	case TypeStore:
		return "store"
	case TypeNotify:
		return "notify"
	default:
		return "app"
	}
}

const logFileName = "movie-alert.log"

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	With(key, value string) Logger
	Close()
}

type LogProvider struct {
	logger zerolog.Logger
	file   *os.File
}

func (l *LogProvider) event(level zerolog.Level, t TypeEnum) *zerolog.Event {
	return l.logger.WithLevel(level).Str("type", t.String())
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.ErrorLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.WarnLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.DebugLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.InfoLevel, t).Msgf(format, args...)
}

// Fatalf logs at fatal level without exiting; the caller decides the exit code.
func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.FatalLevel, t).Msgf(format, args...)
}

func (l *LogProvider) With(key, value string) Logger {
	return &LogProvider{
		logger: l.logger.With().Str(key, value).Logger(),
	}
}

func (l *LogProvider) Close() {
	if l.file != nil {
		_ = l.file.Sync()
		_ = l.file.Close()
		l.file = nil
	}
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	provider, err := newLogProvider(conf, os.Stderr)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func newLogProvider(conf *structures.Config, console io.Writer) (*LogProvider, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}
	if conf.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	noColor := true
	if f, ok := console.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly, NoColor: noColor}}

	provider := &LogProvider{}
	if conf.Logger.Dir != "" {
		mode := os.FileMode(conf.Logger.Mode)
		if mode == 0 {
			mode = 0644
		}
		file, err := os.OpenFile(filepath.Join(conf.Logger.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		provider.file = file
		writers = append(writers, file)
	}

	provider.logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return provider, nil
}
