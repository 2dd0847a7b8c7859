package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type TmdbConfig struct {
	ApiKey       string        `yaml:"apiKey"`
	BaseURL      string        `yaml:"baseUrl" validate:"required|fullUrl"`
	MovieURLBase string        `yaml:"movieUrlBase" validate:"required|fullUrl"`
	Language     string        `yaml:"language" validate:"required"`
	Region       string        `yaml:"region" validate:"required"`
	Timeout      time.Duration `yaml:"timeout"`
}

type AlertConfig struct {
	Genre string `yaml:"genre" validate:"required"`
}

type Persistence struct {
	// FilePath empty means ~/.movie_alert
	FilePath string `yaml:"filePath"`
	Compress bool   `yaml:"compress"`
}

type ScheduleConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode"`
	Dir   string `yaml:"dir"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type BrowserConfig struct {
	Command string `yaml:"command"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Tmdb        TmdbConfig     `yaml:"tmdb"`
	Alert       AlertConfig    `yaml:"alert"`
	Persistence Persistence    `yaml:"persistence"`
	Schedule    ScheduleConfig `yaml:"schedule"`
	Logger      LoggerConfig   `yaml:"logger"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
	Browser     BrowserConfig  `yaml:"browser"`
}
