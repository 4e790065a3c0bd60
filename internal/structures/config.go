package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type TrackingConfig struct {
	SampleInterval  time.Duration `yaml:"sampleInterval" validate:"required|min:1"`
	MaxHistory      int           `yaml:"maxHistory" validate:"required|min:1"`
	OriginLatitude  float64       `yaml:"originLatitude" validate:"min:-90|max:90"`
	OriginLongitude float64       `yaml:"originLongitude" validate:"min:-180|max:180"`
	JitterDegrees   float64       `yaml:"jitterDegrees"`
}

type ShareConfig struct {
	PushInterval    time.Duration `yaml:"pushInterval" validate:"required|min:1"`
	DefaultDuration time.Duration `yaml:"defaultDuration" validate:"required|min:1"`
	LinkHost        string        `yaml:"linkHost" validate:"required"`
	PushEndpoint    string        `yaml:"pushEndpoint"`
}

type PlaybackConfig struct {
	TickInterval time.Duration `yaml:"tickInterval" validate:"required|min:1"`
}

type SosConfig struct {
	Recipient string `yaml:"recipient"`
	Preamble  string `yaml:"preamble" validate:"required"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Tracking  TrackingConfig `yaml:"tracking"`
	Share     ShareConfig    `yaml:"share"`
	Playback  PlaybackConfig `yaml:"playback"`
	Sos       SosConfig      `yaml:"sos"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
