package providers

import (
	"guardian/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 18090,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Tracking: structures.TrackingConfig{
			SampleInterval:  5 * time.Second,
			MaxHistory:      200,
			OriginLatitude:  37.78825,
			OriginLongitude: -122.4324,
			JitterDegrees:   0.0003,
		},
		Share: structures.ShareConfig{
			PushInterval:    5 * time.Second,
			DefaultDuration: time.Hour,
			LinkHost:        "example.com",
		},
		Playback: structures.PlaybackConfig{
			TickInterval: time.Second,
		},
		Sos: structures.SosConfig{
			Preamble: "SOS! I need help.",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
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

func TestConfigValidator_ZeroMaxHistory(t *testing.T) {
	c := validConfig()
	c.Tracking.MaxHistory = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroSampleInterval(t *testing.T) {
	c := validConfig()
	c.Tracking.SampleInterval = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLinkHost(t *testing.T) {
	c := validConfig()
	c.Share.LinkHost = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptySosPreamble(t *testing.T) {
	c := validConfig()
	c.Sos.Preamble = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
