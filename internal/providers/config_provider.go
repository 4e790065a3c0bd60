package providers

import (
	"fmt"
	"guardian/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "GUARDIAN_LOG_LEVEL")
	viper.BindEnv("tracking.sampleInterval", "GUARDIAN_SAMPLE_INTERVAL")
	viper.BindEnv("share.pushInterval", "GUARDIAN_PUSH_INTERVAL")
	viper.BindEnv("share.linkHost", "GUARDIAN_LINK_HOST")
	viper.BindEnv("share.pushEndpoint", "GUARDIAN_PUSH_ENDPOINT")
	viper.BindEnv("sos.recipient", "GUARDIAN_SOS_RECIPIENT")
	viper.BindEnv("cache.enabled", "GUARDIAN_CACHE_ENABLED")
	viper.BindEnv("cache.size", "GUARDIAN_CACHE_SIZE")

	viper.SetDefault("tracking.sampleInterval", "5s")
	viper.SetDefault("tracking.maxHistory", 200)
	viper.SetDefault("tracking.originLatitude", 37.78825)
	viper.SetDefault("tracking.originLongitude", -122.4324)
	viper.SetDefault("tracking.jitterDegrees", 0.0003)
	viper.SetDefault("share.pushInterval", "5s")
	viper.SetDefault("share.defaultDuration", "1h")
	viper.SetDefault("playback.tickInterval", "1s")
	viper.SetDefault("sos.preamble", "SOS! I need help.")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "GuardianLocationDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
