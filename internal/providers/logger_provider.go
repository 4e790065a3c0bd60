package providers

import (
	"fmt"
	"guardian/internal/structures"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeTracking
	TypeShare
	TypeSos
)

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	app      zerolog.Logger
	http     zerolog.Logger
	tracking zerolog.Logger
	files    []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	lp := &LogProvider{}

	open := func(name string) (io.Writer, error) {
		f, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
		if err != nil {
			return nil, err
		}
		lp.files = append(lp.files, f)
		if conf.Debug {
			return io.MultiWriter(f, zerolog.ConsoleWriter{Out: os.Stderr}), nil
		}
		return f, nil
	}

	appW, err := open("app.log")
	if err != nil {
		lp.Close()
		return nil, err
	}
	httpW, err := open("http.log")
	if err != nil {
		lp.Close()
		return nil, err
	}
	trackW, err := open("tracking.log")
	if err != nil {
		lp.Close()
		return nil, err
	}

	lp.app = zerolog.New(appW).Level(level).With().Timestamp().Logger()
	lp.http = zerolog.New(httpW).Level(level).With().Timestamp().Logger()
	lp.tracking = zerolog.New(trackW).Level(level).With().Timestamp().Logger()

	return lp, nil
}

func (lp *LogProvider) pick(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet, TypePost:
		return &lp.http
	case TypeTracking, TypeShare, TypeSos:
		return &lp.tracking
	default:
		return &lp.app
	}
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}
