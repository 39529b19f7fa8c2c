package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datazip-inc/destination-clickhouse/constants"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger

func init() {
	// usable before Init; Init only attaches the rotating file sink
	logger = zerolog.New(console()).With().Timestamp().Logger()
}

// Init wires the console writer together with a rotating file sink
// under CONFIG_FOLDER/logs. Must be called after viper is populated.
func Init() {
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(viper.GetString(constants.ConfigFolder), "logs", "olake.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(console(), fileWriter)).With().Timestamp().Logger()
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}

// render stringifies the logged value; structs and maps are emitted as
// JSON rows so protocol messages stay machine parseable on stdout.
func render(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case error:
		return value.Error()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

func Info(v ...any) {
	for _, value := range v {
		logger.Info().Msg(render(value))
	}
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Debug(v ...any) {
	for _, value := range v {
		logger.Debug().Msg(render(value))
	}
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Warn(v ...any) {
	for _, value := range v {
		logger.Warn().Msg(render(value))
	}
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	for _, value := range v {
		logger.Error().Msg(render(value))
	}
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	for _, value := range v {
		logger.Error().Msg(render(value))
	}
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
	os.Exit(1)
}
