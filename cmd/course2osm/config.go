package main

import (
	"strings"

	"github.com/LdDl/course2osm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// loadConfig sets default values and reads optional config file (JSON, YAML or TOML by extension)
func loadConfig(v *viper.Viper, fileName string) error {
	v.SetDefault("mapSize", course2osm.DEFAULT_MAP_SIZE)
	v.SetDefault("logLevel", "info")
	v.SetDefault("generator", course2osm.DEFAULT_GENERATOR)
	v.SetDefault("firstID", course2osm.DEFAULT_FIRST_ID)
	v.SetDefault("preview.format", course2osm.PREVIEW_GEOJSON.String())

	if fileName == "" {
		return nil
	}
	v.SetConfigFile(fileName)
	err := v.ReadInConfig()
	if err != nil {
		return errors.Wrap(err, "Can't read config file")
	}
	return nil
}

// parseLogLevel maps configured level name to zerolog level. Unknown names fall back to info.
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
