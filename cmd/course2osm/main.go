package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/LdDl/course2osm"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const usage = `Usage: course2osm [-config file] [-log-level level] <command> [options]

Commands:
	build    Build OSM map from course manager and its course files
	extract  Extract course files from OSM map
	preview  Export courses of OSM map as GeoJSON or WKT
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	global := flag.NewFlagSet("course2osm", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	configFile := global.String("config", "", "Optional config file (json/yaml/toml) with default values")
	logLevel := global.String("log-level", "", "Log level. Expected values: debug / info / warn / error")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	v := viper.New()
	if err := loadConfig(v, *configFile); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *logLevel != "" {
		v.Set("logLevel", *logLevel)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(parseLogLevel(v.GetString("logLevel"))).
		With().Timestamp().Logger()

	conv := course2osm.NewConverter(
		course2osm.WithLogger(logger),
		course2osm.WithGenerator(v.GetString("generator")),
		course2osm.WithIDGenerator(course2osm.NewIDGenerator(v.GetInt64("firstID"))),
	)
	logger.Debug().Msg(conv.String())

	command, rest := global.Arg(0), global.Args()[1:]
	var err error
	switch command {
	case "build":
		err = runBuild(conv, v, rest, stderr)
	case "extract":
		err = runExtract(conv, rest, stderr)
	case "preview":
		err = runPreview(conv, v, rest, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown command '%s'\n", command)
		global.Usage()
		return 2
	}
	if err == errUsage {
		return 2
	}
	if err != nil {
		logger.Error().Err(err).Str("command", command).Msg("Conversion failed")
		return 1
	}
	return 0
}
