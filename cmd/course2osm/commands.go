package main

import (
	"flag"
	"io"

	"github.com/LdDl/course2osm"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var errUsage = errors.New("usage")

func runBuild(conv *course2osm.Converter, v *viper.Viper, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.SetOutput(stderr)
	managerFile := flags.String("manager", "courseManager.xml", "Filename of course manager descriptor. Course files are looked up next to it")
	out := flags.String("out", "courses.osm", "Filename of output OSM map")
	mapSize := flags.Int("size", v.GetInt("mapSize"), "Map size in meters. Used for the calibration rectangle only")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	return conv.ConvertManager(*managerFile, *out, *mapSize)
}

func runExtract(conv *course2osm.Converter, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags.SetOutput(stderr)
	osmFile := flags.String("map", "courses.osm", "Filename of OSM map (*.osm or *.osm.pbf)")
	out := flags.String("out", ".", "Output directory for course files")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	return conv.ConvertOSM(*osmFile, *out)
}

func runPreview(conv *course2osm.Converter, v *viper.Viper, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	flags.SetOutput(stderr)
	osmFile := flags.String("map", "courses.osm", "Filename of OSM map (*.osm or *.osm.pbf)")
	out := flags.String("out", "courses.geojson", "Filename of preview file")
	formatName := flags.String("format", v.GetString("preview.format"), "Format of output geometry. Expected values: geojson / wkt")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	format, err := course2osm.ParsePreviewFormat(*formatName)
	if err != nil {
		return err
	}
	return conv.ExportPreview(*osmFile, *out, format)
}
