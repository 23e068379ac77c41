package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managerFixture = filepath.Join("..", "..", "testdata", "manager", "courseManager.xml")

func TestRunBuildExtract(t *testing.T) {
	dir := t.TempDir()
	mapFile := filepath.Join(dir, "courses.osm")
	outDir := filepath.Join(dir, "courses")
	var stderr bytes.Buffer

	code := run([]string{"build", "-manager", managerFixture, "-out", mapFile, "-size", "200"}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	_, err := os.Stat(mapFile)
	require.NoError(t, err)

	code = run([]string{"extract", "-map", mapFile, "-out", outDir}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	_, err = os.Stat(filepath.Join(outDir, "courseStorage0001.xml"))
	require.NoError(t, err)

	code = run([]string{"preview", "-map", mapFile, "-out", filepath.Join(dir, "courses.wkt"), "-format", "wkt"}, &stderr)
	require.Equal(t, 0, code, stderr.String())
}

func TestRunFailures(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{}, &stderr))
	assert.Equal(t, 2, run([]string{"unknown"}, &stderr))
	assert.Equal(t, 2, run([]string{"build", "-nope"}, &stderr))
	assert.Equal(t, 1, run([]string{"extract", "-map", filepath.Join(t.TempDir(), "absent.osm"), "-out", t.TempDir()}, &stderr))
	assert.Equal(t, 1, run([]string{"preview", "-map", "x.osm", "-format", "kml"}, &stderr))
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "course2osm.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"mapSize": 4096, "logLevel": "debug", "generator": "cfg"}`), 0644))
	mapFile := filepath.Join(dir, "courses.osm")
	var stderr bytes.Buffer

	code := run([]string{"-config", cfg, "build", "-manager", managerFixture, "-out", mapFile}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(mapFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `generator="cfg"`)
	assert.Contains(t, stderr.String(), "Course converted")
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, loadConfig(v, ""))
	assert.Equal(t, 2048, v.GetInt("mapSize"))
	assert.Equal(t, "info", v.GetString("logLevel"))
	assert.Equal(t, "course2osm", v.GetString("generator"))
	assert.Equal(t, int64(1), v.GetInt64("firstID"))
	assert.Equal(t, "geojson", v.GetString("preview.format"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't read config file")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLogLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("whatever"))
}
