package course2osm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapSkipsUnusedSaves(t *testing.T) {
	manager := &CourseManager{
		Saves: []Save{
			{ID: 1, FileName: "courseStorage0001.xml", Path: "used", Used: true},
			{ID: 2, FileName: "courseStorage0002.xml", Path: "unused", Used: false},
		},
	}
	conv := NewConverter()
	m, err := conv.BuildMap(manager, filepath.Join("testdata", "manager"), 200)
	require.NoError(t, err)

	require.Len(t, m.Ways, 2)
	assert.Equal(t, TYPE_COURSE_WAY, m.Ways[0].Tags.Find(TAG_TYPE))
	assert.Equal(t, "courseStorage0001.xml", m.Ways[0].Tags.Find(TAG_FILE_NAME))
	assert.Equal(t, TYPE_CALIBRATION_RECTANGLE, m.Ways[1].Tags.Find(TAG_TYPE))
	// 3 waypoints + 4 calibration corners
	assert.Len(t, m.Nodes, 7)
}

func TestBuildMapUniqueIDs(t *testing.T) {
	manager := &CourseManager{
		Saves: []Save{
			{ID: 1, FileName: "courseStorage0001.xml", Path: "a", Used: true},
			{ID: 2, FileName: "courseStorage0002.xml", Path: "b", Used: true},
		},
	}
	m, err := NewConverter().BuildMap(manager, filepath.Join("testdata", "manager"), 2048)
	require.NoError(t, err)

	seen := make(map[int64]struct{})
	for _, node := range m.Nodes {
		seen[int64(node.ID)] = struct{}{}
	}
	for _, way := range m.Ways {
		seen[int64(way.ID)] = struct{}{}
		for _, wn := range way.Nodes {
			_, ok := m.Node(wn.ID)
			assert.True(t, ok, "way %d references unknown node %d", way.ID, wn.ID)
		}
	}
	assert.Len(t, seen, len(m.Nodes)+len(m.Ways))
}

func TestBuildMapNegativeSize(t *testing.T) {
	_, err := NewConverter().BuildMap(&CourseManager{}, ".", -1)
	require.Error(t, err)
}

func TestConvertManager(t *testing.T) {
	out := filepath.Join(t.TempDir(), "courses.osm")
	conv := NewConverter(WithGenerator("test"))
	err := conv.ConvertManager(filepath.Join("testdata", "manager", "courseManager.xml"), out, 200)
	require.NoError(t, err)

	m, err := LoadOsmMap(out)
	require.NoError(t, err)
	require.Len(t, m.Ways, 2)
	assert.Len(t, m.Nodes, 7)

	course := m.Ways[0]
	assert.Equal(t, map[string]string{
		"type":              "courseWay",
		"fileName":          "courseStorage0001.xml",
		"used":              "true",
		"name":              "field 12 headland",
		"course.name":       "field 12 headland",
		"course.workWidth":  "6.5",
		"course.difficulty": "hard",
	}, course.TagMap())

	rect := m.Ways[1]
	require.Len(t, rect.Nodes, 5)
	assert.Equal(t, rect.Nodes[0].ID, rect.Nodes[4].ID)
	for _, wn := range rect.Nodes {
		node, ok := m.Node(wn.ID)
		require.True(t, ok)
		assert.InDelta(t, 0.0009, abs(node.Lat), 1e-12)
		assert.InDelta(t, 0.0009, abs(node.Lon), 1e-12)
	}
}

func TestConvertManagerBrokenCourse(t *testing.T) {
	out := filepath.Join(t.TempDir(), "courses.osm")
	err := NewConverter().ConvertManager(filepath.Join("testdata", "broken", "courseManager.xml"), out, 200)
	require.Error(t, err)

	var parseErr *ParseCourseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, filepath.Join("testdata", "broken", "bad.xml"), parseErr.Path)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output must be written on failure")
}

func TestConvertManagerMissingCourse(t *testing.T) {
	dir := t.TempDir()
	managerPath := filepath.Join(dir, "courseManager.xml")
	require.NoError(t, os.WriteFile(managerPath, []byte(`<courseManager><saveSlot>
		<slot id="1" fileName="absent.xml" name="absent" isUsed="true"/>
	</saveSlot></courseManager>`), 0644))

	err := NewConverter().ConvertManager(managerPath, filepath.Join(dir, "out.osm"), 100)
	require.Error(t, err)
	var parseErr *ParseCourseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, filepath.Join(dir, "absent.xml"), parseErr.Path)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestConvertManagerMapText(t *testing.T) {
	out := filepath.Join(t.TempDir(), "courses.osm")
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	conv := NewConverter(WithGenerator("test"), WithTimestamp(ts))
	require.NoError(t, conv.ConvertManager(filepath.Join("testdata", "manager", "courseManager.xml"), out, 200))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, `<osm version="0.6" generator="test">`)
	assert.Contains(t, text, "<bounds minlat=")
	assert.NotContains(t, text, "<Bounds")
	assert.NotContains(t, text, `version="0"`)
	assert.NotContains(t, text, "0001-01-01T00:00:00Z")
	assert.Contains(t, text, `version="1"`)
	assert.Contains(t, text, "2024-03-01T12:30:00Z")

	m, err := LoadOsmMap(out)
	require.NoError(t, err)
	require.Len(t, m.Ways, 2)
	assert.Len(t, m.Nodes, 7)
	for _, node := range m.Nodes {
		assert.Equal(t, 1, node.Version)
		assert.True(t, ts.Equal(node.Timestamp))
	}
}
