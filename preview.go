package course2osm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// PreviewFormat is output format of course previews
type PreviewFormat uint16

const (
	PREVIEW_GEOJSON = PreviewFormat(iota + 1)
	PREVIEW_WKT
)

func (iotaIdx PreviewFormat) String() string {
	return [...]string{"geojson", "wkt"}[iotaIdx-1]
}

// ParsePreviewFormat returns format by its name (case insensitive)
func ParsePreviewFormat(name string) (PreviewFormat, error) {
	switch strings.ToLower(name) {
	case "geojson":
		return PREVIEW_GEOJSON, nil
	case "wkt":
		return PREVIEW_WKT, nil
	default:
		return 0, fmt.Errorf("Preview format '%s' is not handled. Expected values: geojson / wkt", name)
	}
}

// coursePreview is a course-way geometry in map degrees with its metadata
type coursePreview struct {
	FileName     string
	Name         string
	Used         bool
	Line         orb.LineString
	LengthMeters float64
	Properties   map[string]string
}

// ExportPreview writes every course-way of the map as a GeoJSON or WKT geometry
func (conv *Converter) ExportPreview(osmPath string, outPath string, format PreviewFormat) error {
	if format != PREVIEW_GEOJSON && format != PREVIEW_WKT {
		return fmt.Errorf("Preview format %d is not handled", format)
	}
	st := time.Now()
	m, err := LoadOsmMap(osmPath)
	if err != nil {
		return err
	}
	previews, err := conv.coursePreviews(m)
	if err != nil {
		return errors.Wrapf(err, "Can't prepare previews for '%s'", osmPath)
	}
	var data []byte
	switch format {
	case PREVIEW_GEOJSON:
		data, err = prepareGeoJSONCollection(previews)
		if err != nil {
			return err
		}
	case PREVIEW_WKT:
		data = prepareWKTLines(previews)
	}
	err = os.WriteFile(outPath, data, 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't write preview '%s'", outPath)
	}
	conv.logger.Info().
		Str("map", osmPath).
		Str("out", outPath).
		Str("format", format.String()).
		Int("courses", len(previews)).
		Dur("elapsed", time.Since(st)).
		Msg("Preview has been exported")
	return nil
}

func (conv *Converter) coursePreviews(m *OsmMap) ([]coursePreview, error) {
	previews := []coursePreview{}
	for _, way := range m.Ways {
		if !isCourseWay(way) {
			continue
		}
		course, err := toCourse(way, m)
		if err != nil {
			return nil, err
		}
		nodes, err := m.WayNodes(way)
		if err != nil {
			return nil, err
		}
		line := make(orb.LineString, 0, len(nodes))
		for _, node := range nodes {
			line = append(line, node.Point())
		}
		used, _ := strconv.ParseBool(way.Tags.Find(TAG_USED))
		previews = append(previews, coursePreview{
			FileName:     way.Tags.Find(TAG_FILE_NAME),
			Name:         way.Tags.Find(TAG_PATH),
			Used:         used,
			Line:         line,
			LengthMeters: courseLength(course),
			Properties:   course.Properties,
		})
	}
	return previews, nil
}

// courseLength returns planar length of the course path (meters)
func courseLength(course *Course) float64 {
	line := make(orb.LineString, 0, len(course.Waypoints))
	for _, wp := range course.Waypoints {
		line = append(line, orb.Point{wp.X, wp.Y})
	}
	return planar.Length(line)
}
