package course2osm

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ConvertManager reads manager descriptor with every used course and writes single OSM map.
// Nothing is written unless every course has been converted.
func (conv *Converter) ConvertManager(managerPath string, outPath string, mapSize int) error {
	st := time.Now()
	manager, err := LoadCourseManager(managerPath)
	if err != nil {
		return err
	}
	m, err := conv.BuildMap(manager, filepath.Dir(managerPath), mapSize)
	if err != nil {
		return err
	}
	err = SaveOsmMap(m, outPath, conv.generator)
	if err != nil {
		return err
	}
	conv.logger.Info().
		Str("manager", managerPath).
		Str("out", outPath).
		Int("ways", len(m.Ways)).
		Int("nodes", len(m.Nodes)).
		Dur("elapsed", time.Since(st)).
		Msg("Map has been built")
	return nil
}

// BuildMap converts used saves of manager into map. Course files are resolved against baseDir.
func (conv *Converter) BuildMap(manager *CourseManager, baseDir string, mapSize int) (*OsmMap, error) {
	if mapSize < 0 {
		return nil, errors.Errorf("Map size must be non-negative, got %d", mapSize)
	}
	m := NewOsmMap()
	for _, save := range manager.Saves {
		if !save.Used {
			continue
		}
		course, err := ParseCourseFile(filepath.Join(baseDir, save.FileName))
		if err != nil {
			return nil, err
		}
		way, nodes := toOsmWay(course, save, conv.ids)
		m.AddNodes(nodes...)
		m.AddWay(way)
		conv.logger.Debug().
			Int64("slot", save.ID).
			Str("file", save.FileName).
			Int64("way", int64(way.ID)).
			Int("waypoints", len(nodes)).
			Msg("Course converted")
	}
	addMapCalibrationWay(m, mapSize/2, conv.ids)
	m.stamp(conv.timestamp)
	return m, nil
}
