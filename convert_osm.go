package course2osm

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ExtractedCourse is a course restored from a course-way together with its target file name
type ExtractedCourse struct {
	FileName string
	Course   *Course
}

// ConvertOSM restores every course-way of the map as a separate course file in outDir.
// Files are written only after every course-way has been converted.
func (conv *Converter) ConvertOSM(osmPath string, outDir string) error {
	st := time.Now()
	m, err := LoadOsmMap(osmPath)
	if err != nil {
		return err
	}
	courses, err := conv.ExtractCourses(m)
	if err != nil {
		return errors.Wrapf(err, "Can't extract courses from '%s'", osmPath)
	}
	targets := make([]string, len(courses))
	seen := make(map[string]struct{}, len(courses))
	for i, extracted := range courses {
		targets[i], err = courseTarget(outDir, extracted.FileName)
		if err != nil {
			return err
		}
		if _, ok := seen[targets[i]]; ok {
			return newStructuralError(osmPath, "several course ways share file name '%s'", extracted.FileName)
		}
		seen[targets[i]] = struct{}{}
	}
	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return errors.Wrapf(err, "Can't create output directory '%s'", outDir)
	}
	// file names may point into subdirectories; create them all before the first write
	for _, target := range targets {
		err = os.MkdirAll(filepath.Dir(target), 0755)
		if err != nil {
			return errors.Wrapf(err, "Can't create output directory '%s'", filepath.Dir(target))
		}
	}
	for i, extracted := range courses {
		err = SaveCourseFile(extracted.Course, targets[i])
		if err != nil {
			return err
		}
	}
	conv.logger.Info().
		Str("map", osmPath).
		Str("out", outDir).
		Int("courses", len(courses)).
		Dur("elapsed", time.Since(st)).
		Msg("Courses have been extracted")
	return nil
}

// ExtractCourses converts every way tagged as course-way. Other ways are ignored.
func (conv *Converter) ExtractCourses(m *OsmMap) ([]ExtractedCourse, error) {
	courses := []ExtractedCourse{}
	for _, way := range m.Ways {
		if !isCourseWay(way) {
			conv.logger.Debug().Int64("way", int64(way.ID)).Str("type", way.Tags.Find(TAG_TYPE)).Msg("Skip way")
			continue
		}
		fileName := way.Tags.Find(TAG_FILE_NAME)
		if fileName == "" {
			return nil, newStructuralError("", "course way %d has no '%s' tag", way.ID, TAG_FILE_NAME)
		}
		course, err := toCourse(way, m)
		if err != nil {
			return nil, err
		}
		conv.logger.Debug().Int64("way", int64(way.ID)).Str("file", fileName).Int("waypoints", len(course.Waypoints)).Msg("Course restored")
		courses = append(courses, ExtractedCourse{
			FileName: fileName,
			Course:   course,
		})
	}
	return courses, nil
}

// courseTarget returns path of course file inside dir. Names escaping dir are rejected.
func courseTarget(dir, fileName string) (string, error) {
	target := filepath.Join(dir, fileName)
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newStructuralError("", "course file name '%s' leaves output directory", fileName)
	}
	return target, nil
}
