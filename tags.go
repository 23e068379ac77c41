package course2osm

import "strings"

const (
	// COURSE_PREFIX is the reserved tag namespace for course and waypoint properties
	COURSE_PREFIX = "course."

	TAG_TYPE      = "type"
	TAG_FILE_NAME = "fileName"
	TAG_USED      = "used"
	TAG_PATH      = "name"
	TAG_HEIGHT    = "height"

	TYPE_COURSE_WAY            = "courseWay"
	TYPE_CALIBRATION_RECTANGLE = "calibration rectangle"
)

// prefixProperties returns properties keyed under the course namespace
func prefixProperties(properties map[string]string) map[string]string {
	tagged := make(map[string]string, len(properties))
	for k, v := range properties {
		tagged[COURSE_PREFIX+k] = v
	}
	return tagged
}

// unprefixTags returns tags from the course namespace with prefix stripped. Other tags are ignored.
func unprefixTags(tags map[string]string) map[string]string {
	properties := make(map[string]string)
	for k, v := range tags {
		if !strings.HasPrefix(k, COURSE_PREFIX) {
			continue
		}
		properties[strings.TrimPrefix(k, COURSE_PREFIX)] = v
	}
	return properties
}
