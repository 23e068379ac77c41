package course2osm

import (
	"fmt"

	"github.com/paulmach/osm"
)

// toOsmNode converts waypoint to a new node. Waypoint properties go to the course namespace,
// height is stored as a plain 'height' tag.
func toOsmNode(wp CourseWaypoint, ids *IDGenerator) *osm.Node {
	pt := courseToGeo(wp.X, wp.Y)
	tagMap := prefixProperties(wp.Properties)
	if wp.Height != nil {
		tagMap[TAG_HEIGHT] = formatFloat(*wp.Height)
	}
	return &osm.Node{
		ID:      osm.NodeID(ids.Next()),
		Lat:     pt.Lat(),
		Lon:     pt.Lon(),
		Visible: true,
		Tags:    tagsFromMap(tagMap),
	}
}

// toCourseWaypoint is inverse of toOsmNode. Bad 'height' tag is an error, so are properties
// named as reserved waypoint attributes ('course.pos', 'course.height').
func toCourseWaypoint(node *osm.Node) (CourseWaypoint, error) {
	tagMap := node.Tags.Map()
	x, y := geoToCourse(node.Point())
	wp := CourseWaypoint{
		X:          x,
		Y:          y,
		Properties: unprefixTags(tagMap),
	}
	for _, reserved := range []string{waypointAttrPos, waypointAttrHeight} {
		if _, ok := wp.Properties[reserved]; ok {
			return CourseWaypoint{}, newStructuralError("", "node %d has reserved tag '%s'", node.ID, COURSE_PREFIX+reserved)
		}
	}
	if heightText, ok := tagMap[TAG_HEIGHT]; ok {
		height, err := parseFloat(fmt.Sprintf("node %d", node.ID), TAG_HEIGHT, heightText)
		if err != nil {
			return CourseWaypoint{}, err
		}
		wp.Height = &height
	}
	return wp, nil
}
