package course2osm

import (
	"strconv"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// toOsmWay converts course to a new way and its nodes. Way keeps slot metadata as fixed tags and
// course properties in the course namespace.
func toOsmWay(course *Course, save Save, ids *IDGenerator) (*osm.Way, []*osm.Node) {
	nodes := make([]*osm.Node, 0, len(course.Waypoints))
	for _, wp := range course.Waypoints {
		nodes = append(nodes, toOsmNode(wp, ids))
	}
	wayNodes := make(osm.WayNodes, 0, len(nodes))
	for _, node := range nodes {
		wayNodes = append(wayNodes, osm.WayNode{ID: node.ID})
	}
	tagMap := prefixProperties(course.Properties)
	tagMap[TAG_TYPE] = TYPE_COURSE_WAY
	tagMap[TAG_FILE_NAME] = save.FileName
	tagMap[TAG_USED] = strconv.FormatBool(save.Used)
	tagMap[TAG_PATH] = save.Path
	way := &osm.Way{
		ID:      osm.WayID(ids.Next()),
		Visible: true,
		Nodes:   wayNodes,
		Tags:    tagsFromMap(tagMap),
	}
	return way, nodes
}

// isCourseWay checks if way has been produced from a course
func isCourseWay(way *osm.Way) bool {
	return way.Tags.Find(TAG_TYPE) == TYPE_COURSE_WAY
}

// toCourse is inverse of toOsmWay. Nodes order is preserved.
func toCourse(way *osm.Way, m *OsmMap) (*Course, error) {
	nodes, err := m.WayNodes(way)
	if err != nil {
		return nil, err
	}
	course := &Course{
		Waypoints:  make([]CourseWaypoint, 0, len(nodes)),
		Properties: unprefixTags(way.TagMap()),
	}
	for _, node := range nodes {
		wp, err := toCourseWaypoint(node)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't convert way %d", way.ID)
		}
		course.Waypoints = append(course.Waypoints, wp)
	}
	return course, nil
}
