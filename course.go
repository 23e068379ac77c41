package course2osm

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const (
	courseElement      = "course"
	waypointElement    = "waypoint"
	waypointAttrPos    = "pos"
	waypointAttrHeight = "height"
)

// CourseWaypoint is a single point of a course in plane meters
type CourseWaypoint struct {
	X          float64
	Y          float64
	Height     *float64
	Properties map[string]string
}

// Course is an ordered list of waypoints with course-level properties (e.g. name)
type Course struct {
	Waypoints  []CourseWaypoint
	Properties map[string]string
}

// waypointFromElement reads waypoint micro-schema: pos="x y", optional height, everything else is a property
func waypointFromElement(el *etree.Element) (CourseWaypoint, error) {
	wp := CourseWaypoint{
		Properties: make(map[string]string),
	}
	hasPos := false
	for key, value := range attributes(el) {
		switch key {
		case waypointAttrPos:
			fields := strings.Fields(value)
			if len(fields) != 2 {
				return CourseWaypoint{}, &NumberFormatError{Entity: "waypoint " + el.Tag, Key: key, Value: value, Err: errors.New("expected two numbers")}
			}
			x, err := parseFloat("waypoint "+el.Tag, key, fields[0])
			if err != nil {
				return CourseWaypoint{}, err
			}
			y, err := parseFloat("waypoint "+el.Tag, key, fields[1])
			if err != nil {
				return CourseWaypoint{}, err
			}
			wp.X, wp.Y = x, y
			hasPos = true
		case waypointAttrHeight:
			height, err := parseFloat("waypoint "+el.Tag, key, value)
			if err != nil {
				return CourseWaypoint{}, err
			}
			wp.Height = &height
		default:
			wp.Properties[key] = value
		}
	}
	if !hasPos {
		return CourseWaypoint{}, &StructuralError{Reason: fmt.Sprintf("waypoint '%s' has no '%s' attribute", el.Tag, waypointAttrPos)}
	}
	return wp, nil
}

// toElement writes waypoint with given 1-based index
func (wp CourseWaypoint) toElement(idx int) *etree.Element {
	el := etree.NewElement(fmt.Sprintf("%s%d", waypointElement, idx))
	el.CreateAttr(waypointAttrPos, formatFloat(wp.X)+" "+formatFloat(wp.Y))
	if wp.Height != nil {
		el.CreateAttr(waypointAttrHeight, formatFloat(*wp.Height))
	}
	setAttributes(el, wp.Properties)
	return el
}

// CourseFromElement reads course from root element: attributes are course properties, children are waypoints
func CourseFromElement(root *etree.Element) (*Course, error) {
	children := root.ChildElements()
	course := &Course{
		Waypoints:  make([]CourseWaypoint, 0, len(children)),
		Properties: attributes(root),
	}
	for _, child := range children {
		wp, err := waypointFromElement(child)
		if err != nil {
			return nil, err
		}
		course.Waypoints = append(course.Waypoints, wp)
	}
	return course, nil
}

// ToElement builds course root element
func (course *Course) ToElement() *etree.Element {
	root := etree.NewElement(courseElement)
	setAttributes(root, course.Properties)
	for i, wp := range course.Waypoints {
		root.AddChild(wp.toElement(i + 1))
	}
	return root
}

// ParseCourseFile loads course file. Every failure is reported as *ParseCourseError carrying the path.
func ParseCourseFile(fileName string) (*Course, error) {
	root, err := loadXML(fileName)
	if err != nil {
		return nil, &ParseCourseError{Path: fileName, Err: err}
	}
	course, err := CourseFromElement(root)
	if err != nil {
		return nil, &ParseCourseError{Path: fileName, Err: err}
	}
	return course, nil
}

// SaveCourseFile writes course to given file
func SaveCourseFile(course *Course, fileName string) error {
	return saveXML(course.ToElement(), fileName)
}
