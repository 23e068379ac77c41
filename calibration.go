package course2osm

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// calibrationRing returns closed ring with corners at ±halfMapSize meters (map space, Y is not inverted)
func calibrationRing(halfMapSize int) orb.Ring {
	h := float64(halfMapSize)
	ring := orb.Ring{
		mapToGeo(-h, h),
		mapToGeo(h, h),
		mapToGeo(h, -h),
		mapToGeo(-h, -h),
	}
	return append(ring, ring[0])
}

// addMapCalibrationWay adds rectangle which lets a map viewer align course data with the map image.
// The way lists 5 node references for 4 nodes: the first node is repeated to close the loop.
func addMapCalibrationWay(m *OsmMap, halfMapSize int, ids *IDGenerator) *osm.Way {
	ring := calibrationRing(halfMapSize)
	corners := ring[:len(ring)-1]
	nodes := make([]*osm.Node, 0, len(corners))
	for _, pt := range corners {
		nodes = append(nodes, &osm.Node{
			ID:      osm.NodeID(ids.Next()),
			Lat:     pt.Lat(),
			Lon:     pt.Lon(),
			Visible: true,
		})
	}
	wayNodes := make(osm.WayNodes, 0, len(ring))
	for _, node := range nodes {
		wayNodes = append(wayNodes, osm.WayNode{ID: node.ID})
	}
	wayNodes = append(wayNodes, osm.WayNode{ID: nodes[0].ID})
	way := &osm.Way{
		ID:      osm.WayID(ids.Next()),
		Visible: true,
		Nodes:   wayNodes,
		Tags:    osm.Tags{{Key: TAG_TYPE, Value: TYPE_CALIBRATION_RECTANGLE}},
	}
	m.AddWay(way)
	m.AddNodes(nodes...)
	return way
}
