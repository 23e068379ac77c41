package course2osm

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

const (
	osmVersion = "0.6"
)

// OSMScanner is the common part of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OsmMap owns every node and way of a single map document. Ways reference nodes by ID only.
type OsmMap struct {
	Nodes osm.Nodes
	Ways  osm.Ways

	nodeIndex map[osm.NodeID]*osm.Node
}

// NewOsmMap returns empty map
func NewOsmMap() *OsmMap {
	return &OsmMap{
		Nodes:     osm.Nodes{},
		Ways:      osm.Ways{},
		nodeIndex: make(map[osm.NodeID]*osm.Node),
	}
}

// AddNodes appends nodes to map storage
func (m *OsmMap) AddNodes(nodes ...*osm.Node) {
	for _, node := range nodes {
		m.Nodes = append(m.Nodes, node)
		m.nodeIndex[node.ID] = node
	}
}

// AddWay appends way to map storage. Nodes of the way must be added separately.
func (m *OsmMap) AddWay(way *osm.Way) {
	m.Ways = append(m.Ways, way)
}

// Node returns node by its identifier
func (m *OsmMap) Node(id osm.NodeID) (*osm.Node, bool) {
	node, ok := m.nodeIndex[id]
	return node, ok
}

// WayNodes resolves node references of the way preserving their order
func (m *OsmMap) WayNodes(way *osm.Way) ([]*osm.Node, error) {
	nodes := make([]*osm.Node, 0, len(way.Nodes))
	for _, wayNode := range way.Nodes {
		node, ok := m.nodeIndex[wayNode.ID]
		if !ok {
			return nil, newStructuralError("", "way %d references missing node %d", way.ID, wayNode.ID)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Bound returns bounding box of all nodes
func (m *OsmMap) Bound() orb.Bound {
	if len(m.Nodes) == 0 {
		return orb.Bound{}
	}
	bound := m.Nodes[0].Point().Bound()
	for _, node := range m.Nodes[1:] {
		bound = bound.Extend(node.Point())
	}
	return bound
}

// bounds is written by hand: osm.Bounds carries no element name
type bounds struct {
	XMLName xml.Name `xml:"bounds"`
	MinLat  float64  `xml:"minlat,attr"`
	MinLon  float64  `xml:"minlon,attr"`
	MaxLat  float64  `xml:"maxlat,attr"`
	MaxLon  float64  `xml:"maxlon,attr"`
}

// stamp sets version and timestamp on entities which have none yet
func (m *OsmMap) stamp(ts time.Time) {
	for _, node := range m.Nodes {
		if node.Version == 0 {
			node.Version = 1
			node.Timestamp = ts
		}
	}
	for _, way := range m.Ways {
		if way.Version == 0 {
			way.Version = 1
			way.Timestamp = ts
		}
	}
}

// encode writes <osm> document: bounds, then nodes, then ways
func (m *OsmMap) encode(w io.Writer, generator string) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	start := xml.StartElement{
		Name: xml.Name{Local: "osm"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: osmVersion},
			{Name: xml.Name{Local: "generator"}, Value: generator},
		},
	}
	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}
	bound := m.Bound()
	err = enc.Encode(bounds{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	})
	if err != nil {
		return err
	}
	for _, node := range m.Nodes {
		err = enc.Encode(node)
		if err != nil {
			return errors.Wrapf(err, "Can't encode node %d", node.ID)
		}
	}
	for _, way := range m.Ways {
		err = enc.Encode(way)
		if err != nil {
			return errors.Wrapf(err, "Can't encode way %d", way.ID)
		}
	}
	err = enc.EncodeToken(start.End())
	if err != nil {
		return err
	}
	return enc.Flush()
}

// SaveOsmMap marshals the whole map in memory and writes it to given file
func SaveOsmMap(m *OsmMap, fileName string, generator string) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	err := m.encode(&buf, generator)
	if err != nil {
		return errors.Wrap(err, "Can't marshal OSM map")
	}
	buf.WriteByte('\n')
	err = os.WriteFile(fileName, buf.Bytes(), 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't write OSM map '%s'", fileName)
	}
	return nil
}

// LoadOsmMap reads nodes and ways of given map. Both *.osm (XML) and *.osm.pbf files are handled.
func LoadOsmMap(fileName string) (*OsmMap, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	var scanner OSMScanner
	// Guess file extension and prepare correct scanner
	ext := filepath.Ext(fileName)
	switch strings.ToLower(ext) {
	case ".osm", ".xml":
		scanner = osmxml.New(context.Background(), file)
	case ".pbf":
		scanner = osmpbf.New(context.Background(), file, 1)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, fileName)
	}
	defer scanner.Close()

	m := NewOsmMap()
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			m.AddNodes(obj)
		case *osm.Way:
			m.AddWay(obj)
		}
	}
	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't scan OSM map '%s'", fileName)
	}
	return m, nil
}

// tagsFromMap converts map to OSM tags sorted by key
func tagsFromMap(tagMap map[string]string) osm.Tags {
	keys := make([]string, 0, len(tagMap))
	for k := range tagMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make(osm.Tags, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, osm.Tag{Key: k, Value: tagMap[k]})
	}
	return tags
}
