package course2osm

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(line orb.LineString) string {
	return wkt.MarshalString(line)
}

// prepareWKTLines returns line per course: '<fileName>;LINESTRING(...)'
func prepareWKTLines(previews []coursePreview) []byte {
	var sb strings.Builder
	for _, preview := range previews {
		sb.WriteString(fmt.Sprintf("%s;%s\n", preview.FileName, PrepareWKTLinestring(preview.Line)))
	}
	return []byte(sb.String())
}
