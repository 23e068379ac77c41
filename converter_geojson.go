package course2osm

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// prepareGeoJSONCollection returns FeatureCollection with LineString feature per course preview
func prepareGeoJSONCollection(previews []coursePreview) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, preview := range previews {
		feature := geojson.NewLineStringFeature(lineToCoordinates(preview.Line))
		for k, v := range preview.Properties {
			feature.SetProperty(k, v)
		}
		feature.SetProperty(TAG_FILE_NAME, preview.FileName)
		feature.SetProperty(TAG_PATH, preview.Name)
		feature.SetProperty(TAG_USED, preview.Used)
		feature.SetProperty("waypoints", len(preview.Line))
		feature.SetProperty("length", preview.LengthMeters)
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can not convert previews to geojson format")
	}
	return b, nil
}

func lineToCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return pts2d
}
