package vectorio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb/geojson"
)

// GeoJSONWriter produces a single-component RFC 7946 dataset. GeoJSON
// carries no spatial reference of its own, so only EPSG:4326 layers can
// be written.
type GeoJSONWriter struct{}

func NewGeoJSONWriter() *GeoJSONWriter {
	return &GeoJSONWriter{}
}

func (w *GeoJSONWriter) WriteDataset(ctx context.Context, dir, baseName string, schema Schema, feats []Feature) (Dataset, error) {
	if err := schema.Validate(); err != nil {
		return Dataset{}, err
	}
	if schema.SRID != 4326 {
		return Dataset{}, fmt.Errorf("geojson requires EPSG:4326, got %d", schema.SRID)
	}

	fc := geojson.NewFeatureCollection()
	for n, feat := range feats {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		f := geojson.NewFeature(feat.Point)
		for _, field := range schema.Fields {
			v, err := attributeValue(field, feat)
			if err != nil {
				return Dataset{}, fmt.Errorf("feature %d: %w", n, err)
			}
			f.Properties[field.Name] = v
		}
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return Dataset{}, fmt.Errorf("encoding feature collection: %w", err)
	}

	path := filepath.Join(dir, baseName+".geojson")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Dataset{}, fmt.Errorf("writing geojson: %w", err)
	}

	return Dataset{Dir: dir, BaseName: baseName, Files: []string{path}}, nil
}
