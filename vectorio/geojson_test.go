package vectorio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharkAndshark/mapflow/vectorio"
)

func TestGeoJSONWriter_WriteDataset(t *testing.T) {
	defer filet.CleanUp(t)

	t.Run("success - single component feature collection", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		w := vectorio.NewGeoJSONWriter()

		ds, err := w.WriteDataset(context.Background(), dir, "test_points", pointSchema(), cityFeatures())
		require.NoError(t, err)
		require.Len(t, ds.Files, 1)
		assert.Equal(t, filepath.Join(dir, "test_points.geojson"), ds.Files[0])

		data, err := os.ReadFile(ds.Files[0])
		require.NoError(t, err)
		fc, err := geojson.UnmarshalFeatureCollection(data)
		require.NoError(t, err)
		require.Len(t, fc.Features, 3)

		first := fc.Features[0]
		pt, ok := first.Geometry.(orb.Point)
		require.True(t, ok)
		assert.InEpsilon(t, -74.006, pt.Lon(), 1e-9)
		assert.InEpsilon(t, 40.7128, pt.Lat(), 1e-9)
		assert.Equal(t, "New York", first.Properties["name"])
		assert.InEpsilon(t, 100.0, first.Properties["value"], 1e-9)
	})

	t.Run("success - empty layer", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		w := vectorio.NewGeoJSONWriter()

		ds, err := w.WriteDataset(context.Background(), dir, "empty", pointSchema(), nil)
		require.NoError(t, err)

		data, err := os.ReadFile(ds.Files[0])
		require.NoError(t, err)
		fc, err := geojson.UnmarshalFeatureCollection(data)
		require.NoError(t, err)
		assert.Empty(t, fc.Features)
	})

	t.Run("error - non wgs84 layer", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		w := vectorio.NewGeoJSONWriter()

		schema := pointSchema()
		schema.SRID = 3857
		_, err := w.WriteDataset(context.Background(), dir, "test_points", schema, cityFeatures())
		require.ErrorContains(t, err, "EPSG:4326")
	})

	t.Run("error - missing attribute value", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		w := vectorio.NewGeoJSONWriter()

		feats := cityFeatures()
		delete(feats[2].Values, "name")
		_, err := w.WriteDataset(context.Background(), dir, "test_points", pointSchema(), feats)
		require.ErrorContains(t, err, `missing value for field "name"`)
	})
}
