package vectorio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	shp "github.com/jonas-p/go-shp"
)

// Attribute column defaults of the OGR shapefile driver.
const (
	dbfStringWidth    = 80
	dbfFloatWidth     = 24
	dbfFloatPrecision = 15
)

// ShapefileWriter produces ESRI shapefile datasets: .shp, .shx and .dbf,
// a .prj carrying the layer spatial reference, and a best-effort .cpg
// encoding hint.
type ShapefileWriter struct {
	log *slog.Logger
}

func NewShapefileWriter() *ShapefileWriter {
	return &ShapefileWriter{log: slog.Default()}
}

func (w *ShapefileWriter) WriteDataset(ctx context.Context, dir, baseName string, schema Schema, feats []Feature) (Dataset, error) {
	if err := schema.Validate(); err != nil {
		return Dataset{}, err
	}
	wkt, err := WKT(schema.SRID)
	if err != nil {
		return Dataset{}, err
	}

	if err := writeShapes(ctx, dir, baseName, schema, feats); err != nil {
		return Dataset{}, err
	}

	base := filepath.Join(dir, baseName)
	if err := os.WriteFile(base+".prj", []byte(wkt), 0644); err != nil {
		return Dataset{}, fmt.Errorf("writing prj: %w", err)
	}
	// The encoding hint is optional: a dataset without it is still
	// loadable, so a failure only drops the component.
	if err := os.WriteFile(base+".cpg", []byte("UTF-8"), 0644); err != nil {
		w.log.Warn("skipping cpg component", "error", err)
	}

	ds := Dataset{Dir: dir, BaseName: baseName}
	for _, ext := range []string{".shp", ".shx", ".dbf", ".prj"} {
		if _, err := os.Stat(base + ext); err != nil {
			return Dataset{}, fmt.Errorf("component %s missing after write: %w", ext, err)
		}
		ds.Files = append(ds.Files, base+ext)
	}
	if _, err := os.Stat(base + ".cpg"); err == nil {
		ds.Files = append(ds.Files, base+".cpg")
	}
	return ds, nil
}

func writeShapes(ctx context.Context, dir, baseName string, schema Schema, feats []Feature) error {
	shape, err := shp.Create(filepath.Join(dir, baseName+".shp"), shp.POINT)
	if err != nil {
		return fmt.Errorf("creating shapefile: %w", err)
	}
	defer shape.Close()

	fields := make([]shp.Field, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		switch f.Type {
		case TypeString:
			fields = append(fields, shp.StringField(f.Name, dbfStringWidth))
		case TypeFloat:
			fields = append(fields, shp.FloatField(f.Name, dbfFloatWidth, dbfFloatPrecision))
		default:
			return fmt.Errorf("field %q: unsupported type %s", f.Name, f.Type)
		}
	}
	shape.SetFields(fields)

	for n, feat := range feats {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := shape.Write(&shp.Point{X: feat.Point.Lon(), Y: feat.Point.Lat()})
		for k, f := range schema.Fields {
			v, err := attributeValue(f, feat)
			if err != nil {
				return fmt.Errorf("feature %d: %w", n, err)
			}
			if err := shape.WriteAttribute(int(row), k, v); err != nil {
				return fmt.Errorf("feature %d: field %q: %w", n, f.Name, err)
			}
		}
	}
	return nil
}
