// Package vectorio writes point datasets in the vector formats MapFlow
// accepts for upload.
package vectorio

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Format identifies a dataset serialization.
type Format string

const (
	FormatShapefile Format = "shapefile"
	FormatGeoJSON   Format = "geojson"
)

// ErrUnavailable is returned when no writer for the requested format is
// registered.
var ErrUnavailable = errors.New("vector format unavailable")

type FieldType uint8

const (
	TypeString FieldType = iota
	TypeFloat
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Field is a single attribute column of a layer.
type Field struct {
	Name string
	Type FieldType
}

// Schema describes the single point layer of a dataset. The layer itself
// is named after the dataset base name.
type Schema struct {
	SRID   int
	Fields []Field
}

// Validate checks the layer definition before any file is produced.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.New("field with empty name")
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Feature is one record: a point geometry with attribute values keyed by
// field name.
type Feature struct {
	Point  orb.Point
	Values map[string]any
}

// Dataset reports what a write actually produced. Files lists only
// components that exist on disk; optional components the writer could not
// produce are simply absent.
type Dataset struct {
	Dir      string
	BaseName string
	Files    []string
}

// Writer serializes a point layer into dir under baseName.
type Writer interface {
	WriteDataset(ctx context.Context, dir, baseName string, schema Schema, feats []Feature) (Dataset, error)
}

// attributeValue extracts the value for field f and checks it against the
// declared type. Mismatches are errors, not coercions.
func attributeValue(f Field, feat Feature) (any, error) {
	v, ok := feat.Values[f.Name]
	if !ok {
		return nil, fmt.Errorf("missing value for field %q", f.Name)
	}
	switch f.Type {
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeFloat:
		if n, ok := v.(float64); ok {
			return n, nil
		}
	}
	return nil, fmt.Errorf("field %q: value %v is not a %s", f.Name, v, f.Type)
}
