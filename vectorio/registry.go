package vectorio

import (
	"fmt"
	"slices"
)

// Registry resolves formats to writers. A missing format is a typed
// condition the caller can test for with errors.Is, not an import failure.
// The zero value is an empty registry.
type Registry struct {
	writers map[Format]Writer
}

// NewRegistry returns a registry with the built-in writers registered.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(FormatShapefile, NewShapefileWriter())
	r.Register(FormatGeoJSON, NewGeoJSONWriter())
	return r
}

func (r *Registry) Register(f Format, w Writer) {
	if r.writers == nil {
		r.writers = make(map[Format]Writer)
	}
	r.writers[f] = w
}

// Writer returns the writer for f, or an error wrapping ErrUnavailable
// that names the format.
func (r *Registry) Writer(f Format) (Writer, error) {
	w, ok := r.writers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnavailable, f)
	}
	return w, nil
}

// Formats lists the registered formats in lexical order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.writers))
	for f := range r.writers {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
