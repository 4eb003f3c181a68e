// Package archive bundles dataset components into zip fixtures.
package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// Entry is one archive member: Name inside the archive, Path on disk.
type Entry struct {
	Name string
	Path string
}

// WriteZip creates or overwrites the archive at path and stores every
// entry deflated, in order. Returns the final archive size in bytes.
func WriteZip(path string, entries []Entry) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, e := range entries {
		if err := writeEntry(zw, e); err != nil {
			return 0, fmt.Errorf("archiving %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalizing archive: %w", err)
	}

	stat, err := out.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

func writeEntry(zw *zip.Writer, e Entry) error {
	in, err := os.Open(e.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(e.Name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
