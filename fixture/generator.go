package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/sharkAndshark/mapflow/archive"
	"github.com/sharkAndshark/mapflow/vectorio"
)

// Artifact is one produced fixture file.
type Artifact struct {
	Format vectorio.Format
	Path   string
	Size   int64
}

// Generator materializes the fixture records into dataset artifacts under
// the configured output directory.
type Generator struct {
	registry *vectorio.Registry
	cfg      Config
	log      *slog.Logger
}

func New(registry *vectorio.Registry, cfg Config) *Generator {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{registry: registry, cfg: cfg, log: log}
}

// Generate runs the pipeline once per requested format: serialize the
// records into a throwaway workspace, package the produced components
// under OutDir. Writers are resolved up front so a missing capability
// surfaces before anything touches the filesystem. The first failure
// aborts the run.
func (g *Generator) Generate(ctx context.Context) ([]Artifact, error) {
	type job struct {
		format vectorio.Format
		writer vectorio.Writer
	}
	jobs := make([]job, 0, len(g.cfg.Formats))
	for _, name := range g.cfg.Formats {
		format := vectorio.Format(name)
		w, err := g.registry.Writer(format)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{format: format, writer: w})
	}

	recs := Records()
	if g.cfg.Fill > 0 {
		recs = append(recs, FillRecords(g.cfg.Fill)...)
	}

	schema := vectorio.Schema{
		SRID: 4326,
		Fields: []vectorio.Field{
			{Name: "name", Type: vectorio.TypeString},
			{Name: "value", Type: vectorio.TypeFloat},
		},
	}
	feats := make([]vectorio.Feature, 0, len(recs))
	for _, r := range recs {
		feats = append(feats, vectorio.Feature{
			Point:  orb.Point{r.Lon, r.Lat},
			Values: map[string]any{"name": r.Name, "value": r.Value},
		})
	}

	if err := os.MkdirAll(g.cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	artifacts := make([]Artifact, 0, len(jobs))
	for _, j := range jobs {
		artifact, err := g.generate(ctx, j.format, j.writer, schema, feats)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (g *Generator) generate(ctx context.Context, format vectorio.Format, writer vectorio.Writer, schema vectorio.Schema, feats []vectorio.Feature) (Artifact, error) {
	workDir, err := g.createWorkspace(format)
	if err != nil {
		return Artifact{}, err
	}
	if !g.cfg.KeepWorkspace {
		defer os.RemoveAll(workDir)
	}

	ds, err := writer.WriteDataset(ctx, workDir, g.cfg.BaseName, schema, feats)
	if err != nil {
		return Artifact{}, fmt.Errorf("writing %s dataset: %w", format, err)
	}
	g.log.Debug("dataset written", "format", format, "components", len(ds.Files))

	artifact, err := g.packageDataset(format, ds)
	if err != nil {
		return Artifact{}, err
	}
	g.log.Info("fixture created", "format", format, "path", artifact.Path, "size", artifact.Size)
	return artifact, nil
}

// createWorkspace allocates a guid-named scratch directory, the same
// layout the upload pipeline uses for incoming datasets.
func (g *Generator) createWorkspace(format vectorio.Format) (string, error) {
	tempDir := g.cfg.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	dir := filepath.Join(tempDir, "fixture-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating workspace: %w", err)
	}
	g.log.Debug("workspace created", "format", format, "dir", dir)
	return dir, nil
}

// packageDataset places the dataset under OutDir: a single component
// moves as-is, multiple components are bundled into a zip with every
// entry renamed under the base name. Either way an existing fixture is
// overwritten.
func (g *Generator) packageDataset(format vectorio.Format, ds vectorio.Dataset) (Artifact, error) {
	if len(ds.Files) == 0 {
		return Artifact{}, fmt.Errorf("%s writer produced no components", format)
	}

	if len(ds.Files) == 1 {
		src := ds.Files[0]
		dst := filepath.Join(g.cfg.OutDir, g.cfg.BaseName+filepath.Ext(src))
		if err := moveFile(src, dst); err != nil {
			return Artifact{}, fmt.Errorf("placing %s fixture: %w", format, err)
		}
		stat, err := os.Stat(dst)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Format: format, Path: dst, Size: stat.Size()}, nil
	}

	entries := make([]archive.Entry, 0, len(ds.Files))
	for _, f := range ds.Files {
		entries = append(entries, archive.Entry{Name: g.cfg.BaseName + filepath.Ext(f), Path: f})
	}
	dst := filepath.Join(g.cfg.OutDir, g.cfg.BaseName+".zip")
	size, err := archive.WriteZip(dst, entries)
	if err != nil {
		return Artifact{}, fmt.Errorf("packaging %s fixture: %w", format, err)
	}
	return Artifact{Format: format, Path: dst, Size: size}, nil
}

// moveFile renames src over dst, falling back to copy and remove when the
// rename crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return err
	}
	return os.Remove(src)
}
