package fixture

import "log/slog"

type Config struct {
	// OutDir receives the finished fixtures. BaseName names both the
	// fixture files and every component inside a bundled dataset.
	OutDir   string
	BaseName string
	Formats  []string

	// Fill appends that many synthetic records to the canonical ones.
	Fill int

	// TempDir overrides the workspace root, empty means the system
	// default. KeepWorkspace retains workspaces for debugging.
	TempDir       string
	KeepWorkspace bool

	Logger *slog.Logger
}

func ConfigDefault() Config {
	return Config{
		OutDir:   "data",
		BaseName: "test_points",
		Formats:  []string{"shapefile"},
	}
}
