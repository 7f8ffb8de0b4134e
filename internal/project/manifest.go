package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest holds tool defaults from a workspace gencat.toml:
//
//	[project]
//	config = "tsconfig.json"
//
//	[output]
//	color = "auto"
//	cache = true
type Manifest struct {
	// ConfigPath is the compilation config path, resolved against the
	// manifest's directory.
	ConfigPath string
	Color      string
	Cache      bool
}

type manifestFile struct {
	Project struct {
		Config string `toml:"config"`
	} `toml:"project"`
	Output struct {
		Color string `toml:"color"`
		Cache bool   `toml:"cache"`
	} `toml:"output"`
}

// DefaultManifest returns the values used when no manifest exists.
func DefaultManifest(dir string) Manifest {
	return Manifest{
		ConfigPath: filepath.Join(dir, "tsconfig.json"),
		Color:      "auto",
		Cache:      true,
	}
}

// LoadManifest parses a gencat.toml. Missing sections fall back to defaults.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	dir := filepath.Dir(path)
	out := DefaultManifest(dir)

	if meta.IsDefined("project", "config") {
		config := strings.TrimSpace(cfg.Project.Config)
		if config != "" && !filepath.IsAbs(config) {
			config = filepath.Join(dir, config)
		}
		if config != "" {
			out.ConfigPath = config
		}
	}
	if meta.IsDefined("output", "color") {
		out.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	}
	if meta.IsDefined("output", "cache") {
		out.Cache = cfg.Output.Cache
	}
	return out, nil
}
