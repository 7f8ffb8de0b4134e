// Package config loads a project's compilation configuration (a
// tsconfig-style JSON file) and resolves it into a compilation unit.
//
// Failure policy: a configuration that cannot be read, parsed, or resolved
// surfaces as a single diag.KnownError whose message is ready for display —
// resolution collects every error before failing so a broken project can be
// fixed in one pass. Building the unit itself does not fail for well-formed
// inputs.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gencat/internal/diag"
	"gencat/internal/source"
	"gencat/internal/unit"
)

// rawConfig mirrors the JSON shape of a configuration file. Pointer slices
// distinguish "absent" from "declared empty": a config that declares
// "files": [] overrides an inherited list, one that omits it does not.
type rawConfig struct {
	Extends         string                     `json:"extends"`
	Files           *[]string                  `json:"files"`
	Include         *[]string                  `json:"include"`
	Exclude         *[]string                  `json:"exclude"`
	CompilerOptions map[string]json.RawMessage `json:"compilerOptions"`
}

// chainEntry is one config in an extends chain, base-most first.
type chainEntry struct {
	path string
	dir  string
	raw  rawConfig
}

// Load resolves the configuration file at path into a compilation unit.
// cache may be nil to disable the unit digest cache.
//
// Reading or JSON-parsing the file fails with a KnownError carrying the
// underlying error. Resolution failures (bad extends, unknown options,
// missing files, empty input set) fail with one KnownError carrying every
// message, newline-joined, in resolver order.
func Load(path string, cache *unit.DiskCache) (*unit.Unit, error) {
	raw, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	chain, errs := loadChain(path, raw)
	files, opts, resolveErrs := resolve(chain)
	errs = append(errs, resolveErrs...)
	if len(errs) > 0 {
		return nil, diag.KnownJoin(errs)
	}

	return unit.New(path, files, opts, cache), nil
}

// readConfig reads and JSON-parses one configuration file using the
// compiler's file-reading convention (BOM and UTF-16 aware).
func readConfig(path string) (rawConfig, error) {
	var raw rawConfig
	content, _, err := source.ReadFileText(path)
	if err != nil {
		return raw, diag.Knownf("error reading %s: %v", path, err)
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return raw, diag.Knownf("error parsing %s: %v", path, err)
	}
	return raw, nil
}

// loadChain follows the extends chain from the already-parsed root config,
// returning entries base-most first. Problems with extended configs are
// resolution errors, not immediate failures.
func loadChain(rootPath string, root rawConfig) ([]chainEntry, []string) {
	var errs []string

	entry := chainEntry{path: rootPath, dir: filepath.Dir(rootPath), raw: root}
	chain := []chainEntry{entry}
	visited := map[string]bool{absKey(rootPath): true}

	for chain[0].raw.Extends != "" {
		base := chain[0]
		target := base.raw.Extends
		if filepath.Ext(target) == "" {
			target += ".json"
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(base.dir, target)
		}

		if visited[absKey(target)] {
			errs = append(errs, fmt.Sprintf("%s: configuration extends cycle through %s", base.path, target))
			break
		}
		visited[absKey(target)] = true

		raw, err := readConfig(target)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: cannot extend %s: %v", base.path, target, err))
			break
		}
		chain = append([]chainEntry{{path: target, dir: filepath.Dir(target), raw: raw}}, chain...)
	}

	return chain, errs
}

func absKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.ToSlash(abs)
}
