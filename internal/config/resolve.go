package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gencat/internal/unit"
)

// knownTargets are the accepted "target" option values.
var knownTargets = map[string]bool{
	"es2015": true, "es2016": true, "es2017": true, "es2018": true,
	"es2019": true, "es2020": true, "es2021": true, "es2022": true,
	"esnext": true,
}

// defaultExcludes are filtered out of include-driven input sets unless the
// configuration declares its own exclude list.
var defaultExcludes = []string{"node_modules", "**/node_modules/**"}

// resolve expands a loaded extends chain into the final file list and
// effective options. All errors are collected and returned together, in the
// order encountered: options first, then input-set problems.
func resolve(chain []chainEntry) ([]string, unit.Options, []string) {
	var errs []string

	opts := resolveOptions(chain, &errs)
	files := resolveInputs(chain, opts, &errs)
	return files, opts, errs
}

// resolveOptions merges compilerOptions base-first and decodes them into the
// typed option set. Unknown option names and wrong value types are
// resolution errors; map keys are visited in sorted order so the error list
// is deterministic.
func resolveOptions(chain []chainEntry, errs *[]string) unit.Options {
	opts := unit.DefaultOptions()

	for _, entry := range chain {
		keys := make([]string, 0, len(entry.raw.CompilerOptions))
		for k := range entry.raw.CompilerOptions {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			value := entry.raw.CompilerOptions[key]
			if err := applyOption(&opts, entry.dir, key, value); err != nil {
				*errs = append(*errs, fmt.Sprintf("%s: %v", entry.path, err))
			}
		}
	}
	return opts
}

func applyOption(opts *unit.Options, baseDir, key string, value json.RawMessage) error {
	switch key {
	case "outDir":
		return applyPathOption(&opts.OutDir, baseDir, key, value)
	case "rootDir":
		return applyPathOption(&opts.RootDir, baseDir, key, value)
	case "target":
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("compiler option 'target' requires a value of type string")
		}
		if !knownTargets[s] {
			return fmt.Errorf("invalid value %q for compiler option 'target'", s)
		}
		opts.Target = s
		return nil
	case "strict":
		return applyBoolOption(&opts.Strict, key, value)
	case "sourceMap":
		return applyBoolOption(&opts.SourceMap, key, value)
	default:
		return fmt.Errorf("unknown compiler option '%s'", key)
	}
}

func applyPathOption(dst *string, baseDir, key string, value json.RawMessage) error {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return fmt.Errorf("compiler option '%s' requires a value of type string", key)
	}
	if !filepath.IsAbs(s) {
		s = filepath.Join(baseDir, s)
	}
	*dst = s
	return nil
}

func applyBoolOption(dst *bool, key string, value json.RawMessage) error {
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return fmt.Errorf("compiler option '%s' requires a value of type boolean", key)
	}
	*dst = b
	return nil
}

// resolveInputs produces the input file list. An explicit "files" list wins
// over include/exclude globs; each is resolved relative to the config that
// declared it, with derived configs overriding base ones wholesale.
func resolveInputs(chain []chainEntry, opts unit.Options, errs *[]string) []string {
	filesEntry := lastDeclaring(chain, func(r rawConfig) bool { return r.Files != nil })
	includeEntry := lastDeclaring(chain, func(r rawConfig) bool { return r.Include != nil })
	excludeEntry := lastDeclaring(chain, func(r rawConfig) bool { return r.Exclude != nil })

	if filesEntry != nil {
		var out []string
		for _, rel := range *filesEntry.raw.Files {
			path := rel
			if !filepath.IsAbs(path) {
				path = filepath.Join(filesEntry.dir, path)
			}
			if _, err := os.Stat(path); err != nil {
				*errs = append(*errs, fmt.Sprintf("%s: file '%s' not found", filesEntry.path, rel))
				continue
			}
			out = append(out, path)
		}
		if len(out) == 0 && len(*filesEntry.raw.Files) == 0 {
			*errs = append(*errs, fmt.Sprintf("%s: the 'files' list in config file is empty", filesEntry.path))
		}
		return out
	}

	include := []string{"**/*.ts"}
	includeDir := chain[len(chain)-1].dir
	if includeEntry != nil {
		include = *includeEntry.raw.Include
		includeDir = includeEntry.dir
	}

	exclude := defaultExcludes
	if excludeEntry != nil {
		exclude = *excludeEntry.raw.Exclude
	}

	for _, pat := range append(append([]string{}, include...), exclude...) {
		if err := checkPattern(pat); err != nil {
			*errs = append(*errs, fmt.Sprintf("malformed glob pattern '%s'", pat))
		}
	}

	out := expandIncludes(includeDir, include, exclude)
	if len(out) == 0 {
		*errs = append(*errs, fmt.Sprintf(
			"no inputs were found in config file '%s': 'include' paths were %v and 'exclude' paths were %v",
			chain[len(chain)-1].path, include, exclude))
	}
	return out
}

func lastDeclaring(chain []chainEntry, pred func(rawConfig) bool) *chainEntry {
	for i := len(chain) - 1; i >= 0; i-- {
		if pred(chain[i].raw) {
			return &chain[i]
		}
	}
	return nil
}
