package config

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// expandIncludes walks baseDir and returns every file matching one of the
// include patterns and none of the exclude patterns. Patterns use /-separated
// segments with `*`, `?` and `**` (any number of directories). Matching is
// relative to baseDir; results are absolute-ish (baseDir-joined) and sorted.
func expandIncludes(baseDir string, include, exclude []string) []string {
	var out []string

	_ = filepath.WalkDir(baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		rel, rerr := filepath.Rel(baseDir, p)
		if rerr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchAny(exclude, rel) || matchAny(exclude, rel+"/") {
				return fs.SkipDir
			}
			return nil
		}
		if matchAny(exclude, rel) {
			return nil
		}
		if matchAny(include, rel) {
			out = append(out, p)
		}
		return nil
	})

	sort.Strings(out)
	return out
}

func matchAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if matchGlob(pat, rel) {
			return true
		}
	}
	return false
}

// matchGlob matches a /-separated pattern against a /-separated relative
// path. `**` spans zero or more whole segments; other segments use
// path.Match semantics. A pattern naming a directory prefix (no trailing
// glob) matches everything under it, mirroring exclude-list expectations.
func matchGlob(pattern, rel string) bool {
	pat := strings.Split(strings.Trim(pattern, "/"), "/")
	name := strings.Split(rel, "/")
	if matchSegments(pat, name) {
		return true
	}
	// bare prefix: "node_modules" excludes node_modules/anything
	if !strings.ContainsAny(pattern, "*?[") && len(name) > len(pat) {
		return matchSegments(pat, name[:len(pat)])
	}
	return false
}

func matchSegments(pat, name []string) bool {
	if len(pat) == 0 {
		return len(name) == 0
	}
	if pat[0] == "**" {
		if matchSegments(pat[1:], name) {
			return true
		}
		if len(name) > 0 {
			return matchSegments(pat, name[1:])
		}
		return false
	}
	if len(name) == 0 {
		return false
	}
	if ok, err := path.Match(pat[0], name[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], name[1:])
}

// checkPattern reports malformed segment syntax, e.g. an unclosed character
// class.
func checkPattern(pattern string) error {
	for _, seg := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return err
		}
	}
	return nil
}
