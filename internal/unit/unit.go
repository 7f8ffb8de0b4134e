// Package unit builds the compilation unit handed to the generator: the
// resolved source file list plus the effective options from the project's
// configuration. A unit is constructed once per invocation and is immutable
// afterwards.
package unit

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gencat/internal/diag"
	"gencat/internal/source"
)

// Options is the effective option set resolved from compilerOptions,
// defaults already applied.
type Options struct {
	OutDir    string
	RootDir   string
	Target    string
	Strict    bool
	SourceMap bool
}

// DefaultOptions returns the option values used when the configuration
// leaves them unset.
func DefaultOptions() Options {
	return Options{
		Target: "es2020",
	}
}

// Unit is the resolved compilation unit: file list, options, and the
// FileSet holding preloaded source content. IO failures during preload are
// recorded in Bag rather than failing construction; a well-formed
// configuration never makes New return abnormally.
type Unit struct {
	ConfigPath string
	Files      []string
	Options    Options
	FileSet    *source.FileSet
	Bag        *diag.Bag
	// Changed lists the files whose content digest differs from the
	// previous run, when the digest cache is enabled and had an entry.
	// Nil means no cache data was available and everything counts as changed.
	Changed []string
}

// New constructs a unit from an already-resolved file list. Sources are read
// concurrently, then registered in FileSet order matching files. When cache
// is non-nil, the per-file digests are compared against the previous run and
// stored back for the next one; cache failures are ignored, the cache is an
// optimization and never part of the contract.
func New(configPath string, files []string, opts Options, cache *DiskCache) *Unit {
	u := &Unit{
		ConfigPath: configPath,
		Files:      files,
		Options:    opts,
		FileSet:    source.NewFileSetWithBase(filepath.Dir(configPath)),
		Bag:        diag.NewBag(128),
	}

	contents := make([][]byte, len(files))
	flags := make([]source.FileFlags, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			contents[i], flags[i], errs[i] = source.ReadFileText(path)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures land in errs

	for i, path := range files {
		if errs[i] != nil {
			id := u.FileSet.AddVirtual(path, nil)
			u.Bag.Add(diag.NewError(diag.IOLoadFileError,
				source.Span{File: id},
				fmt.Sprintf("cannot read %s: %v", path, errs[i])).WithSource("config"))
			continue
		}
		u.FileSet.Add(path, contents[i], flags[i])
	}

	if cache != nil {
		u.diffAgainstCache(cache)
	}
	return u
}

// diffAgainstCache fills Changed from the previous run's digests and writes
// the current ones back. Best effort on both sides.
func (u *Unit) diffAgainstCache(cache *DiskCache) {
	key := cacheKey(u.ConfigPath)

	var prev UnitPayload
	if ok, err := cache.Get(key, &prev); err == nil && ok {
		known := make(map[string]Digest, len(prev.FilePaths))
		for i, p := range prev.FilePaths {
			known[p] = prev.FileHashes[i]
		}
		u.Changed = make([]string, 0)
		for _, path := range u.Files {
			f, ok := u.FileSet.GetByPath(path)
			if !ok {
				continue
			}
			if old, seen := known[f.Path]; !seen || old != f.Hash {
				u.Changed = append(u.Changed, path)
			}
		}
	}

	payload := UnitPayload{
		Schema:     unitCacheSchemaVersion,
		ConfigPath: u.ConfigPath,
	}
	for _, path := range u.Files {
		if f, ok := u.FileSet.GetByPath(path); ok {
			payload.FilePaths = append(payload.FilePaths, f.Path)
			payload.FileHashes = append(payload.FileHashes, f.Hash)
		}
	}
	if err := cache.Put(key, &payload); err != nil && os.Getenv("GENCAT_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "gencat: cache write failed: %v\n", err)
	}
}
