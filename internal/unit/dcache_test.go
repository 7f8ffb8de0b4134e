package unit

import (
	"crypto/sha256"
	"testing"
)

func TestDiskCachePutGet(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("gencat-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := sha256.Sum256([]byte("some-config"))
	in := UnitPayload{
		Schema:     unitCacheSchemaVersion,
		ConfigPath: "/proj/tsconfig.json",
		FilePaths:  []string{"/proj/a.ts", "/proj/b.ts"},
		FileHashes: []Digest{sha256.Sum256([]byte("a")), sha256.Sum256([]byte("b"))},
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out UnitPayload
	found, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if out.ConfigPath != in.ConfigPath || len(out.FilePaths) != 2 || out.FileHashes[1] != in.FileHashes[1] {
		t.Errorf("payload did not round trip: %+v", out)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("gencat-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	var out UnitPayload
	found, err := cache.Get(sha256.Sum256([]byte("never-stored")), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected a miss")
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("gencat-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := sha256.Sum256([]byte("old-schema"))
	in := UnitPayload{Schema: unitCacheSchemaVersion + 1}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out UnitPayload
	found, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("schema mismatch must read as a miss")
	}
}
