package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAndLookup(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("a.ts", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	f, ok := fs.GetByPath("a.ts")
	if !ok {
		t.Fatal("expected file to exist after Add")
	}
	if string(f.Content) != "hello world" {
		t.Errorf("unexpected content %q", f.Content)
	}

	// same path again gets a fresh ID, index points at the latest
	id2 := fs.Add("a.ts", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}
	f, _ = fs.GetByPath("a.ts")
	if f.ID != id2 {
		t.Errorf("expected index to point at latest version %d, got %d", id2, f.ID)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Error("old version should remain reachable by ID")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.ts", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1}, // 'a'
		{1, 1, 2}, // 'b'
		{2, 1, 3}, // '\n' counts as last col of its line
		{3, 2, 1}, // 'c'
		{4, 2, 2}, // 'd'
		{6, 3, 1}, // 'e'
		{7, 3, 2}, // 'f'
	}
	for _, c := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if start.Line != c.line || start.Col != c.col {
			t.Errorf("Resolve(off=%d) = %d:%d, want %d:%d", c.off, start.Line, start.Col, c.line, c.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "third",
		4: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.ts")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("expected normalized content, got %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestReadFileTextUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "utf16.ts")
	// "hi" as UTF-16 LE with BOM
	raw := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	content, flags, err := ReadFileText(path)
	if err != nil {
		t.Fatalf("ReadFileText: %v", err)
	}
	if string(content) != "hi" {
		t.Errorf("expected decoded %q, got %q", "hi", content)
	}
	if flags&FileDecodedUTF16 == 0 {
		t.Error("expected FileDecodedUTF16 flag")
	}
	if flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
}

func TestFormatPathDoesNotRewriteStored(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("src/a.ts", nil)
	f := fs.Get(id)

	if got := f.FormatPath("stored", "/anywhere"); got != "src/a.ts" {
		t.Errorf("stored mode must show the path as recorded, got %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "a.ts" {
		t.Errorf("basename mode = %q, want a.ts", got)
	}
}
