package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
}

func TestSnapshotTarXz(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"GEN01.htm": "<p>one</p>",
		"GEN02.htm": "<p>two</p>",
		"other.htm": "not listed",
	})

	dst := filepath.Join(t.TempDir(), "snap", "corpus.tar.xz")
	n, err := SnapshotTarXz(src, []string{"GEN01.htm", "GEN02.htm"}, dst)
	if err != nil {
		t.Fatalf("SnapshotTarXz failed: %v", err)
	}
	if n != int64(len("<p>one</p>")+len("<p>two</p>")) {
		t.Errorf("Expected %d bytes, got %d", len("<p>one</p>")+len("<p>two</p>"), n)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	defer f.Close()
	xzr, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz.NewReader failed: %v", err)
	}
	tr := tar.NewReader(xzr)

	var names []string
	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("tar read failed: %v", err)
		}
		if !h.ModTime.Equal(snapshotTime) {
			t.Errorf("Expected normalized mtime for %s, got %v", h.Name, h.ModTime)
		}
		names = append(names, h.Name)
	}
	if len(names) != 2 || names[0] != "GEN01.htm" || names[1] != "GEN02.htm" {
		t.Errorf("Unexpected entries: %v", names)
	}
}

func TestSnapshotIsReproducible(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"RUT01.htm": "ruth"})

	out := t.TempDir()
	a := filepath.Join(out, "a.tar.xz")
	b := filepath.Join(out, "b.tar.xz")
	if _, err := SnapshotTarXz(src, []string{"RUT01.htm"}, a); err != nil {
		t.Fatalf("first snapshot failed: %v", err)
	}
	if err := os.Chtimes(filepath.Join(src, "RUT01.htm"), snapshotTime.AddDate(5, 0, 0), snapshotTime.AddDate(5, 0, 0)); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}
	if _, err := SnapshotTarXz(src, []string{"RUT01.htm"}, b); err != nil {
		t.Fatalf("second snapshot failed: %v", err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Errorf("Expected identical snapshots")
	}
}

func TestSnapshotMissingFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "x.tar.xz")
	if _, err := SnapshotTarXz(t.TempDir(), []string{"missing.htm"}, dst); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRestore(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"GEN.htm": "list", "GEN01.htm": "chapter"})

	snap := filepath.Join(t.TempDir(), "corpus.tar.xz")
	if _, err := SnapshotTarXz(src, []string{"GEN.htm", "GEN01.htm"}, snap); err != nil {
		t.Fatalf("SnapshotTarXz failed: %v", err)
	}

	dst := t.TempDir()
	writeFiles(t, dst, map[string]string{"GEN01.htm": "converted"})

	names, err := Restore(snap, dst)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("Expected 2 restored files, got %v", names)
	}
	got, _ := os.ReadFile(filepath.Join(dst, "GEN01.htm"))
	if string(got) != "chapter" {
		t.Errorf("Expected restored content 'chapter', got %q", got)
	}

	got, _ = os.ReadFile(filepath.Join(dst, "GEN.htm"))
	if string(got) != "list" {
		t.Errorf("Expected 'list', got %q", got)
	}
}

func TestList(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"GEN.htm": "list", "GEN01.htm": "chapter"})

	snap := filepath.Join(t.TempDir(), "corpus.tar.xz")
	if _, err := SnapshotTarXz(src, []string{"GEN01.htm", "GEN.htm"}, snap); err != nil {
		t.Fatalf("SnapshotTarXz failed: %v", err)
	}

	names, err := List(snap)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "GEN01.htm" || names[1] != "GEN.htm" {
		t.Errorf("Expected names in archive order, got %v", names)
	}
}

func TestRestoreRejectsTraversal(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "evil.tar.gz")
	f, err := os.Create(snap)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	body := []byte("x")
	if err := tw.WriteHeader(&tar.Header{Name: "../escape.htm", Mode: 0644, Size: int64(len(body)), Typeflag: tar.TypeReg}); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	tw.Write(body)
	tw.Close()
	gw.Close()
	f.Close()

	if _, err := List(snap); err == nil {
		t.Error("Expected List to reject the traversal entry")
	}

	dir := t.TempDir()
	if _, err := Restore(snap, dir); err == nil {
		t.Error("Expected error for entry outside the target directory")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.htm")); !os.IsNotExist(err) {
		t.Error("Traversal entry was written")
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.zip")
	writeFiles(t, filepath.Dir(path), map[string]string{"corpus.zip": "zip"})
	if _, err := NewReader(path); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
