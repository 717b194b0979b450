package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "Genesis01.htm")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("content mismatch: got %q, want %q", content, "second")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(tempDir)
	if len(entries) != 1 {
		t.Errorf("Expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.htm"), []byte("x"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestReplace(t *testing.T) {
	tempDir := t.TempDir()
	oldPath := filepath.Join(tempDir, "GEN01.htm")
	newPath := filepath.Join(tempDir, "Genesis01.htm")
	if err := os.WriteFile(oldPath, []byte("legacy"), 0644); err != nil {
		t.Fatalf("failed to create source file: %v", err)
	}

	if err := Replace(oldPath, newPath, []byte("modern")); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("old file still exists")
	}
	content, _ := os.ReadFile(newPath)
	if string(content) != "modern" {
		t.Errorf("content mismatch: got %q", content)
	}
}

func TestReplace_SameName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ruth01.htm")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := Replace(path, path, []byte("new")); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("content mismatch: got %q", content)
	}
}

func TestReplace_MissingOld(t *testing.T) {
	tempDir := t.TempDir()
	if err := Replace(filepath.Join(tempDir, "gone.htm"), filepath.Join(tempDir, "new.htm"), []byte("x")); err != nil {
		t.Errorf("Expected missing old file to be ignored, got %v", err)
	}
}
