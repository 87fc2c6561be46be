package storage

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestSave_WritesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalDocumentStore(dir, zap.NewNop())

	content := []byte("supporting evidence")
	if err := s.Save("doc.pdf", content); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "doc.pdf"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("content = %q, want %q", got, content)
	}
}

func TestSave_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewLocalDocumentStore(dir, zap.NewNop())

	if err := s.Save("a.png", []byte{0x89}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.png")); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestSave_RejectsTraversal(t *testing.T) {
	s := NewLocalDocumentStore(t.TempDir(), zap.NewNop())
	if err := s.Save("../escape.txt", []byte("x")); err == nil {
		t.Fatal("expected path traversal error, got nil")
	}
}

func TestRemove_DeletesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalDocumentStore(dir, zap.NewNop())

	if err := s.Save("doc.pdf", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Remove("doc.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.pdf")); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}
}

func TestRemove_MissingFileIsNoError(t *testing.T) {
	s := NewLocalDocumentStore(t.TempDir(), zap.NewNop())
	if err := s.Remove("never-written.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}

func TestRemove_RejectsTraversal(t *testing.T) {
	s := NewLocalDocumentStore(t.TempDir(), zap.NewNop())
	if err := s.Remove("../escape.txt"); err == nil {
		t.Fatal("expected path traversal error, got nil")
	}
}
