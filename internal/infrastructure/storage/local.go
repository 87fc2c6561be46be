package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DocumentStore persists supporting-document bytes outside the database.
type DocumentStore interface {
	// Save writes content under name inside the store's base directory.
	Save(name string, content []byte) error
	// Remove deletes a previously saved document. Callers use it to undo
	// a disk write when the surrounding transaction rolls back; removing
	// a name that does not exist is not an error.
	Remove(name string) error
}

// LocalDocumentStore writes uploads to a directory on local disk.
type LocalDocumentStore struct {
	baseDir string
	logger  *zap.Logger
}

func NewLocalDocumentStore(baseDir string, logger *zap.Logger) *LocalDocumentStore {
	return &LocalDocumentStore{baseDir: baseDir, logger: logger}
}

func (s *LocalDocumentStore) Save(name string, content []byte) error {
	fullPath := filepath.Join(s.baseDir, name)
	if err := s.validatePath(fullPath); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		s.logger.Error("failed to create upload directory",
			zap.String("path", filepath.Dir(fullPath)),
			zap.Error(err))
		return fmt.Errorf("create upload directory: %w", err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		s.logger.Error("failed to write document",
			zap.String("path", fullPath),
			zap.Error(err))
		return fmt.Errorf("write document: %w", err)
	}

	s.logger.Debug("document written",
		zap.String("path", fullPath),
		zap.Int("size", len(content)))
	return nil
}

func (s *LocalDocumentStore) Remove(name string) error {
	fullPath := filepath.Join(s.baseDir, name)
	if err := s.validatePath(fullPath); err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed to remove document",
			zap.String("path", fullPath),
			zap.Error(err))
		return fmt.Errorf("remove document: %w", err)
	}
	return nil
}

// validatePath rejects names that escape the base directory.
func (s *LocalDocumentStore) validatePath(fullPath string) error {
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return fmt.Errorf("resolve base path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) && absPath != absBase {
		return fmt.Errorf("path escapes upload directory: %s", fullPath)
	}
	return nil
}
