package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"ui_automation/domain/interfaces"
)

const storageStateFile = "storage_state.json"

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type artifactStore struct {
	dir string
	now func() time.Time
}

// NewArtifactStore - creates a store rooted at dir, creating it when missing
func NewArtifactStore(dir string) (interfaces.ArtifactStore, error) {
	if dir == "" {
		dir = "artifacts"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &artifactStore{dir: dir, now: time.Now}, nil
}

// SaveScreenshot - writes png as <dir>/<scenario>-<timestamp>.png
func (s *artifactStore) SaveScreenshot(scenario string, png []byte) (string, error) {
	name := fmt.Sprintf("%s-%s.png", sanitize(scenario), s.now().Format("20060102-150405.000"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %w", err)
	}
	return path, nil
}

// StorageStatePath - returns where browser storage state is kept
func (s *artifactStore) StorageStatePath() string {
	return filepath.Join(s.dir, storageStateFile)
}

// HasStorageState - reports whether a storage state file exists
func (s *artifactStore) HasStorageState() bool {
	_, err := os.Stat(s.StorageStatePath())
	return err == nil
}

func sanitize(name string) string {
	name = strings.Trim(unsafeName.ReplaceAllString(name, "_"), "_")
	if name == "" {
		return "scenario"
	}
	return name
}
