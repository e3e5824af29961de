package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hyperlocal/repository"
)

// SummaryStore persists a summary run as one JSON file, the default backend
// when no database is configured.
type SummaryStore struct {
	path string
}

func NewSummaryStore(path string) *SummaryStore {
	return &SummaryStore{path: path}
}

// Save writes to a temp file in the target directory and renames it over
// the previous run, so readers never observe a partial file.
func (s *SummaryStore) Save(ctx context.Context, summaries []repository.Summary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summaries-*.json")
	if err != nil {
		return fmt.Errorf("create temp summary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write summaries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close summary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Load returns the stored summaries; a missing file is an empty run, not
// an error.
func (s *SummaryStore) Load(ctx context.Context) ([]repository.Summary, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var summaries []repository.Summary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return summaries, nil
}

var _ repository.SummaryRepo = (*SummaryStore)(nil)
