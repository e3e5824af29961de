package crawler

import (
	"path/filepath"
	"testing"
)

func TestBoltStorage(t *testing.T) {
	s := &BoltStorage{DBPath: filepath.Join(t.TempDir(), "state", "crawl.db")}
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer s.Close()

	visited, err := s.IsVisited(42)
	if err != nil {
		t.Fatalf("IsVisited() error = %v", err)
	}
	if visited {
		t.Error("fresh store should not report visited")
	}

	if err := s.Visited(42); err != nil {
		t.Fatalf("Visited() error = %v", err)
	}
	visited, err = s.IsVisited(42)
	if err != nil {
		t.Fatalf("IsVisited() error = %v", err)
	}
	if !visited {
		t.Error("request 42 should be visited after marking")
	}

	fetched, err := s.IsPDFFetched("https://site/a.pdf")
	if err != nil {
		t.Fatalf("IsPDFFetched() error = %v", err)
	}
	if fetched {
		t.Error("fresh store should not report pdf fetched")
	}

	if err := s.MarkPDFFetched("https://site/a.pdf"); err != nil {
		t.Fatalf("MarkPDFFetched() error = %v", err)
	}
	fetched, err = s.IsPDFFetched("https://site/a.pdf")
	if err != nil {
		t.Fatalf("IsPDFFetched() error = %v", err)
	}
	if !fetched {
		t.Error("pdf should be fetched after marking")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	visited, _ = s.IsVisited(42)
	fetched, _ = s.IsPDFFetched("https://site/a.pdf")
	if visited || fetched {
		t.Error("Clear() should wipe both buckets")
	}
}
