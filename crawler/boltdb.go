package crawler

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocolly/colly/v2/storage"
	bolt "go.etcd.io/bbolt"
)

var (
	visitBucket = []byte("colly")
	pdfBucket   = []byte("pdfs")
)

// BoltStorage persists crawl state between runs: colly's visited set and
// cookies, plus the set of PDFs already fetched so a rerun does not
// download the same issues again.
type BoltStorage struct {
	DBPath string
	db     *bolt.DB
	mu     sync.RWMutex
}

// Init opens the BoltDB database and creates the buckets.
func (s *BoltStorage) Init() error {
	dbDir := filepath.Dir(s.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for BoltDB: %w", err)
	}

	db, err := bolt.Open(s.DBPath, 0600, nil)
	if err != nil {
		return fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(visitBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(pdfBucket)
		return err
	})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create buckets: %w", err)
	}

	s.db = db
	return nil
}

// Visited implements storage.Storage interface
func (s *BoltStorage) Visited(requestID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(visitBucket)
		key := []byte(fmt.Sprintf("v:%d", requestID))
		return b.Put(key, []byte("1"))
	})
}

// IsVisited implements storage.Storage interface
func (s *BoltStorage) IsVisited(requestID uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var visited bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(visitBucket)
		key := []byte(fmt.Sprintf("v:%d", requestID))
		v := b.Get(key)
		visited = v != nil
		return nil
	})
	return visited, err
}

// Cookies implements storage.Storage interface
func (s *BoltStorage) Cookies(u *url.URL) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cookies string
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(visitBucket)
		key := []byte(fmt.Sprintf("c:%s", u))
		v := b.Get(key)
		if v != nil {
			cookies = string(v)
		}
		return nil
	})
	return cookies
}

// SetCookies implements storage.Storage interface
func (s *BoltStorage) SetCookies(u *url.URL, cookies string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(visitBucket)
		key := []byte(fmt.Sprintf("c:%s", u))
		return b.Put(key, []byte(cookies))
	})
}

// MarkPDFFetched records that a PDF link was downloaded in some run.
func (s *BoltStorage) MarkPDFFetched(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pdfBucket).Put([]byte(url), []byte("1"))
	})
}

// IsPDFFetched reports whether a PDF link was downloaded in a prior run.
func (s *BoltStorage) IsPDFFetched(url string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fetched bool
	err := s.db.View(func(tx *bolt.Tx) error {
		fetched = tx.Bucket(pdfBucket).Get([]byte(url)) != nil
		return nil
	})
	return fetched, err
}

// Clear removes all persisted crawl state.
func (s *BoltStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{visitBucket, pdfBucket} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the BoltDB database.
func (s *BoltStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ensure BoltStorage implements storage.Storage interface
var _ storage.Storage = (*BoltStorage)(nil)
