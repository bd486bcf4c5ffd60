package results

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes recorded outcomes under a state directory
// (e.g. .loadcell/results). The journal is an append-only JSON-lines
// file so external producers can write outcomes without coordination.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// JournalPath returns the path of the journal file.
func (s *Store) JournalPath() string {
	return filepath.Join(s.baseDir, "journal.ndjson")
}

// Append writes one record to the journal, creating the state directory
// on first use.
func (s *Store) Append(rec Record) (err error) {
	if rec.Method == "" {
		return errors.New("record missing method")
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(s.JournalPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return json.NewEncoder(f).Encode(rec)
}

// Records returns every journal entry in recorded order. A missing
// journal is clean state, not an error.
func (s *Store) Records() ([]Record, error) {
	f, err := os.Open(s.JournalPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []Record
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return records, nil
}

// Reset clears the state directory.
func (s *Store) Reset() error {
	return os.RemoveAll(s.baseDir)
}
