package bookmark

import (
	"fmt"
	"os"
	"strings"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/log"
	"github.com/couch-cli/couch/where"
	"github.com/samber/mo"
)

// Store is a handle on one bookmark record file.
type Store struct {
	path string
	lock fileLock
}

// NewStore creates a store over the given record file path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: fileLock{path: path + ".lock"},
	}
}

// Default returns the store backed by the application's localized bookmark file.
func Default() *Store {
	return NewStore(where.Bookmarks())
}

// Add appends one record. Pre-existing identical keys are left untouched;
// history is preserved and the latest record wins on read.
func (s *Store) Add(b Bookmark) error {
	if err := b.validate(); err != nil {
		return err
	}

	if err := s.lock.acquire(); err != nil {
		return err
	}
	defer s.lock.release()

	f, err := filesystem.API().OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open bookmark store: %w", err)
	}

	if _, err = f.WriteString(b.encode()); err != nil {
		_ = f.Close()
		return fmt.Errorf("append bookmark: %w", err)
	}
	return f.Close()
}

// Find returns the most recently appended record matching both keys.
func (s *Store) Find(mediaPath, name string) (Bookmark, error) {
	records, err := s.readAll()
	if err != nil {
		return Bookmark{}, err
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].MediaPath == mediaPath && records[i].Name == name {
			return records[i], nil
		}
	}

	return Bookmark{}, fmt.Errorf("%w: %q for %s", ErrNotFound, name, mediaPath)
}

// List returns every record for the media path in insertion order,
// including historical duplicates of the same name.
func (s *Store) List(mediaPath string) ([]Bookmark, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	matched := make([]Bookmark, 0, len(records))
	for _, record := range records {
		if record.MediaPath == mediaPath {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Delete removes records scoped to the media path: every record matching
// (path, name) when a name is given, every record for the path otherwise.
// The store file is rewritten through a temp file and an atomic rename, so a
// crash mid-delete cannot leave a truncated or duplicated file behind.
// It returns the number of removed records.
func (s *Store) Delete(mediaPath string, name mo.Option[string]) (int, error) {
	if err := s.lock.acquire(); err != nil {
		return 0, err
	}
	defer s.lock.release()

	records, err := s.readAll()
	if err != nil {
		return 0, err
	}

	kept := make([]Bookmark, 0, len(records))
	for _, record := range records {
		match := record.MediaPath == mediaPath
		if wanted, ok := name.Get(); ok {
			match = match && record.Name == wanted
		}
		if !match {
			kept = append(kept, record)
		}
	}

	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	var b strings.Builder
	for _, record := range kept {
		b.WriteString(record.encode())
	}

	tmp := s.path + ".tmp"
	if err := filesystem.API().WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return 0, fmt.Errorf("write bookmark store: %w", err)
	}
	if err := filesystem.API().Rename(tmp, s.path); err != nil {
		return 0, fmt.Errorf("replace bookmark store: %w", err)
	}

	return removed, nil
}

// readAll decodes every well-formed record in file order.
// A missing store file is an empty store, not an error.
func (s *Store) readAll() ([]Bookmark, error) {
	data, err := filesystem.API().ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmark store: %w", err)
	}

	var records []Bookmark
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		record, err := decodeRecord(line)
		if err != nil {
			log.Warnf("skipping %v", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
