package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// JSONFileStore keeps the registry in a single JSON object:
// {"<Type>.<id>": {record}, ...}. Keys are written in registry order.
type JSONFileStore struct {
	path string
}

var _ Store = (*JSONFileStore)(nil)

// NewJSONFileStore returns a store backed by the file at path. The file is
// not touched until Load or Store.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Location() string { return s.path }

func (s *JSONFileStore) Close() error { return nil }

// Load reads and parses the file. A missing file yields no entries.
// Invalid JSON returns ErrMalformedData; other read errors ErrIOFailure.
func (s *JSONFileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	return decodeDocument(data)
}

// decodeDocument parses a whole backing document into entries.
func decodeDocument(data []byte) ([]Entry, error) {
	var entries []Entry
	err := types.WalkObject(data, func(key string, raw json.RawMessage) error {
		rec := types.NewRecord()
		if err := json.Unmarshal(raw, rec); err != nil {
			return fmt.Errorf("record %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Record: rec})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedData, err)
	}
	return entries, nil
}

// encodeDocument renders entries as one compact JSON object.
func encodeDocument(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		rb, err := e.Record.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", e.Key, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(rb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Store overwrites the file with entries using the temp-file, fsync, rename
// pattern, so readers see either the old document or the new one.
func (s *JSONFileStore) Store(entries []Entry) error {
	data, err := encodeDocument(entries)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrInvalidField, err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".hbnb-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
