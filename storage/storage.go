// Package storage persists small integer values in numbered slots.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ScalarStore loads and saves single integers by slot index.
type ScalarStore interface {
	Load(slot int) (int, error)
	Save(slot, value int) error
}

// ErrCorrupt is returned by Load when the storage file cannot be parsed.
var ErrCorrupt = errors.New("storage: corrupt storage file")

type storageFile struct {
	Slots map[int]int `json:"slots"`
}

// FileStore keeps every slot in one JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the slot value, or 0 when the file or slot does not exist yet.
func (fs *FileStore) Load(slot int) (int, error) {
	f, err := fs.read()
	if err != nil {
		return 0, err
	}
	return f.Slots[slot], nil
}

// Save writes value into slot. A corrupt file is moved aside to
// <path>.corrupt and replaced by a fresh one holding only this slot.
func (fs *FileStore) Save(slot, value int) error {
	f, err := fs.read()
	if errors.Is(err, ErrCorrupt) {
		aside := fs.path + ".corrupt"
		slog.Warn("replacing corrupt storage file", "path", fs.path, "moved_to", aside, "error", err)
		if err := os.Rename(fs.path, aside); err != nil {
			return fmt.Errorf("moving corrupt storage file: %w", err)
		}
		f, err = &storageFile{Slots: make(map[int]int)}, nil
	}
	if err != nil {
		return err
	}
	f.Slots[slot] = value

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding storage: %w", err)
	}
	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating storage directory: %w", err)
		}
	}
	return writeFileAtomic(fs.path, data)
}

// writeFileAtomic writes through a temp file in the same directory so a
// crash mid-write leaves the previous file intact.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp storage file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing storage file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing storage file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing storage file: %w", err)
	}
	return nil
}

func (fs *FileStore) read() (*storageFile, error) {
	f := &storageFile{Slots: make(map[int]int)}
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading storage file: %w", err)
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, fs.path, err)
	}
	if f.Slots == nil {
		f.Slots = make(map[int]int)
	}
	return f, nil
}

// MemoryStore is a ScalarStore that lives only as long as the process.
type MemoryStore struct {
	slots map[int]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[int]int)}
}

func (ms *MemoryStore) Load(slot int) (int, error) {
	return ms.slots[slot], nil
}

func (ms *MemoryStore) Save(slot, value int) error {
	ms.slots[slot] = value
	return nil
}
