package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// KV is a string key-value store, the terminal stand-in for browser local
// storage.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemKV keeps values in memory.
type MemKV map[string]string

func (m MemKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemKV) Set(key, value string) error {
	m[key] = value
	return nil
}

// FileKV stores all keys in one JSON object file. Every Get rereads the file
// so edits made by another process are picked up.
type FileKV struct {
	path string
}

// DefaultPath is storage.json under the user config directory.
func DefaultPath(dir string) string {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = filepath.Join(os.Getenv("HOME"), ".config")
		}
		dir = filepath.Join(base, "mapdraw")
	}
	return filepath.Join(dir, "storage.json")
}

// NewFileKV returns a store backed by path. The file is created on first Set.
func NewFileKV(path string) *FileKV { return &FileKV{path: path} }

// Path is the backing file.
func (f *FileKV) Path() string { return f.path }

func (f *FileKV) read() (map[string]string, error) {
	values := map[string]string{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return values, nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set writes the whole file through a temp file and rename so a watcher
// never sees a half-written file.
func (f *FileKV) Set(key, value string) error {
	values, err := f.read()
	if err != nil {
		// a corrupt file is replaced rather than blocking every save
		values = map[string]string{}
	}
	values[key] = value
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
