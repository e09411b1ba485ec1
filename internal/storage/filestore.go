package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// ErrInvalidFilename is returned for names carrying path separators or
// parent-directory sequences.
var ErrInvalidFilename = fmt.Errorf("invalid filename")

// FileStore keeps uploaded images in a single directory, keyed by
// system-generated filenames. User-supplied names never touch the disk.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// AllowedExtension reports whether the filename has an accepted image extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[Ext(filename)]
}

// Ext returns the lowercased extension without the leading dot.
func Ext(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// SanitizeFilename strips directory components and characters that could be
// used for path traversal, keeping the original name usable as metadata.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// NewStoredName generates a unique filename preserving the original extension.
func NewStoredName(originalFilename string) string {
	return uuid.New().String() + "." + Ext(originalFilename)
}

// Save writes the reader's contents under the given stored name.
func (s *FileStore) Save(name string, r io.Reader) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *FileStore) Remove(name string) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Open opens a stored file for reading.
func (s *FileStore) Open(name string) (*os.File, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Resolve maps a stored name to its path inside the upload directory,
// rejecting anything that could escape it.
func (s *FileStore) Resolve(name string) (string, error) {
	if name == "" ||
		strings.Contains(name, "..") ||
		strings.ContainsAny(name, "/\\") {
		return "", ErrInvalidFilename
	}
	return filepath.Join(s.dir, name), nil
}
