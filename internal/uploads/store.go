// Package uploads stores wardrobe item photos on local disk and hands out
// the filenames the HTTP layer serves back.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded images under a single directory. Filenames are
// generated server-side; client-supplied names only contribute the extension.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an uploaded image for a profile and returns its stored
// filename, shaped as <profileID>_<8 hex chars><ext>.
func (s *Store) Save(profileID string, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s%s", profileID, uuid.New().String()[:8], sanitizeExt(originalName))
	if err := s.write(name, r); err != nil {
		return "", err
	}
	return name, nil
}

// SaveTemp writes an image under a temp_ prefix for analyze-only requests.
// Callers remove it with Remove when done.
func (s *Store) SaveTemp(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("temp_%s%s", uuid.New().String()[:8], sanitizeExt(originalName))
	if err := s.write(name, r); err != nil {
		return "", err
	}
	return name, nil
}

// Read returns the stored image bytes for a filename.
func (s *Store) Read(filename string) ([]byte, error) {
	path, err := s.path(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", filename, err)
	}
	return data, nil
}

// Remove deletes a stored image. A missing file is not an error; item and
// image deletion are not transactional.
func (s *Store) Remove(filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload %s: %w", filename, err)
	}
	return nil
}

func (s *Store) write(name string, r io.Reader) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

// path rejects filenames that would escape the uploads directory.
func (s *Store) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}

// sanitizeExt keeps only a plausible extension from the client filename.
func sanitizeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext == "" || len(ext) > 8 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}

// ImageFormat maps a stored filename to the image subtype used for
// classification requests. Defaults to jpeg for unknown extensions.
func ImageFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	case ".gif":
		return "gif"
	default:
		return "jpeg"
	}
}
