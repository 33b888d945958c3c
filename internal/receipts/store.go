// Package receipts keeps uploaded receipt images on local disk.
package receipts

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is where receipts are served from.
const URLPrefix = "/uploads/"

// Store writes receipts into a directory and hands out their public URLs.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir is the directory receipts are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save copies r into a new file named after the upload time and the original
// file name, and returns its URL.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitize(originalName))
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		name = fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString()[:8], sanitize(originalName))
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write receipt: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close receipt: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind a receipt URL. Unknown URLs and files that
// are already gone are not errors.
func (s *Store) Remove(url string) error {
	if !strings.HasPrefix(url, URLPrefix) {
		return nil
	}
	name := path.Base(url)
	if name == "." || name == "/" || name == ".." {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove receipt: %w", err)
	}
	return nil
}

func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	clean = strings.TrimLeft(clean, ".")
	if clean == "" {
		return "receipt"
	}
	return clean
}
