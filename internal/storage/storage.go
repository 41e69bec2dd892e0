package storage

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Store persists uploaded files. Services depend on this interface so
// the filesystem stays out of the business logic.
type Store interface {
	// Save writes the content under a sanitized name and returns the
	// reference to record in the database.
	Save(name string, r io.Reader) (string, error)
}

// AllowedImage reports whether the filename carries one of the accepted
// image extensions. The check is case-insensitive.
func AllowedImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips any path components and normalizes the rest
// to a safe charset so a hostile filename cannot escape the upload dir.
func SanitizeFilename(name string) string {
	// Windows-style separators arrive verbatim from the client.
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// DiskStore writes files into a fixed directory, creating it on demand.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (d *DiskStore) Save(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return name, nil
}
