package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage keeps uploaded media on local disk and hands out public URLs for
// it. It is the self-hosted stand-in for the object storage bucket the
// hosted deployment used.
type Storage struct {
	rootPath string
	baseURL  string
}

func New(rootPath, baseURL string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "media/../"
	p := filepath.Clean(rootPath)

	// os.ModePerm (0777) is masked by the system's umask. 0755 is a common, safer default.
	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}

	return &Storage{rootPath: p, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes a file under the media root and returns its public URL.
// The caller provides a name it already generated; only the base name is
// used, so a crafted filename cannot escape the root.
func (s *Storage) Save(filename string, data io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	fullPath := filepath.Join(s.rootPath, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Root returns the directory served as static media.
func (s *Storage) Root() string {
	return s.rootPath
}
