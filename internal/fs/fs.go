package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PathResolver finds absolute paths for files under a project root.
type PathResolver struct {
	root string
}

// NewPathResolver creates a new PathResolver. An empty root means the
// current working directory.
func NewPathResolver(root string) (*PathResolver, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		return &PathResolver{root: wd}, nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory '%s': %w", root, err)
	}
	return &PathResolver{root: abs}, nil
}

// Root returns the absolute root directory.
func (r *PathResolver) Root() string {
	return r.root
}

// Resolve joins a slash-separated relative path onto the root.
func (r *PathResolver) Resolve(relativePath string) string {
	return filepath.Join(r.root, filepath.FromSlash(relativePath))
}

// Overwrite truncates an existing file and writes data into it. The file is
// never created: if path is gone by the time it is opened, the open fails.
func Overwrite(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

// GetFileSHA256 returns the hex encoded SHA256 of the file at path.
func GetFileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
