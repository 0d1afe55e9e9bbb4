package source

import (
	"context"
	"os"
	"path/filepath"
)

// LocalSource implements Source using the local filesystem.
type LocalSource struct {
	BaseDir string
}

// NewLocalSource creates a LocalSource rooted at the given directory.
// An empty baseDir resolves keys against the working directory.
func NewLocalSource(baseDir string) *LocalSource {
	return &LocalSource{BaseDir: baseDir}
}

// Fetch reads the file at key.
func (s *LocalSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := key
	if s.BaseDir != "" {
		path = filepath.Join(s.BaseDir, key)
	}
	return os.ReadFile(path)
}
