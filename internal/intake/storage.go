package intake

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"leadhub/internal/errors"

	"github.com/google/uuid"
)

// FileStorage keeps uploaded and cleaned files on the local filesystem.
// Names are made unique with a timestamp and a uuid fragment so two
// providers uploading "leads.csv" in the same second don't collide.
type FileStorage struct {
	basePath string
}

// NewFileStorage creates storage rooted at basePath.
func NewFileStorage(basePath string) *FileStorage {
	return &FileStorage{basePath: basePath}
}

// Store writes the stream to a uniquely named file and returns its path.
func (s *FileStorage) Store(ctx context.Context, src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", errors.StorageError("failed to create storage directory", err)
	}

	ext := filepath.Ext(filename)
	base := filename[:len(filename)-len(ext)]
	unique := fmt.Sprintf("%s_%s_%s%s",
		base, time.Now().Format("20060102_150405"), uuid.New().String()[:8], ext)
	path := filepath.Join(s.basePath, unique)

	dst, err := os.Create(path)
	if err != nil {
		return "", errors.StorageError("failed to create destination file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", errors.StorageError("failed to write file contents", err)
	}
	return path, nil
}

// Open returns a reader for a stored file.
func (s *FileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.StorageError("failed to open stored file", err)
	}
	return f, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *FileStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.StorageError("failed to delete stored file", err)
	}
	return nil
}
