package storage

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
)

// LocalStore serves documents from the local filesystem, keyed by path. Used
// by the one-shot CLI; the server always goes through S3.
type LocalStore struct {
	log *slog.Logger
}

func NewLocalStore(logger *slog.Logger) *LocalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalStore{log: logger}
}

func (s *LocalStore) FetchDocument(_ context.Context, key string) ([]byte, error) {
	info, err := os.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %q: %w", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %q: %w", key, err)
	}
	if info.Size() > constants.MaxDocumentBytes {
		return nil, fmt.Errorf("file %q exceeds %d bytes: %w", key, constants.MaxDocumentBytes, common.ErrInvalidInput)
	}

	data, err := os.ReadFile(key)
	if err != nil {
		if _, ok := err.(*fs.PathError); ok && os.IsNotExist(err) {
			return nil, fmt.Errorf("file %q: %w", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	s.log.Info("storage.fetch.ok", "key", key, "bytes", len(data))
	return data, nil
}
