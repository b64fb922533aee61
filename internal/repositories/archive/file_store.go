package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/core/ports"
	"github.com/google/uuid"
)

// ManifestName is the file listing archived documents, kept next to them.
const ManifestName = "archive.json"

// FileStore keeps contract documents and their manifest in one directory.
type FileStore struct {
	dir string
	mu  sync.Mutex // serializes manifest read-modify-write
}

var _ ports.ArchiveStore = (*FileStore)(nil)

// NewFileStore creates the archive directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the archive directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func checkName(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") || filename == ManifestName {
		return apperrors.Validationf("invalid document name %q", filename)
	}
	return nil
}

// writeAtomic writes through a temp file in the same directory and renames it into place.
func (s *FileStore) writeAtomic(name string, content []byte) error {
	tmp := filepath.Join(s.dir, ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (s *FileStore) SaveDocument(ctx context.Context, filename string, content []byte) error {
	if err := checkName(filename); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeAtomic(filename, content); err != nil {
		return fmt.Errorf("failed to write document %s: %w", filename, err)
	}
	return nil
}

func (s *FileStore) readManifest() ([]domain.ArchiveEntry, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, ManifestName))
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.ArchiveEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	entries := []domain.ArchiveEntry{}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return entries, nil
}

// AppendEntry adds a record to the end of the manifest.
func (s *FileStore) AppendEntry(ctx context.Context, entry domain.ArchiveEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readManifest()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := s.writeAtomic(ManifestName, raw); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ListEntries returns the manifest in insertion order. A missing manifest is empty.
func (s *FileStore) ListEntries(ctx context.Context) ([]domain.ArchiveEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readManifest()
}

func (s *FileStore) OpenDocument(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := checkName(filename); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NotFoundf("document %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", filename, err)
	}
	return f, nil
}
