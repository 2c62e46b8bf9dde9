// Package keystore persists the sealed account key record (.wgk file).
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/model"
)

const Ext = ".wgk"

// ErrNotFound is returned when no record has been written yet.
var ErrNotFound = errors.New("wallet file does not exist")

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("wallet file %s is not empty", e.Path)
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// Store reads and writes one key record. Saves through one Store are serialized.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) (*Store, error) {
	if filepath.Ext(path) != Ext { // e.g. "wallet.wgk" → ".wgk"
		return nil, fmt.Errorf("file must have %s extension", Ext)
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a non-empty record file is present.
func (s *Store) Exists() (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.Size() > 0, nil
}

// Load reads and validates the record without opening the key.
func (s *Store) Load() (*model.KeyRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}

	var rec model.KeyRecord
	if err := json.Unmarshal(common.TrimBOM(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", model.ErrInvalidFormat)
	}
	if !crypto.MatchesAddress(rec.PublicKey, rec.Address) {
		return nil, fmt.Errorf("wallet file public key does not match address: %w", model.ErrInvalidFormat)
	}
	if err := crypto.ValidateBlob(rec.Key); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save writes rec atomically. Without overwrite an existing record is never
// replaced, even by a concurrent Save.
func (s *Store) Save(rec *model.KeyRecord, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}
	data = common.WithBOM(data)

	if overwrite {
		if err := common.WriteFileAtomic(s.path, data, 0o600); err != nil {
			return fmt.Errorf("failed to write wallet file: %w", err)
		}
		return nil
	}

	exists, err := s.Exists()
	if err != nil {
		return err
	}
	if exists {
		return &FileExistsError{Path: s.path}
	}
	err = common.WriteFileExclusive(s.path, data, 0o600)
	if errors.Is(err, fs.ErrExist) {
		// an empty file counts as no record
		if exists, serr := s.Exists(); serr != nil || exists {
			return &FileExistsError{Path: s.path}
		}
		err = common.WriteFileAtomic(s.path, data, 0o600)
	}
	if err != nil {
		return fmt.Errorf("failed to write wallet file: %w", err)
	}
	return nil
}
