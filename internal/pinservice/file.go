package pinservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/model"
)

// FileCredentials persists credentials as a JSON map in one file, rewritten
// atomically on every change.
type FileCredentials struct {
	mu   sync.Mutex
	path string
}

func NewFileCredentials(path string) *FileCredentials {
	return &FileCredentials{path: path}
}

func (f *FileCredentials) Get(_ context.Context, key string) (*model.PinCredential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all, err := f.load()
	if err != nil {
		return nil, err
	}
	c, ok := all[key]
	if !ok {
		return nil, model.ErrPinNotSet
	}
	return &c, nil
}

func (f *FileCredentials) Put(_ context.Context, key string, cred *model.PinCredential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	all, err := f.load()
	if err != nil {
		return err
	}
	all[key] = *cred

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pin credentials: %w", err)
	}
	return common.WriteFileAtomic(f.path, data, 0o600)
}

func (f *FileCredentials) load() (map[string]model.PinCredential, error) {
	all := make(map[string]model.PinCredential)
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return all, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pin credentials: %w", err)
	}
	if len(data) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(common.TrimBOM(data), &all); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pin credentials: %w", model.ErrInvalidFormat)
	}
	return all, nil
}
