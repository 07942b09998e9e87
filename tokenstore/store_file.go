package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const sessionFileName = "session.json"

// sessionFile is the on-disk layout. The identity record is stored as raw
// JSON exactly as handed to SetIdentity.
type sessionFile struct {
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Identity     json.RawMessage `json:"current_user,omitempty"`
}

// FileStore persists the session to a single JSON file under the data
// folder. Access is serialized behind a mutex so the store stays
// last-write-wins even with the refinement goroutine running.
type FileStore struct {
	mu   sync.Mutex
	path string
	data sessionFile
}

// NewFileStore loads any previously persisted session from folder. A missing
// file is an empty store, not an error.
func NewFileStore(folder string) (*FileStore, error) {
	if err := os.MkdirAll(folder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] MkdirAll")
	}

	fs := &FileStore{path: filepath.Join(folder, sessionFileName)}

	raw, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] ReadFile")
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		// A corrupt session file behaves like no session at all
		fs.data = sessionFile{}
	}
	return fs, nil
}

func (fs *FileStore) AccessToken() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.data.AccessToken
}

func (fs *FileStore) RefreshToken() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.data.RefreshToken
}

func (fs *FileStore) Identity() []byte {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if len(fs.data.Identity) == 0 {
		return nil
	}
	record := make([]byte, len(fs.data.Identity))
	copy(record, fs.data.Identity)
	return record
}

func (fs *FileStore) SetTokens(accessToken, refreshToken string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data.AccessToken = accessToken
	fs.data.RefreshToken = refreshToken
	return fs.flush()
}

func (fs *FileStore) SetIdentity(record []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data.Identity = json.RawMessage(record)
	return fs.flush()
}

func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data = sessionFile{}
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] Remove")
	}
	return nil
}

// flush writes the session file. Caller must hold the mutex.
func (fs *FileStore) flush() error {
	raw, err := json.Marshal(fs.data)
	if err != nil {
		return errors.Wrap(err, "[FileStore.flush] Marshal")
	}
	// Bearer tokens at rest, keep the file private to the user
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.flush] WriteFile")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
