// Package session owns the single reviewer session: the currently loaded
// dataset and its status store.
package session

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/status"
)

// ErrNoDataset is returned by operations that need a loaded dataset.
var ErrNoDataset = errors.New("no dataset loaded")

// Info describes the loaded dataset for the presentation layer.
type Info struct {
	FileName       string    `json:"fileName"`
	CandidateCount int       `json:"candidateCount"`
	LoadedAt       time.Time `json:"loadedAt"`
}

// Manager holds one review session. The dataset is replaced wholesale on
// re-upload, which also wipes the status store so state keyed by candidate
// ID never leaks across unrelated datasets. The status store itself is a
// long-lived instance injected into every component that needs it.
type Manager struct {
	mu       sync.RWMutex
	dataset  *dataset.Store
	status   *status.Store
	fileName string
	loadedAt time.Time
}

// NewManager creates a session with no dataset and an empty status store.
func NewManager() *Manager {
	return &Manager{status: status.NewStore()}
}

// LoadDataset parses a new applications file and installs it, clearing all
// status state. On parse failure nothing changes: a previously loaded
// dataset and its statuses stay intact.
func (m *Manager) LoadDataset(name string, r io.Reader) (Info, error) {
	ds, err := dataset.Load(r)
	if err != nil {
		return Info{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataset = ds
	m.fileName = name
	m.loadedAt = time.Now()
	m.status.ClearAll()

	return Info{FileName: name, CandidateCount: ds.Len(), LoadedAt: m.loadedAt}, nil
}

// Dataset returns the loaded dataset, or false when none is loaded.
func (m *Manager) Dataset() (*dataset.Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dataset, m.dataset != nil
}

// Status returns the session's status store.
func (m *Manager) Status() *status.Store {
	return m.status
}

// Info returns metadata about the loaded dataset.
func (m *Manager) Info() (Info, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dataset == nil {
		return Info{}, false
	}
	return Info{
		FileName:       m.fileName,
		CandidateCount: m.dataset.Len(),
		LoadedAt:       m.loadedAt,
	}, true
}

// Reset discards the dataset and all status state, returning the session
// to its initial empty condition. Backs the "upload new file" action.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dataset = nil
	m.fileName = ""
	m.loadedAt = time.Time{}
	m.status.ClearAll()
}

// RestoreProgress replaces the status state with a saved snapshot.
// Requires a loaded dataset so restored IDs have records to refer to.
func (m *Manager) RestoreProgress(snap status.Snapshot) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dataset == nil {
		return ErrNoDataset
	}
	m.status.Restore(snap)
	return nil
}
