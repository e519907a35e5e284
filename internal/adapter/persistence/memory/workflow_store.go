// Package memory holds workflow instances for the lifetime of a browser
// session. Drafts are deliberately not durable: the only persisted output of
// the wizard is the return record written at submission, so the store is a
// locked map, one lock per instance.
package memory

import (
	"context"
	"errors"
	"sync"

	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase/interfaces"
)

var ErrNilWorkflow = errors.New("nil workflow")

type entry struct {
	mu sync.Mutex
	wf *entities.Workflow
}

type WorkflowStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

var _ interfaces.IWorkflowStore = (*WorkflowStore)(nil)

func NewWorkflowStore() *WorkflowStore {
	return &WorkflowStore{entries: make(map[string]*entry)}
}

func (s *WorkflowStore) Put(_ context.Context, wf *entities.Workflow) error {
	if wf == nil || wf.ID == "" {
		return ErrNilWorkflow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[wf.ID] = &entry{wf: wf}
	return nil
}

// Get returns a snapshot of the instance, or (nil, nil) when the id is
// unknown. Callers never see the live pointer, so reads race with nothing.
func (s *WorkflowStore) Get(_ context.Context, id string) (*entities.Workflow, error) {
	e := s.entry(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.wf), nil
}

// Mutate runs fn on the live instance while holding its lock, serializing
// every field write and step transition for one workflow. fn's error is
// returned as-is; changes fn made before failing remain on the instance,
// which the submission pipeline relies on to remember where it stopped.
func (s *WorkflowStore) Mutate(_ context.Context, id string, fn func(wf *entities.Workflow) error) (*entities.Workflow, error) {
	e := s.entry(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.wf); err != nil {
		return nil, err
	}
	return snapshot(e.wf), nil
}

func (s *WorkflowStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *WorkflowStore) entry(id string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[id]
}

func snapshot(wf *entities.Workflow) *entities.Workflow {
	cp := *wf
	if wf.Session != nil {
		session := *wf.Session
		cp.Session = &session
	}
	if wf.Draft.QRCode != nil {
		qr := *wf.Draft.QRCode
		cp.Draft.QRCode = &qr
	}
	if wf.Draft.ItemPhoto != nil {
		photo := *wf.Draft.ItemPhoto
		cp.Draft.ItemPhoto = &photo
	}
	return &cp
}
