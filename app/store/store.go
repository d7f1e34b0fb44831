package store

import (
	"sync"

	"campus-events/app/models"
)

// Data holds every entity collection keyed by id. It is only ever touched
// inside a Store.View or Store.Update closure.
type Data struct {
	Users         map[string]*models.User         `json:"users"`
	Events        map[string]*models.Event        `json:"events"`
	Registrations map[string]*models.Registration `json:"registrations"`
	Feedback      map[string]*models.Feedback     `json:"feedback"`
	Teams         map[string]*models.Team         `json:"teams"`
	Submissions   map[string]*models.Submission   `json:"submissions"`
}

func newData() *Data {
	return &Data{
		Users:         make(map[string]*models.User),
		Events:        make(map[string]*models.Event),
		Registrations: make(map[string]*models.Registration),
		Feedback:      make(map[string]*models.Feedback),
		Teams:         make(map[string]*models.Team),
		Submissions:   make(map[string]*models.Submission),
	}
}

// Store owns the in-memory collections and serialises all access to them.
// Multi-step operations (team registration, cascading deletes, re-ranking) run
// inside a single Update closure so they are atomic with respect to other
// requests. After a successful Update the snapshot is flushed through the
// configured Saver.
type Store struct {
	mu    sync.RWMutex
	data  *Data
	saver Saver
}

// New returns an empty store backed by the given saver.
func New(saver Saver) *Store {
	if saver == nil {
		saver = NopSaver{}
	}
	return &Store{data: newData(), saver: saver}
}

// View runs fn with shared read access to the data.
func (s *Store) View(fn func(*Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Update runs fn with exclusive access to the data. If fn returns an error the
// mutation is reported as failed; closures are expected to validate before
// mutating so a failed Update leaves the data unchanged. On success the
// snapshot is saved.
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	return s.saver.Save(s.data)
}

// Flush writes the current snapshot without mutating anything. Used by the
// background snapshot scheduler.
func (s *Store) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saver.Save(s.data)
}

// Snapshot writes the current data through an alternate saver, leaving the
// store's own saver untouched. Used by the migrate command.
func (s *Store) Snapshot(saver Saver) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return saver.Save(s.data)
}
