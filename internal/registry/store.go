package registry

import (
	"strings"
	"sync"
)

// Store holds the group directory and the superuser registry. It is a
// process-wide in-memory structure, constructed once and injected into
// request handlers; all mutation goes through the mutex.
type Store struct {
	mu         sync.RWMutex
	groups     map[string][]string
	superusers []string
}

// NewStore creates an empty registry store.
func NewStore() *Store {
	return &Store{
		groups: make(map[string][]string),
	}
}

// CreateGroup registers a named group. Creation is idempotent: if the name
// already exists the call is a no-op and the stored member list is left
// untouched (created=false), never overwritten.
func (s *Store) CreateGroup(name string, members []string) (created bool, err error) {
	if strings.TrimSpace(name) == "" {
		return false, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[name]; ok {
		return false, nil
	}

	stored := make([]string, len(members))
	copy(stored, members)
	s.groups[name] = stored
	return true, nil
}

// ListGroups returns a snapshot of all groups and their members.
func (s *Store) ListGroups() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.groups))
	for name, members := range s.groups {
		cp := make([]string, len(members))
		copy(cp, members)
		out[name] = cp
	}
	return out
}

// GetMembers returns the members of a group in insertion order.
func (s *Store) GetMembers(name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.groups[name]
	if !ok {
		return nil, ErrGroupNotFound
	}

	cp := make([]string, len(members))
	copy(cp, members)
	return cp, nil
}

// AddSuperuser appends an email to the superuser registry. Adding an email
// that is already present is a no-op (added=false).
func (s *Store) AddSuperuser(email string) (added bool, err error) {
	if strings.TrimSpace(email) == "" {
		return false, ErrEmptyEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.superusers {
		if existing == email {
			return false, nil
		}
	}
	s.superusers = append(s.superusers, email)
	return true, nil
}

// ListSuperusers returns the superuser emails in insertion order.
func (s *Store) ListSuperusers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]string, len(s.superusers))
	copy(cp, s.superusers)
	return cp
}

var _ GroupDirectory = (*Store)(nil)
