package inmemoryprefs

import (
	"sync"

	"github.com/vulpemventures/credstore/internal/core/ports"
)

type preferenceStore struct {
	preferences map[string]string
	lock        *sync.RWMutex
}

func NewPreferenceStore() ports.PreferenceStore {
	return &preferenceStore{
		preferences: make(map[string]string),
		lock:        &sync.RWMutex{},
	}
}

func (s *preferenceStore) GetPreference(name string) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.preferences[name]
	return value, ok, nil
}

func (s *preferenceStore) SetPreference(name, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.preferences[name] = value
	return nil
}

func (s *preferenceStore) DeletePreference(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.preferences, name)
	return nil
}

func (s *preferenceStore) Close() {}
