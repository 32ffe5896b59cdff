package inmemorystore

import (
	"sync"

	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

// secretStore keeps secrets in memory only. It's meant for testing or for
// ephemeral sessions where nothing must outlive the process.
type secretStore struct {
	secrets map[domain.SecretField]string
	flags   map[domain.SecretFlag]bool
	lock    *sync.RWMutex
}

func NewSecretStore() ports.SecretStore {
	return &secretStore{
		secrets: make(map[domain.SecretField]string),
		flags:   make(map[domain.SecretFlag]bool),
		lock:    &sync.RWMutex{},
	}
}

func (s *secretStore) GetSecret(
	field domain.SecretField,
) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.secrets[field]
	return value, ok, nil
}

func (s *secretStore) SetSecret(field domain.SecretField, value string) error {
	if !field.IsValid() {
		return domain.ErrUnknownSecretField
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.secrets[field] = value
	return nil
}

func (s *secretStore) DeleteSecret(field domain.SecretField) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.secrets, field)
	return nil
}

func (s *secretStore) GetFlag(flag domain.SecretFlag) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.flags[flag], nil
}

func (s *secretStore) SetFlag(flag domain.SecretFlag, value bool) error {
	if !flag.IsValid() {
		return domain.ErrUnknownSecretFlag
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.flags[flag] = value
	return nil
}

func (s *secretStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.secrets = make(map[domain.SecretField]string)
	s.flags = make(map[domain.SecretFlag]bool)
	return nil
}

func (s *secretStore) Close() {}
