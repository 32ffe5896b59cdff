package fileprefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

const (
	// Filename is the name of the file containing the preferences, inside the
	// given datadir.
	Filename = "preferences.json"
	fileType = "json"
)

var (
	ErrMissingDatadir = fmt.Errorf("missing preferences datadir")
)

// preferenceStore persists the preferences as a flat JSON object.
// The whole file is rewritten on every change.
type preferenceStore struct {
	path        string
	preferences map[string]string
	lock        *sync.RWMutex

	log func(format string, a ...interface{})
}

// NewPreferenceStore returns a store backed by the preferences file inside
// the given datadir, creating it if it doesn't exist.
func NewPreferenceStore(datadir string) (ports.PreferenceStore, error) {
	if len(datadir) <= 0 {
		return nil, ErrMissingDatadir
	}
	if err := os.MkdirAll(datadir, os.ModeDir|0755); err != nil {
		return nil, err
	}

	path := filepath.Join(datadir, Filename)
	preferences, err := readPreferences(path)
	if err != nil {
		return nil, fmt.Errorf("reading preferences file: %w", err)
	}

	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("preference store: %s", format)
		log.Debugf(format, a...)
	}
	return &preferenceStore{path, preferences, &sync.RWMutex{}, logFn}, nil
}

func (s *preferenceStore) GetPreference(name string) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.preferences[normalize(name)]
	return value, ok, nil
}

func (s *preferenceStore) SetPreference(name, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	name = normalize(name)
	prev, existed := s.preferences[name]
	s.preferences[name] = value
	if err := s.write(); err != nil {
		if existed {
			s.preferences[name] = prev
		} else {
			delete(s.preferences, name)
		}
		return err
	}
	s.log("%s updated", name)
	return nil
}

func (s *preferenceStore) DeletePreference(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	name = normalize(name)
	prev, existed := s.preferences[name]
	if !existed {
		return nil
	}
	delete(s.preferences, name)
	if err := s.write(); err != nil {
		s.preferences[name] = prev
		return err
	}
	s.log("%s removed", name)
	return nil
}

func (s *preferenceStore) Close() {}

func (s *preferenceStore) write() error {
	vip := viper.New()
	vip.SetConfigType(fileType)
	for k, v := range s.preferences {
		vip.Set(k, v)
	}
	if err := vip.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}
	return nil
}

func readPreferences(path string) (map[string]string, error) {
	preferences := make(map[string]string)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return preferences, nil
	}

	vip := viper.New()
	vip.SetConfigFile(path)
	vip.SetConfigType(fileType)
	if err := vip.ReadInConfig(); err != nil {
		return nil, err
	}

	for _, k := range vip.AllKeys() {
		preferences[k] = vip.GetString(k)
	}
	return preferences, nil
}

// viper keys are case insensitive and nested by dots, so names are kept flat
// and lowercase.
func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, ".", "_"))
}
