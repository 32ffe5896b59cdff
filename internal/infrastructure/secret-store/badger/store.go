package badgerstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

const (
	indexCacheSize = 100 << 20
	gcInterval     = 30 * time.Minute
)

var (
	ErrInvalidEncryptionKey = fmt.Errorf(
		"encryption key must be either 16, 24 or 32 bytes long",
	)
)

type secretRecord struct {
	Value string
}

type flagRecord struct {
	Value bool
}

// StoreArgs holds the config args for the badger secret store:
//   - Datadir - (optional) directory containing the db files. The store is
//     kept in memory if empty, to be used only for testing purposes.
//   - EncryptionKey - (optional) AES key used by badger to encrypt data at
//     rest. Must be 16, 24 or 32 bytes long.
//   - Logger - (optional) logger for badger internals.
type StoreArgs struct {
	Datadir       string
	EncryptionKey []byte
	Logger        badger.Logger
}

func (a StoreArgs) validate() error {
	if len(a.EncryptionKey) > 0 {
		switch len(a.EncryptionKey) {
		case 16, 24, 32:
		default:
			return ErrInvalidEncryptionKey
		}
	}
	return nil
}

type secretStore struct {
	store  *badgerhold.Store
	stopGC chan struct{}

	log func(format string, a ...interface{})
}

// NewSecretStore returns a secret store persisted with badger.
func NewSecretStore(args StoreArgs) (ports.SecretStore, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	isInMemory := len(args.Datadir) <= 0

	opts := badger.DefaultOptions(args.Datadir)
	opts.Logger = args.Logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}
	if len(args.EncryptionKey) > 0 {
		opts.EncryptionKey = args.EncryptionKey
		opts.IndexCacheSize = indexCacheSize
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, fmt.Errorf("opening secret db: %w", err)
	}

	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("secret store: %s", format)
		log.Debugf(format, a...)
	}
	s := &secretStore{db, make(chan struct{}), logFn}

	if !isInMemory {
		go s.runGarbageCollector()
	}

	return s, nil
}

func (s *secretStore) GetSecret(
	field domain.SecretField,
) (string, bool, error) {
	var record secretRecord
	if err := s.store.Get(field.Key(), &record); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return record.Value, true, nil
}

func (s *secretStore) SetSecret(field domain.SecretField, value string) error {
	if !field.IsValid() {
		return domain.ErrUnknownSecretField
	}
	return s.store.Upsert(field.Key(), secretRecord{value})
}

func (s *secretStore) DeleteSecret(field domain.SecretField) error {
	if err := s.store.Delete(field.Key(), secretRecord{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *secretStore) GetFlag(flag domain.SecretFlag) (bool, error) {
	var record flagRecord
	if err := s.store.Get(flag.Key(), &record); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return record.Value, nil
}

func (s *secretStore) SetFlag(flag domain.SecretFlag, value bool) error {
	if !flag.IsValid() {
		return domain.ErrUnknownSecretFlag
	}
	return s.store.Upsert(flag.Key(), flagRecord{value})
}

func (s *secretStore) Clear() error {
	if err := s.store.Badger().DropAll(); err != nil {
		return err
	}
	s.log("wiped")
	return nil
}

func (s *secretStore) Close() {
	close(s.stopGC)
	s.store.Close()
}

func (s *secretStore) runGarbageCollector() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			if err := s.store.Badger().RunValueLogGC(0.5); err != nil &&
				err != badger.ErrNoRewrite {
				log.Warnf("secret store: garbage collector: %s", err)
			}
		}
	}
}
