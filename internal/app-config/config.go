package appconfig

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/credstore/internal/core/application"
	"github.com/vulpemventures/credstore/internal/core/ports"
	cache "github.com/vulpemventures/credstore/internal/infrastructure/cache/in-memory"
	fileprefs "github.com/vulpemventures/credstore/internal/infrastructure/preference-store/file"
	inmemoryprefs "github.com/vulpemventures/credstore/internal/infrastructure/preference-store/in-memory"
	badgerstore "github.com/vulpemventures/credstore/internal/infrastructure/secret-store/badger"
	inmemorystore "github.com/vulpemventures/credstore/internal/infrastructure/secret-store/in-memory"
	dbbadger "github.com/vulpemventures/credstore/internal/infrastructure/storage/db/badger"
	"github.com/vulpemventures/credstore/internal/infrastructure/storage/db/inmemory"
	postgresdb "github.com/vulpemventures/credstore/internal/infrastructure/storage/db/postgres"
)

var (
	supportedSecretStores = map[string]struct{}{
		"inmemory": {},
		"badger":   {},
	}
	supportedPreferenceStores = map[string]struct{}{
		"inmemory": {},
		"file":     {},
	}
	supportedRepoManagers = map[string]struct{}{
		"inmemory": {},
		"badger":   {},
		"postgres": {},
	}
)

// AppConfig is the struct holding all configuration options for the
// application services (credential and transaction).
// This data structure acts also as a factory of the mentioned application
// services and the portable services used by them.
// Public config args:
//   - SecretStoreType - (required) One of the supported secret store types.
//   - SecretStoreConfig - (optional) badgerstore.StoreArgs for the badger type.
//   - PreferenceStoreType - (required) One of the supported preference store types.
//   - PreferenceStoreConfig - (optional) The datadir (string) for the file type.
//   - RepoManagerType - (required) One of the supported repository manager types.
//   - RepoManagerConfig - (optional) The datadir (string) for the badger type,
//     postgresdb.DbConfig for the postgres one.
//   - CacheTTL - (optional) Expiry time of cached entries, never expire if zero.
type AppConfig struct {
	SecretStoreType       string
	SecretStoreConfig     interface{}
	PreferenceStoreType   string
	PreferenceStoreConfig interface{}
	RepoManagerType       string
	RepoManagerConfig     interface{}
	CacheTTL              time.Duration

	secretStore ports.SecretStore
	prefStore   ports.PreferenceStore
	rm          ports.RepoManager
	cache       *cache.Cache
	credSvc     *application.CredentialService
	txSvc       *application.TransactionService
}

func (c *AppConfig) Validate() error {
	if len(c.SecretStoreType) == 0 {
		return fmt.Errorf("missing secret store type")
	}
	if _, ok := supportedSecretStores[c.SecretStoreType]; !ok {
		return fmt.Errorf("secret store type not supported")
	}
	if len(c.PreferenceStoreType) == 0 {
		return fmt.Errorf("missing preference store type")
	}
	if _, ok := supportedPreferenceStores[c.PreferenceStoreType]; !ok {
		return fmt.Errorf("preference store type not supported")
	}
	if len(c.RepoManagerType) == 0 {
		return fmt.Errorf("missing repo manager type")
	}
	if _, ok := supportedRepoManagers[c.RepoManagerType]; !ok {
		return fmt.Errorf("repo manager type not supported")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}

	if _, err := c.secretStoreService(); err != nil {
		return err
	}
	if _, err := c.preferenceStoreService(); err != nil {
		c.Close()
		return err
	}
	if _, err := c.repoManager(); err != nil {
		c.Close()
		return err
	}

	return nil
}

func (c *AppConfig) SecretStore() ports.SecretStore {
	return c.secretStore
}

func (c *AppConfig) PreferenceStore() ports.PreferenceStore {
	return c.prefStore
}

func (c *AppConfig) RepoManager() ports.RepoManager {
	return c.rm
}

func (c *AppConfig) Cache() ports.Cache {
	return c.cacheService()
}

func (c *AppConfig) CredentialService() *application.CredentialService {
	return c.credentialService()
}

func (c *AppConfig) TransactionService() *application.TransactionService {
	return c.transactionService()
}

// Close releases all the resources held by the services built so far.
func (c *AppConfig) Close() {
	if c.secretStore != nil {
		c.secretStore.Close()
		c.secretStore = nil
	}
	if c.prefStore != nil {
		c.prefStore.Close()
		c.prefStore = nil
	}
	if c.rm != nil {
		c.rm.Close()
		c.rm = nil
	}
	if c.cache != nil {
		c.cache.Stop()
		c.cache = nil
	}
	c.credSvc = nil
	c.txSvc = nil
}

func (c *AppConfig) secretStoreService() (ports.SecretStore, error) {
	if c.secretStore != nil {
		return c.secretStore, nil
	}

	switch c.SecretStoreType {
	case "inmemory":
		c.secretStore = inmemorystore.NewSecretStore()
		return c.secretStore, nil
	case "badger":
		var args badgerstore.StoreArgs
		if c.SecretStoreConfig != nil {
			a, ok := c.SecretStoreConfig.(badgerstore.StoreArgs)
			if !ok {
				return nil, fmt.Errorf(
					"invalid secret store config type, must be " +
						"badgerstore.StoreArgs",
				)
			}
			args = a
		}
		if args.Logger == nil && len(args.Datadir) > 0 {
			args.Logger = log.New()
		}
		store, err := badgerstore.NewSecretStore(args)
		if err != nil {
			return nil, err
		}
		c.secretStore = store
		return c.secretStore, nil
	default:
		return nil, fmt.Errorf("unknown secret store type")
	}
}

func (c *AppConfig) preferenceStoreService() (ports.PreferenceStore, error) {
	if c.prefStore != nil {
		return c.prefStore, nil
	}

	switch c.PreferenceStoreType {
	case "inmemory":
		c.prefStore = inmemoryprefs.NewPreferenceStore()
		return c.prefStore, nil
	case "file":
		if c.PreferenceStoreConfig == nil {
			return nil, fmt.Errorf("missing preference store config args")
		}
		datadir, ok := c.PreferenceStoreConfig.(string)
		if !ok {
			return nil, fmt.Errorf(
				"invalid preference store config type, must be string",
			)
		}
		store, err := fileprefs.NewPreferenceStore(datadir)
		if err != nil {
			return nil, err
		}
		c.prefStore = store
		return c.prefStore, nil
	default:
		return nil, fmt.Errorf("unknown preference store type")
	}
}

func (c *AppConfig) repoManager() (ports.RepoManager, error) {
	if c.rm != nil {
		return c.rm, nil
	}

	switch c.RepoManagerType {
	case "inmemory":
		c.rm = inmemory.NewRepoManager()
		return c.rm, nil
	case "badger":
		if c.RepoManagerConfig == nil {
			return nil, fmt.Errorf("missing repo manager config args")
		}
		datadir, ok := c.RepoManagerConfig.(string)
		if !ok {
			return nil, fmt.Errorf("invalid repo manager config type, must be string")
		}
		rm, err := dbbadger.NewRepoManager(datadir, log.New())
		if err != nil {
			return nil, err
		}
		c.rm = rm
		return c.rm, nil
	case "postgres":
		dbConfig, ok := c.RepoManagerConfig.(postgresdb.DbConfig)
		if !ok {
			return nil, fmt.Errorf("invalid repo manager config type, must be postgresdb.DbConfig")
		}

		rm, err := postgresdb.NewRepoManager(dbConfig)
		if err != nil {
			return nil, err
		}

		c.rm = rm
		return c.rm, nil
	default:
		return nil, fmt.Errorf("unknown repo manager type")
	}
}

func (c *AppConfig) cacheService() *cache.Cache {
	if c.cache != nil {
		return c.cache
	}

	c.cache = cache.NewCache(c.CacheTTL)
	return c.cache
}

func (c *AppConfig) credentialService() *application.CredentialService {
	if c.credSvc != nil {
		return c.credSvc
	}

	secretStore, _ := c.secretStoreService()
	prefStore, _ := c.preferenceStoreService()
	rm, _ := c.repoManager()
	c.credSvc = application.NewCredentialService(
		secretStore, prefStore, c.cacheService(), rm,
	)
	return c.credSvc
}

func (c *AppConfig) transactionService() *application.TransactionService {
	if c.txSvc != nil {
		return c.txSvc
	}

	rm, _ := c.repoManager()
	c.txSvc = application.NewTransactionService(rm, c.cacheService())
	return c.txSvc
}
