package config

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the key to customize the credstore datadir.
	DatadirKey = "DATADIR"
	// SecretStoreTypeKey is the key to customize the type of store holding
	// the user's secrets.
	SecretStoreTypeKey = "SECRET_STORE_TYPE"
	// PreferenceStoreTypeKey is the key to customize the type of store
	// holding the user's preferences.
	PreferenceStoreTypeKey = "PREFERENCE_STORE_TYPE"
	// DatabaseTypeKey is the key to customize the type of database to use for
	// the local transactions.
	DatabaseTypeKey = "DATABASE_TYPE"
	// EncryptionKeyKey is the key to set the hex encoded AES key used to
	// encrypt the secret store at rest. Must be 16, 24 or 32 bytes.
	EncryptionKeyKey = "ENCRYPTION_KEY"
	// CacheTTLKey is the key to customize the expiry time of cached entries.
	CacheTTLKey = "CACHE_TTL_IN_SECONDS"
	// LogLevelKey is the key to customize the log level to catch more specific
	// or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// DbUserKey is user used to connect to db
	DbUserKey = "DB_USER"
	// DbPassKey is password used to connect to db
	DbPassKey = "DB_PASS"
	// DbHostKey is host where db is installed
	DbHostKey = "DB_HOST"
	// DbPortKey is port on which db is listening
	DbPortKey = "DB_PORT"
	// DbNameKey is name of database
	DbNameKey = "DB_NAME"
	// DbMigrationPath is the path to migration files
	DbMigrationPath = "DB_MIGRATION_PATH"

	// DbLocation is the folder inside the datadir containing db files.
	DbLocation = "db"
	// SecretsLocation is the folder inside the datadir containing the secret
	// store files.
	SecretsLocation = "secrets"
	// PreferencesLocation is the folder inside the datadir containing the
	// preferences file.
	PreferencesLocation = "preferences"
)

var (
	vip *viper.Viper

	defaultDatadir         = btcutil.AppDataDir("credstore", false)
	defaultSecretStoreType = "badger"
	defaultPrefStoreType   = "file"
	defaultDbType          = "badger"
	defaultCacheTTL        = 300 // 5 minutes
	defaultLogLevel        = 4

	SupportedSecretStores = supportedType{
		"badger":   {},
		"inmemory": {},
	}
	SupportedPreferenceStores = supportedType{
		"file":     {},
		"inmemory": {},
	}
	SupportedDbs = supportedType{
		"badger":   {},
		"inmemory": {},
		"postgres": {},
	}
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("CREDSTORE")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(SecretStoreTypeKey, defaultSecretStoreType)
	vip.SetDefault(PreferenceStoreTypeKey, defaultPrefStoreType)
	vip.SetDefault(DatabaseTypeKey, defaultDbType)
	vip.SetDefault(CacheTTLKey, defaultCacheTTL)
	vip.SetDefault(LogLevelKey, defaultLogLevel)
	vip.SetDefault(DbUserKey, "root")
	vip.SetDefault(DbPassKey, "secret")
	vip.SetDefault(DbHostKey, "127.0.0.1")
	vip.SetDefault(DbPortKey, 5432)
	vip.SetDefault(DbNameKey, "credstore-db")
	vip.SetDefault(DbMigrationPath, "file://internal/infrastructure/storage/db/postgres/migration")

	if err := validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	if err := initDatadir(); err != nil {
		log.Fatalf("config: error while creating datadir: %s", err)
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	secretStoreType := GetString(SecretStoreTypeKey)
	if _, ok := SupportedSecretStores[secretStoreType]; !ok {
		return fmt.Errorf(
			"unsupported secret store type, must be one of %s",
			SupportedSecretStores,
		)
	}

	prefStoreType := GetString(PreferenceStoreTypeKey)
	if _, ok := SupportedPreferenceStores[prefStoreType]; !ok {
		return fmt.Errorf(
			"unsupported preference store type, must be one of %s",
			SupportedPreferenceStores,
		)
	}

	dbType := GetString(DatabaseTypeKey)
	if _, ok := SupportedDbs[dbType]; !ok {
		return fmt.Errorf("unsupported database type, must be one of %s", SupportedDbs)
	}

	if _, err := GetEncryptionKey(); err != nil {
		return err
	}

	if GetInt(CacheTTLKey) < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}

	return nil
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetEncryptionKey returns the decoded encryption key, nil if not set.
func GetEncryptionKey() ([]byte, error) {
	str := GetString(EncryptionKeyKey)
	if len(str) <= 0 {
		return nil, nil
	}
	key, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key format, must be hex")
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("invalid encryption key length, must be 16, 24 or 32 bytes")
	}
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}

// AllSettings returns the current configuration. The encryption key is
// never included.
func AllSettings() map[string]interface{} {
	settings := vip.AllSettings()
	delete(settings, strings.ToLower(EncryptionKeyKey))
	return settings
}

func initDatadir() error {
	datadir := GetDatadir()
	if GetString(DatabaseTypeKey) == "badger" {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
			return err
		}
	}
	if GetString(SecretStoreTypeKey) == "badger" {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, SecretsLocation)); err != nil {
			return err
		}
	}
	if GetString(PreferenceStoreTypeKey) == "file" {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, PreferencesLocation)); err != nil {
			return err
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0700)
	}
	return nil
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return strings.Join(types, " | ")
}
