package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	appconfig "github.com/vulpemventures/credstore/internal/app-config"
	"github.com/vulpemventures/credstore/internal/config"
	"github.com/vulpemventures/credstore/internal/core/application"
	badgerstore "github.com/vulpemventures/credstore/internal/infrastructure/secret-store/badger"
	postgresdb "github.com/vulpemventures/credstore/internal/infrastructure/storage/db/postgres"
)

// getApp builds the services on first use, so that commands that don't need
// them never open the stores.
func getApp() (*appconfig.AppConfig, error) {
	if appCfg != nil {
		return appCfg, nil
	}

	cfg, err := newAppConfig()
	if err != nil {
		return nil, err
	}
	appCfg = cfg
	return appCfg, nil
}

func getCredentialService() (*application.CredentialService, error) {
	app, err := getApp()
	if err != nil {
		return nil, err
	}
	return app.CredentialService(), nil
}

func getTransactionService() (*application.TransactionService, error) {
	app, err := getApp()
	if err != nil {
		return nil, err
	}
	return app.TransactionService(), nil
}

func newAppConfig() (*appconfig.AppConfig, error) {
	datadir := config.GetDatadir()
	encryptionKey, err := config.GetEncryptionKey()
	if err != nil {
		return nil, err
	}

	var repoManagerConfig interface{}
	switch dbType := config.GetString(config.DatabaseTypeKey); dbType {
	case "postgres":
		repoManagerConfig = postgresdb.DbConfig{
			DbUser:             config.GetString(config.DbUserKey),
			DbPassword:         config.GetString(config.DbPassKey),
			DbHost:             config.GetString(config.DbHostKey),
			DbPort:             config.GetInt(config.DbPortKey),
			DbName:             config.GetString(config.DbNameKey),
			MigrationSourceURL: config.GetString(config.DbMigrationPath),
		}
	default:
		repoManagerConfig = filepath.Join(datadir, config.DbLocation)
	}

	cfg := &appconfig.AppConfig{
		SecretStoreType: config.GetString(config.SecretStoreTypeKey),
		SecretStoreConfig: badgerstore.StoreArgs{
			Datadir:       filepath.Join(datadir, config.SecretsLocation),
			EncryptionKey: encryptionKey,
		},
		PreferenceStoreType:   config.GetString(config.PreferenceStoreTypeKey),
		PreferenceStoreConfig: filepath.Join(datadir, config.PreferencesLocation),
		RepoManagerType:       config.GetString(config.DatabaseTypeKey),
		RepoManagerConfig:     repoManagerConfig,
		CacheTTL:              time.Duration(config.GetInt(config.CacheTTLKey)) * time.Second,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func printJSON(v interface{}) {
	buf, _ := json.MarshalIndent(v, "", "   ")
	fmt.Println(string(buf))
}
