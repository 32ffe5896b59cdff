package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
	"go.uber.org/multierr"
)

const (
	// CurrencyPreference is the name of the preference slot holding the code
	// of the currency selected by the user.
	CurrencyPreference = "currency"
)

// CredentialService is a typed view over the user's secrets and preferences:
//   - Get, set or unset any of the secrets (seed, mnemonic, access token).
//   - Get or mark whether the user has already done the backup of the mnemonic.
//   - Get, set or unset the selected currency.
//   - Wipe all data held by the secret store, the cache and the local tx
//     repository.
//
// Reads never fail: a missing value, a store error or a value that can't be
// decoded are all reported as absent.
// The service holds no state other than the injected collaborators.
type CredentialService struct {
	secretStore     ports.SecretStore
	preferenceStore ports.PreferenceStore
	cache           ports.Cache
	repoManager     ports.RepoManager

	log  func(format string, a ...interface{})
	warn func(err error, format string, a ...interface{})
}

func NewCredentialService(
	secretStore ports.SecretStore, preferenceStore ports.PreferenceStore,
	cache ports.Cache, repoManager ports.RepoManager,
) *CredentialService {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("credential service: %s", format)
		log.Debugf(format, a...)
	}
	warnFn := func(err error, format string, a ...interface{}) {
		format = fmt.Sprintf("credential service: %s", format)
		log.WithError(err).Warnf(format, a...)
	}
	return &CredentialService{
		secretStore, preferenceStore, cache, repoManager, logFn, warnFn,
	}
}

func (cs *CredentialService) GetSecret(field domain.SecretField) (string, bool) {
	if !field.IsValid() {
		return "", false
	}

	value, ok, err := cs.secretStore.GetSecret(field)
	if err != nil {
		cs.warn(err, "failed to read secret %s", field)
		return "", false
	}
	return value, ok
}

func (cs *CredentialService) SetSecret(field domain.SecretField, value string) error {
	if !field.IsValid() {
		return domain.ErrUnknownSecretField
	}
	if err := cs.secretStore.SetSecret(field, value); err != nil {
		return fmt.Errorf("failed to set secret %s: %w", field, err)
	}
	cs.log("secret %s set", field)
	return nil
}

func (cs *CredentialService) UnsetSecret(field domain.SecretField) error {
	if !field.IsValid() {
		return domain.ErrUnknownSecretField
	}
	if err := cs.secretStore.DeleteSecret(field); err != nil {
		return fmt.Errorf("failed to unset secret %s: %w", field, err)
	}
	cs.log("secret %s unset", field)
	return nil
}

// Seed returns the user's master seed.
func (cs *CredentialService) Seed() (string, bool) {
	return cs.GetSecret(domain.SecretSeed)
}

// SetSeed stores the user's master seed, or removes it if nil.
func (cs *CredentialService) SetSeed(seed *string) error {
	return cs.setOrUnset(domain.SecretSeed, seed)
}

// Mnemonic returns the user's mnemonic backup phrase.
func (cs *CredentialService) Mnemonic() (string, bool) {
	return cs.GetSecret(domain.SecretMnemonic)
}

// SetMnemonic stores the user's mnemonic, or removes it if nil.
func (cs *CredentialService) SetMnemonic(mnemonic *string) error {
	return cs.setOrUnset(domain.SecretMnemonic, mnemonic)
}

// AccessToken returns the user's access token for the wallet server.
func (cs *CredentialService) AccessToken() (string, bool) {
	return cs.GetSecret(domain.SecretAccessToken)
}

// SetAccessToken stores the user's access token, or removes it if nil.
func (cs *CredentialService) SetAccessToken(token *string) error {
	return cs.setOrUnset(domain.SecretAccessToken, token)
}

func (cs *CredentialService) IsBackedUp() bool {
	done, err := cs.secretStore.GetFlag(domain.FlagAlreadyBackup)
	if err != nil {
		cs.warn(err, "failed to read flag %s", domain.FlagAlreadyBackup)
		return false
	}
	return done
}

func (cs *CredentialService) MarkBackedUp() error {
	if err := cs.secretStore.SetFlag(domain.FlagAlreadyBackup, true); err != nil {
		return fmt.Errorf("failed to mark backup as done: %w", err)
	}
	cs.log("backup marked as done")
	return nil
}

func (cs *CredentialService) GetCurrency() (domain.Currency, bool) {
	code, ok, err := cs.preferenceStore.GetPreference(CurrencyPreference)
	if err != nil {
		cs.warn(err, "failed to read preference %s", CurrencyPreference)
		return -1, false
	}
	if !ok {
		return -1, false
	}

	currency, ok := domain.ParseCurrency(code)
	if !ok {
		cs.log("ignoring unknown currency code %q", code)
		return -1, false
	}
	return currency, true
}

func (cs *CredentialService) SetCurrency(currency domain.Currency) error {
	if !currency.IsValid() {
		return domain.ErrUnknownCurrency
	}
	if err := cs.preferenceStore.SetPreference(
		CurrencyPreference, currency.Code(),
	); err != nil {
		return fmt.Errorf("failed to set currency: %w", err)
	}
	cs.log("currency set to %s", currency)
	return nil
}

func (cs *CredentialService) UnsetCurrency() error {
	if err := cs.preferenceStore.DeletePreference(CurrencyPreference); err != nil {
		return fmt.Errorf("failed to unset currency: %w", err)
	}
	cs.log("currency unset")
	return nil
}

// ClearAll wipes, in order, the secret store, the cache and the local tx
// repository. Every step is attempted even if a previous one failed, and
// nothing is rolled back. The returned error combines the failures of all
// steps.
func (cs *CredentialService) ClearAll(ctx context.Context) error {
	var err error

	if e := cs.secretStore.Clear(); e != nil {
		cs.warn(e, "failed to wipe secret store")
		err = multierr.Append(err, fmt.Errorf("secret store: %w", e))
	}

	cs.cache.Clear()

	if e := cs.repoManager.TransactionRepository().DeleteAllTransactions(
		ctx,
	); e != nil {
		cs.warn(e, "failed to delete local transactions")
		err = multierr.Append(err, fmt.Errorf("transaction repository: %w", e))
	}

	if err == nil {
		cs.log("all data cleared")
	}
	return err
}

func (cs *CredentialService) setOrUnset(
	field domain.SecretField, value *string,
) error {
	if value == nil {
		return cs.UnsetSecret(field)
	}
	return cs.SetSecret(field, *value)
}
