package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/credstore/internal/core/application"
	"github.com/vulpemventures/credstore/internal/core/domain"
	cache "github.com/vulpemventures/credstore/internal/infrastructure/cache/in-memory"
	inmemoryprefs "github.com/vulpemventures/credstore/internal/infrastructure/preference-store/in-memory"
	inmemorystore "github.com/vulpemventures/credstore/internal/infrastructure/secret-store/in-memory"
	"github.com/vulpemventures/credstore/internal/infrastructure/storage/db/inmemory"
)

var (
	ctx                   = context.Background()
	errSomethingWentWrong = fmt.Errorf("something went wrong")
)

func TestCredentialService(t *testing.T) {
	t.Run("secrets", func(t *testing.T) {
		svc := newCredentialService()

		for _, field := range domain.SecretFields() {
			value, ok := svc.GetSecret(field)
			require.False(t, ok)
			require.Empty(t, value)

			err := svc.SetSecret(field, "v-"+field.Key())
			require.NoError(t, err)

			value, ok = svc.GetSecret(field)
			require.True(t, ok)
			require.Equal(t, "v-"+field.Key(), value)

			err = svc.UnsetSecret(field)
			require.NoError(t, err)

			_, ok = svc.GetSecret(field)
			require.False(t, ok)
		}

		err := svc.SetSecret(domain.SecretField(42), "value")
		require.ErrorIs(t, err, domain.ErrUnknownSecretField)
		err = svc.UnsetSecret(domain.SecretField(42))
		require.ErrorIs(t, err, domain.ErrUnknownSecretField)
		_, ok := svc.GetSecret(domain.SecretField(42))
		require.False(t, ok)
	})

	t.Run("typed_accessors", func(t *testing.T) {
		svc := newCredentialService()
		seed, mnemonic, token := "abc123", "a b c d e f", "tok1"

		require.NoError(t, svc.SetSeed(&seed))
		require.NoError(t, svc.SetMnemonic(&mnemonic))
		require.NoError(t, svc.SetAccessToken(&token))

		got, ok := svc.Seed()
		require.True(t, ok)
		require.Equal(t, seed, got)
		got, ok = svc.Mnemonic()
		require.True(t, ok)
		require.Equal(t, mnemonic, got)
		got, ok = svc.AccessToken()
		require.True(t, ok)
		require.Equal(t, token, got)

		require.NoError(t, svc.SetAccessToken(nil))
		_, ok = svc.AccessToken()
		require.False(t, ok)
		_, ok = svc.Seed()
		require.True(t, ok)
	})

	t.Run("backup", func(t *testing.T) {
		svc := newCredentialService()
		require.False(t, svc.IsBackedUp())

		for i := 0; i < 3; i++ {
			err := svc.MarkBackedUp()
			require.NoError(t, err)
			require.True(t, svc.IsBackedUp())
		}
	})

	t.Run("currency", func(t *testing.T) {
		prefs := inmemoryprefs.NewPreferenceStore()
		svc := application.NewCredentialService(
			inmemorystore.NewSecretStore(), prefs, cache.NewCache(0),
			inmemory.NewRepoManager(),
		)

		_, ok := svc.GetCurrency()
		require.False(t, ok)

		for _, c := range domain.Currencies() {
			err := svc.SetCurrency(c)
			require.NoError(t, err)

			got, ok := svc.GetCurrency()
			require.True(t, ok)
			require.Equal(t, c, got)

			code, _, _ := prefs.GetPreference(application.CurrencyPreference)
			require.Equal(t, c.Code(), code)
		}

		err := prefs.SetPreference(application.CurrencyPreference, "XYZ")
		require.NoError(t, err)
		_, ok = svc.GetCurrency()
		require.False(t, ok)

		err = svc.SetCurrency(domain.Currency(42))
		require.ErrorIs(t, err, domain.ErrUnknownCurrency)

		err = svc.SetCurrency(domain.JPY)
		require.NoError(t, err)
		err = svc.UnsetCurrency()
		require.NoError(t, err)
		_, ok = svc.GetCurrency()
		require.False(t, ok)
	})

	t.Run("clear_all", func(t *testing.T) {
		c := cache.NewCache(0)
		defer c.Stop()
		rm := inmemory.NewRepoManager()
		svc := application.NewCredentialService(
			inmemorystore.NewSecretStore(), inmemoryprefs.NewPreferenceStore(),
			c, rm,
		)
		txSvc := application.NewTransactionService(rm, c)

		require.NoError(t, svc.SetSecret(domain.SecretSeed, "abc123"))
		require.NoError(t, svc.SetSecret(domain.SecretMnemonic, "a b c d e f"))
		require.NoError(t, svc.SetSecret(domain.SecretAccessToken, "tok1"))
		require.NoError(t, svc.MarkBackedUp())
		require.NoError(t, svc.SetCurrency(domain.USD))

		_, err := txSvc.AddTransaction(ctx, randomTx())
		require.NoError(t, err)
		txs, err := txSvc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		require.NotZero(t, c.Len())

		err = svc.ClearAll(ctx)
		require.NoError(t, err)

		for _, field := range domain.SecretFields() {
			_, ok := svc.GetSecret(field)
			require.False(t, ok)
		}
		require.False(t, svc.IsBackedUp())
		require.Zero(t, c.Len())

		txs, err = txSvc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Empty(t, txs)

		// The currency is a preference, not data.
		currency, ok := svc.GetCurrency()
		require.True(t, ok)
		require.Equal(t, domain.USD, currency)
	})
}

func TestCredentialServiceWithMocks(t *testing.T) {
	t.Run("clear_all_invokes_every_collaborator_once", func(t *testing.T) {
		secretStore := &mockSecretStore{}
		secretStore.On("Clear").Return(nil)
		mockedCache := &mockCache{}
		mockedCache.On("Clear").Return()
		rm := newMockedRepoManager()
		rm.txRepository.On("DeleteAllTransactions", mock.Anything).Return(nil)

		svc := application.NewCredentialService(
			secretStore, &mockPreferenceStore{}, mockedCache, rm,
		)

		err := svc.ClearAll(ctx)
		require.NoError(t, err)

		secretStore.AssertNumberOfCalls(t, "Clear", 1)
		mockedCache.AssertNumberOfCalls(t, "Clear", 1)
		rm.txRepository.AssertNumberOfCalls(t, "DeleteAllTransactions", 1)
	})

	t.Run("clear_all_runs_in_order", func(t *testing.T) {
		calls := make([]string, 0, 3)
		secretStore := &mockSecretStore{}
		secretStore.On("Clear").Return(nil).Run(func(mock.Arguments) {
			calls = append(calls, "secrets")
		})
		mockedCache := &mockCache{}
		mockedCache.On("Clear").Return().Run(func(mock.Arguments) {
			calls = append(calls, "cache")
		})
		rm := newMockedRepoManager()
		rm.txRepository.On("DeleteAllTransactions", mock.Anything).
			Return(nil).Run(func(mock.Arguments) {
			calls = append(calls, "transactions")
		})

		svc := application.NewCredentialService(
			secretStore, &mockPreferenceStore{}, mockedCache, rm,
		)

		err := svc.ClearAll(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"secrets", "cache", "transactions"}, calls)
	})

	t.Run("clear_all_reports_partial_failures", func(t *testing.T) {
		secretStore := &mockSecretStore{}
		secretStore.On("Clear").Return(errSomethingWentWrong)
		mockedCache := &mockCache{}
		mockedCache.On("Clear").Return()
		rm := newMockedRepoManager()
		rm.txRepository.On("DeleteAllTransactions", mock.Anything).Return(nil)

		svc := application.NewCredentialService(
			secretStore, &mockPreferenceStore{}, mockedCache, rm,
		)

		err := svc.ClearAll(ctx)
		require.ErrorIs(t, err, errSomethingWentWrong)
		require.Contains(t, err.Error(), "secret store")

		// Following steps run anyway.
		mockedCache.AssertNumberOfCalls(t, "Clear", 1)
		rm.txRepository.AssertNumberOfCalls(t, "DeleteAllTransactions", 1)
	})

	t.Run("clear_all_reports_every_failure", func(t *testing.T) {
		errRepo := fmt.Errorf("db is closed")
		secretStore := &mockSecretStore{}
		secretStore.On("Clear").Return(errSomethingWentWrong)
		mockedCache := &mockCache{}
		mockedCache.On("Clear").Return()
		rm := newMockedRepoManager()
		rm.txRepository.On("DeleteAllTransactions", mock.Anything).Return(errRepo)

		svc := application.NewCredentialService(
			secretStore, &mockPreferenceStore{}, mockedCache, rm,
		)

		err := svc.ClearAll(ctx)
		require.ErrorIs(t, err, errSomethingWentWrong)
		require.ErrorIs(t, err, errRepo)
		require.Contains(t, err.Error(), "transaction repository")
	})

	t.Run("reads_never_fail", func(t *testing.T) {
		secretStore := &mockSecretStore{}
		secretStore.On("GetSecret", mock.Anything).Return("", false, errSomethingWentWrong)
		secretStore.On("GetFlag", mock.Anything).Return(false, errSomethingWentWrong)
		prefs := &mockPreferenceStore{}
		prefs.On("GetPreference", application.CurrencyPreference).Return("", false, errSomethingWentWrong)

		svc := application.NewCredentialService(
			secretStore, prefs, &mockCache{}, newMockedRepoManager(),
		)

		_, ok := svc.GetSecret(domain.SecretSeed)
		require.False(t, ok)
		require.False(t, svc.IsBackedUp())
		_, ok = svc.GetCurrency()
		require.False(t, ok)
	})

	t.Run("writes_report_failures", func(t *testing.T) {
		secretStore := &mockSecretStore{}
		secretStore.On("SetSecret", mock.Anything, mock.Anything).Return(errSomethingWentWrong)
		secretStore.On("DeleteSecret", mock.Anything).Return(errSomethingWentWrong)
		secretStore.On("SetFlag", domain.FlagAlreadyBackup, true).Return(errSomethingWentWrong)
		prefs := &mockPreferenceStore{}
		prefs.On("SetPreference", mock.Anything, mock.Anything).Return(errSomethingWentWrong)
		prefs.On("DeletePreference", mock.Anything).Return(errSomethingWentWrong)

		svc := application.NewCredentialService(
			secretStore, prefs, &mockCache{}, newMockedRepoManager(),
		)

		require.ErrorIs(t, svc.SetSecret(domain.SecretSeed, "abc"), errSomethingWentWrong)
		require.ErrorIs(t, svc.UnsetSecret(domain.SecretSeed), errSomethingWentWrong)
		require.ErrorIs(t, svc.MarkBackedUp(), errSomethingWentWrong)
		require.ErrorIs(t, svc.SetCurrency(domain.EUR), errSomethingWentWrong)
		require.ErrorIs(t, svc.UnsetCurrency(), errSomethingWentWrong)
	})
}

func newCredentialService() *application.CredentialService {
	return application.NewCredentialService(
		inmemorystore.NewSecretStore(), inmemoryprefs.NewPreferenceStore(),
		cache.NewCache(0), inmemory.NewRepoManager(),
	)
}
