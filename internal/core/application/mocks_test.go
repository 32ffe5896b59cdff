package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

// ports.SecretStore
type mockSecretStore struct {
	mock.Mock
}

func (m *mockSecretStore) GetSecret(
	field domain.SecretField,
) (string, bool, error) {
	args := m.Called(field)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockSecretStore) SetSecret(field domain.SecretField, value string) error {
	args := m.Called(field, value)
	return args.Error(0)
}

func (m *mockSecretStore) DeleteSecret(field domain.SecretField) error {
	args := m.Called(field)
	return args.Error(0)
}

func (m *mockSecretStore) GetFlag(flag domain.SecretFlag) (bool, error) {
	args := m.Called(flag)
	return args.Bool(0), args.Error(1)
}

func (m *mockSecretStore) SetFlag(flag domain.SecretFlag, value bool) error {
	args := m.Called(flag, value)
	return args.Error(0)
}

func (m *mockSecretStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockSecretStore) Close() {}

// ports.PreferenceStore
type mockPreferenceStore struct {
	mock.Mock
}

func (m *mockPreferenceStore) GetPreference(name string) (string, bool, error) {
	args := m.Called(name)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockPreferenceStore) SetPreference(name, value string) error {
	args := m.Called(name, value)
	return args.Error(0)
}

func (m *mockPreferenceStore) DeletePreference(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *mockPreferenceStore) Close() {}

// ports.Cache
type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(key string) (interface{}, bool) {
	args := m.Called(key)
	return args.Get(0), args.Bool(1)
}

func (m *mockCache) Set(key string, value interface{}) {
	m.Called(key, value)
}

func (m *mockCache) Clear() {
	m.Called()
}

// domain.TransactionRepository
type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) AddTransaction(
	ctx context.Context, tx *domain.Transaction,
) (bool, error) {
	args := m.Called(ctx, tx)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionRepository) ConfirmTransaction(
	ctx context.Context, txid, blockHash string, blockHeight uint64,
) (bool, error) {
	args := m.Called(ctx, txid, blockHash, blockHeight)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionRepository) GetTransaction(
	ctx context.Context, txid string,
) (*domain.Transaction, error) {
	args := m.Called(ctx, txid)
	var res *domain.Transaction
	if a := args.Get(0); a != nil {
		res = a.(*domain.Transaction)
	}
	return res, args.Error(1)
}

func (m *mockTransactionRepository) GetAllTransactions(
	ctx context.Context,
) ([]*domain.Transaction, error) {
	args := m.Called(ctx)
	var res []*domain.Transaction
	if a := args.Get(0); a != nil {
		res = a.([]*domain.Transaction)
	}
	return res, args.Error(1)
}

func (m *mockTransactionRepository) DeleteAllTransactions(
	ctx context.Context,
) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ports.RepoManager
type mockRepoManager struct {
	txRepository *mockTransactionRepository
}

func newMockedRepoManager() *mockRepoManager {
	return &mockRepoManager{&mockTransactionRepository{}}
}

func (m *mockRepoManager) TransactionRepository() domain.TransactionRepository {
	return m.txRepository
}

func (m *mockRepoManager) Close() {}

var _ ports.RepoManager = (*mockRepoManager)(nil)
