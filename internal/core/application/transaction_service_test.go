package application_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/credstore/internal/core/application"
	"github.com/vulpemventures/credstore/internal/core/domain"
	cache "github.com/vulpemventures/credstore/internal/infrastructure/cache/in-memory"
	"github.com/vulpemventures/credstore/internal/infrastructure/storage/db/inmemory"
)

func TestTransactionService(t *testing.T) {
	c := cache.NewCache(0)
	defer c.Stop()
	svc := application.NewTransactionService(inmemory.NewRepoManager(), c)

	now := time.Now().Unix()
	older := randomTx()
	older.Timestamp = now - 60
	newer := randomTx()
	newer.Timestamp = now

	t.Run("add_transactions", func(t *testing.T) {
		done, err := svc.AddTransaction(ctx, older)
		require.NoError(t, err)
		require.True(t, done)

		done, err = svc.AddTransaction(ctx, older)
		require.NoError(t, err)
		require.False(t, done)

		done, err = svc.AddTransaction(ctx, &domain.Transaction{})
		require.ErrorIs(t, err, domain.ErrTransactionMissingTxID)
		require.False(t, done)
	})

	t.Run("list_transactions", func(t *testing.T) {
		txs, err := svc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)

		// Adding a tx invalidates the cached list.
		_, err = svc.AddTransaction(ctx, newer)
		require.NoError(t, err)

		txs, err = svc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		require.Equal(t, newer.TxID, txs[0].TxID)
		require.Equal(t, older.TxID, txs[1].TxID)
	})

	t.Run("confirm_transaction", func(t *testing.T) {
		blockHash := hex.EncodeToString(make([]byte, 32))
		err := svc.ConfirmTransaction(ctx, older.TxID, blockHash, 100)
		require.NoError(t, err)

		txs, err := svc.ListTransactions(ctx)
		require.NoError(t, err)
		require.True(t, txs[1].IsConfirmed())

		err = svc.ConfirmTransaction(ctx, "unknown", blockHash, 100)
		require.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}

func TestTransactionServiceCache(t *testing.T) {
	tx := randomTx()
	mockedCache := &mockCache{}
	mockedCache.On("Get", mock.Anything).Return(nil, false).Once()
	mockedCache.On("Get", mock.Anything).Return([]domain.Transaction{*tx}, true)
	mockedCache.On("Set", mock.Anything, mock.Anything).Return()
	rm := newMockedRepoManager()
	rm.txRepository.On("GetAllTransactions", mock.Anything).
		Return([]*domain.Transaction{tx}, nil)

	svc := application.NewTransactionService(rm, mockedCache)

	for i := 0; i < 3; i++ {
		txs, err := svc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
	}

	rm.txRepository.AssertNumberOfCalls(t, "GetAllTransactions", 1)
	mockedCache.AssertNumberOfCalls(t, "Set", 1)
}

func randomTx() *domain.Transaction {
	return &domain.Transaction{
		TxID:      randomHex(32),
		From:      "0x" + randomHex(20),
		To:        "0x" + randomHex(20),
		Amount:    decimal.RequireFromString("0.25"),
		Fee:       decimal.RequireFromString("0.00021"),
		Timestamp: time.Now().Unix(),
	}
}

func randomHex(len int) string {
	b := make([]byte, len)
	rand.Read(b)
	return hex.EncodeToString(b)
}
