package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/test/testutil"
)

func TestTransactionRepository(
	t *testing.T, ctx context.Context, repo domain.TransactionRepository,
) {
	newTx := testutil.RandomTx()
	txid := newTx.TxID
	wrongTxid := testutil.RandomHex(32)

	done, err := repo.AddTransaction(ctx, newTx)
	require.NoError(t, err)
	require.True(t, done)

	done, err = repo.AddTransaction(ctx, newTx)
	require.NoError(t, err)
	require.False(t, done)

	tx, err := repo.GetTransaction(ctx, txid)
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Equal(t, newTx.From, tx.From)
	require.Equal(t, newTx.To, tx.To)
	require.True(t, newTx.Amount.Equal(tx.Amount))
	require.True(t, newTx.Fee.Equal(tx.Fee))
	require.False(t, tx.IsConfirmed())

	tx, err = repo.GetTransaction(ctx, wrongTxid)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
	require.Nil(t, tx)

	blockHash := testutil.RandomHex(32)
	blockHeight := uint64(testutil.RandomIntInRange(100, 1000))

	done, err = repo.ConfirmTransaction(ctx, txid, blockHash, blockHeight)
	require.NoError(t, err)
	require.True(t, done)

	done, err = repo.ConfirmTransaction(ctx, txid, blockHash, blockHeight)
	require.NoError(t, err)
	require.False(t, done)

	tx, err = repo.GetTransaction(ctx, txid)
	require.NoError(t, err)
	require.True(t, tx.IsConfirmed())
	require.Equal(t, blockHash, tx.BlockHash)
	require.Equal(t, blockHeight, tx.BlockHeight)

	for i := 0; i < 2; i++ {
		done, err := repo.AddTransaction(ctx, testutil.RandomTx())
		require.NoError(t, err)
		require.True(t, done)
	}

	txs, err := repo.GetAllTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	err = repo.DeleteAllTransactions(ctx)
	require.NoError(t, err)

	txs, err = repo.GetAllTransactions(ctx)
	require.NoError(t, err)
	require.Empty(t, txs)

	err = repo.DeleteAllTransactions(ctx)
	require.NoError(t, err)
}
