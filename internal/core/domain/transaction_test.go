package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

func TestConfirmTransaction(t *testing.T) {
	tx := &domain.Transaction{}
	require.False(t, tx.IsConfirmed())

	tx.Confirm("fa84eb6806daf1b3c495ed30554d80573a39335b2993b66b3cc1afaa53816e47", 1728312)
	require.True(t, tx.IsConfirmed())

	tx.Confirm("0000000000000000000000000000000000000000000000000000000000000000", 1)
	require.Equal(t, uint64(1728312), tx.BlockHeight)
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name        string
		tx          domain.Transaction
		expectedErr error
	}{
		{
			name:        "missing txid",
			tx:          domain.Transaction{Amount: decimal.NewFromInt(1)},
			expectedErr: domain.ErrTransactionMissingTxID,
		},
		{
			name: "negative amount",
			tx: domain.Transaction{
				TxID: "txid", Amount: decimal.NewFromInt(-1),
			},
			expectedErr: domain.ErrTransactionInvalidValue,
		},
		{
			name: "negative fee",
			tx: domain.Transaction{
				TxID: "txid", Amount: decimal.NewFromInt(1), Fee: decimal.NewFromInt(-1),
			},
			expectedErr: domain.ErrTransactionInvalidValue,
		},
		{
			name: "valid",
			tx: domain.Transaction{
				TxID: "txid", Amount: decimal.NewFromInt(1), Fee: decimal.NewFromFloat(0.001),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestTransactionTotal(t *testing.T) {
	tx := domain.Transaction{
		Amount: decimal.RequireFromString("0.5"),
		Fee:    decimal.RequireFromString("0.0021"),
	}
	require.True(t, decimal.RequireFromString("0.5021").Equal(tx.Total()))
}
