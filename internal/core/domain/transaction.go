package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound     = fmt.Errorf("transaction not found")
	ErrTransactionMissingTxID  = fmt.Errorf("missing transaction id")
	ErrTransactionInvalidValue = fmt.Errorf("amount and fee must not be negative")
)

// Transaction is the local record of a wallet transaction, persisted to
// display the history without querying the chain.
type Transaction struct {
	TxID        string
	From        string
	To          string
	Amount      decimal.Decimal
	Fee         decimal.Decimal
	BlockHash   string
	BlockHeight uint64
	Timestamp   int64
}

// Validate returns an error if the record can't be persisted.
func (t *Transaction) Validate() error {
	if t.TxID == "" {
		return ErrTransactionMissingTxID
	}
	if t.Amount.IsNegative() || t.Fee.IsNegative() {
		return ErrTransactionInvalidValue
	}
	return nil
}

// IsConfirmed returns whether the tx is included in the blockchain.
func (t *Transaction) IsConfirmed() bool {
	return t.BlockHash != ""
}

// Confirm marks the tx as confirmed.
func (t *Transaction) Confirm(blockHash string, blockHeight uint64) {
	if t.IsConfirmed() {
		return
	}

	t.BlockHash = blockHash
	t.BlockHeight = blockHeight
}

// Total returns the amount spent by the tx including fees.
func (t *Transaction) Total() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}
