package domain

import "context"

// TransactionRepository is the abstraction for any kind of database intended
// to persist the local Transaction records.
type TransactionRepository interface {
	// AddTransaction adds the provided transaction to the repository by
	// preventing duplicates.
	AddTransaction(ctx context.Context, tx *Transaction) (bool, error)
	// ConfirmTransaction adds the given blockhash and block height to the
	// Transaction identified by the given txid.
	ConfirmTransaction(
		ctx context.Context, txid, blockHash string, blockheight uint64,
	) (bool, error)
	// GetTransaction returns the Transaction identified by the given txid.
	GetTransaction(ctx context.Context, txid string) (*Transaction, error)
	// GetAllTransactions returns all the persisted transactions.
	GetAllTransactions(ctx context.Context) ([]*Transaction, error)
	// DeleteAllTransactions removes every persisted transaction.
	DeleteAllTransactions(ctx context.Context) error
}
