package application

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

const (
	transactionsCacheKey = "transactions"
)

// TransactionService manages the local history of wallet transactions.
// The sorted list is kept in cache and invalidated on every write.
type TransactionService struct {
	repoManager ports.RepoManager
	cache       ports.Cache

	log func(format string, a ...interface{})
}

func NewTransactionService(
	repoManager ports.RepoManager, cache ports.Cache,
) *TransactionService {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("transaction service: %s", format)
		log.Debugf(format, a...)
	}
	return &TransactionService{repoManager, cache, logFn}
}

func (ts *TransactionService) AddTransaction(
	ctx context.Context, tx *domain.Transaction,
) (bool, error) {
	if err := tx.Validate(); err != nil {
		return false, err
	}

	done, err := ts.repoManager.TransactionRepository().AddTransaction(ctx, tx)
	if err != nil {
		return false, err
	}
	if done {
		ts.invalidateCache()
		ts.log("added tx %s", tx.TxID)
	}
	return done, nil
}

func (ts *TransactionService) ConfirmTransaction(
	ctx context.Context, txid, blockHash string, blockHeight uint64,
) error {
	done, err := ts.repoManager.TransactionRepository().ConfirmTransaction(
		ctx, txid, blockHash, blockHeight,
	)
	if err != nil {
		return err
	}
	if done {
		ts.invalidateCache()
		ts.log("confirmed tx %s", txid)
	}
	return nil
}

// ListTransactions returns the local transactions from the most recent to the
// oldest one.
func (ts *TransactionService) ListTransactions(
	ctx context.Context,
) ([]domain.Transaction, error) {
	if cached, ok := ts.cache.Get(transactionsCacheKey); ok {
		if txs, ok := cached.([]domain.Transaction); ok {
			return copyTransactions(txs), nil
		}
	}

	list, err := ts.repoManager.TransactionRepository().GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(list))
	for _, tx := range list {
		txs = append(txs, *tx)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Timestamp == txs[j].Timestamp {
			return txs[i].TxID < txs[j].TxID
		}
		return txs[i].Timestamp > txs[j].Timestamp
	})

	ts.cache.Set(transactionsCacheKey, txs)
	return copyTransactions(txs), nil
}

func (ts *TransactionService) invalidateCache() {
	ts.cache.Clear()
}

func copyTransactions(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)
	return out
}
