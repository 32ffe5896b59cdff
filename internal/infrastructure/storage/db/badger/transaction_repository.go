package dbbadger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

type transactionRepository struct {
	store *badgerhold.Store
	lock  *sync.Mutex

	log func(format string, a ...interface{})
}

func NewTransactionRepository(
	store *badgerhold.Store,
) domain.TransactionRepository {
	return newTransactionRepository(store)
}

func newTransactionRepository(
	store *badgerhold.Store,
) *transactionRepository {
	lock := &sync.Mutex{}
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("transaction repository: %s", format)
		log.Debugf(format, a...)
	}
	return &transactionRepository{store, lock, logFn}
}

func (r *transactionRepository) AddTransaction(
	_ context.Context, tx *domain.Transaction,
) (bool, error) {
	if err := r.store.Insert(tx.TxID, *tx); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *transactionRepository) ConfirmTransaction(
	ctx context.Context, txid, blockHash string, blockheight uint64,
) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	tx, err := r.getTx(ctx, txid)
	if err != nil {
		return false, err
	}

	if tx.IsConfirmed() {
		return false, nil
	}

	tx.Confirm(blockHash, blockheight)

	if err := r.store.Update(tx.TxID, *tx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *transactionRepository) GetTransaction(
	ctx context.Context, txid string,
) (*domain.Transaction, error) {
	return r.getTx(ctx, txid)
}

func (r *transactionRepository) GetAllTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	var list []domain.Transaction
	if err := r.store.Find(&list, nil); err != nil {
		return nil, err
	}

	txs := make([]*domain.Transaction, 0, len(list))
	for i := range list {
		txs = append(txs, &list[i])
	}
	return txs, nil
}

func (r *transactionRepository) DeleteAllTransactions(_ context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.store.Badger().DropAll(); err != nil {
		return err
	}
	r.log("deleted all transactions")
	return nil
}

func (r *transactionRepository) getTx(
	_ context.Context, txid string,
) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := r.store.Get(txid, &tx); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) close() {
	r.store.Close()
}
