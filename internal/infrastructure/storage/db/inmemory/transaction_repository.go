package inmemory

import (
	"context"
	"sync"

	"github.com/vulpemventures/credstore/internal/core/domain"
)

type txInmemoryStore struct {
	txs  map[string]*domain.Transaction
	lock *sync.RWMutex
}

type txRepository struct {
	store *txInmemoryStore
}

func NewTransactionRepository() domain.TransactionRepository {
	return newTransactionRepository()
}

func newTransactionRepository() *txRepository {
	return &txRepository{
		store: &txInmemoryStore{
			txs:  make(map[string]*domain.Transaction),
			lock: &sync.RWMutex{},
		},
	}
}

func (r *txRepository) AddTransaction(
	ctx context.Context, tx *domain.Transaction,
) (bool, error) {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	return r.addTx(ctx, tx)
}

func (r *txRepository) ConfirmTransaction(
	ctx context.Context, txid, blockHash string, blockheight uint64,
) (bool, error) {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	return r.confirmTx(ctx, txid, blockHash, blockheight)
}

func (r *txRepository) GetTransaction(
	ctx context.Context, txid string,
) (*domain.Transaction, error) {
	r.store.lock.RLock()
	defer r.store.lock.RUnlock()

	tx, err := r.getTx(ctx, txid)
	if err != nil {
		return nil, err
	}
	t := *tx
	return &t, nil
}

func (r *txRepository) GetAllTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	r.store.lock.RLock()
	defer r.store.lock.RUnlock()

	txs := make([]*domain.Transaction, 0, len(r.store.txs))
	for _, tx := range r.store.txs {
		t := *tx
		txs = append(txs, &t)
	}
	return txs, nil
}

func (r *txRepository) DeleteAllTransactions(_ context.Context) error {
	r.reset()
	return nil
}

func (r *txRepository) addTx(
	_ context.Context, tx *domain.Transaction,
) (bool, error) {
	if _, ok := r.store.txs[tx.TxID]; ok {
		return false, nil
	}

	t := *tx
	r.store.txs[tx.TxID] = &t
	return true, nil
}

func (r *txRepository) confirmTx(
	ctx context.Context, txid, blockHash string, blockHeight uint64,
) (bool, error) {
	tx, err := r.getTx(ctx, txid)
	if err != nil {
		return false, err
	}

	if tx.IsConfirmed() {
		return false, nil
	}

	tx.Confirm(blockHash, blockHeight)
	return true, nil
}

func (r *txRepository) getTx(
	_ context.Context, txid string,
) (*domain.Transaction, error) {
	tx, ok := r.store.txs[txid]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *txRepository) reset() {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	r.store.txs = make(map[string]*domain.Transaction)
}
