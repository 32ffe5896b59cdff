package postgresdb

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

const (
	uniqueViolation = "23505"

	insertTxQuery = `
INSERT INTO local_transaction (
	tx_id, tx_from, tx_to, amount, fee, block_hash, block_height, timestamp
) VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, $8)`
	selectTxColumns = `
SELECT tx_id, tx_from, tx_to, amount::text, fee::text, block_hash,
	block_height, timestamp
FROM local_transaction`
	selectTxQuery     = selectTxColumns + ` WHERE tx_id = $1`
	selectAllTxsQuery = selectTxColumns + ` ORDER BY timestamp DESC`
	confirmTxQuery    = `
UPDATE local_transaction SET block_hash = $2, block_height = $3
WHERE tx_id = $1 AND block_hash = ''`
	deleteAllTxsQuery = `DELETE FROM local_transaction`
)

type txRepositoryPg struct {
	pgxPool *pgxpool.Pool
}

func NewTxRepositoryPgImpl(pgxPool *pgxpool.Pool) domain.TransactionRepository {
	return newTxRepositoryPgImpl(pgxPool)
}

func newTxRepositoryPgImpl(pgxPool *pgxpool.Pool) *txRepositoryPg {
	return &txRepositoryPg{pgxPool}
}

func (t *txRepositoryPg) AddTransaction(
	ctx context.Context, tx *domain.Transaction,
) (bool, error) {
	if _, err := t.pgxPool.Exec(
		ctx, insertTxQuery, tx.TxID, tx.From, tx.To, tx.Amount.String(),
		tx.Fee.String(), tx.BlockHash, int64(tx.BlockHeight), tx.Timestamp,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t *txRepositoryPg) ConfirmTransaction(
	ctx context.Context, txid, blockHash string, blockHeight uint64,
) (bool, error) {
	if _, err := t.GetTransaction(ctx, txid); err != nil {
		return false, err
	}

	tag, err := t.pgxPool.Exec(
		ctx, confirmTxQuery, txid, blockHash, int64(blockHeight),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (t *txRepositoryPg) GetTransaction(
	ctx context.Context, txid string,
) (*domain.Transaction, error) {
	tx, err := scanTx(t.pgxPool.QueryRow(ctx, selectTxQuery, txid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (t *txRepositoryPg) GetAllTransactions(
	ctx context.Context,
) ([]*domain.Transaction, error) {
	rows, err := t.pgxPool.Query(ctx, selectAllTxsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTx(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (t *txRepositoryPg) DeleteAllTransactions(ctx context.Context) error {
	_, err := t.pgxPool.Exec(ctx, deleteAllTxsQuery)
	return err
}

func scanTx(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx          domain.Transaction
		amount, fee string
		blockHeight int64
	)
	if err := row.Scan(
		&tx.TxID, &tx.From, &tx.To, &amount, &fee, &tx.BlockHash,
		&blockHeight, &tx.Timestamp,
	); err != nil {
		return nil, err
	}

	var err error
	if tx.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	if tx.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, err
	}
	tx.BlockHeight = uint64(blockHeight)
	return &tx, nil
}
