package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

var (
	txid        string
	txFrom      string
	txTo        string
	amount      string
	fee         string
	blockHash   string
	blockHeight uint64

	txAddCmd = &cobra.Command{
		Use:   "add",
		Short: "record a local transaction",
		RunE:  txAdd,
	}
	txConfirmCmd = &cobra.Command{
		Use:   "confirm",
		Short: "mark a local transaction as confirmed",
		RunE:  txConfirm,
	}
	txListCmd = &cobra.Command{
		Use:   "list",
		Short: "list the local transactions",
		RunE:  txList,
	}
	txCmd = &cobra.Command{
		Use:   "tx",
		Short: "manage the local transaction history",
	}
)

func init() {
	txAddCmd.Flags().StringVar(&txid, "txid", "", "hash of the transaction")
	txAddCmd.Flags().StringVar(&txFrom, "from", "", "sender address")
	txAddCmd.Flags().StringVar(&txTo, "to", "", "receiver address")
	txAddCmd.Flags().StringVar(&amount, "amount", "0", "amount transferred")
	txAddCmd.Flags().StringVar(&fee, "fee", "0", "fee paid")
	txAddCmd.MarkFlagRequired("txid")

	txConfirmCmd.Flags().StringVar(&txid, "txid", "", "hash of the transaction")
	txConfirmCmd.Flags().StringVar(&blockHash, "block-hash", "", "hash of the including block")
	txConfirmCmd.Flags().Uint64Var(&blockHeight, "block-height", 0, "height of the including block")
	txConfirmCmd.MarkFlagRequired("txid")
	txConfirmCmd.MarkFlagRequired("block-hash")

	txCmd.AddCommand(txAddCmd, txConfirmCmd, txListCmd)
}

func txAdd(_ *cobra.Command, _ []string) error {
	amountValue, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	feeValue, err := decimal.NewFromString(fee)
	if err != nil {
		return fmt.Errorf("invalid fee: %w", err)
	}
	svc, err := getTransactionService()
	if err != nil {
		return err
	}

	done, err := svc.AddTransaction(context.Background(), &domain.Transaction{
		TxID:      txid,
		From:      txFrom,
		To:        txTo,
		Amount:    amountValue,
		Fee:       feeValue,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("transaction %s already recorded\n", txid)
		return nil
	}
	fmt.Printf("transaction %s recorded\n", txid)
	return nil
}

func txConfirm(_ *cobra.Command, _ []string) error {
	svc, err := getTransactionService()
	if err != nil {
		return err
	}

	if err := svc.ConfirmTransaction(
		context.Background(), txid, blockHash, blockHeight,
	); err != nil {
		return err
	}
	fmt.Printf("transaction %s confirmed\n", txid)
	return nil
}

func txList(_ *cobra.Command, _ []string) error {
	svc, err := getTransactionService()
	if err != nil {
		return err
	}

	txs, err := svc.ListTransactions(context.Background())
	if err != nil {
		return err
	}

	list := make([]map[string]interface{}, 0, len(txs))
	for _, tx := range txs {
		list = append(list, map[string]interface{}{
			"txid":         tx.TxID,
			"from":         tx.From,
			"to":           tx.To,
			"amount":       tx.Amount.String(),
			"fee":          tx.Fee.String(),
			"confirmed":    tx.IsConfirmed(),
			"block_height": tx.BlockHeight,
			"timestamp":    time.Unix(tx.Timestamp, 0).UTC().Format(time.RFC3339),
		})
	}
	printJSON(list)
	return nil
}
