package db_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

var (
	ctx = context.Background()
)

func randomTx() *domain.Transaction {
	return &domain.Transaction{
		TxID:      randomHex(32),
		From:      fmt.Sprintf("0x%s", randomHex(20)),
		To:        fmt.Sprintf("0x%s", randomHex(20)),
		Amount:    decimal.New(int64(randomIntInRange(1, 1000000)), -6),
		Fee:       decimal.New(int64(randomIntInRange(1, 1000)), -8),
		Timestamp: time.Now().Unix(),
	}
}

func randomHex(len int) string {
	return hex.EncodeToString(randomBytes(len))
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	rand.Read(b)
	return b
}

func randomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(int(n.Int64())) + min
}
