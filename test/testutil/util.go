package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

func RandomTx() *domain.Transaction {
	return &domain.Transaction{
		TxID:      RandomHex(32),
		From:      fmt.Sprintf("0x%s", RandomHex(20)),
		To:        fmt.Sprintf("0x%s", RandomHex(20)),
		Amount:    decimal.New(int64(RandomIntInRange(1, 1000000)), -6),
		Fee:       decimal.New(int64(RandomIntInRange(1, 1000)), -8),
		Timestamp: time.Now().Unix(),
	}
}

func RandomHex(len int) string {
	return hex.EncodeToString(RandomBytes(len))
}

func RandomBytes(len int) []byte {
	b := make([]byte, len)
	rand.Read(b)
	return b
}

func RandomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + min
}
