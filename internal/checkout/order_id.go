package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	orderIDPrefix   = "ORD-"
	orderIDLength   = 9
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewOrderID returns a human-readable order reference such as ORD-K3F9Q0ZP1.
// Uniqueness is probabilistic only.
func NewOrderID() (string, error) {
	buf := make([]byte, orderIDLength)
	limit := big.NewInt(int64(len(orderIDAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate order id: %w", err)
		}
		buf[i] = orderIDAlphabet[n.Int64()]
	}
	return orderIDPrefix + string(buf), nil
}
