package otp

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
)

// Generator produces numeric one-time codes rendered at a fixed width, so a
// drawn value of 42 becomes "000042" for length 6.
type Generator interface {
	RandomCode(length int) (string, error)
}

type CryptoGenerator struct{}

func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

func (g *CryptoGenerator) RandomCode(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	limit := big.NewInt(int64(math.Pow10(length)))
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("draw random code failed: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
