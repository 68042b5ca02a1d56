package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OtpDigits is the length of withdrawal one-time codes.
const OtpDigits = 6

// CryptoOtpGenerator implements ports.OtpGenerator with crypto/rand.
type CryptoOtpGenerator struct {
	max *big.Int
}

// NewCryptoOtpGenerator creates a generator of OtpDigits-digit codes.
func NewCryptoOtpGenerator() *CryptoOtpGenerator {
	return &CryptoOtpGenerator{max: new(big.Int).Exp(big.NewInt(10), big.NewInt(OtpDigits), nil)}
}

// Generate returns a uniformly random zero-padded code.
func (g *CryptoOtpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OtpDigits, n.Int64()), nil
}
