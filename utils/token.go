package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateAlnumSuffix (A-Z0-9) เช่น "4DKF"
// uses crypto/rand + rand.Int (math/big) to avoid modulo bias
func GenerateAlnumSuffix(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(suffixCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(suffixCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBillNumber → "BILL-<epoch ms>-<4 alnum>". Human-facing id;
// uniqueness is probabilistic, not enforced.
func GenerateBillNumber(now time.Time) (string, error) {
	suffix, err := GenerateAlnumSuffix(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BILL-%d-%s", now.UnixMilli(), suffix), nil
}
