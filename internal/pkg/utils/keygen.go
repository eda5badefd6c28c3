package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// APITokenLength is the number of random characters in a project API token.
const APITokenLength = 32

// GenerateKey returns prefix followed by n random base62 characters.
func GenerateKey(prefix string, n int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(prefix) + n)
	sb.WriteString(prefix)

	limit := big.NewInt(int64(len(base62Chars)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base62Chars[num.Int64()])
	}

	return sb.String(), nil
}

// GenerateAPIToken returns a fresh project token.
func GenerateAPIToken(prefix string) (string, error) {
	return GenerateKey(prefix, APITokenLength)
}
