package service

import (
	"crypto/rand"
	"fmt"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 15
)

// generateToken draws length characters uniformly from the share token
// alphabet. Rejection sampling keeps the distribution uniform; collisions
// with existing tokens are not checked, the 62^15 space makes them
// negligible.
func generateToken(length int) (string, error) {
	// Largest multiple of len(tokenAlphabet) that fits in a byte.
	limit := byte(256 - 256%len(tokenAlphabet))

	token := make([]byte, 0, length)
	buffer := make([]byte, length)

	for len(token) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buffer {
			if b >= limit {
				continue
			}
			token = append(token, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(token) == length {
				break
			}
		}
	}

	return string(token), nil
}
