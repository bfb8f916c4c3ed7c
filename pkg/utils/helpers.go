package utils

import (
	"time"

	"golang.org/x/exp/rand"
)

// IDAlphabet is the 62-symbol alphabet used for generated identifiers.
const IDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// IDLength is the length of generated user identifiers.
const IDLength = 21

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

// GenerateID returns a 21-character identifier drawn from IDAlphabet.
func GenerateID() string {
	return GenerateRandomString(IDLength)
}

func GenerateRandomString(limit int) string {
	result := make([]byte, limit)
	for i := range result {
		result[i] = IDAlphabet[rand.Intn(len(IDAlphabet))]
	}

	return string(result)
}
