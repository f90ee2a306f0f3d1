package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

func GenerateID(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// ValidID reports whether id looks like a GenerateID(length) result.
func ValidID(id string, length int) bool {
	if len(id) != 2*length {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
