// Package auth provides the password gate and session token handling.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// PASETO v4 requires a 256-bit (32-byte) symmetric key.
	keyLength = 32
	// Expected hex-encoded length (32 bytes = 64 hex characters).
	keyHexLength = 64
)

// LoadOrGenerateKey loads or generates the PASETO v4 symmetric key for
// session tokens. The SESSION_KEY environment value wins when set; otherwise
// the key lives in <dataPath>/session.key as a hex-encoded string and is
// generated on first run. Returns the decoded 32-byte key.
func LoadOrGenerateKey(dataPath string) ([]byte, error) {
	if envKey := os.Getenv("SESSION_KEY"); envKey != "" {
		return decodeKeyHex(strings.TrimSpace(envKey))
	}

	keyPath := filepath.Join(dataPath, "session.key")

	// Try to load an existing key.
	//#nosec G304 -- Key path is derived from the validated data path
	if keyBytes, err := os.ReadFile(keyPath); err == nil {
		return decodeKeyHex(strings.TrimSpace(string(keyBytes)))
	}

	// Generate a new key (32 bytes = 256 bits for PASETO v4).
	key := make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	if err := os.MkdirAll(dataPath, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(keyPath, []byte(hex.EncodeToString(key)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to save session key: %w", err)
	}

	return key, nil
}

// decodeKeyHex validates and decodes a hex-encoded 32-byte key.
func decodeKeyHex(keyHex string) ([]byte, error) {
	if len(keyHex) != keyHexLength {
		return nil, fmt.Errorf("invalid session key length: expected %d hex chars, got %d", keyHexLength, len(keyHex))
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid session key format: not valid hex: %w", err)
	}

	return key, nil
}
