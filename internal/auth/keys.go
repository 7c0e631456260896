package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const pemBlockType = "EC PRIVATE KEY"

// LoadECDSAPrivateKey loads an ECDSA private key from a PEM file.
func LoadECDSAPrivateKey(keyPath string) (*ecdsa.PrivateKey, error) {
	// check if keyPath exists
	if _, err := os.Stat(keyPath); err != nil {
		return nil, fmt.Errorf("private key path does not exist: %w", err)
	}

	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	block, _ := pem.Decode(keyData)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	privateKey, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ECDSA private key: %w", err)
	}

	return privateKey, nil
}

// WriteECDSAPrivateKey PEM-encodes key into keyPath with owner-only permissions.
func WriteECDSAPrivateKey(keyPath string, key *ecdsa.PrivateKey) error {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("failed to marshal ECDSA private key: %w", err)
	}

	if dir := filepath.Dir(keyPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create key directory: %w", err)
		}
	}

	data := pem.EncodeToMemory(&pem.Block{Type: pemBlockType, Bytes: der})
	if err := os.WriteFile(keyPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// LoadOrCreateECDSAPrivateKey loads the key at keyPath, generating and
// persisting a new P-256 key when the file does not exist yet. It reports
// whether a key was created.
func LoadOrCreateECDSAPrivateKey(keyPath string) (*ecdsa.PrivateKey, bool, error) {
	if keyPath == "" {
		return nil, false, fmt.Errorf("private key path is not provided in the configuration")
	}

	_, err := os.Stat(keyPath)
	switch {
	case err == nil:
		key, err := LoadECDSAPrivateKey(keyPath)
		return key, false, err
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, fmt.Errorf("failed to stat key file: %w", err)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate ECDSA key: %w", err)
	}
	if err := WriteECDSAPrivateKey(keyPath, key); err != nil {
		return nil, false, err
	}
	return key, true, nil
}
