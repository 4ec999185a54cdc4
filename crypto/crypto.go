// Package crypto encrypts configuration values at rest.
//
// Values are sealed with XChaCha20-Poly1305 under a per-machine key
// stored in the user config directory. Ciphertexts are self-contained
// strings (base64 of nonce plus sealed data) safe to place in JSON
// settings files.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeyFilename is the name of the key file in the config directory.
const KeyFilename = "key.json"

// Crypto errors.
var (
	// ErrInvalidKeySize indicates key material of the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedValue indicates a ciphertext too short or not base64.
	ErrMalformedValue = errors.New("malformed encrypted value")

	// ErrDecryptFailed indicates authentication failed; the value was
	// tampered with or sealed under a different key.
	ErrDecryptFailed = errors.New("decryption failed")
)

// Cipher seals and opens configuration values.
type Cipher struct {
	key []byte
}

// New creates a Cipher from 32 bytes of key material.
func New(key []byte) (*Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), chacha20poly1305.KeySize)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Cipher{key: k}, nil
}

// GenerateKey returns fresh random key material.
func GenerateKey() ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// Encrypt seals a plaintext value. Each call uses a fresh random
// nonce, so encrypting the same value twice yields different output.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("decrypt value: %w", err)
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("%w: too short", ErrMalformedValue)
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}

	return string(plaintext), nil
}

// keyFile is the on-disk shape of the key file.
type keyFile struct {
	Key string `json:"key"`
}

// LoadOrCreateKey returns the key material stored in dir, generating
// and persisting a new key on first use. The key file is written with
// owner-only permissions.
func LoadOrCreateKey(dir string) ([]byte, error) {
	path := filepath.Join(dir, KeyFilename)

	data, err := os.ReadFile(path)
	if err == nil {
		var kf keyFile
		if err := json.Unmarshal(data, &kf); err != nil {
			return nil, fmt.Errorf("parse key file %s: %w", path, err)
		}
		key, err := base64.StdEncoding.DecodeString(kf.Key)
		if err != nil {
			return nil, fmt.Errorf("decode key file %s: %w", path, err)
		}
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("key file %s: %w", path, ErrInvalidKeySize)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", path, err)
	}

	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create key directory: %w", err)
	}

	data, err = json.MarshalIndent(keyFile{Key: base64.StdEncoding.EncodeToString(key)}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode key file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", path, err)
	}

	return key, nil
}
