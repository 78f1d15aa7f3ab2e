package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the per-user KDF salt.
	SaltSize = 16
	// KeySize is the length of a derived session key (AES-256).
	KeySize = 32
	// KDFIterations is fixed: changing it changes every derived key and
	// orphans every stored ciphertext.
	KDFIterations = 200_000
)

// KeyDeriver turns a master password and a per-user salt into a session key.
type KeyDeriver struct {
	rand io.Reader
}

// NewKeyDeriver returns a KeyDeriver drawing salts from crypto/rand.
func NewKeyDeriver() *KeyDeriver {
	return &KeyDeriver{rand: rand.Reader}
}

// GenerateSalt returns SaltSize random bytes. It is called once per account.
func (d *KeyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(d.rand, salt); err != nil {
		return nil, fmt.Errorf("read random salt: %w", err)
	}
	return salt, nil
}

// DeriveKey runs PBKDF2-HMAC-SHA256 over password and salt. The same inputs
// always produce the same key. The intermediate key bytes are moved into a
// locked buffer and wiped.
func (d *KeyDeriver) DeriveKey(password, salt []byte) (*SessionKey, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("kdf salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	raw := pbkdf2.Key(password, salt, KDFIterations, KeySize, sha256.New)
	return NewSessionKey(raw), nil
}
