package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/pmvault/internal/common"
)

const (
	tokenVersion byte = 0x01
	nonceSize         = 12
	tagSize           = 16
)

// Cipher encrypts secret fields with AES-256-GCM under a session key.
//
// Token layout: version(1) || nonce(12) || ciphertext || tag(16). The version
// byte is authenticated as additional data, so flipping any bit of the token
// makes Decrypt fail.
type Cipher struct {
	rand io.Reader
}

// NewCipher returns a Cipher drawing nonces from crypto/rand.
func NewCipher() *Cipher {
	return &Cipher{rand: rand.Reader}
}

func newGCM(key *SessionKey) (cipher.AEAD, error) {
	if !key.Alive() {
		return nil, common.ErrKeyDestroyed
	}
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under key. A nil plaintext means "no value" and
// yields an empty token; an empty non-nil plaintext is encrypted like any
// other value. Every call uses a fresh random nonce.
func (c *Cipher) Encrypt(key *SessionKey, plaintext []byte) ([]byte, error) {
	if plaintext == nil {
		return []byte{}, nil
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	token := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+tagSize)
	token[0] = tokenVersion
	if _, err := io.ReadFull(c.rand, token[1:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	return aead.Seal(token, token[1:], plaintext, token[:1]), nil
}

// Decrypt opens a token produced by Encrypt. An empty token yields an empty
// plaintext. Any authentication failure is reported as *DecryptionError and
// never as partial plaintext. The caller owns the result and should wipe it.
func (c *Cipher) Decrypt(key *SessionKey, token []byte) ([]byte, error) {
	if len(token) == 0 {
		return []byte{}, nil
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(token) < 1+nonceSize+tagSize {
		return nil, &DecryptionError{Reason: "token truncated"}
	}
	if token[0] != tokenVersion {
		return nil, &DecryptionError{Reason: fmt.Sprintf("unknown token version %#x", token[0])}
	}

	plaintext, err := aead.Open(nil, token[1:1+nonceSize], token[1+nonceSize:], token[:1])
	if err != nil {
		return nil, &DecryptionError{Reason: "message authentication failed"}
	}
	return plaintext, nil
}
