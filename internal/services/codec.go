package services

import "github.com/dmitrijs2005/pmvault/internal/cryptox"

// SecretCodec protects individual secret fields before storage and reveals
// them after retrieval. Each call gets its own nonce, so two fields of the
// same entry never share ciphertext.
type SecretCodec struct {
	cipher *cryptox.Cipher
}

func NewSecretCodec(c *cryptox.Cipher) *SecretCodec {
	return &SecretCodec{cipher: c}
}

// Protect encrypts plaintext; nil means absent and yields an empty token.
func (c *SecretCodec) Protect(key *cryptox.SessionKey, plaintext []byte) ([]byte, error) {
	return c.cipher.Encrypt(key, plaintext)
}

// Reveal decrypts token. A *cryptox.DecryptionError is returned unchanged and
// must be treated as a wrong key, never as an empty value.
func (c *SecretCodec) Reveal(key *cryptox.SessionKey, token []byte) ([]byte, error) {
	return c.cipher.Decrypt(key, token)
}
