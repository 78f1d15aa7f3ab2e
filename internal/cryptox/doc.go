// Package cryptox holds the credential and key-management primitives of the
// vault.
//
// # Components
//
//   - Hasher     bcrypt hashing and verification of master passwords.
//   - KeyDeriver PBKDF2-HMAC-SHA256 derivation of a 32-byte session key
//     from a master password and the per-user 16-byte KDF salt.
//   - Cipher     AES-256-GCM authenticated encryption of secret fields.
//   - SessionKey a derived key held in a memguard LockedBuffer, scrubbed
//     on Destroy.
//
// The hash used for verification and the KDF used for encryption keys are
// intentionally distinct algorithms with distinct salts: knowing the stored
// bcrypt record does not help derive the session key.
//
// # Errors
//
// Structural problems with a stored hash record surface as *InvalidRecordError
// (errors.Is(err, common.ErrInvalidRecord)). A wrong key, tampered or truncated
// ciphertext surfaces as *DecryptionError (errors.Is(err, common.ErrDecryption)).
// A wrong password is never an error for Hasher.Verify; it returns false.
package cryptox
