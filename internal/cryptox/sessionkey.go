package cryptox

import (
	"github.com/awnumar/memguard"
)

// SessionKey is a derived symmetric key living in guarded, mlocked memory.
// Destroy wipes it; a destroyed key can no longer encrypt or decrypt.
type SessionKey struct {
	buf *memguard.LockedBuffer
}

// NewSessionKey moves raw into a locked buffer. raw is zeroed by the move and
// must not be used afterwards.
func NewSessionKey(raw []byte) *SessionKey {
	buf := memguard.NewBufferFromBytes(raw)
	buf.Freeze()
	return &SessionKey{buf: buf}
}

// Bytes exposes the key material. The slice aliases locked memory and becomes
// invalid after Destroy; never copy it out.
func (k *SessionKey) Bytes() []byte {
	if !k.Alive() {
		return nil
	}
	return k.buf.Bytes()
}

// Alive reports whether the key is still usable.
func (k *SessionKey) Alive() bool {
	return k != nil && k.buf != nil && k.buf.IsAlive()
}

// Equal compares two keys in constant time.
func (k *SessionKey) Equal(other *SessionKey) bool {
	if !k.Alive() || !other.Alive() {
		return false
	}
	return k.buf.EqualTo(other.buf.Bytes())
}

// Destroy wipes the key. It is safe to call more than once.
func (k *SessionKey) Destroy() {
	if k == nil || k.buf == nil {
		return
	}
	k.buf.Destroy()
}
