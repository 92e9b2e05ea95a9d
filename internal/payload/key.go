package payload

import (
	"crypto/sha256"
	"errors"
)

// KeySize is the AES-256 key length in bytes
const KeySize = sha256.Size

var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// Key is the symmetric key shared by client and processor
type Key [KeySize]byte

// DeriveKey returns SHA-256 of the UTF-8 bytes of passphrase. The same
// passphrase always yields the same key.
func DeriveKey(passphrase string) (Key, error) {
	if passphrase == "" {
		return Key{}, ErrEmptyPassphrase
	}
	return Key(sha256.Sum256([]byte(passphrase))), nil
}

// MustDeriveKey is DeriveKey for passphrases already validated by configuration
func MustDeriveKey(passphrase string) Key {
	key, err := DeriveKey(passphrase)
	if err != nil {
		panic(err)
	}
	return key
}

// String keeps key material out of logs and fmt output
func (k Key) String() string {
	return "payload.Key(redacted)"
}

// GoString keeps key material out of %#v output
func (k Key) GoString() string {
	return k.String()
}
