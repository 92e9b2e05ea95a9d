package payload

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
)

var (
	// ErrEncryptionFailed never wraps anything derived from the key or plaintext
	ErrEncryptionFailed = errors.New("payload encryption failed")
	// ErrDecryptionFailed covers bad base64, bad IV, bad length, bad padding and wrong key
	ErrDecryptionFailed = errors.New("payload decryption failed")
)

// Encryptor seals transfer intents with AES-256-CBC and PKCS#7 padding
type Encryptor struct {
	random io.Reader
}

// EncryptorOption configures an Encryptor
type EncryptorOption func(*Encryptor)

// WithRandom replaces the IV source. Tests use it to get deterministic IVs.
func WithRandom(r io.Reader) EncryptorOption {
	return func(e *Encryptor) {
		e.random = r
	}
}

func NewEncryptor(opts ...EncryptorOption) *Encryptor {
	e := &Encryptor{random: rand.Reader}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Seal canonicalizes and encrypts intent under key with a fresh random IV
func (e *Encryptor) Seal(intent models.TransferIntent, key Key) (dto.EncryptedPayload, error) {
	plaintext, err := Canonicalize(intent)
	if err != nil {
		return dto.EncryptedPayload{}, ErrEncryptionFailed
	}
	return e.Encrypt(plaintext, key)
}

// Encrypt encrypts plaintext under key and base64-encodes ciphertext and IV
func (e *Encryptor) Encrypt(plaintext []byte, key Key) (dto.EncryptedPayload, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return dto.EncryptedPayload{}, ErrEncryptionFailed
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return dto.EncryptedPayload{}, fmt.Errorf("%w: iv generation", ErrEncryptionFailed)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return dto.EncryptedPayload{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// strictBase64 rejects encodings with non-zero trailing bits, so each byte
// sequence has exactly one accepted spelling
var strictBase64 = base64.StdEncoding.Strict()

// Decrypt reverses Encrypt. Every failure returns ErrDecryptionFailed with no
// further detail.
func Decrypt(p dto.EncryptedPayload, key Key) ([]byte, error) {
	iv, err := strictBase64.DecodeString(p.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return nil, ErrDecryptionFailed
	}

	ciphertext, err := strictBase64.DecodeString(p.Ciphertext)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return unpadded, nil
}

// Open decrypts p and parses the canonical intent it carries. A payload that
// decrypts but does not hold a well-formed intent returns models.ErrIntentMalformed.
func Open(p dto.EncryptedPayload, key Key) (models.TransferIntent, error) {
	plaintext, err := Decrypt(p, key)
	if err != nil {
		return models.TransferIntent{}, err
	}
	return parseCanonical(plaintext)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+padding), data...), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, errors.New("invalid padding value")
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("invalid padding bytes")
		}
	}

	return data[:len(data)-padding], nil
}
