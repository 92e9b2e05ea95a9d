package payload

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"nfc-transfer-service/internal/dto"
)

// IdempotencyKey identifies a submission by the ciphertext and IV bytes the
// client sent, not by their base64 spelling. A retry re-sends the same bytes
// and so maps to the same key; a new submission gets a fresh IV and a
// different key. Payloads that are not valid base64 never decrypt and are
// keyed by their raw text.
func IdempotencyKey(p dto.EncryptedPayload) string {
	ciphertext, errCiphertext := base64.StdEncoding.DecodeString(p.Ciphertext)
	iv, errIV := base64.StdEncoding.DecodeString(p.IV)
	if errCiphertext != nil || errIV != nil {
		sum := blake2b.Sum256([]byte(p.Ciphertext + "." + p.IV))
		return hex.EncodeToString(sum[:])
	}

	buf := binary.BigEndian.AppendUint64(make([]byte, 0, 8+len(ciphertext)+len(iv)), uint64(len(ciphertext)))
	buf = append(buf, ciphertext...)
	buf = append(buf, iv...)

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
