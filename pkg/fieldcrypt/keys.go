package fieldcrypt

import (
	"crypto/aes"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const (
	KeySize = 32 // 256 bits for AES-256
	IVSize  = aes.BlockSize

	// MinEnvelopeSize is one IV plus one padded block.
	MinEnvelopeSize = IVSize + aes.BlockSize

	// insecureKeyFiller pads short secrets in DeriveInsecureKey.
	insecureKeyFiller = '0'
)

// GenerateRawKey returns 32 random bytes suitable for New.
func GenerateRawKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	return key, nil
}

// GenerateKey returns a new random key in its base64 text form.
// Use it to provision FIELD_ENCRYPTION_KEY out of band.
func GenerateKey() (string, error) {
	key, err := GenerateRawKey()
	if err != nil {
		return "", err
	}
	defer clearBytes(key)
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeKey parses the base64 text form of a key.
func DecodeKey(text string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Join(ErrInvalidKeyLength, err)
	}
	if len(key) != KeySize {
		clearBytes(key)
		return nil, ErrInvalidKeyLength
	}
	return key, nil
}

// DeriveInsecureKey turns an application secret into a 32-byte key by taking
// its first 32 bytes and right-padding shorter secrets with '0'.
//
// This is not a key derivation function. It exists to read envelopes written
// by deployments that never configured a dedicated key. Do not use it for new
// deployments.
func DeriveInsecureKey(secret string) []byte {
	key := make([]byte, KeySize)
	n := copy(key, secret)
	for i := n; i < KeySize; i++ {
		key[i] = insecureKeyFiller
	}
	return key
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
