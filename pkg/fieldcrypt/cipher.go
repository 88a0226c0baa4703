package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"unicode/utf8"
)

const redacted = "fieldcrypt.Cipher{key:[REDACTED]}"

// Cipher encrypts and decrypts single field values with one AES-256 key.
type Cipher struct {
	key   []byte
	block cipher.Block
}

// New creates a Cipher from raw key bytes. The key is copied, so the caller
// may clear its slice afterwards.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	k := make([]byte, KeySize)
	copy(k, key)

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, errors.Join(ErrInvalidKeyLength, err)
	}

	return &Cipher{key: k, block: block}, nil
}

// NewFromEncodedKey creates a Cipher from the base64 text form of a key.
func NewFromEncodedKey(text string) (*Cipher, error) {
	key, err := DecodeKey(text)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)
	return New(key)
}

// NewInsecureFromSecret creates a Cipher keyed by DeriveInsecureKey(secret).
// See DeriveInsecureKey for why this should not be used in production.
func NewInsecureFromSecret(secret string) (*Cipher, error) {
	key := DeriveInsecureKey(secret)
	defer clearBytes(key)
	return New(key)
}

// Encrypt returns the envelope for plaintext, or "" when plaintext is empty.
// Two calls with the same input produce different envelopes. Plaintext must be
// valid UTF-8; other input fails with ErrInvalidPlaintext since Decrypt could
// never return it.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	if !utf8.ValidString(plaintext) {
		return "", ErrInvalidPlaintext
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	defer clearBytes(padded)

	out := make([]byte, IVSize+len(padded))
	iv := out[:IVSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}

	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out[IVSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt returns the plaintext stored in envelope, or "" when envelope is
// empty. A wrong key is reported as ErrDecryptionFailed or
// ErrMalformedEnvelope; there is no separate signal for it.
func (c *Cipher) Decrypt(envelope string) (string, error) {
	if envelope == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", errors.Join(ErrMalformedEnvelope, err)
	}
	if len(raw) < MinEnvelopeSize || (len(raw)-IVSize)%aes.BlockSize != 0 {
		return "", ErrMalformedEnvelope
	}

	iv, ciphertext := raw[:IVSize], raw[IVSize:]

	padded := make([]byte, len(ciphertext))
	defer clearBytes(padded)
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(padded, ciphertext)

	plain, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}
	if !utf8.Valid(plain) {
		return "", errors.Join(ErrDecryptionFailed, errors.New("plaintext is not valid UTF-8"))
	}

	return string(plain), nil
}

// ExportKey returns the key in its base64 text form.
// It is the only way the key leaves a Cipher.
func (c *Cipher) ExportKey() string {
	return base64.StdEncoding.EncodeToString(c.key)
}

// ValidateEnvelopeFormat reports whether text decodes as base64 to at least
// one IV and one cipher block. It does not decrypt, so a well-formed envelope
// under the wrong key still passes.
func ValidateEnvelopeFormat(text string) bool {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return false
	}
	return len(raw) >= MinEnvelopeSize
}

// String, GoString and LogValue keep the key out of fmt and slog output.
func (c *Cipher) String() string { return redacted }

func (c *Cipher) GoString() string { return redacted }

func (c *Cipher) LogValue() slog.Value { return slog.StringValue(redacted) }
