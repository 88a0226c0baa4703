package fieldcrypt

import "errors"

var (
	ErrInvalidKeyLength  = errors.New("invalid encryption key length: must be 32 bytes")
	ErrMalformedEnvelope = errors.New("malformed encrypted envelope")
	ErrDecryptionFailed  = errors.New("decryption failed")

	// ErrInvalidPlaintext is returned by Encrypt for text that is not valid
	// UTF-8.
	ErrInvalidPlaintext = errors.New("plaintext is not valid UTF-8")

	// ErrRandomSource is returned when crypto/rand cannot supply entropy.
	ErrRandomSource = errors.New("secure random source failure")

	// ErrKeyNotConfigured is returned by NewFromConfig when neither an explicit
	// key nor an allowed fallback secret is present.
	ErrKeyNotConfigured = errors.New("field encryption key not configured")
)

// Kind classifies a failure returned by this package.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidKeyLength
	KindMalformedEnvelope
	KindDecryptionFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidKeyLength:
		return "invalid_key_length"
	case KindMalformedEnvelope:
		return "malformed_envelope"
	case KindDecryptionFailed:
		return "decryption_failed"
	default:
		return "unknown"
	}
}

// KindOf reports which failure kind err belongs to.
// It returns KindUnknown for nil and for errors not produced by this package.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidKeyLength):
		return KindInvalidKeyLength
	case errors.Is(err, ErrMalformedEnvelope):
		return KindMalformedEnvelope
	case errors.Is(err, ErrDecryptionFailed):
		return KindDecryptionFailed
	default:
		return KindUnknown
	}
}
