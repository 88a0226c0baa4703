// Package fieldcrypt encrypts a single sensitive attribute (for example a
// national ID number) before it is stored next to otherwise plaintext records.
//
// A Cipher owns exactly one 32-byte key and turns UTF-8 text into a
// self-contained envelope and back. It knows nothing about HTTP, JSON or the
// storage engine: strings go in, strings or a typed failure come out.
//
// # Envelope format
//
// Every call to Encrypt draws a fresh 16-byte IV from crypto/rand, encrypts the
// PKCS#7 padded plaintext with AES-256 in CBC mode and returns
//
//	base64std( IV(16) || Ciphertext(16*k) )
//
// The IV travels with the ciphertext, so decryption needs only the envelope
// and the key. The layout is byte-compatible with envelopes written by the
// previous implementation of the identity service and must not change.
//
// Empty input is treated as "no value" on both sides: Encrypt("") and
// Decrypt("") return "" and a nil error.
//
// # Security notes
//
// The envelope carries no authentication tag. A flipped bit, a truncated
// block and a wrong key are indistinguishable and surface either as
// ErrMalformedEnvelope or ErrDecryptionFailed. Some tampering (for example
// modifying the IV) yields a different plaintext without any error at all.
// Callers that need integrity must add it outside this package.
//
// DeriveInsecureKey reproduces the legacy fallback that truncates or pads an
// application secret to 32 bytes. It is not a KDF and exists only for
// compatibility with envelopes written under that scheme. Production
// deployments provide FIELD_ENCRYPTION_KEY instead.
//
// # Usage
//
//	key, _ := fieldcrypt.GenerateKey() // provision once, store in FIELD_ENCRYPTION_KEY
//
//	c, err := fieldcrypt.NewFromEncodedKey(key)
//	if err != nil {
//	    // handle ErrInvalidKeyLength
//	}
//
//	envelope, _ := c.Encrypt("123456789012")
//	plain, err := c.Decrypt(envelope)
//
// # Error Handling
//
// Failures wrap one of the sentinels ErrInvalidKeyLength, ErrMalformedEnvelope
// or ErrDecryptionFailed via errors.Join. Match them with errors.Is, or map any
// error to the closed Kind enumeration with KindOf.
//
// Encrypt also fails with ErrInvalidPlaintext for input that is not valid
// UTF-8, and with ErrRandomSource when no IV can be drawn. Neither is a Kind.
//
// A Cipher is immutable after construction and safe for concurrent use.
package fieldcrypt
