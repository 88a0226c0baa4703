package identity

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
	"github.com/dmitrymomot/fieldcrypt/pkg/logger"
)

// Encrypter is the part of *fieldcrypt.Cipher the adapter needs.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(envelope string) (string, error)
}

// FieldAdapter moves the national ID between its plaintext form and the
// encrypted slot of a User.
type FieldAdapter struct {
	enc    Encrypter
	logger *slog.Logger
}

// NewFieldAdapter returns an adapter over enc. A nil logger discards output.
func NewFieldAdapter(enc Encrypter, log *slog.Logger) *FieldAdapter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FieldAdapter{
		enc:    enc,
		logger: log.With(logger.Component("identity.fields")),
	}
}

// Seal encrypts plaintext into u.EncryptedNationalID. Empty plaintext leaves
// the slot as it is.
func (a *FieldAdapter) Seal(u *User, plaintext string) error {
	if plaintext == "" {
		return nil
	}

	envelope, err := a.enc.Encrypt(plaintext)
	if err != nil {
		return err
	}
	u.EncryptedNationalID = &envelope
	return nil
}

// Reveal decrypts the stored national ID. It returns false when nothing is
// stored or when the envelope cannot be decrypted; decryption failures are
// logged and never returned to the reader.
func (a *FieldAdapter) Reveal(ctx context.Context, u *User) (string, bool) {
	if !u.HasNationalID() {
		return "", false
	}

	plain, err := a.enc.Decrypt(*u.EncryptedNationalID)
	if err != nil {
		a.logger.WarnContext(ctx, "national id unavailable",
			logger.UserID(u.ID.String()),
			logger.FailureKind(fieldcrypt.KindOf(err)),
		)
		return "", false
	}
	if plain == "" {
		return "", false
	}
	return plain, true
}
