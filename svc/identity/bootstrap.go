package identity

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fieldcrypt/pkg/environment"
	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
	"github.com/dmitrymomot/fieldcrypt/pkg/logger"
)

// NewCipher builds the field cipher for env. The key derived from
// APP_SECRET_KEY is accepted only in development, with a warning.
func NewCipher(env environment.Environment, cfg fieldcrypt.Config, log *slog.Logger) (*fieldcrypt.Cipher, error) {
	if cfg.UsesInsecureKey() {
		if !env.IsDevelopment() {
			return nil, ErrInsecureKeyNotAllowed
		}
		if log != nil {
			log.Warn("field encryption key derived from APP_SECRET_KEY; set FIELD_ENCRYPTION_KEY",
				logger.Component("identity"),
				slog.String("env", env.String()),
			)
		}
	}

	c, err := fieldcrypt.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}
	return c, nil
}
