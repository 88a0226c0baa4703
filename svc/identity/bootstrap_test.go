package identity_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcrypt/pkg/environment"
	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
	"github.com/dmitrymomot/fieldcrypt/svc/identity"
)

func TestNewCipher(t *testing.T) {
	t.Parallel()

	key, err := fieldcrypt.GenerateKey()
	require.NoError(t, err)

	insecure := fieldcrypt.Config{AppSecret: "django-insecure-secret", AllowInsecureKey: true}

	t.Run("explicit key in production", func(t *testing.T) {
		t.Parallel()
		c, err := identity.NewCipher(environment.Production, fieldcrypt.Config{EncryptionKey: key}, nil)
		require.NoError(t, err)
		assert.Equal(t, key, c.ExportKey())
	})

	t.Run("insecure key refused in production", func(t *testing.T) {
		t.Parallel()
		c, err := identity.NewCipher(environment.Production, insecure, nil)
		require.ErrorIs(t, err, identity.ErrInsecureKeyNotAllowed)
		assert.Nil(t, c)
	})

	t.Run("insecure key refused in staging", func(t *testing.T) {
		t.Parallel()
		_, err := identity.NewCipher(environment.Staging, insecure, nil)
		require.ErrorIs(t, err, identity.ErrInsecureKeyNotAllowed)
	})

	for _, appEnv := range []string{"prd", "live", "production-eu", "PRODUCTION", "qa"} {
		t.Run("insecure key refused for APP_ENV="+appEnv, func(t *testing.T) {
			t.Parallel()
			c, err := identity.NewCipher(environment.Parse(appEnv), insecure, nil)
			require.ErrorIs(t, err, identity.ErrInsecureKeyNotAllowed)
			assert.Nil(t, c)
		})
	}

	for _, appEnv := range []string{"", "dev", "Development"} {
		t.Run("insecure key allowed for APP_ENV="+appEnv, func(t *testing.T) {
			t.Parallel()
			c, err := identity.NewCipher(environment.Parse(appEnv), insecure, nil)
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}

	t.Run("insecure key warns in development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		c, err := identity.NewCipher(environment.Development, insecure, log)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.NotContains(t, buf.String(), "django-insecure-secret")
	})

	t.Run("no key configured", func(t *testing.T) {
		t.Parallel()
		_, err := identity.NewCipher(environment.Development, fieldcrypt.Config{}, nil)
		require.ErrorIs(t, err, fieldcrypt.ErrKeyNotConfigured)
	})

	t.Run("bad key", func(t *testing.T) {
		t.Parallel()
		_, err := identity.NewCipher(environment.Staging, fieldcrypt.Config{EncryptionKey: "c2hvcnQ="}, nil)
		require.ErrorIs(t, err, fieldcrypt.ErrInvalidKeyLength)
	})
}
