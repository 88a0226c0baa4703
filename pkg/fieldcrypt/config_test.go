package fieldcrypt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	key, err := fieldcrypt.GenerateKey()
	require.NoError(t, err)

	t.Run("explicit key", func(t *testing.T) {
		t.Parallel()
		c, err := fieldcrypt.NewFromConfig(fieldcrypt.Config{EncryptionKey: key})
		require.NoError(t, err)
		assert.Equal(t, key, c.ExportKey())
	})

	t.Run("explicit key wins over fallback", func(t *testing.T) {
		t.Parallel()
		cfg := fieldcrypt.Config{EncryptionKey: key, AppSecret: "secret", AllowInsecureKey: true}
		assert.False(t, cfg.UsesInsecureKey())

		c, err := fieldcrypt.NewFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, key, c.ExportKey())
	})

	t.Run("invalid explicit key", func(t *testing.T) {
		t.Parallel()
		_, err := fieldcrypt.NewFromConfig(fieldcrypt.Config{EncryptionKey: "c2hvcnQ="})
		assert.ErrorIs(t, err, fieldcrypt.ErrInvalidKeyLength)
	})

	t.Run("fallback allowed", func(t *testing.T) {
		t.Parallel()
		cfg := fieldcrypt.Config{AppSecret: "secret", AllowInsecureKey: true}
		assert.True(t, cfg.UsesInsecureKey())

		c, err := fieldcrypt.NewFromConfig(cfg)
		require.NoError(t, err)

		legacy, err := fieldcrypt.NewInsecureFromSecret("secret")
		require.NoError(t, err)
		assert.Equal(t, legacy.ExportKey(), c.ExportKey())
	})

	t.Run("fallback not allowed", func(t *testing.T) {
		t.Parallel()
		_, err := fieldcrypt.NewFromConfig(fieldcrypt.Config{AppSecret: "secret"})
		assert.ErrorIs(t, err, fieldcrypt.ErrKeyNotConfigured)
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Parallel()
		_, err := fieldcrypt.NewFromConfig(fieldcrypt.Config{AllowInsecureKey: true})
		assert.ErrorIs(t, err, fieldcrypt.ErrKeyNotConfigured)
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fieldcrypt.KindUnknown, fieldcrypt.KindOf(nil))
	assert.Equal(t, fieldcrypt.KindUnknown, fieldcrypt.KindOf(assert.AnError))
	assert.Equal(t, fieldcrypt.KindUnknown, fieldcrypt.KindOf(fieldcrypt.ErrKeyNotConfigured))
	assert.Equal(t, fieldcrypt.KindInvalidKeyLength, fieldcrypt.KindOf(fieldcrypt.ErrInvalidKeyLength))
	assert.Equal(t, fieldcrypt.KindMalformedEnvelope, fieldcrypt.KindOf(fieldcrypt.ErrMalformedEnvelope))
	assert.Equal(t, fieldcrypt.KindDecryptionFailed, fieldcrypt.KindOf(fieldcrypt.ErrDecryptionFailed))

	assert.Equal(t, "malformed_envelope", fieldcrypt.KindMalformedEnvelope.String())
	assert.Equal(t, "decryption_failed", fieldcrypt.KindDecryptionFailed.String())
	assert.Equal(t, "invalid_key_length", fieldcrypt.KindInvalidKeyLength.String())
	assert.Equal(t, "unknown", fieldcrypt.KindUnknown.String())
}
