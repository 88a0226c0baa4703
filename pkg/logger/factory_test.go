package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcrypt/pkg/environment"
	"github.com/dmitrymomot/fieldcrypt/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("hello")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestNew_RedactsSensitiveAttributes(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	log.Info("stored",
		slog.String("national_id", "123456789012"),
		slog.String("envelope", "c2VjcmV0"),
		slog.String("Password", "hunter2"),
		slog.Group("cfg", slog.String("encryption_key", "AAAA")),
		slog.String("email", "a@example.com"),
	)

	out := buf.String()
	assert.NotContains(t, out, "123456789012")
	assert.NotContains(t, out, "c2VjcmV0")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "AAAA")

	entry := decode(t, buf)
	assert.Equal(t, logger.RedactedValue, entry["national_id"])
	assert.Equal(t, logger.RedactedValue, entry["Password"])
	assert.Equal(t, logger.RedactedValue, entry["cfg"].(map[string]any)["encryption_key"])
	assert.Equal(t, "a@example.com", entry["email"])
}

func TestNew_StaticAttributesAreRedacted(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("secret", "s3cr3t")))
	log.With(slog.String("plaintext", "p")).Info("hello")

	entry := decode(t, buf)
	assert.Equal(t, logger.RedactedValue, entry["secret"])
	assert.Equal(t, logger.RedactedValue, entry["plaintext"])
}

func TestWithSensitiveKeys(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithSensitiveKeys("Phone_Number", ""))
	log.Info("hello", slog.String("phone_number", "+1555"))
	assert.Equal(t, logger.RedactedValue, decode(t, buf)["phone_number"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production is json at info", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Production, "identity"))
		log.Debug("dropped")
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "identity", entry["service"])
	})

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Development, "identity"))
		log.Debug("debugging")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithConfig(logger.Config{Level: "warn", Format: "TEXT"}),
	)
	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")

	buf.Reset()
	log = logger.New(logger.WithOutput(buf), logger.WithConfig(logger.Config{Level: "nonsense"}))
	log.Info("hello")
	assert.Equal(t, "INFO", decode(t, buf)["level"])
}

func TestWithConfig_KeepsEnvironmentPreset(t *testing.T) {
	t.Parallel()

	t.Run("empty config keeps development debug level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Development, "identity"),
			logger.WithConfig(logger.Config{}),
		)
		log.Debug("debugging")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=debugging")
	})

	t.Run("explicit level overrides preset", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(environment.Development, "identity"),
			logger.WithConfig(logger.Config{Level: "info"}),
		)
		log.Debug("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "user_id", logger.UserID("u1").Key)
	assert.True(t, logger.UserID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "identity", logger.Component("identity").Value.String())
	assert.Equal(t, "sealed", logger.Event("sealed").Value.String())
	assert.Equal(t, "staging", logger.FailureKind(environment.Staging).Value.String())
}
