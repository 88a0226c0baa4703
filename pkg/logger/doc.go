// Package logger builds *slog.Logger instances with consistent defaults and
// redaction of secret-bearing attributes.
//
// New takes functional options:
//
//   • WithEnvironment – text/debug for development, JSON/info for staging and production.
//   • WithConfig – apply LOG_LEVEL / LOG_FORMAT.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel, WithOutput, WithAttr.
//   • WithSensitiveKeys – extend the redaction list.
//
// Attributes whose key matches DefaultSensitiveKeys (key, secret, password,
// plaintext, national_id, envelope, …) are replaced with RedactedValue by the
// handler, so an accidental
//
//	log.Info("stored", slog.String("national_id", id))
//
// never writes the value. Attribute helpers in attr.go (Error, UserID,
// Component, Event, FailureKind) keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(envCfg.Environment(), "identity"),
//	    logger.WithConfig(logCfg),
//	)
//	logger.SetAsDefault(log)
package logger
