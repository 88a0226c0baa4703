// Package config loads application configuration from environment variables
// and optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so a configuration is parsed once per
//     process and handed out by value afterwards.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache and ForceReload exist for tests that change the environment.
//
// # Usage
//
// The surrounding application assembles every component's configuration once
// at startup and passes it down explicitly:
//
//	var keyCfg fieldcrypt.Config
//	config.MustLoad(&keyCfg)
//
//	c, err := fieldcrypt.NewFromConfig(keyCfg)
//
// Components never call this package themselves.
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
