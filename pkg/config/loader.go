package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	loaded = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// Load parses the process environment into v using `env` struct tags.
// The first successful parse of a type is cached and later calls for the same
// type copy the cached value into v without touching the environment again.
//
// The default .env file in the working directory is read once, if present,
// before the first parse. Variables already set in the process win over it.
//
// Example:
//
//	var cfg fieldcrypt.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		// A missing .env is fine.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if cached, ok := loaded.values[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded.values[typ] = parsed
	*v = parsed

	return nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loaded.mu.Lock()
	delete(loaded.values, reflect.TypeFor[T]())
	loaded.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	loaded.mu.Lock()
	loaded.values = make(map[reflect.Type]any)
	loaded.mu.Unlock()
}

// LoadEnv reads the given .env files into the process environment.
// Later files override earlier ones and the process environment. With no
// arguments it reads ./.env without overriding variables that are already set.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
