package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Config holds the APP_ENV setting.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() Environment {
	return Parse(c.AppEnv)
}

// Parse maps a raw value, including the short aliases prod, stage and dev, to
// an Environment. An empty value maps to Development. Any other unrecognized
// value maps to Production, so a misspelled APP_ENV gets the strictest checks.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Development), "dev":
		return Development
	case string(Staging), "stage":
		return Staging
	default:
		return Production
	}
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsStaging() bool {
	return e == Staging
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) String() string {
	return string(e)
}
