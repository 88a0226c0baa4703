// Package environment classifies the running deployment as development,
// staging or production.
//
// The value comes from APP_ENV (see Config) and is passed down explicitly.
// The logger picks its output format from it, and the identity bootstrap
// accepts the insecure fallback key only in Development. Unrecognized values
// parse as Production.
//
//	var cfg environment.Config
//	config.MustLoad(&cfg)
//	if cfg.Environment().IsProduction() {
//	    // production-only checks
//	}
package environment
