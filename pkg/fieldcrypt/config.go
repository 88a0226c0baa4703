package fieldcrypt

// Config describes where the field encryption key comes from.
// Populate it with config.Load; the package itself never reads the environment.
type Config struct {
	EncryptionKey string `env:"FIELD_ENCRYPTION_KEY"` // base64 encoded 32-byte key

	// AppSecret feeds DeriveInsecureKey when EncryptionKey is empty and
	// AllowInsecureKey is set. Only for reading legacy envelopes.
	AppSecret        string `env:"APP_SECRET_KEY"`
	AllowInsecureKey bool   `env:"FIELD_ENCRYPTION_ALLOW_INSECURE_KEY" envDefault:"false"`
}

// UsesInsecureKey reports whether NewFromConfig would fall back to
// DeriveInsecureKey for this configuration.
func (c Config) UsesInsecureKey() bool {
	return c.EncryptionKey == "" && c.AllowInsecureKey && c.AppSecret != ""
}

// NewFromConfig creates a Cipher from cfg. An explicit EncryptionKey always
// wins over the fallback secret.
func NewFromConfig(cfg Config) (*Cipher, error) {
	switch {
	case cfg.EncryptionKey != "":
		return NewFromEncodedKey(cfg.EncryptionKey)
	case cfg.UsesInsecureKey():
		return NewInsecureFromSecret(cfg.AppSecret)
	default:
		return nil, ErrKeyNotConfigured
	}
}
