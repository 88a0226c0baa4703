package mongo

import "time"

// Config represents the configuration for the database.
type Config struct {
	ConnectionURL  string        `env:"MONGODB_URL,required"`                     // ConnectionURL is the URL of the database.
	Database       string        `env:"MONGODB_DATABASE" envDefault:"identity"`   // Database is the database holding the users collection.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`   // MaxPoolSize is the maximum number of connections in the connection pool.
	RetryAttempts  int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval  time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the pause between attempts.
}
