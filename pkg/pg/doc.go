// Package pg wires PostgreSQL through the pgx/v5 driver: a retrying pool
// constructor, goose migrations read from an fs.FS, a healthcheck closure and
// error classifiers.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, identity.Migrations, identity.MigrationsDir, log); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap package sentinels (ErrFailedToOpenDBConnection,
// ErrFailedToApplyMigrations, …) with errors.Join. IsNotFoundError and
// IsDuplicateKeyError classify driver errors.
package pg
