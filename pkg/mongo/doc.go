// Package mongo opens MongoDB clients with the official v2 driver, retrying
// the initial ping, and exposes a healthcheck closure.
//
// It backs identity.MongoStorage for deployments that keep user records in
// MongoDB instead of PostgreSQL.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store, err := identity.NewMongoStorage(ctx, db)
package mongo
