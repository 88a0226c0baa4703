package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/fieldcrypt/pkg/mongo"
)

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{
		ConnectionURL: "not-a-mongo-url",
		RetryAttempts: 1,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := mongo.NewWithDatabase(ctx, mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100",
		Database:       "identity",
		ConnectTimeout: 100 * time.Millisecond,
		RetryAttempts:  5,
		RetryInterval:  time.Minute,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestHealthcheck_UnreachableServer(t *testing.T) {
	t.Parallel()

	// Connect does not dial; the ping inside Healthcheck does.
	client, err := driver.Connect(options.Client().ApplyURI("mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = mongo.Healthcheck(client)(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
}
