package configs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	dbMu     sync.Mutex
	dbClient *mongo.Client
)

// InitDB connects the process-wide Mongo client and bootstraps the
// indexes the catalog invariants rely on. Safe to call more than once.
func InitDB(ctx context.Context) error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if dbClient != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(EnvDBName())); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ensure indexes: %w", err)
	}

	dbClient = client
	return nil
}

// CloseDB disconnects the client. InitDB may be called again afterwards.
func CloseDB(ctx context.Context) error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if dbClient == nil {
		return nil
	}
	err := dbClient.Disconnect(ctx)
	dbClient = nil
	return err
}

// DB returns the connected database handle. InitDB must have succeeded.
func DB() *mongo.Database {
	dbMu.Lock()
	defer dbMu.Unlock()

	if dbClient == nil {
		panic(errors.New("configs: DB called before InitDB"))
	}
	return dbClient.Database(EnvDBName())
}

func GetCollection(db *mongo.Database, collectionName string) *mongo.Collection {
	return db.Collection(collectionName)
}

// ensureIndexes declares the uniqueness invariants the write path leans
// on. The duplicate pre-checks in the services are racy by nature; these
// indexes are the final arbiter.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	categories := db.Collection("categories")
	_, err := categories.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "parentCategory", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	coupons := db.Collection("coupons")
	_, err = coupons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
