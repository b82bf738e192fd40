package repomanager

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/server/repositories/readings"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const mongoAppName = "waterbill"

// MongoRepositoryManager vends repositories over one MongoDB database. The
// client is configured once in OpenMongo and shared by all repositories.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects, pings the primary and returns a manager. Indexes are
// created by RunMigrations, which the server calls before serving.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	if dbName == "" {
		return nil, fmt.Errorf("mongo: database name is required")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetAppName(mongoAppName).
		SetServerSelectionTimeout(10 * time.Second).
		SetBSONOptions(&options.BSONOptions{UseLocalTimeZone: false})

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoRepositoryManager{client: client, db: client.Database(dbName)}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db)
}

func (m *MongoRepositoryManager) Readings() readings.Repository {
	return readings.NewMongoRepository(m.db)
}

// RunMigrations creates the indexes of both collections. CreateMany is
// idempotent for identical index specs.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	plan := []struct {
		coll    string
		indexes []mongo.IndexModel
	}{
		{users.Collection, users.Indexes()},
		{readings.Collection, readings.Indexes()},
	}
	for _, p := range plan {
		if _, err := m.db.Collection(p.coll).Indexes().CreateMany(ctx, p.indexes); err != nil {
			return fmt.Errorf("create %s indexes: %w", p.coll, err)
		}
	}
	return nil
}

// WithinTx runs fn directly: standalone servers have no multi-document
// transactions. Callers order their writes so that a retry converges.
func (m *MongoRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
