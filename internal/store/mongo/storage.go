package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

// WithTransaction runs fn inside one session transaction. Repository
// calls made with the context handed to fn join the transaction. The
// transaction is attempted exactly once: on a write conflict it aborts
// and surfaces domain.ErrConflict so callers can decide whether losing
// the race is an error or a no-op. The driver's retrying convenience
// API is deliberately not used here, a raced lane advance must not be
// replayed against the winner's committed state.
func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	err = mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}

		if err := fn(sc); err != nil {
			session.AbortTransaction(sc)
			return err
		}

		if err := session.CommitTransaction(sc); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) &&
			(cmdErr.HasErrorLabel("TransientTransactionError") || cmdErr.Name == "WriteConflict") {
			return fmt.Errorf("%w: %s", domain.ErrConflict, cmdErr.Message)
		}
		return err
	}

	return nil
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// create indexes for orders collection
	ordersIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "number", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "completed_at", Value: -1}},
		},
	}
	if _, err := s.database.Collection("orders").Indexes().CreateMany(ctx, ordersIndexes); err != nil {
		return fmt.Errorf("failed to create orders indexes: %w", err)
	}

	// create indexes for menu collection
	menuIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}},
		},
	}
	if _, err := s.database.Collection("menu").Indexes().CreateMany(ctx, menuIndexes); err != nil {
		return fmt.Errorf("failed to create menu indexes: %w", err)
	}

	// create indexes for inventory collection
	inventoryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("inventory").Indexes().CreateMany(ctx, inventoryIndexes); err != nil {
		return fmt.Errorf("failed to create inventory indexes: %w", err)
	}

	// create indexes for order_audit collection; the unique index makes
	// redelivered broker messages insert-once
	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "number", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "order_id", Value: 1},
				{Key: "event_type", Value: 1},
				{Key: "new_status", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("order_audit").Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create order_audit indexes: %w", err)
	}

	// create indexes for daily_sales collection
	salesIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "day", Value: 1}, {Key: "menu_item_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("daily_sales").Indexes().CreateMany(ctx, salesIndexes); err != nil {
		return fmt.Errorf("failed to create daily_sales indexes: %w", err)
	}

	return nil
}
