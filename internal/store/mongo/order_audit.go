package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderAuditRepository struct {
	collection *mongo.Collection
}

func NewOrderAuditRepository(db *mongo.Database) *OrderAuditRepository {
	return &OrderAuditRepository{
		collection: db.Collection("order_audit"),
	}
}

func (r *OrderAuditRepository) Create(ctx context.Context, audit *domain.OrderAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: audit for order %s event %s already recorded",
				domain.ErrDuplicate, audit.OrderID, audit.EventType)
		}
		return fmt.Errorf("failed to create order audit: %w", err)
	}

	return nil
}

func (r *OrderAuditRepository) GetByOrderNumber(ctx context.Context, number int64, limit int) ([]domain.OrderAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"number": number}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get order audit: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.OrderAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode order audits: %w", err)
	}

	return audits, nil
}
