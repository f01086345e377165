package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("daily_sales"),
	}
}

func (r *ReportRepository) AddSales(ctx context.Context, day string, lines []domain.OrderLine) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, line := range lines {
		filter := bson.M{
			"day":          day,
			"menu_item_id": line.MenuItemID,
		}
		update := bson.M{
			"$inc": bson.M{
				"quantity": line.Quantity,
				"gross":    line.Price * float64(line.Quantity),
			},
			"$setOnInsert": bson.M{
				"name": line.Name,
			},
		}

		opts := options.Update().SetUpsert(true)
		if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("failed to add daily sales for %s: %w", line.Name, err)
		}
	}

	return nil
}

func (r *ReportRepository) ListDaily(ctx context.Context) ([]domain.DailySale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []domain.DailySale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode daily sales: %w", err)
	}

	return sales, nil
}

func (r *ReportRepository) ClearDaily(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear daily sales: %w", err)
	}

	return nil
}
