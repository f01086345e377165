package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/queue"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes of the repository interfaces. They keep the same
// not-found and ordering behavior as the mongo implementations so the
// services can be exercised without a database.

type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// conflictTx simulates a transaction that loses to a concurrent writer:
// the callback never runs and the storage layer reports the conflict.
type conflictTx struct{}

func (conflictTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fmt.Errorf("%w: WriteConflict", domain.ErrConflict)
}

type fakeBroker struct {
	published [][]byte
	queues    []string
}

func (b *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.published = append(b.published, message)
	b.queues = append(b.queues, queueName)
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (b *fakeBroker) Healthy() bool { return true }

func (b *fakeBroker) Close() error { return nil }

type fakeMenuRepo struct {
	items map[primitive.ObjectID]domain.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[primitive.ObjectID]domain.MenuItem)}
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("menu item: %w", domain.ErrNotFound)
	}
	return &item, nil
}

func (r *fakeMenuRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error) {
	var found []domain.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func (r *fakeMenuRepo) List(ctx context.Context, activeOnly bool) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for _, item := range r.items {
		if activeOnly && !item.IsActive {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *domain.MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("menu item: %w", domain.ErrNotFound)
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("menu item: %w", domain.ErrNotFound)
	}
	item.IsActive = false
	r.items[id] = item
	return nil
}

type fakeInventoryRepo struct {
	items map[primitive.ObjectID]domain.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[primitive.ObjectID]domain.InventoryItem)}
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeInventoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("inventory item: %w", domain.ErrNotFound)
	}
	return &item, nil
}

func (r *fakeInventoryRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.InventoryItem, error) {
	var found []domain.InventoryItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func (r *fakeInventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("inventory item: %w", domain.ErrNotFound)
	}
	r.items[item.ID] = *item
	return nil
}

type fakeOrderRepo struct {
	orders []*domain.Order
	seq    int64
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	clone := *order
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *fakeOrderRepo) GetByNumber(ctx context.Context, number int64) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			clone := *order
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", number, domain.ErrNotFound)
}

func (r *fakeOrderRepo) NextNumber(ctx context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeOrderRepo) HasBuilding(ctx context.Context) (bool, error) {
	for _, order := range r.orders {
		if order.Status == domain.StatusBuilding {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) ListActive(ctx context.Context) ([]domain.Order, error) {
	var active []domain.Order
	for _, order := range r.orders {
		if order.Status == domain.StatusBuilding || order.Status == domain.StatusWaiting {
			active = append(active, *order)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Status != active[j].Status {
			return active[i].Status == domain.StatusBuilding
		}
		return active[i].Number < active[j].Number
	})
	return active, nil
}

func (r *fakeOrderRepo) LatestCompleted(ctx context.Context) (*domain.Order, error) {
	var latest *domain.Order
	for _, order := range r.orders {
		if order.Status != domain.StatusComplete {
			continue
		}
		if latest == nil || order.CompletedAt.After(*latest.CompletedAt) {
			latest = order
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeOrderRepo) CompleteBuilding(ctx context.Context) (*domain.Order, error) {
	var building *domain.Order
	for _, order := range r.orders {
		if order.Status != domain.StatusBuilding {
			continue
		}
		if building == nil || order.Number < building.Number {
			building = order
		}
	}
	if building == nil {
		return nil, nil
	}
	now := time.Now()
	building.Status = domain.StatusComplete
	building.CompletedAt = &now
	clone := *building
	return &clone, nil
}

func (r *fakeOrderRepo) PromoteOldestWaiting(ctx context.Context) (*domain.Order, error) {
	var oldest *domain.Order
	for _, order := range r.orders {
		if order.Status != domain.StatusWaiting {
			continue
		}
		if oldest == nil || order.Number < oldest.Number {
			oldest = order
		}
	}
	if oldest == nil {
		return nil, nil
	}
	oldest.Status = domain.StatusBuilding
	clone := *oldest
	return &clone, nil
}

type fakeAuditRepo struct {
	audits []domain.OrderAudit
}

func (r *fakeAuditRepo) Create(ctx context.Context, audit *domain.OrderAudit) error {
	// mirrors the unique (order_id, event_type, new_status) index
	for _, existing := range r.audits {
		if existing.OrderID == audit.OrderID &&
			existing.EventType == audit.EventType &&
			existing.NewStatus == audit.NewStatus {
			return fmt.Errorf("%w: audit for order %s event %s already recorded",
				domain.ErrDuplicate, audit.OrderID, audit.EventType)
		}
	}
	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	r.audits = append(r.audits, *audit)
	return nil
}

func (r *fakeAuditRepo) GetByOrderNumber(ctx context.Context, number int64, limit int) ([]domain.OrderAudit, error) {
	var found []domain.OrderAudit
	for _, audit := range r.audits {
		if audit.Number == number {
			found = append(found, audit)
		}
	}
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

type fakeReportRepo struct {
	sales map[string]domain.DailySale
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{sales: make(map[string]domain.DailySale)}
}

func (r *fakeReportRepo) AddSales(ctx context.Context, day string, lines []domain.OrderLine) error {
	for _, line := range lines {
		key := day + "/" + line.MenuItemID.Hex()
		sale, ok := r.sales[key]
		if !ok {
			sale = domain.DailySale{
				ID:         primitive.NewObjectID(),
				Day:        day,
				MenuItemID: line.MenuItemID,
				Name:       line.Name,
			}
		}
		sale.Quantity += line.Quantity
		sale.Gross += line.Price * float64(line.Quantity)
		r.sales[key] = sale
	}
	return nil
}

func (r *fakeReportRepo) ListDaily(ctx context.Context) ([]domain.DailySale, error) {
	var sales []domain.DailySale
	for _, sale := range r.sales {
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].Name < sales[j].Name })
	return sales, nil
}

func (r *fakeReportRepo) ClearDaily(ctx context.Context) error {
	r.sales = make(map[string]domain.DailySale)
	return nil
}
