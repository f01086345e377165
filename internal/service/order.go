package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/queue"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo   repo.OrderRepository
	menuRepo    repo.MenuRepository
	auditRepo   repo.OrderAuditRepository
	reportRepo  repo.ReportRepository
	sufficiency *SufficiencyService
	broker      queue.Broker
	tx          repo.TxRunner
	logger      *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	menuRepo repo.MenuRepository,
	auditRepo repo.OrderAuditRepository,
	reportRepo repo.ReportRepository,
	sufficiency *SufficiencyService,
	broker queue.Broker,
	tx repo.TxRunner,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		auditRepo:   auditRepo,
		reportRepo:  reportRepo,
		sufficiency: sufficiency,
		broker:      broker,
		tx:          tx,
		logger:      logger,
	}
}

// Place runs the sufficiency check and, if it passes, commits the new
// order in one transaction: the building-vs-waiting decision and the
// insert are not separable, so two concurrent placements cannot both
// land in the building slot. No inventory is decremented.
func (s *OrderService) Place(ctx context.Context, cart []domain.CartLine, employeeID *primitive.ObjectID) (*domain.Order, error) {
	report, err := s.sufficiency.Check(ctx, cart)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		EmployeeID: employeeID,
		PlacedAt:   time.Now(),
		Lines:      make([]domain.OrderLine, 0, len(report.Items)),
	}
	for _, item := range report.Items {
		order.Lines = append(order.Lines, domain.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.UnitPrice,
			Quantity:   item.Quantity,
		})
		order.Total += item.UnitPrice * float64(item.Quantity)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		building, err := s.orderRepo.HasBuilding(ctx)
		if err != nil {
			return err
		}

		order.Status = domain.StatusBuilding
		if building {
			order.Status = domain.StatusWaiting
		}

		number, err := s.orderRepo.NextNumber(ctx)
		if err != nil {
			return err
		}
		order.Number = number

		return s.orderRepo.Create(ctx, order)
	})
	if err != nil {
		s.logger.Errorw("failed to place order", "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Infow("order placed",
		"number", order.Number,
		"status", order.Status,
		"total", order.Total,
		"lines", len(order.Lines),
	)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType: domain.EventOrderPlaced,
		OrderID:   order.ID.Hex(),
		Number:    order.Number,
		NewStatus: string(order.Status),
		Total:     order.Total,
		Lines:     order.Lines,
		Timestamp: order.PlacedAt,
	})

	return order, nil
}

// AdvanceLane completes the current building order and promotes the
// oldest waiting order in one transaction. A caller that loses the race
// to a concurrent advance observes (nil, nil, nil): the lane has already
// moved and the next poll will show it.
func (s *OrderService) AdvanceLane(ctx context.Context) (completed, promoted *domain.Order, err error) {
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		completed, txErr = s.orderRepo.CompleteBuilding(ctx)
		if txErr != nil {
			return txErr
		}

		promoted, txErr = s.orderRepo.PromoteOldestWaiting(ctx)
		return txErr
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Infow("lane advance lost to concurrent caller, skipping")
			return nil, nil, nil
		}
		s.logger.Errorw("failed to advance lane", "error", err)
		return nil, nil, fmt.Errorf("failed to advance lane: %w", err)
	}

	now := time.Now()
	if completed != nil {
		s.logger.Infow("order completed", "number", completed.Number)
		s.publishEvent(ctx, domain.OrderEvent{
			EventType: domain.EventOrderStatusChanged,
			OrderID:   completed.ID.Hex(),
			Number:    completed.Number,
			OldStatus: string(domain.StatusBuilding),
			NewStatus: string(domain.StatusComplete),
			Timestamp: now,
		})
	}
	if promoted != nil {
		s.logger.Infow("order promoted to building", "number", promoted.Number)
		s.publishEvent(ctx, domain.OrderEvent{
			EventType: domain.EventOrderStatusChanged,
			OrderID:   promoted.ID.Hex(),
			Number:    promoted.Number,
			OldStatus: string(domain.StatusWaiting),
			NewStatus: string(domain.StatusBuilding),
			Timestamp: now,
		})
	}

	return completed, promoted, nil
}

// KitchenView projects the active lane for the kitchen display: building
// order first, then waiting orders by ticket number, each line expanded
// to the ingredient amounts the recipe calls for at the ordered quantity.
// Amounts are re-derived from the persisted recipes on every call.
func (s *OrderService) KitchenView(ctx context.Context) ([]domain.KitchenOrder, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active orders: %w", err)
	}

	menuIDs := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for _, order := range orders {
		for _, line := range order.Lines {
			if !seen[line.MenuItemID] {
				seen[line.MenuItemID] = true
				menuIDs = append(menuIDs, line.MenuItemID)
			}
		}
	}

	recipeByID := make(map[primitive.ObjectID][]domain.RecipeLine)
	if len(menuIDs) > 0 {
		menuItems, err := s.menuRepo.GetByIDs(ctx, menuIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipes: %w", err)
		}
		for _, item := range menuItems {
			recipeByID[item.ID] = item.Recipe
		}
	}

	view := make([]domain.KitchenOrder, 0, len(orders))
	for _, order := range orders {
		ko := domain.KitchenOrder{
			Number:   order.Number,
			Status:   order.Status,
			PlacedAt: order.PlacedAt,
			Items:    make([]domain.KitchenItem, 0, len(order.Lines)),
		}
		for _, line := range order.Lines {
			item := domain.KitchenItem{
				MenuItemID:  line.MenuItemID,
				Name:        line.Name,
				Quantity:    line.Quantity,
				Ingredients: make([]domain.IngredientAmount, 0),
			}
			for _, rl := range recipeByID[line.MenuItemID] {
				item.Ingredients = append(item.Ingredients, domain.IngredientAmount{
					Name:   rl.Name,
					Amount: rl.Quantity * float64(line.Quantity),
				})
			}
			ko.Items = append(ko.Items, item)
		}
		view = append(view, ko)
	}

	return view, nil
}

// BoardView projects the lane for the customer-facing board: the most
// recently completed order first so customers see theirs flip to
// complete, then the building order, then the waiting queue.
func (s *OrderService) BoardView(ctx context.Context) ([]domain.BoardEntry, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active orders: %w", err)
	}

	latest, err := s.orderRepo.LatestCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed order: %w", err)
	}

	board := make([]domain.BoardEntry, 0, len(orders)+1)
	if latest != nil {
		board = append(board, domain.BoardEntry{Number: latest.Number, Status: latest.Status})
	}
	for _, order := range orders {
		// the two reads are not a snapshot: an advance between them can
		// return the same ticket as building here and complete above
		if latest != nil && order.Number == latest.Number {
			continue
		}
		board = append(board, domain.BoardEntry{Number: order.Number, Status: order.Status})
	}

	return board, nil
}

func (s *OrderService) GetAudit(ctx context.Context, number int64, limit int) ([]domain.OrderAudit, error) {
	audits, err := s.auditRepo.GetByOrderNumber(ctx, number, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order audit: %w", err)
	}

	return audits, nil
}

// ProcessOrderEvent is invoked by the order-event worker. It writes the
// audit record and, for placement events, folds the order lines into the
// daily sales aggregate, both in one transaction. The audit insert is
// guarded by a unique index, so a redelivered message aborts before
// touching the sales aggregate and is acked as already processed.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		audit := &domain.OrderAudit{
			OrderID:   event.OrderID,
			Number:    event.Number,
			EventType: event.EventType,
			OldStatus: event.OldStatus,
			NewStatus: event.NewStatus,
			Timestamp: event.Timestamp,
		}
		if err := s.auditRepo.Create(ctx, audit); err != nil {
			return err
		}

		if event.EventType == domain.EventOrderPlaced && len(event.Lines) > 0 {
			day := event.Timestamp.Format("2006-01-02")
			if err := s.reportRepo.AddSales(ctx, day, event.Lines); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			s.logger.Infow("order event already processed, skipping",
				"number", event.Number, "event_type", event.EventType)
			return nil
		}
		s.logger.Errorw("failed to process order event",
			"number", event.Number, "event_type", event.EventType, "error", err)
		return fmt.Errorf("failed to process order event: %w", err)
	}

	s.logger.Infow("order event processed", "number", event.Number, "event_type", event.EventType)

	return nil
}

// publishEvent is fire-and-forget: by the time it runs the order state is
// committed, so a broker outage only costs the audit trail entry.
func (s *OrderService) publishEvent(ctx context.Context, event domain.OrderEvent) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "number", event.Number, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "number", event.Number, "error", err)
	}
}
