package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/queue"
	"github.com/MrBaoN/RestaurantDashboard/internal/service"
	"go.uber.org/zap"
)

type OrderEventWorker struct {
	orderService *service.OrderService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewOrderEventWorker(
	orderService *service.OrderService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderEventWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderEventWorker{
		orderService: orderService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *OrderEventWorker) Start() error {
	w.logger.Info("starting order event worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderEvents, w.handleMessage)
}

func (w *OrderEventWorker) Stop() {
	w.logger.Info("stopping order event worker")
	w.cancel()
}

func (w *OrderEventWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal order event", "error", err)
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing order event", "number", event.Number, "event_type", event.EventType)

	if err := w.orderService.ProcessOrderEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process order event", "number", event.Number, "error", err)
		return err
	}

	return nil
}
