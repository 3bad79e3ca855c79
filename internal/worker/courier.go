package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the courier simulator.
type StorefrontFacade interface {
	OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error)
	AdvanceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

// CourierSimulator walks active orders through the delivery lifecycle on a
// timer: confirmed orders go out for delivery after dispatchAfter, and
// delivered after dispatchAfter+deliverAfter.
type CourierSimulator struct {
	facade        StorefrontFacade
	pollInterval  time.Duration
	dispatchAfter time.Duration
	deliverAfter  time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger
	now           func() time.Time

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCourierSimulator constructs the courier worker pool.
func NewCourierSimulator(facade StorefrontFacade, pollInterval, dispatchAfter, deliverAfter time.Duration, batchSize, workers int, logger *slog.Logger) *CourierSimulator {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CourierSimulator{
		facade:        facade,
		pollInterval:  pollInterval,
		dispatchAfter: dispatchAfter,
		deliverAfter:  deliverAfter,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		now:           time.Now,
		jobs:          make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (s *CourierSimulator) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *CourierSimulator) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CourierSimulator) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *CourierSimulator) fetchAndDispatch(ctx context.Context) {
	orders, err := s.facade.OrdersForDispatch(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch active orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- order:
		}
	}
}

func (s *CourierSimulator) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleOrder(ctx, order)
		}
	}
}

func (s *CourierSimulator) handleOrder(ctx context.Context, order model.Order) {
	next, ok := s.nextStatus(order)
	if !ok {
		return
	}

	if err := s.facade.AdvanceOrderStatus(ctx, order.ID, next); err != nil {
		// Another worker may have advanced the order between fetch and update.
		if errors.Is(err, domainErrors.ErrStatusRegression) {
			return
		}
		s.logger.Error("advance order status failed",
			slog.String("order", order.ID),
			slog.String("status", string(next)),
			slog.String("error", err.Error()))
		return
	}

	s.logger.Info("order status advanced",
		slog.String("order", order.ID),
		slog.String("status", string(next)))
}

// nextStatus decides the order's next lifecycle step based on its age.
func (s *CourierSimulator) nextStatus(order model.Order) (model.OrderStatus, bool) {
	age := s.now().Sub(order.CreatedAt)
	switch order.Status {
	case model.OrderStatusConfirmed, model.OrderStatusPreparing, model.OrderStatusReady:
		if age >= s.dispatchAfter+s.deliverAfter {
			return model.OrderStatusDelivered, true
		}
		if age >= s.dispatchAfter {
			return model.OrderStatusOutForDelivery, true
		}
	case model.OrderStatusOutForDelivery:
		if age >= s.dispatchAfter+s.deliverAfter {
			return model.OrderStatusDelivered, true
		}
	}
	return "", false
}
