package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fixhive/fixhive/internal/domain/model"
)

// AssignmentFacade exposes the subset of application functionality required
// by the sweeper.
type AssignmentFacade interface {
	ExpiredOffers(ctx context.Context, limit int) ([]model.Order, error)
	ExpireOffer(ctx context.Context, orderID int64) (bool, error)
}

// OfferSweeper periodically reclaims pending offers whose response window
// closed, declining them so the order becomes assignable again. The sweeper
// is an opt-in extension and stays idle when the interval is zero, keeping
// the default lazy-expiry behaviour where offers are only checked at
// response time.
type OfferSweeper struct {
	facade    AssignmentFacade
	interval  time.Duration
	batchSize int
	workers   int
	logger    *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOfferSweeper constructs the sweeper worker pool.
func NewOfferSweeper(facade AssignmentFacade, interval time.Duration, batchSize, workers int, logger *slog.Logger) *OfferSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OfferSweeper{
		facade:    facade,
		interval:  interval,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan model.Order, batchSize*workers),
	}
}

// Start launches background sweeping. A non-positive interval disables the
// sweeper entirely, preserving the lazy-expiry-only behaviour.
func (s *OfferSweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("offer sweeper disabled")
		return
	}

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
func (s *OfferSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *OfferSweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.interval)
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

func (s *OfferSweeper) fetchAndDispatch(ctx context.Context) {
	orders, err := s.facade.ExpiredOffers(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch expired offers failed", slog.String("error", err.Error()))
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

func (s *OfferSweeper) worker(ctx context.Context) {
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

func (s *OfferSweeper) handleOrder(ctx context.Context, order model.Order) {
	expired, err := s.facade.ExpireOffer(ctx, order.ID)
	if err != nil {
		s.logger.Error("expire offer failed",
			slog.Int64("order", order.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	if expired {
		s.logger.Warn("offer expired without response", slog.Int64("order", order.ID))
	}
}
