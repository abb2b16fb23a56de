package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// BookingFacade exposes the subset of application functionality required by the sweeper.
type BookingFacade interface {
	ExpireBookings(ctx context.Context, asOf time.Time) (int, error)
}

// ExpirationSweeper periodically cancels orders whose booking expiration date
// has passed and frees the booked properties. The sweep is idempotent, so an
// overlapping run after a slow database is harmless.
type ExpirationSweeper struct {
	facade   BookingFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewExpirationSweeper constructs the booking expiration sweeper.
func NewExpirationSweeper(facade BookingFacade, interval time.Duration, logger *slog.Logger) *ExpirationSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpirationSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping. The first sweep runs immediately so a
// restart never leaves stale bookings waiting a full interval. Sweeping
// continues until Stop is called, even after ctx is cancelled.
func (s *ExpirationSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Startup contexts carry a boot deadline that outlasts Start itself.
	// Detach from cancellation, keep the values.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop waits for the current sweep to finish.
func (s *ExpirationSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ExpirationSweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirationSweeper) sweep(ctx context.Context) {
	expired, err := s.facade.ExpireBookings(ctx, time.Now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("booking expiration sweep failed", slog.String("error", err.Error()))
		return
	}
	if expired > 0 {
		s.logger.Info("expired bookings cancelled", slog.Int("count", expired))
	}
}
