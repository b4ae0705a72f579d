package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"
)

// defaultTransitDelay is how long a collected delivery waits before it is
// marked as in transit.
const defaultTransitDelay = 2 * time.Second

// StartTransitHandler processes the deferred transition of a collected
// delivery into transit.
type StartTransitHandler interface {
	Handle(ctx context.Context, command commands.StartTransitCommand) error
}

// TransitScheduler defers the collected-to-in-transit transition of a
// delivery. Each successful handoff scan schedules a one-shot timer keyed by
// the delivery identifier; when it fires the delivery is moved into transit.
//
// Timers live only in process memory. A restart drops pending timers, which
// leaves the affected deliveries in the collected state until the courier
// completes them.
type TransitScheduler struct {
	handler StartTransitHandler
	delay   time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	timers map[delivery.ID]*time.Timer
}

// NewTransitScheduler creates a scheduler that fires after the given delay.
// A non-positive delay falls back to the two second default.
func NewTransitScheduler(handler StartTransitHandler, delay time.Duration, logger *slog.Logger) *TransitScheduler {
	if delay <= 0 {
		delay = defaultTransitDelay
	}

	return &TransitScheduler{
		handler: handler,
		delay:   delay,
		logger:  logger.With("component", "transit_scheduler"),
		timers:  make(map[delivery.ID]*time.Timer),
	}
}

// Schedule arms a one-shot transition for the delivery. Scheduling the same
// delivery again while its timer is pending is a no-op.
func (s *TransitScheduler) Schedule(deliveryID delivery.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.timers[deliveryID]; exists {
		return
	}

	s.timers[deliveryID] = time.AfterFunc(s.delay, func() {
		s.fire(deliveryID)
	})
}

// Stop cancels all pending timers. Transitions that were still pending lapse;
// the affected deliveries stay collected.
func (s *TransitScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for deliveryID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, deliveryID)
	}

	s.logger.InfoContext(context.Background(), "Transit scheduler stopped")
}

func (s *TransitScheduler) fire(deliveryID delivery.ID) {
	s.mu.Lock()
	delete(s.timers, deliveryID)
	s.mu.Unlock()

	ctx := context.Background()

	cmd, err := commands.NewStartTransitCommand(deliveryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Transit command construction failed",
			"delivery_id", deliveryID.String(), "error", err)
		return
	}

	if err := s.handler.Handle(ctx, cmd); err != nil {
		// A delivery removed or already advanced between scheduling and
		// firing is an expected race, not a failure.
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrInvalidState) {
			s.logger.DebugContext(ctx, "Transit transition skipped",
				"delivery_id", deliveryID.String(), "reason", err)
			return
		}

		s.logger.ErrorContext(ctx, "Transit transition failed",
			"delivery_id", deliveryID.String(), "error", err)
	}
}
