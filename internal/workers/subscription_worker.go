package workers

import (
	"context"
	"time"

	"doulink_backend/internal/logger"
	"doulink_backend/internal/repositories"
)

// SubscriptionWorker expires subscriptions whose paid period has
// elapsed, clearing the matching visibility flag in the same pass.
type SubscriptionWorker struct {
	subscriptionRepo repositories.SubscriptionRepository
	interval         time.Duration
}

func NewSubscriptionWorker(subscriptionRepo repositories.SubscriptionRepository) *SubscriptionWorker {
	return &SubscriptionWorker{
		subscriptionRepo: subscriptionRepo,
		interval:         1 * time.Hour,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.expireOverdue(ctx)
}

func (w *SubscriptionWorker) expireOverdue(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			expired, err := w.subscriptionRepo.ExpireOverdue()
			if err != nil {
				logger.WorkerLog("subscription", "expire_overdue", err)
				continue
			}
			if expired > 0 {
				logger.Info("Expired overdue subscriptions", "count", expired)
			}
		}
	}
}
