package workers

import (
	"doulink_backend/internal/logger"
	"doulink_backend/internal/services"

	"github.com/robfig/cron/v3"
)

// OtpCleanupWorker bulk-deletes expired verification codes on a cron
// schedule so the table does not accumulate stale rows.
type OtpCleanupWorker struct {
	cron       *cron.Cron
	otpService services.OtpService
	schedule   string
}

func NewOtpCleanupWorker(otpService services.OtpService) *OtpCleanupWorker {
	return &OtpCleanupWorker{
		cron:       cron.New(),
		otpService: otpService,
		schedule:   "@hourly",
	}
}

func (w *OtpCleanupWorker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		deleted, err := w.otpService.Cleanup()
		if err != nil {
			logger.WorkerLog("otp_cleanup", "cleanup", err)
			return
		}
		if deleted > 0 {
			logger.Info("Removed expired verification codes", "count", deleted)
		}
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("OTP cleanup worker started", "schedule", w.schedule)
	return nil
}

func (w *OtpCleanupWorker) Stop() {
	w.cron.Stop()
}
