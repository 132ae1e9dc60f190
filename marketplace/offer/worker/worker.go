package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jobhubapp/jobhub/marketplace/offer"
	"github.com/jobhubapp/jobhub/marketplace/offer/offersrv"
	"github.com/jobhubapp/jobhub/pkg/logx"
)

// ExpiryWorker drains the expiry queue and marks overdue offers expired.
// A periodic sweep backstops jobs the queue missed.
type ExpiryWorker struct {
	service *offersrv.OfferService
	queue   offer.ExpiryQueue
	workers int
}

// NewExpiryWorker creates a new offer expiry worker
func NewExpiryWorker(service *offersrv.OfferService, queue offer.ExpiryQueue, workers int) *ExpiryWorker {
	return &ExpiryWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d offer expiry workers", w.workers)

	// Move due jobs from the scheduled set to the ready queue
	go w.moveDueJobs(ctx)

	// Sweep overdue offers the queue missed
	go w.sweepOverdue(ctx)

	// Start worker pool
	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ExpiryWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Expiry worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Expiry worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Expiry worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Queue timeout, no jobs available
			if len(data) == 0 {
				continue
			}

			var job offer.ExpiryJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Expiry worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			expired, err := w.service.ExpireOffer(ctx, job.OfferID)
			if err != nil {
				logx.Errorf("Expiry worker %d failed to expire offer %s: %v", workerID, job.OfferID, err)
				continue
			}
			if !expired {
				// Offer was already responded to, nothing to do
				logx.Debugf("Expiry worker %d: offer %s no longer pending", workerID, job.OfferID)
			}
		}
	}
}

func (w *ExpiryWorker) moveDueJobs(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDueToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move due expiry jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d due expiry jobs to ready queue", count)
			}
		}
	}
}

func (w *ExpiryWorker) sweepOverdue(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.service.ExpireDue(ctx); err != nil {
				logx.Errorf("Failed to sweep overdue offers: %v", err)
			}
		}
	}
}
