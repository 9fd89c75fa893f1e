package workers

import (
	"context"
	"log"
	"time"

	"github.com/alimgiray/contributor-registry/internal/services"
)

// EnrichmentWorker periodically refreshes cached GitHub profile data for
// every registered contributor, so profile reads stay warm between API
// calls. Registry state is never touched.
type EnrichmentWorker struct {
	contributorService *services.ContributorService
	profileService     *services.GithubProfileService
	interval           time.Duration
	stopChan           chan struct{}
}

func NewEnrichmentWorker(
	contributorService *services.ContributorService,
	profileService *services.GithubProfileService,
	interval time.Duration,
) *EnrichmentWorker {
	return &EnrichmentWorker{
		contributorService: contributorService,
		profileService:     profileService,
		interval:           interval,
		stopChan:           make(chan struct{}),
	}
}

// Start begins the enrichment loop and blocks until stopped
func (w *EnrichmentWorker) Start(ctx context.Context) error {
	log.Printf("Enrichment worker started, interval %s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Enrichment worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.stopChan:
			log.Printf("Enrichment worker stopping")
			return nil
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// Stop signals the worker to exit
func (w *EnrichmentWorker) Stop() {
	close(w.stopChan)
}

func (w *EnrichmentWorker) refreshAll(ctx context.Context) {
	contributors, err := w.contributorService.ListContributors()
	if err != nil {
		log.Printf("Enrichment worker error listing contributors: %v", err)
		return
	}

	for _, contributor := range contributors {
		if _, err := w.profileService.RefreshProfile(ctx, contributor.GithubHandle); err != nil {
			log.Printf("Enrichment worker error refreshing %s: %v", contributor.GithubHandle, err)
		}
	}
}
