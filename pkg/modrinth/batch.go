package modrinth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HelixLauncher/ferinth/internal/constants"
)

// BatchFetcher fans out read operations that have no server-side batch
// endpoint, bounded by a concurrency limit. Listing the versions of
// many projects is one GET per project on Modrinth, so the fetcher runs
// those requests in parallel instead of serially.
type BatchFetcher struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchFetcher creates a new batch fetcher.
func NewBatchFetcher(client Client, concurrency int) *BatchFetcher {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	if concurrency > constants.MaxConcurrencyLimit {
		concurrency = constants.MaxConcurrencyLimit
	}

	return &BatchFetcher{
		client:      client,
		concurrency: concurrency,
	}
}

// SetTimeout bounds each individual request. Zero, the default, leaves
// request lifetimes to the caller's context.
func (b *BatchFetcher) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// ProjectVersions lists the versions of every named project and returns
// them keyed by the requested project ID. All IDs are validated before
// any request is sent. The first failed fetch cancels the remaining
// ones and is returned; the result map is only valid when err is nil.
func (b *BatchFetcher) ProjectVersions(ctx context.Context, projectIDs []string, filter *VersionFilter) (map[string][]Version, error) {
	if err := ValidateIDs(projectIDs); err != nil {
		return nil, err
	}

	results := make(map[string][]Version, len(projectIDs))

	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(b.concurrency)

	for _, projectID := range projectIDs {
		projectID := projectID

		group.Go(func() error {
			fetchCtx := ctx

			if b.timeout > 0 {
				var cancel context.CancelFunc

				fetchCtx, cancel = context.WithTimeout(ctx, b.timeout)
				defer cancel()
			}

			versions, err := b.client.Versions().ListForProject(fetchCtx, projectID, filter)
			if err != nil {
				return err
			}

			mu.Lock()
			results[projectID] = versions
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Projects fetches many projects concurrently by individual lookups.
// Prefer ProjectsClient.GetMultiple, which resolves any number of IDs
// in a single request and silently skips unknown ones; this helper does
// one GET per ID and fails on the first missing project.
func (b *BatchFetcher) Projects(ctx context.Context, ids []string) (map[string]*Project, error) {
	if err := ValidateIDs(ids); err != nil {
		return nil, err
	}

	results := make(map[string]*Project, len(ids))

	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(b.concurrency)

	for _, id := range ids {
		id := id

		group.Go(func() error {
			fetchCtx := ctx

			if b.timeout > 0 {
				var cancel context.CancelFunc

				fetchCtx, cancel = context.WithTimeout(ctx, b.timeout)
				defer cancel()
			}

			project, err := b.client.Projects().Get(fetchCtx, id)
			if err != nil {
				return err
			}

			mu.Lock()
			results[id] = project
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
