package scheduler

import (
	"time"

	"go.uber.org/zap"

	"plutus/internal/services"
)

// SnapshotJob records a daily net worth snapshot.
type SnapshotJob struct {
	snapshots services.SnapshotServicer
	log       *zap.SugaredLogger
}

// NewSnapshotJob creates a SnapshotJob.
func NewSnapshotJob(snapshots services.SnapshotServicer, log *zap.SugaredLogger) *SnapshotJob {
	return &SnapshotJob{snapshots: snapshots, log: log.Named("snapshot_job")}
}

// Name implements Job.
func (j *SnapshotJob) Name() string { return "net_worth_snapshot" }

// Run computes and stores a snapshot stamped at the start of the current day,
// so re-runs within the same day update the existing row.
func (j *SnapshotJob) Run() error {
	recordedAt := time.Now().UTC().Truncate(24 * time.Hour)

	snapshot, err := j.snapshots.ComputeAndRecordSnapshot(recordedAt)
	if err != nil {
		return err
	}

	j.log.Infow("snapshot recorded",
		"recorded_at", snapshot.RecordedAt,
		"net_worth", snapshot.TotalNetWorth,
	)
	return nil
}

// CacheRefreshJob recomputes stale asset income calculations.
type CacheRefreshJob struct {
	assets services.AssetServicer
	log    *zap.SugaredLogger
}

// NewCacheRefreshJob creates a CacheRefreshJob.
func NewCacheRefreshJob(assets services.AssetServicer, log *zap.SugaredLogger) *CacheRefreshJob {
	return &CacheRefreshJob{assets: assets, log: log.Named("cache_refresh_job")}
}

// Name implements Job.
func (j *CacheRefreshJob) Name() string { return "income_cache_refresh" }

// Run refreshes every asset with a stale or missing income cache.
func (j *CacheRefreshJob) Run() error {
	refreshed, err := j.assets.RefreshIncomeCaches()
	if err != nil {
		return err
	}

	j.log.Infow("income caches refreshed", "count", refreshed)
	return nil
}
