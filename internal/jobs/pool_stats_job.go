package job

import (
	"database/sql"
	"log/slog"
)

type StatsSource interface {
	Stats() sql.DBStats
}

// PoolStatsJob logs the connection pool counters. It only reads; nothing is tuned.
type PoolStatsJob struct {
	db StatsSource
}

func NewPoolStatsJob(db StatsSource) *PoolStatsJob {
	return &PoolStatsJob{db: db}
}

func (j *PoolStatsJob) LogStats() {
	s := j.db.Stats()
	slog.Info("postgres pool",
		"open", s.OpenConnections,
		"in_use", s.InUse,
		"idle", s.Idle,
		"max_open", s.MaxOpenConnections,
		"wait_count", s.WaitCount,
		"wait_duration", s.WaitDuration.String(),
	)
}
