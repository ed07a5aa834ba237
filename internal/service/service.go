/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package service

import (
    "math"
    "time"

    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/apperrors"
    "github.com/HamedShams/sprint-lens/internal/cache"
    "github.com/HamedShams/sprint-lens/internal/config"
    "github.com/HamedShams/sprint-lens/internal/domain"
    "github.com/HamedShams/sprint-lens/internal/ingest"
    "github.com/HamedShams/sprint-lens/internal/metrics"
    "github.com/HamedShams/sprint-lens/internal/sprint"
)

const snapshotKey = "snapshot"

type snapshot struct {
    table  domain.Table
    status domain.LoadStatus
}

// Service wires the load pipeline to the query surface. The cleaned table is
// cached for CacheTTL and read-only afterwards, so every query method is
// reentrant and safe to call concurrently. Queries never return an error:
// structural load failures are logged once and queries answer with zero values
// until the next successful reload.
type Service struct {
    cfg   config.Config
    log   zerolog.Logger
    cache *cache.TTL[snapshot]
}

func New(cfg config.Config, log zerolog.Logger) *Service {
    return &Service{cfg: cfg, log: log, cache: cache.New[snapshot](cfg.CacheTTL)}
}

func (s *Service) snapshot() snapshot {
    return s.cache.GetOrLoad(snapshotKey, s.loadSnapshot)
}

func (s *Service) loadSnapshot() snapshot {
    st := domain.LoadStatus{At: time.Now().UTC(), File: s.cfg.DataFile}
    raw, err := ingest.Load(s.cfg.DataFile, s.log)
    if err != nil {
        st.ErrorCode = string(apperrors.CodeOf(err))
        st.ErrorMsg = err.Error()
        s.log.Error().Err(err).Str("file", s.cfg.DataFile).Msg("load failed")
        return snapshot{status: st}
    }
    table, stats, err := ingest.Prepare(raw, s.log)
    if err != nil {
        st.ErrorCode = string(apperrors.CodeOf(err))
        st.ErrorMsg = err.Error()
        s.log.Error().Err(err).Str("file", s.cfg.DataFile).Msg("prepare failed")
        return snapshot{status: st}
    }
    st.OK = true
    st.Rows = stats.Rows
    st.Dropped = stats.Dropped
    st.Coerced = stats.Coerced
    return snapshot{table: table, status: st}
}

// Reload drops the cached snapshot and re-parses the CSV immediately.
func (s *Service) Reload() domain.LoadStatus {
    s.cache.Invalidate(snapshotKey)
    return s.snapshot().status
}

// LastLoad reports the outcome of the snapshot currently being served.
func (s *Service) LastLoad() domain.LoadStatus { return s.snapshot().status }

// Summary is the dashboard header block: totals, completion rate, and the
// current sprint, as plain primitives.
func (s *Service) Summary() map[string]any {
    t := s.snapshot().table
    completed := 0
    for _, is := range t {
        if is.Completed { completed++ }
    }
    capacity := metrics.Capacity(t)
    return map[string]any{
        "total_issues":     len(t),
        "completed":        completed,
        "completion_rate":  s.roundPct(metrics.CompletionRate(t)),
        "total_points":     capacity.TotalPoints,
        "completed_points": capacity.CompletedPoints,
        "current_sprint":   sprint.Current(t),
    }
}

// Sprints lists the numbered sprints in the snapshot, latest first.
func (s *Service) Sprints() []string { return sprint.Available(s.snapshot().table) }

func (s *Service) CurrentSprint() string { return sprint.Current(s.snapshot().table) }

// SprintMetrics compares current against previous. Empty current falls back
// to the latest sprint; empty previous falls back to the one before it.
func (s *Service) SprintMetrics(current, previous string) domain.SprintComparison {
    t := s.snapshot().table
    if current == "" {
        current = sprint.Current(t)
        if current == sprint.NoSprintData {
            s.log.Warn().Msg("sprint metrics requested with no sprint data")
            return metrics.Compare(t, "", "")
        }
    }
    if previous == "" { previous = sprint.Previous(t, current) }
    cmp := metrics.Compare(t, current, previous)
    for k, v := range cmp.Deltas { cmp.Deltas[k] = s.roundPct(v) }
    return cmp
}

func (s *Service) Velocity() domain.VelocityStats {
    v := metrics.Velocity(s.snapshot().table)
    v.Velocity = s.roundPct(v.Velocity)
    return v
}

func (s *Service) Epics() []domain.EpicStats {
    epics := metrics.EpicProgress(s.snapshot().table)
    for i := range epics { epics[i].CompletionPct = s.roundPct(epics[i].CompletionPct) }
    return epics
}

func (s *Service) Workload() []domain.AssigneeLoad {
    return metrics.WorkloadByAssignee(s.snapshot().table)
}

func (s *Service) Capacity() domain.CapacityStats {
    return metrics.Capacity(s.snapshot().table)
}

func (s *Service) WeeklyCreated() []domain.WeekCount {
    return metrics.WeeklyCreated(s.snapshot().table)
}

func (s *Service) StatusDistribution() []domain.NameCount {
    return metrics.StatusDistribution(s.snapshot().table)
}

func (s *Service) PriorityDistribution() []domain.NameCount {
    return metrics.PriorityDistribution(s.snapshot().table)
}

func (s *Service) TypeDistribution() []domain.NameCount {
    return metrics.TypeDistribution(s.snapshot().table)
}

func (s *Service) Burndown() domain.BurndownSeries {
    return metrics.Burndown(s.snapshot().table)
}

func (s *Service) roundPct(v float64) float64 {
    p := math.Pow(10, float64(s.cfg.Styles.PercentDecimals))
    return math.Round(v*p) / p
}
