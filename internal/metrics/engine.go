/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */

// Package metrics derives sprint/velocity/epic numbers from a cleaned table.
// Every function is pure, takes the snapshot as input, and returns a zero
// value on empty input; nothing here errors or touches I/O.
package metrics

import (
    "sort"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

// sprintWeeks is the fixed sprint length the velocity denominator assumes.
const sprintWeeks = 2.0

// CompletionRate is the percentage of issues whose status maps to Done.
func CompletionRate(t domain.Table) float64 {
    if len(t) == 0 { return 0 }
    done := 0
    for _, is := range t {
        if is.Completed { done++ }
    }
    return float64(done) / float64(len(t)) * 100
}

// Velocity sums story points over completed issues and divides by the fixed
// two-week sprint length, yielding points per week. Zero when nothing is done.
func Velocity(t domain.Table) domain.VelocityStats {
    var out domain.VelocityStats
    for _, is := range t {
        if !is.Completed { continue }
        out.Completed++
        out.Velocity += is.Points
    }
    if out.Completed == 0 { return domain.VelocityStats{} }
    out.Velocity /= sprintWeeks
    return out
}

// DeltaPct is the percent change from previous to current; zero when the
// previous value is zero, so a missing comparison never divides by zero.
func DeltaPct(current, previous float64) float64 {
    if previous == 0 { return 0 }
    return (current - previous) / previous * 100
}

// ForSprint computes the per-sprint counters. Story points count completed
// issues only, matching how the sprint header reports them.
func ForSprint(t domain.Table, name string) domain.SprintStats {
    var s domain.SprintStats
    for _, is := range t {
        if is.Sprint != name { continue }
        s.TotalIssues++
        if is.Completed {
            s.Completed++
            s.Points += is.Points
        }
    }
    return s
}

// Compare filters t to the current (and optionally previous) sprint and
// attaches percent deltas per field. previous == "" yields all-zero deltas.
func Compare(t domain.Table, current, previous string) domain.SprintComparison {
    cmp := domain.SprintComparison{
        Deltas: map[string]float64{"total_issues": 0, "completed": 0, "story_points": 0},
    }
    if len(t) == 0 || current == "" { return cmp }
    cmp.Current = ForSprint(t, current)
    if previous == "" { return cmp }
    cmp.Previous = ForSprint(t, previous)
    cmp.Deltas["total_issues"] = DeltaPct(float64(cmp.Current.TotalIssues), float64(cmp.Previous.TotalIssues))
    cmp.Deltas["completed"] = DeltaPct(float64(cmp.Current.Completed), float64(cmp.Previous.Completed))
    cmp.Deltas["story_points"] = DeltaPct(cmp.Current.Points, cmp.Previous.Points)
    return cmp
}

// EpicProgress rolls story points up per epic, sorted by total points
// descending. Issues without an epic land under the "No Epic" default.
func EpicProgress(t domain.Table) []domain.EpicStats {
    byEpic := map[string]*domain.EpicStats{}
    for _, is := range t {
        e, ok := byEpic[is.Epic]
        if !ok {
            e = &domain.EpicStats{Epic: is.Epic}
            byEpic[is.Epic] = e
        }
        e.TotalPoints += is.Points
        if is.Completed { e.CompletedPoints += is.Points }
    }
    out := make([]domain.EpicStats, 0, len(byEpic))
    for _, e := range byEpic {
        if e.TotalPoints > 0 {
            e.CompletionPct = e.CompletedPoints / e.TotalPoints * 100
        }
        out = append(out, *e)
    }
    sort.Slice(out, func(i, j int) bool {
        if out[i].TotalPoints == out[j].TotalPoints { return out[i].Epic < out[j].Epic }
        return out[i].TotalPoints > out[j].TotalPoints
    })
    return out
}

// WorkloadByAssignee sums incomplete story points per assignee, heaviest first.
func WorkloadByAssignee(t domain.Table) []domain.AssigneeLoad {
    byAssignee := map[string]float64{}
    for _, is := range t {
        if is.Completed || is.Assignee == "" { continue }
        byAssignee[is.Assignee] += is.Points
    }
    out := make([]domain.AssigneeLoad, 0, len(byAssignee))
    for a, p := range byAssignee {
        out = append(out, domain.AssigneeLoad{Assignee: a, Points: p})
    }
    sort.Slice(out, func(i, j int) bool {
        if out[i].Points == out[j].Points { return out[i].Assignee < out[j].Assignee }
        return out[i].Points > out[j].Points
    })
    return out
}

// Capacity totals story points across the snapshot split by completion.
func Capacity(t domain.Table) domain.CapacityStats {
    var c domain.CapacityStats
    for _, is := range t {
        c.TotalPoints += is.Points
        if is.Completed {
            c.CompletedPoints += is.Points
        } else {
            c.InProgressPoints += is.Points
        }
    }
    return c
}
