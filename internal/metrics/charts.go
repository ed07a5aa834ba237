package metrics

import (
    "sort"
    "time"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

// burndownDays is the horizon of the burndown series past the latest
// creation date: one fixed two-week sprint.
const burndownDays = 14

// WeeklyCreated buckets issues by the ISO week (Monday start) of their
// creation date, in chronological order. Rows without a created date are skipped.
func WeeklyCreated(t domain.Table) []domain.WeekCount {
    byWeek := map[time.Time]int{}
    for _, is := range t {
        if is.Created == nil { continue }
        byWeek[weekStart(*is.Created)]++
    }
    out := make([]domain.WeekCount, 0, len(byWeek))
    for w, n := range byWeek {
        out = append(out, domain.WeekCount{WeekStart: w, Count: n})
    }
    sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
    return out
}

// StatusDistribution counts issues per raw status value, largest first.
func StatusDistribution(t domain.Table) []domain.NameCount {
    return countBy(t, func(is domain.Issue) string { return is.Status })
}

// PriorityDistribution counts issues per priority, largest first.
func PriorityDistribution(t domain.Table) []domain.NameCount {
    return countBy(t, func(is domain.Issue) string { return is.Priority })
}

// TypeDistribution counts issues per issue type, largest first.
func TypeDistribution(t domain.Table) []domain.NameCount {
    return countBy(t, func(is domain.Issue) string { return is.Type })
}

func countBy(t domain.Table, key func(domain.Issue) string) []domain.NameCount {
    counts := map[string]int{}
    for _, is := range t {
        k := key(is)
        if k == "" { continue }
        counts[k]++
    }
    out := make([]domain.NameCount, 0, len(counts))
    for name, n := range counts {
        out = append(out, domain.NameCount{Name: name, Count: n})
    }
    sort.Slice(out, func(i, j int) bool {
        if out[i].Count == out[j].Count { return out[i].Name < out[j].Name }
        return out[i].Count > out[j].Count
    })
    return out
}

// Burndown builds daily ideal and actual remaining-points curves over a
// window from the earliest created date to the latest created date plus a
// two-week sprint. The ideal curve descends linearly from the total to zero;
// the actual curve subtracts points resolved up to each day. Empty input
// yields an empty series.
func Burndown(t domain.Table) domain.BurndownSeries {
    var series domain.BurndownSeries
    var first, last *time.Time
    total := 0.0
    for _, is := range t {
        total += is.Points
        if is.Created == nil { continue }
        if first == nil || is.Created.Before(*first) {
            c := *is.Created
            first = &c
        }
        if last == nil || is.Created.After(*last) {
            c := *is.Created
            last = &c
        }
    }
    if first == nil { return series }

    day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
    end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, burndownDays)
    steps := int(end.Sub(day).Hours()/24) + 1
    for i := 0; i < steps; i++ {
        d := day.AddDate(0, 0, i)
        series.Dates = append(series.Dates, d)
        series.Ideal = append(series.Ideal, total*(1-float64(i)/float64(steps-1)))

        resolved := 0.0
        for _, is := range t {
            if is.Resolved != nil && is.Resolved.Before(d.AddDate(0, 0, 1)) {
                resolved += is.Points
            }
        }
        series.Actual = append(series.Actual, total-resolved)
    }
    return series
}

func weekStart(t time.Time) time.Time {
    weekday := int(t.Weekday())
    if weekday == 0 { weekday = 7 }
    day := t.AddDate(0, 0, -(weekday - 1))
    return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
