package metrics

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

func created(key string, day time.Time, points float64) domain.Issue {
    return domain.Issue{Key: key, Created: &day, Points: points}
}

func TestWeeklyCreatedBucketsByMondayWeek(t *testing.T) {
    mon := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)  // Monday
    wed := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
    next := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC) // Tuesday next week
    tbl := domain.Table{
        created("A", mon, 0),
        created("B", wed, 0),
        created("C", next, 0),
        {Key: "D"}, // no created date, skipped
    }
    weeks := WeeklyCreated(tbl)
    require.Len(t, weeks, 2)
    assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), weeks[0].WeekStart)
    assert.Equal(t, 2, weeks[0].Count)
    assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), weeks[1].WeekStart)
    assert.Equal(t, 1, weeks[1].Count)
}

func TestDistributionsSortedByCountDesc(t *testing.T) {
    tbl := domain.Table{
        {Key: "A", Status: "Done", Priority: "High", Type: "Story"},
        {Key: "B", Status: "Done", Priority: "Medium", Type: "Bug"},
        {Key: "C", Status: "Open", Priority: "High", Type: "Story"},
    }
    st := StatusDistribution(tbl)
    require.Len(t, st, 2)
    assert.Equal(t, domain.NameCount{Name: "Done", Count: 2}, st[0])

    pr := PriorityDistribution(tbl)
    assert.Equal(t, "High", pr[0].Name)

    ty := TypeDistribution(tbl)
    assert.Equal(t, domain.NameCount{Name: "Story", Count: 2}, ty[0])
}

func TestBurndownEmptyTable(t *testing.T) {
    series := Burndown(nil)
    assert.Empty(t, series.Dates)
}

func TestBurndownCurves(t *testing.T) {
    start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
    resolved := start.AddDate(0, 0, 3)
    a := created("A", start, 10)
    a.Resolved = &resolved
    b := created("B", start.AddDate(0, 0, 1), 10)
    series := Burndown(domain.Table{a, b})

    // window runs from the first creation to the last creation plus 14 days
    require.Len(t, series.Dates, 16)
    require.Len(t, series.Ideal, 16)
    require.Len(t, series.Actual, 16)
    assert.Equal(t, start, series.Dates[0])
    assert.Equal(t, start.AddDate(0, 0, 15), series.Dates[15])
    assert.Equal(t, 20.0, series.Ideal[0])
    // ideal descends linearly to zero
    assert.Greater(t, series.Ideal[0], series.Ideal[14])
    assert.Equal(t, 0.0, series.Ideal[15])
    // before A resolves, everything remains; after, only B's points
    assert.Equal(t, 20.0, series.Actual[0])
    assert.Equal(t, 10.0, series.Actual[15])
}

func TestBurndownWindowCoversLateCreations(t *testing.T) {
    start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
    series := Burndown(domain.Table{
        created("A", start, 5),
        created("B", start.AddDate(0, 0, 10), 5),
    })
    require.Len(t, series.Dates, 25)
    assert.Equal(t, start.AddDate(0, 0, 24), series.Dates[24])
    assert.Equal(t, 0.0, series.Ideal[24])
}
