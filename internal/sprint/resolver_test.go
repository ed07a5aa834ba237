package sprint

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

func TestNumber(t *testing.T) {
    assert.Equal(t, 21, Number("BP: EFDDH Sprint 21"))
    assert.Equal(t, 3, Number("Sprint 3"))
    assert.Equal(t, 7, Number("Sprint7"))
    assert.Equal(t, Unnumbered, Number("No Sprint"))
    assert.Equal(t, Unnumbered, Number(""))
    assert.Equal(t, Unnumbered, Number("Q3 Backlog"))
    // digits before the literal do not count
    assert.Equal(t, Unnumbered, Number("21 Sprint"))
    // first match wins
    assert.Equal(t, 4, Number("Sprint 4 / Sprint 5"))
}

func table(names ...string) domain.Table {
    t := make(domain.Table, 0, len(names))
    for i, n := range names {
        t = append(t, domain.Issue{Key: string(rune('A' + i)), Sprint: n, SprintNumber: Number(n)})
    }
    return t
}

func TestAvailableSortsLatestFirst(t *testing.T) {
    tbl := table("Sprint 19", "Sprint 21", "Sprint 20", "Sprint 21", "No Sprint")
    assert.Equal(t, []string{"Sprint 21", "Sprint 20", "Sprint 19"}, Available(tbl))
}

func TestAvailableEmpty(t *testing.T) {
    assert.Empty(t, Available(nil))
    assert.Empty(t, Available(table("No Sprint", "")))
}

func TestCurrent(t *testing.T) {
    assert.Equal(t, "Sprint 21", Current(table("Sprint 19", "Sprint 21", "Sprint 20")))
    assert.Equal(t, NoSprintData, Current(nil))
    assert.Equal(t, NoSprintData, Current(table("No Sprint")))
}

func TestPrevious(t *testing.T) {
    tbl := table("Sprint 19", "Sprint 21", "Sprint 20")
    assert.Equal(t, "Sprint 20", Previous(tbl, "Sprint 21"))
    assert.Equal(t, "Sprint 19", Previous(tbl, "Sprint 20"))
    assert.Equal(t, "", Previous(tbl, "Sprint 19"))
    assert.Equal(t, "", Previous(tbl, "No Sprint"))
}
