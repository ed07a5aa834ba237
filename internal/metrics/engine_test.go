package metrics

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/HamedShams/sprint-lens/internal/domain"
    "github.com/HamedShams/sprint-lens/internal/status"
)

func issue(key, st, sprintName string, points float64) domain.Issue {
    is := domain.Issue{Key: key, Status: st, Sprint: sprintName, Points: points, Epic: "No Epic"}
    is.Category, is.Completed = status.Classify(st)
    return is
}

func TestCompletionRateEmptyTable(t *testing.T) {
    assert.Equal(t, 0.0, CompletionRate(nil))
    assert.Equal(t, 0.0, CompletionRate(domain.Table{}))
}

func TestCompletionRateHalfDone(t *testing.T) {
    tbl := domain.Table{
        issue("A", "Done", "", 5),
        issue("B", "In Progress", "", 3),
    }
    assert.Equal(t, 50.0, CompletionRate(tbl))
}

func TestVelocityPointsPerWeekOverTwoWeekSprint(t *testing.T) {
    tbl := domain.Table{
        issue("A", "Done", "", 5),
        issue("B", "Closed", "", 3),
        issue("C", "In Progress", "", 8),
    }
    v := Velocity(tbl)
    assert.Equal(t, 4.0, v.Velocity)
    assert.Equal(t, 2, v.Completed)
}

func TestVelocityNothingCompleted(t *testing.T) {
    v := Velocity(domain.Table{issue("A", "To Do", "", 5)})
    assert.Equal(t, domain.VelocityStats{}, v)
}

func TestDeltaPct(t *testing.T) {
    assert.Equal(t, 25.0, DeltaPct(10, 8))
    assert.Equal(t, -50.0, DeltaPct(5, 10))
    assert.Equal(t, 0.0, DeltaPct(10, 0))
}

func TestCompareSprintDeltas(t *testing.T) {
    var tbl domain.Table
    // current sprint: 10 issues, 7 completed, 28 completed points
    for i := 0; i < 7; i++ { tbl = append(tbl, issue("C"+string(rune('0'+i)), "Done", "Sprint 21", 4)) }
    for i := 0; i < 3; i++ { tbl = append(tbl, issue("c"+string(rune('0'+i)), "Open", "Sprint 21", 2)) }
    // previous sprint: 8 issues, 5 completed, 15 completed points
    for i := 0; i < 5; i++ { tbl = append(tbl, issue("P"+string(rune('0'+i)), "Done", "Sprint 20", 3)) }
    for i := 0; i < 3; i++ { tbl = append(tbl, issue("p"+string(rune('0'+i)), "Open", "Sprint 20", 1)) }

    cmp := Compare(tbl, "Sprint 21", "Sprint 20")
    assert.Equal(t, domain.SprintStats{TotalIssues: 10, Completed: 7, Points: 28}, cmp.Current)
    assert.Equal(t, domain.SprintStats{TotalIssues: 8, Completed: 5, Points: 15}, cmp.Previous)
    assert.Equal(t, 25.0, cmp.Deltas["total_issues"])
    assert.Equal(t, 40.0, cmp.Deltas["completed"])
    assert.InDelta(t, 86.67, cmp.Deltas["story_points"], 0.01)
}

func TestCompareWithoutPreviousSprint(t *testing.T) {
    tbl := domain.Table{issue("A", "Done", "Sprint 21", 5)}
    cmp := Compare(tbl, "Sprint 21", "")
    assert.Equal(t, 1, cmp.Current.TotalIssues)
    assert.Equal(t, map[string]float64{"total_issues": 0, "completed": 0, "story_points": 0}, cmp.Deltas)
}

func TestCompareEmptyTable(t *testing.T) {
    cmp := Compare(nil, "Sprint 21", "Sprint 20")
    assert.Equal(t, domain.SprintStats{}, cmp.Current)
    assert.Equal(t, 0.0, cmp.Deltas["story_points"])
}

func TestEpicProgressGroupsUnderNoEpicDefault(t *testing.T) {
    tbl := domain.Table{
        issue("A", "Done", "", 5),
        issue("B", "In Progress", "", 3),
    }
    epics := EpicProgress(tbl)
    require.Len(t, epics, 1)
    assert.Equal(t, "No Epic", epics[0].Epic)
    assert.Equal(t, 8.0, epics[0].TotalPoints)
    assert.Equal(t, 5.0, epics[0].CompletedPoints)
    assert.InDelta(t, 62.5, epics[0].CompletionPct, 0.001)
}

func TestEpicProgressZeroPointsEpic(t *testing.T) {
    a := issue("A", "To Do", "", 0)
    a.Epic = "Empty Epic"
    epics := EpicProgress(domain.Table{a})
    require.Len(t, epics, 1)
    assert.Equal(t, 0.0, epics[0].CompletionPct)
}

func TestEpicProgressSortedByTotalDesc(t *testing.T) {
    a := issue("A", "Done", "", 8)
    a.Epic = "Big"
    b := issue("B", "Open", "", 2)
    b.Epic = "Small"
    epics := EpicProgress(domain.Table{b, a})
    require.Len(t, epics, 2)
    assert.Equal(t, "Big", epics[0].Epic)
    assert.Equal(t, "Small", epics[1].Epic)
}

func TestWorkloadByAssignee(t *testing.T) {
    mk := func(key, st, who string, pts float64) domain.Issue {
        is := issue(key, st, "", pts)
        is.Assignee = who
        return is
    }
    tbl := domain.Table{
        mk("A", "Open", "alice", 3),
        mk("B", "In Progress", "bob", 8),
        mk("C", "Done", "alice", 13),
        mk("D", "Open", "alice", 2),
        mk("E", "Open", "", 4),
    }
    loads := WorkloadByAssignee(tbl)
    require.Len(t, loads, 2)
    assert.Equal(t, domain.AssigneeLoad{Assignee: "bob", Points: 8}, loads[0])
    assert.Equal(t, domain.AssigneeLoad{Assignee: "alice", Points: 5}, loads[1])
}

func TestCapacitySplitsByCompletion(t *testing.T) {
    tbl := domain.Table{
        issue("A", "Done", "", 5),
        issue("B", "Open", "", 3),
        issue("C", "In Progress", "", 2),
    }
    c := Capacity(tbl)
    assert.Equal(t, domain.CapacityStats{TotalPoints: 10, CompletedPoints: 5, InProgressPoints: 5}, c)
}
