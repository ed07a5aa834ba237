package domain

import "time"

// StatusCategory is the closed four-way classification derived from free-text status.
type StatusCategory string

const (
    CategoryDone       StatusCategory = "Done"
    CategoryInProgress StatusCategory = "In Progress"
    CategoryToDo       StatusCategory = "To Do"
    CategoryOther      StatusCategory = "Other"
)

// Issue is one cleaned row of a Jira CSV export. Key is unique and non-empty;
// date fields are either real calendar dates or nil, never unparsed strings.
type Issue struct {
    Key            string         `json:"issue_key"`
    Created        *time.Time     `json:"created"`
    Resolved       *time.Time     `json:"resolved,omitempty"`
    Updated        *time.Time     `json:"updated,omitempty"`
    DueDate        *time.Time     `json:"due_date,omitempty"`
    Status         string         `json:"status"`
    Category       StatusCategory `json:"status_category"`
    Completed      bool           `json:"is_completed"`
    Priority       string         `json:"priority"`
    Type           string         `json:"issue_type"`
    Points         float64        `json:"story_points"`
    Epic           string         `json:"epic_name"`
    Sprint         string         `json:"sprint"`
    SprintNumber   int            `json:"sprint_number"`
    Assignee       string         `json:"assignee,omitempty"`
    ResolutionDays *int           `json:"resolution_time_days,omitempty"`
}

// Table is a cleaned, read-only snapshot. Safe for concurrent readers.
type Table []Issue

// SprintStats are the per-sprint counters recomputed on every query.
type SprintStats struct {
    TotalIssues int     `json:"total_issues"`
    Completed   int     `json:"completed"`
    Points      float64 `json:"story_points"`
}

// SprintComparison pairs current/previous sprint stats with percent deltas.
type SprintComparison struct {
    Current  SprintStats        `json:"current"`
    Previous SprintStats        `json:"previous"`
    Deltas   map[string]float64 `json:"deltas"`
}

type EpicStats struct {
    Epic            string  `json:"epic_name"`
    TotalPoints     float64 `json:"total_points"`
    CompletedPoints float64 `json:"completed_points"`
    CompletionPct   float64 `json:"completion_pct"`
}

type AssigneeLoad struct {
    Assignee string  `json:"assignee"`
    Points   float64 `json:"story_points"`
}

type VelocityStats struct {
    Velocity  float64 `json:"velocity"`
    Completed int     `json:"completed"`
}

type CapacityStats struct {
    TotalPoints      float64 `json:"total_points"`
    CompletedPoints  float64 `json:"completed_points"`
    InProgressPoints float64 `json:"in_progress_points"`
}

type NameCount struct {
    Name  string `json:"name"`
    Count int    `json:"count"`
}

type WeekCount struct {
    WeekStart time.Time `json:"week_start"`
    Count     int       `json:"count"`
}

// BurndownSeries holds the ideal and actual remaining-points curves over a
// two-week sprint horizon starting at the earliest created date.
type BurndownSeries struct {
    Dates  []time.Time `json:"dates"`
    Ideal  []float64   `json:"ideal"`
    Actual []float64   `json:"actual"`
}

// LoadStatus records the outcome of the most recent CSV load for observability.
type LoadStatus struct {
    At        time.Time `json:"at"`
    File      string    `json:"file"`
    Rows      int       `json:"rows"`
    Dropped   int       `json:"dropped"`
    Coerced   int       `json:"coerced"`
    OK        bool      `json:"ok"`
    ErrorCode string    `json:"error_code,omitempty"`
    ErrorMsg  string    `json:"error,omitempty"`
}
