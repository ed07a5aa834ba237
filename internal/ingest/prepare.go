/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package ingest

import (
    "strconv"
    "strings"
    "time"
    "unicode"

    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/apperrors"
    "github.com/HamedShams/sprint-lens/internal/domain"
    "github.com/HamedShams/sprint-lens/internal/sprint"
    "github.com/HamedShams/sprint-lens/internal/status"
)

// Defaults applied where the export leaves a field empty.
const (
    DefaultPriority = "Medium"
    DefaultType     = "Story"
    DefaultStatus   = "In Progress"
    DefaultEpic     = "No Epic"
)

// Stats counts what the preparer did to the snapshot, for the last-load record.
type Stats struct {
    Rows    int
    Dropped int
    Coerced int
}

// Accepted date layouts: ISO 8601 with and without time, then day-first.
// Mixed layouts within one column are fine; each cell is tried independently.
var dateLayouts = []string{
    time.RFC3339,
    "2006-01-02T15:04:05",
    "2006-01-02 15:04:05",
    "2006-01-02 15:04",
    "2006-01-02",
    "02/01/2006 15:04",
    "02/01/2006",
}

func parseDate(s string) *time.Time {
    if s == "" { return nil }
    for _, l := range dateLayouts {
        if t, err := time.Parse(l, s); err == nil { return &t }
    }
    return nil
}

// titleCase lowercases then capitalizes each word: "STORY DONE" -> "Story Done".
// Idempotent, so re-preparing an already-clean value is a no-op.
func titleCase(s string) string {
    fields := strings.Fields(s)
    for i, f := range fields {
        r := []rune(strings.ToLower(f))
        r[0] = unicode.ToUpper(r[0])
        fields[i] = string(r)
    }
    return strings.Join(fields, " ")
}

// Prepare turns a raw snapshot into the cleaned table. Value-level problems
// (bad points, bad dates) are coerced to defaults and counted; structural
// problems abort with a tagged error and an empty table.
func Prepare(raw *Raw, log zerolog.Logger) (domain.Table, Stats, error) {
    var stats Stats
    if raw == nil || len(raw.Rows) == 0 {
        return nil, stats, apperrors.New(apperrors.ErrEmptyDataset, "empty dataset")
    }

    idx := map[string]int{}
    for _, f := range []string{colKey, colCreated, colResolved, colUpdated, colDue, colStatus, colPriority, colType, colPoints, colEpic, colAssignee} {
        idx[f] = findColumn(raw.Headers, f)
    }
    var missing []string
    for _, f := range []string{colKey, colCreated, colStatus} {
        if idx[f] < 0 { missing = append(missing, f) }
    }
    if len(missing) > 0 {
        return nil, stats, apperrors.New(apperrors.ErrMissingRequiredColumns, "missing required columns: %s", strings.Join(missing, ", "))
    }

    // A date column where every filled cell fails to parse is considered
    // invalid and fails the whole load; scattered bad cells only coerce.
    for _, f := range []string{colCreated, colResolved, colUpdated, colDue} {
        c := idx[f]
        if c < 0 { continue }
        filled, parsed := 0, 0
        for _, row := range raw.Rows {
            v := cell(row, c)
            if v == "" { continue }
            filled++
            if parseDate(v) != nil { parsed++ }
        }
        if filled > 0 && parsed == 0 {
            return nil, stats, apperrors.New(apperrors.ErrInvalidDateColumn, "invalid date format in column: %s", f)
        }
    }

    sprintCols := sprintColumns(raw.Headers)
    seen := map[string]struct{}{}
    table := make(domain.Table, 0, len(raw.Rows))
    for _, row := range raw.Rows {
        key := cell(row, idx[colKey])
        if key == "" { stats.Dropped++; continue }
        if _, dup := seen[key]; dup { stats.Dropped++; continue }
        seen[key] = struct{}{}

        is := domain.Issue{Key: key}

        is.Status = titleCase(cell(row, idx[colStatus]))
        if is.Status == "" { is.Status = DefaultStatus }
        is.Category, is.Completed = status.Classify(is.Status)

        is.Priority = titleCase(cell(row, idx[colPriority]))
        if is.Priority == "" { is.Priority = DefaultPriority }
        is.Type = cell(row, idx[colType])
        if is.Type == "" { is.Type = DefaultType }
        is.Epic = cell(row, idx[colEpic])
        if is.Epic == "" { is.Epic = DefaultEpic }
        is.Assignee = cell(row, idx[colAssignee])

        if v := cell(row, idx[colPoints]); v != "" {
            p, err := strconv.ParseFloat(v, 64)
            if err != nil || p < 0 {
                stats.Coerced++
                p = 0
            }
            is.Points = p
        }

        for _, d := range []struct {
            field string
            dst   **time.Time
        }{
            {colCreated, &is.Created},
            {colResolved, &is.Resolved},
            {colUpdated, &is.Updated},
            {colDue, &is.DueDate},
        } {
            v := cell(row, idx[d.field])
            if v == "" { continue }
            t := parseDate(v)
            if t == nil { stats.Coerced++; continue }
            *d.dst = t
        }

        is.Sprint = sprintValue(row, sprintCols)
        if is.Sprint == "" { is.Sprint = sprint.NoSprint }
        is.SprintNumber = sprint.Number(is.Sprint)

        if is.Created != nil && is.Resolved != nil {
            days := int(is.Resolved.Sub(*is.Created).Hours() / 24)
            is.ResolutionDays = &days
        }

        table = append(table, is)
    }
    stats.Rows = len(table)

    if stats.Dropped > 0 || stats.Coerced > 0 {
        log.Warn().Int("dropped", stats.Dropped).Int("coerced", stats.Coerced).Int("rows", stats.Rows).Msg("prepare: cleaned rows")
    } else {
        log.Info().Int("rows", stats.Rows).Msg("prepare: done")
    }
    return table, stats, nil
}
