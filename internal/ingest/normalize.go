package ingest

import "strings"

// Canonical field names used by the preparer.
const (
    colKey      = "issue key"
    colCreated  = "created"
    colResolved = "resolved"
    colUpdated  = "updated"
    colDue      = "due date"
    colStatus   = "status"
    colPriority = "priority"
    colType     = "issue type"
    colPoints   = "story points"
    colEpic     = "epic name"
    colAssignee = "assignee"
)

// columnAliases maps canonical fields onto the header spellings seen across
// Jira exports. Matching is case-insensitive on the trimmed header, and
// aliases are listed in priority order: "issue key" must win over "issue id"
// when an export carries both.
var columnAliases = map[string][]string{
    colKey:      {"issue key", "issue id", "key"},
    colCreated:  {"created", "created date"},
    colResolved: {"resolved", "resolution date", "resolutiondate"},
    colUpdated:  {"updated", "updated date"},
    colDue:      {"due date", "duedate", "due"},
    colStatus:   {"status"},
    colPriority: {"priority"},
    colType:     {"issue type", "issuetype", "type"},
    colPoints:   {"story points", "custom field (story points)", "points"},
    colEpic:     {"epic name", "epic link", "custom field (epic name)", "custom field (epic link)"},
    colAssignee: {"assignee"},
}

// findColumn returns the index of the header matching the highest-priority
// alias of the canonical field, or -1 when the source lacks it.
func findColumn(headers []string, field string) int {
    for _, a := range columnAliases[field] {
        for i, h := range headers {
            if strings.ToLower(strings.TrimSpace(h)) == a { return i }
        }
    }
    return -1
}

// sprintColumns lists every header that looks sprint-like, in source order.
// Jira exports repeat the Sprint column once per sprint an issue ever joined.
func sprintColumns(headers []string) []int {
    var out []int
    for i, h := range headers {
        if strings.Contains(strings.ToLower(h), "sprint") { out = append(out, i) }
    }
    return out
}

// sprintValue resolves one row's sprint by forward-filling non-empty values
// across the sprint columns and taking the last filled one. A comma-separated
// cell keeps its first entry.
func sprintValue(row []string, cols []int) string {
    last := ""
    for _, c := range cols {
        if c >= len(row) { continue }
        v := strings.TrimSpace(row[c])
        if v != "" { last = v }
    }
    if i := strings.Index(last, ","); i >= 0 {
        last = strings.TrimSpace(last[:i])
    }
    return last
}

// cell fetches a trimmed value, tolerating short rows and absent columns.
func cell(row []string, idx int) string {
    if idx < 0 || idx >= len(row) { return "" }
    return strings.TrimSpace(row[idx])
}
