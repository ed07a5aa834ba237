// Package status maps free-text Jira status values onto a closed category set.
package status

import (
    "strings"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

// Matching is case-insensitive and whitespace-trimmed. Anything outside the
// three keyword sets lands in Other. Downstream completion-rate and velocity
// numbers depend on this exact table, so additions need matching test updates.
var categoryByStatus = map[string]domain.StatusCategory{
    "closed":            domain.CategoryDone,
    "done":              domain.CategoryDone,
    "story done":        domain.CategoryDone,
    "epic done":         domain.CategoryDone,
    "resolved":          domain.CategoryDone,
    "complete":          domain.CategoryDone,
    "completed":         domain.CategoryDone,
    "in progress":       domain.CategoryInProgress,
    "story in progress": domain.CategoryInProgress,
    "in development":    domain.CategoryInProgress,
    "development":       domain.CategoryInProgress,
    "to do":             domain.CategoryToDo,
    "backlog":           domain.CategoryToDo,
    "open":              domain.CategoryToDo,
    "new":               domain.CategoryToDo,
}

// Classify returns the status category and whether the status counts as completed.
func Classify(raw string) (domain.StatusCategory, bool) {
    key := strings.ToLower(strings.TrimSpace(raw))
    if cat, ok := categoryByStatus[key]; ok {
        return cat, cat == domain.CategoryDone
    }
    return domain.CategoryOther, false
}

// IsCompleted is a shorthand for the completion predicate alone.
func IsCompleted(raw string) bool {
    _, done := Classify(raw)
    return done
}
