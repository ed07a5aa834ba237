// Package sprint extracts sortable sprint numbers from free-text sprint names
// and picks the latest sprint out of a snapshot.
package sprint

import (
    "regexp"
    "sort"
    "strconv"

    "github.com/HamedShams/sprint-lens/internal/domain"
)

// NoSprint marks rows that carry no sprint assignment after cleaning.
const NoSprint = "No Sprint"

// NoSprintData is the sentinel returned when a snapshot holds no usable sprint.
const NoSprintData = "No Sprint Data"

// Unnumbered sorts last in descending sprint order.
const Unnumbered = -1

var numberRe = regexp.MustCompile(`Sprint\s*(\d+)`)

// Number returns the first integer following the literal "Sprint" in name,
// or Unnumbered when name is empty, "No Sprint", or carries no such number.
func Number(name string) int {
    if name == "" || name == NoSprint { return Unnumbered }
    m := numberRe.FindStringSubmatch(name)
    if m == nil { return Unnumbered }
    n, err := strconv.Atoi(m[1])
    if err != nil { return Unnumbered }
    return n
}

// Available lists the distinct numbered sprint names in t, latest first.
func Available(t domain.Table) []string {
    seen := map[string]int{}
    for _, is := range t {
        if is.SprintNumber == Unnumbered { continue }
        seen[is.Sprint] = is.SprintNumber
    }
    out := make([]string, 0, len(seen))
    for name := range seen { out = append(out, name) }
    sort.Slice(out, func(i, j int) bool {
        if seen[out[i]] == seen[out[j]] { return out[i] < out[j] }
        return seen[out[i]] > seen[out[j]]
    })
    return out
}

// Current returns the sprint with the highest number, or NoSprintData.
func Current(t domain.Table) string {
    best := NoSprintData
    bestN := Unnumbered
    for _, is := range t {
        if is.SprintNumber > bestN {
            bestN = is.SprintNumber
            best = is.Sprint
        }
    }
    return best
}

// Previous returns the numbered sprint immediately before name in t, or "".
func Previous(t domain.Table, name string) string {
    cur := Number(name)
    if cur == Unnumbered { return "" }
    prev := ""
    prevN := Unnumbered
    for _, is := range t {
        if is.SprintNumber == Unnumbered || is.SprintNumber >= cur { continue }
        if is.SprintNumber > prevN {
            prevN = is.SprintNumber
            prev = is.Sprint
        }
    }
    return prev
}
