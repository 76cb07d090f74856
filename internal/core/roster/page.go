package roster

import (
	"slices"
	"strings"

	perr "toxmanager/internal/platform/errors"
)

// Direction orders a roster view by name
type Direction string

const (
	// Ascending sorts A to Z
	Ascending Direction = "asc"
	// Descending sorts Z to A
	Descending Direction = "desc"
)

// ParseDirection maps asc/desc (any case) to a Direction, empty means Ascending
func ParseDirection(v string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", perr.WithField(perr.InvalidArgf("sort must be asc or desc, got %q", v), "sort")
}

// Page is one bounded slice of a sorted view
type Page struct {
	Items      []Employee `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"total"`
}

// SortAndPage orders records by name and returns the requested page.
//
// Ascending is a stable sort, so equal names keep their input order.
// Descending is the exact reverse of Ascending. A pageSize below 1 is treated
// as 1 and pageNumber is clamped into [1, TotalPages]. TotalPages is never
// below 1, so an empty input reports page 1 of 1 with no items
func SortAndPage(records []Employee, dir Direction, pageSize, pageNumber int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	sorted := Sort(records, dir)

	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	pageNumber = min(max(pageNumber, 1), totalPages)

	start := min((pageNumber-1)*pageSize, total)
	end := min(start+pageSize, total)

	items := make([]Employee, end-start)
	copy(items, sorted[start:end])

	return Page{
		Items:      items,
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}

// Sort returns a name-ordered copy of records
func Sort(records []Employee, dir Direction) []Employee {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []Employee{}
	}
	slices.SortStableFunc(sorted, func(a, b Employee) int {
		return strings.Compare(a.Name, b.Name)
	})
	if dir == Descending {
		slices.Reverse(sorted)
	}
	return sorted
}
