package roster

import "strings"

// Filter returns the records whose name, registration number or department
// contains query, keeping input order. Name and department are compared
// lower-cased; the registration number is matched as typed.
// An empty query returns a copy of every record
func Filter(records []Employee, query string) []Employee {
	out := make([]Employee, 0, len(records))
	if query == "" {
		return append(out, records...)
	}

	q := strings.ToLower(query)
	for _, e := range records {
		if Matches(e, q, query) {
			out = append(out, e)
		}
	}
	return out
}

// Matches is the per-record predicate behind Filter. lowered must be
// strings.ToLower(raw)
func Matches(e Employee, lowered, raw string) bool {
	return strings.Contains(strings.ToLower(e.Name), lowered) ||
		strings.Contains(e.RegistrationNumber, raw) ||
		strings.Contains(strings.ToLower(e.Department), lowered)
}
