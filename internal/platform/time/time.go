// Package time holds the date helpers for the day first dates the roster
// carries
package time

import "time"

// DMY is the dd/mm/yyyy layout of exam and admission dates
const DMY = "02/01/2006"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ParseDMY parses a dd/mm/yyyy date
func ParseDMY(s string) (time.Time, error) { return time.Parse(DMY, s) }

// IsDMY reports whether s is a valid dd/mm/yyyy date
func IsDMY(s string) bool {
	_, err := ParseDMY(s)
	return err == nil
}

// FormatDMY renders t as dd/mm/yyyy
func FormatDMY(t time.Time) string { return t.Format(DMY) }
