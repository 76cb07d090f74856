// Package roster holds the employee record and the pure listing operations
// (filter, sort, paginate) the dashboard and roster views are built from
package roster

import (
	"strings"

	perr "toxmanager/internal/platform/errors"
)

// Status is the compliance status of an employee
type Status string

const (
	// StatusActive is the only status eligible for the exam lottery
	StatusActive Status = "active"
	// StatusOnLeave marks employees on vacation
	StatusOnLeave Status = "on_leave"
	// StatusPending marks employees with an outstanding exam or registration
	StatusPending Status = "pending"
	// StatusSuspended marks employees away from work
	StatusSuspended Status = "suspended"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusActive, StatusOnLeave, StatusPending, StatusSuspended}

var labels = map[Status]string{
	StatusActive:    "Ativo",
	StatusOnLeave:   "Férias",
	StatusPending:   "Pendente",
	StatusSuspended: "Afastado",
}

// Valid reports whether s is one of the closed set of statuses
func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Label returns the fixed display label, or the raw value for unknown statuses
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStatus accepts the wire value or the display label, case-insensitively
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, s := range Statuses {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, labels[s]) {
			return s, nil
		}
	}
	return "", perr.Newf(perr.ErrorCodeInvalidArgument, "unknown status %q", v)
}

// Gender is a display-only attribute kept from the original roster
type Gender string

const (
	// GenderMale is rendered with the male avatar
	GenderMale Gender = "M"
	// GenderFemale is rendered with the female avatar
	GenderFemale Gender = "F"
)

// Employee is one roster record. The core never mutates it
type Employee struct {
	ID                 string `json:"id"`
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	Gender             Gender `json:"gender,omitempty"`
	Department         string `json:"department"`
	Status             Status `json:"status"`
	LastExamDate       string `json:"last_exam_date"`
}

// Active reports whether the employee is in the eligible pool
func (e Employee) Active() bool { return e.Status == StatusActive }

// Validate reports a malformed record. Filter and SortAndPage do not need it,
// callers holding state use it at intake so bad rows never reach the roster
func Validate(e Employee) error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return perr.WithField(perr.InvalidArgf("employee id is required"), "id")
	case strings.TrimSpace(e.Name) == "":
		return perr.WithField(perr.InvalidArgf("employee %s: name is required", e.ID), "name")
	case !e.Status.Valid():
		return perr.WithField(perr.InvalidArgf("employee %s: unknown status %q", e.ID, e.Status), "status")
	case e.Gender != "" && e.Gender != GenderMale && e.Gender != GenderFemale:
		return perr.WithField(perr.InvalidArgf("employee %s: unknown gender %q", e.ID, e.Gender), "gender")
	}
	return nil
}
