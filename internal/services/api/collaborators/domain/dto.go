// Package domain holds DTOs and ports for the collaborators module
package domain

import (
	"context"

	"toxmanager/internal/core/roster"
)

// ListInput selects one page of the filtered, name-sorted roster
type ListInput struct {
	Query string
	Sort  roster.Direction
	Page  int
	Size  int
}

// CreateInput is one manually registered employee. Empty optional fields
// take the quick-add defaults
type CreateInput struct {
	Name               string `json:"name"                          validate:"required,max=120"             example:"Maria Oliveira"`
	Department         string `json:"department"                    validate:"required,max=120"             example:"Logística"`
	RegistrationNumber string `json:"registration_number,omitempty" validate:"omitempty,max=20"             example:"4521"`
	Gender             string `json:"gender,omitempty"              validate:"omitempty,oneof=M F"          example:"F"`
	Status             string `json:"status,omitempty"              validate:"omitempty,roster_status"      example:"pending"`
	LastExamDate       string `json:"last_exam_date,omitempty"      validate:"omitempty,dmy_date"           example:"15/01/2024"`
}

// ImportInput is a batch of already parsed rows, added all or nothing
type ImportInput struct {
	Records []CreateInput `json:"records" validate:"required,min=1,max=1000,dive"`
}

// ImportResult reports what an import added
type ImportResult struct {
	Added int               `json:"added"`
	Items []roster.Employee `json:"items"`
}

// StatusInput changes an employee status. Wire values and display labels
// are both accepted
type StatusInput struct {
	Status string `json:"status" validate:"required" example:"on_leave"`
}

// ServicePort is the collaborators service contract
type ServicePort interface {
	List(ctx context.Context, in ListInput) (roster.Page, error)
	Get(ctx context.Context, id string) (roster.Employee, error)
	Create(ctx context.Context, in CreateInput) (roster.Employee, error)
	Import(ctx context.Context, in ImportInput) (ImportResult, error)
	UpdateStatus(ctx context.Context, id string, in StatusInput) (roster.Employee, error)
}
