// Package domain holds DTOs and ports for the auth module
package domain

import (
	"context"
	"time"
)

// LoginInput is the login form
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email,max=254" example:"ana.silva@iberia.com.br"`
	Password string `json:"password" validate:"required,max=128"      example:"secret"`
}

// Operator is the person behind a session
type Operator struct {
	Name       string `json:"name"       example:"Ana Silva"`
	Email      string `json:"email"      example:"ana.silva@iberia.com.br"`
	Department string `json:"department" example:"Saúde Ocupacional"`
}

// Session is a signed token and who it was issued to
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Operator  Operator  `json:"operator"`
}

// ServicePort is the auth service contract
type ServicePort interface {
	Login(ctx context.Context, in LoginInput) (Session, error)
	Me(ctx context.Context, email string) (Operator, error)
}
