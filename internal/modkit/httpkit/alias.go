// Package httpkit is the module facing surface of the platform http package.
// Modules import it instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "toxmanager/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Page is the pagination metadata type
	Page = phttp.Page

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response mapped from err
func Error(err error) Response { return phttp.Error(err) }

// List returns a 200 response with items and their page
func List(items any, p Page) Response { return phttp.List(items, p) }

// JSON binds and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.NoBodyHandler(fn) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
