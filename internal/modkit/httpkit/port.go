package httpkit

import (
	"net/http"

	perrs "toxmanager/internal/platform/errors"
)

// TokenFunc turns a bearer token into the operator it was issued to
type TokenFunc func(token string) (user string, err error)

// Port implements middleware.AuthPort over a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a token parser
func NewPortFunc(fn TokenFunc) *Port { return &Port{parse: fn} }

// Parse reads the Authorization header and delegates to the TokenFunc.
// Parser failures keep their message when they are ours, so an expired
// session says so
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := JWT(r)
	if err != nil {
		return "", err
	}
	if p == nil || p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	user, err := p.parse(raw)
	if err != nil {
		if perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
			return "", err
		}
		return "", perrs.Wrap(err, perrs.ErrorCodeUnauthorized, "invalid bearer token")
	}
	return user, nil
}
