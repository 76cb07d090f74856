package httpkit

import (
	"net/http"
	"strings"

	perrs "toxmanager/internal/platform/errors"
	pnet "toxmanager/internal/platform/net"
)

// User returns the authenticated operator from the request context
func User(r *http.Request) (string, error) {
	u := pnet.User(r.Context())
	if u == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return u, nil
}

// MustUser returns the authenticated operator or panics
// only use on routes behind Protected
func MustUser(r *http.Request) string {
	u, err := User(r)
	if err != nil {
		panic(err)
	}
	return u
}

// JWT returns the raw bearer token from the Authorization header. The scheme
// is matched case-insensitively
func JWT(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
