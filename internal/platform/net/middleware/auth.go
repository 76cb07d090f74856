package middleware

import (
	"net/http"

	"toxmanager/internal/platform/logger"
	pnet "toxmanager/internal/platform/net"
)

// AuthPort resolves the operator behind a request
type AuthPort interface {
	Parse(r *http.Request) (user string, err error)
}

// Auth rejects requests the port cannot resolve and puts the operator on the
// context otherwise. A nil port lets everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			user, err := p.Parse(r)
			if err != nil {
				logger.C(r.Context()).Debug().Err(err).Msg("auth rejected")
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), user)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
