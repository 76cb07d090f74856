// Package apitest mounts API modules on a real chi router over seeded stores
// for handler tests
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/metrics"
	phttp "toxmanager/internal/platform/net/http"
	"toxmanager/internal/platform/token"
	"toxmanager/internal/store"
)

// Now is the fixed clock the harness hands to stores and modules
var Now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Harness is a router, the deps modules were built from and a valid token
type Harness struct {
	t      *testing.T
	Deps   modkit.Deps
	Router phttp.Router
	Token  string
}

// New seeds the stores, issues a token for the default operator and uses a
// seeded lottery so draws are reproducible
func New(t *testing.T) *Harness {
	t.Helper()
	clock := func() time.Time { return Now }
	tokens, err := token.New("apitest-secret", time.Hour)
	if err != nil {
		t.Fatalf("token issuer: %v", err)
	}
	raw, _, err := tokens.Issue("ana.silva@iberia.com.br", "Ana Silva")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &Harness{
		t: t,
		Deps: modkit.Deps{
			Cfg:     config.New().Prefix("TOX_"),
			Store:   store.Seed(store.WithClock(clock)),
			Lottery: lottery.Locked(lottery.NewSeeded(7)),
			Metrics: metrics.New(),
			Tokens:  tokens,
			Auth:    httpkit.NewPortFunc(tokens.UserOf),
			Clock:   clock,
		},
		Router: phttp.AdaptChi(chi.NewRouter()),
		Token:  raw,
	}
}

// Mount mounts mods under /api/v1 with the common stack
func (h *Harness) Mount(mods ...modkit.Module) *Harness {
	httpkit.MountAPIV1(h.Router, httpkit.CommonStack(h.Deps.Cfg.Prefix("API_"), h.Deps.Metrics), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	return h
}

// Do sends an authenticated request. body is JSON encoded unless it is a string
func (h *Harness) Do(method, path string, body any) *httptest.ResponseRecorder {
	return h.send(method, path, body, "Bearer "+h.Token)
}

// Anon sends a request without credentials
func (h *Harness) Anon(method, path string, body any) *httptest.ResponseRecorder {
	return h.send(method, path, body, "")
}

func (h *Harness) send(method, path string, body any, authz string) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			h.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rr := httptest.NewRecorder()
	h.Router.Mux().ServeHTTP(rr, req)
	return rr
}

// Data decodes the envelope data of rr into T
func Data[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rr.Body.String())
	}
	return env.Data
}

// Envelope decodes the whole envelope of rr
func Envelope(t *testing.T, rr *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rr.Body.String())
	}
	return env
}

// StatusIs fails the test when rr has another status
func StatusIs(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d body=%s", rr.Code, want, rr.Body.String())
	}
}
