package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"toxmanager/internal/core/version"
	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/services/api/apitest"
	metahttp "toxmanager/internal/services/api/meta/http"
	metamod "toxmanager/internal/services/api/meta/module"
)

func TestMeta(t *testing.T) {
	h := apitest.New(t)
	h.Mount(metamod.New(h.Deps))

	rr := h.Anon(http.MethodGet, "/meta/health", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	health := apitest.Data[metahttp.HealthResponse](t, rr)
	assert.True(t, health.OK)
	assert.Equal(t, "toxmanager-api", health.Service)
	assert.Equal(t, "2024-03-01T12:00:00Z", health.Now)

	rr = h.Anon(http.MethodGet, "/meta/ready", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	ready := apitest.Data[metahttp.ReadyResponse](t, rr)
	assert.Equal(t, "ok", ready.Status)
	assert.Equal(t, []metahttp.ReadyCheck{{Name: "store", Status: "ok"}}, ready.Checks)

	rr = h.Anon(http.MethodGet, "/meta/version", nil)
	assert.Equal(t, version.Service, apitest.Data[version.BuildInfo](t, rr).Service)

	rr = h.Anon(http.MethodGet, "/meta/service", nil)
	svc := apitest.Data[metahttp.ServiceResponse](t, rr)
	assert.Equal(t, int64(0), svc.Uptime)
}

func TestMeta_ReadyWithoutStore(t *testing.T) {
	h := apitest.New(t)
	h.Deps.Store = nil
	h.Mount(metamod.New(h.Deps))

	ready := apitest.Data[metahttp.ReadyResponse](t, h.Anon(http.MethodGet, "/meta/ready", nil))
	assert.Equal(t, "skipped", ready.Checks[0].Status)
}

type failing struct{}

func (failing) Ping(context.Context) error { return errors.New("store closed") }

func TestMeta_ReadyFailing(t *testing.T) {
	h := apitest.New(t)
	h.Router.Route("/api/v1/meta", func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{ServiceName: "x", Store: failing{}})
	})
	rr := h.Anon(http.MethodGet, "/meta/ready", nil)
	apitest.StatusIs(t, rr, http.StatusServiceUnavailable)
	ready := apitest.Data[metahttp.ReadyResponse](t, rr)
	assert.Equal(t, "fail", ready.Status)
	assert.Equal(t, "store closed", ready.Checks[0].Error)
}
