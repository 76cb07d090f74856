package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"toxmanager/internal/services/api/apitest"
	"toxmanager/internal/services/api/settings/domain"
	settingsmod "toxmanager/internal/services/api/settings/module"
	"toxmanager/internal/store"
)

func TestGet(t *testing.T) {
	h := apitest.New(t)
	h.Mount(settingsmod.New(h.Deps))

	rr := h.Do(http.MethodGet, "/settings", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	assert.Equal(t, store.DefaultSettings(), apitest.Data[store.Profile](t, rr))

	apitest.StatusIs(t, h.Anon(http.MethodGet, "/settings", nil), http.StatusUnauthorized)
}

func TestPut(t *testing.T) {
	h := apitest.New(t)
	h.Mount(settingsmod.New(h.Deps))

	rr := h.Do(http.MethodPut, "/settings", domain.ProfileInput{
		Name: "  Ana   Silva Souza ", Email: "Ana.Souza@Iberia.com.br", DarkMode: true,
	})
	apitest.StatusIs(t, rr, http.StatusOK)
	assert.Equal(t, store.Profile{
		Name:       "Ana Silva Souza",
		Email:      "ana.souza@iberia.com.br",
		Department: "Saúde Ocupacional",
		DarkMode:   true,
	}, apitest.Data[store.Profile](t, rr))
	assert.True(t, h.Deps.Store.Settings.Get().DarkMode)
}

func TestPut_Rejects(t *testing.T) {
	h := apitest.New(t)
	h.Mount(settingsmod.New(h.Deps))

	rr := h.Do(http.MethodPut, "/settings", domain.ProfileInput{Name: "Ana", Email: "not-an-email"})
	apitest.StatusIs(t, rr, http.StatusBadRequest)
	assert.Equal(t, "email", apitest.Envelope(t, rr).Field)

	rr = h.Do(http.MethodPut, "/settings", `{"name":"Ana","email":"a@b.co","department":"TI"}`)
	apitest.StatusIs(t, rr, http.StatusBadRequest)

	assert.Equal(t, store.DefaultSettings(), h.Deps.Store.Settings.Get())
}
