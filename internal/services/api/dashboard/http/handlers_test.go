package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxmanager/internal/core/roster"
	"toxmanager/internal/services/api/apitest"
	"toxmanager/internal/services/api/dashboard/domain"
	dashmod "toxmanager/internal/services/api/dashboard/module"
)

func TestKPIs(t *testing.T) {
	h := apitest.New(t)
	h.Mount(dashmod.New(h.Deps))

	rr := h.Do(http.MethodGet, "/dashboard/kpis", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	k := apitest.Data[domain.KPIs](t, rr)

	assert.Equal(t, 12, k.Total)
	assert.Equal(t, 7, k.Active)
	assert.Equal(t, 7, k.Eligible)
	assert.Equal(t, []domain.StatusCount{
		{Status: roster.StatusActive, Label: "Ativo", Count: 7},
		{Status: roster.StatusOnLeave, Label: "Férias", Count: 1},
		{Status: roster.StatusPending, Label: "Pendente", Count: 3},
		{Status: roster.StatusSuspended, Label: "Afastado", Count: 1},
	}, k.ByStatus)

	_, err := h.Deps.Store.Roster.UpdateStatus("1", roster.StatusSuspended)
	require.NoError(t, err)
	k = apitest.Data[domain.KPIs](t, h.Do(http.MethodGet, "/dashboard/kpis", nil))
	assert.Equal(t, 6, k.Active)
	assert.Equal(t, 6, k.Eligible)
}

func TestRecent(t *testing.T) {
	h := apitest.New(t)
	h.Mount(dashmod.New(h.Deps))

	type body struct {
		Items []roster.Employee `json:"items"`
		Page  struct {
			Total      int `json:"total"`
			Page       int `json:"page"`
			PageSize   int `json:"page_size"`
			TotalPages int `json:"total_pages"`
		} `json:"page"`
	}

	b := apitest.Data[body](t, h.Do(http.MethodGet, "/dashboard/recent?size=50", nil))
	assert.Len(t, b.Items, 5, "size is fixed")
	assert.Equal(t, 5, b.Page.PageSize)
	assert.Equal(t, 3, b.Page.TotalPages)

	b = apitest.Data[body](t, h.Do(http.MethodGet, "/dashboard/recent?page=3&sort=desc", nil))
	require.Len(t, b.Items, 2)
	assert.Equal(t, "Beatriz Melo", b.Items[0].Name)
	assert.Equal(t, "Ana Souza", b.Items[1].Name)

	b = apitest.Data[body](t, h.Do(http.MethodGet, "/dashboard/recent?q=rh", nil))
	assert.Equal(t, 2, b.Page.Total)

	apitest.StatusIs(t, h.Do(http.MethodGet, "/dashboard/recent?sort=up", nil), http.StatusUnprocessableEntity)
	apitest.StatusIs(t, h.Anon(http.MethodGet, "/dashboard/kpis", nil), http.StatusUnauthorized)
}

func TestRecent_PageSizeFromConfig(t *testing.T) {
	t.Setenv("TOX_DASHBOARD_PAGE_SIZE", "4")
	h := apitest.New(t)
	h.Mount(dashmod.New(h.Deps))

	rr := h.Do(http.MethodGet, "/dashboard/recent", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	assert.Contains(t, rr.Body.String(), `"page_size":4`)
}
