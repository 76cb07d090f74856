package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxmanager/internal/core/roster"
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/module"
	"toxmanager/internal/services/api/apitest"
	notifdomain "toxmanager/internal/services/api/notifications/domain"
	notifmod "toxmanager/internal/services/api/notifications/module"
	"toxmanager/internal/services/api/sorteios/domain"
	sorteiosmod "toxmanager/internal/services/api/sorteios/module"
	"toxmanager/internal/store"
)

func harness(t *testing.T) *apitest.Harness {
	h := apitest.New(t)
	notif := notifmod.New(h.Deps)
	lot := sorteiosmod.New(h.Deps, modkit.WithPorts(domain.Ports{
		Notifier: module.MustPortsOf[notifdomain.Notifier](notif),
	}))
	return h.Mount(notif, lot)
}

func draw(t *testing.T, h *apitest.Harness, count int) store.Draw {
	t.Helper()
	rr := h.Do(http.MethodPost, "/sorteios", domain.DrawInput{Count: count})
	apitest.StatusIs(t, rr, http.StatusCreated)
	return apitest.Data[store.Draw](t, rr)
}

func TestPool(t *testing.T) {
	h := harness(t)
	rr := h.Do(http.MethodGet, "/sorteios/eligible", nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	assert.Equal(t, domain.PoolInfo{Eligible: 7, Max: 10}, apitest.Data[domain.PoolInfo](t, rr))
}

func TestDraw(t *testing.T) {
	h := harness(t)
	d := draw(t, h, 3)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "ana.silva@iberia.com.br", d.CreatedBy)
	assert.True(t, d.CreatedAt.Equal(apitest.Now))
	assert.Equal(t, 3, d.Requested)
	assert.Equal(t, 7, d.Eligible)
	require.Len(t, d.Picks, 3)

	seen := map[string]bool{}
	for i, p := range d.Picks {
		assert.Equal(t, i+1, p.Rank)
		assert.Equal(t, roster.StatusActive, p.Employee.Status)
		assert.False(t, p.Confirmed)
		assert.False(t, seen[p.Employee.ID], "picked twice")
		seen[p.Employee.ID] = true
	}

	inbox := h.Deps.Store.Notifications.List()
	require.Len(t, inbox, 5)
	assert.Equal(t, store.KindSuccess, inbox[0].Kind)
	assert.Equal(t, "Sorteio realizado", inbox[0].Title)

	got := apitest.Data[store.Draw](t, h.Do(http.MethodGet, "/sorteios/"+d.ID, nil))
	assert.Equal(t, d.Picks, got.Picks)

	list := apitest.Data[[]store.Draw](t, h.Do(http.MethodGet, "/sorteios", nil))
	require.Len(t, list, 1)
	assert.Equal(t, d.ID, list[0].ID)
}

func TestDraw_MoreThanPool(t *testing.T) {
	h := harness(t)
	d := draw(t, h, 10)
	assert.Equal(t, 10, d.Requested)
	assert.Len(t, d.Picks, 7)
}

func TestDraw_SameSeedSamePicks(t *testing.T) {
	a, b := draw(t, harness(t), 4), draw(t, harness(t), 4)
	ids := func(d store.Draw) []string {
		out := make([]string, len(d.Picks))
		for i, p := range d.Picks {
			out[i] = p.Employee.ID
		}
		return out
	}
	assert.Equal(t, ids(a), ids(b))
}

func TestDraw_Rejects(t *testing.T) {
	h := harness(t)

	rr := h.Do(http.MethodPost, "/sorteios", domain.DrawInput{Count: 11})
	apitest.StatusIs(t, rr, http.StatusUnprocessableEntity)
	assert.Equal(t, "count", apitest.Envelope(t, rr).Field)

	rr = h.Do(http.MethodPost, "/sorteios", `{"count":0}`)
	apitest.StatusIs(t, rr, http.StatusBadRequest)

	rr = h.Do(http.MethodPost, "/sorteios", `{"count":-2}`)
	apitest.StatusIs(t, rr, http.StatusBadRequest)

	apitest.StatusIs(t, h.Anon(http.MethodPost, "/sorteios", domain.DrawInput{Count: 1}), http.StatusUnauthorized)
	apitest.StatusIs(t, h.Do(http.MethodGet, "/sorteios/missing", nil), http.StatusNotFound)
	assert.Empty(t, h.Deps.Store.Draws.List())
}

func TestDraw_EmptyPool(t *testing.T) {
	h := harness(t)
	for _, e := range h.Deps.Store.Roster.Snapshot() {
		if e.Status == roster.StatusActive {
			_, err := h.Deps.Store.Roster.UpdateStatus(e.ID, roster.StatusOnLeave)
			require.NoError(t, err)
		}
	}

	rr := h.Do(http.MethodPost, "/sorteios", domain.DrawInput{Count: 1})
	apitest.StatusIs(t, rr, http.StatusConflict)
	assert.Empty(t, h.Deps.Store.Draws.List())
	assert.Len(t, h.Deps.Store.Notifications.List(), 4)

	info := apitest.Data[domain.PoolInfo](t, h.Do(http.MethodGet, "/sorteios/eligible", nil))
	assert.Equal(t, 0, info.Eligible)
}

func TestConfirm(t *testing.T) {
	h := harness(t)
	d := draw(t, h, 2)
	emp := d.Picks[1].Employee.ID
	path := "/sorteios/" + d.ID + "/picks/" + emp + "/confirm"

	rr := h.Do(http.MethodPost, path, nil)
	apitest.StatusIs(t, rr, http.StatusOK)
	p := apitest.Data[store.Pick](t, rr)
	assert.True(t, p.Confirmed)
	assert.Equal(t, 2, p.Rank)
	require.NotNil(t, p.ConfirmedAt)
	assert.True(t, p.ConfirmedAt.Equal(apitest.Now))

	apitest.StatusIs(t, h.Do(http.MethodPost, path, nil), http.StatusConflict)
	apitest.StatusIs(t, h.Do(http.MethodPost, "/sorteios/"+d.ID+"/picks/nobody/confirm", nil), http.StatusNotFound)

	e, err := h.Deps.Store.Roster.Get(emp)
	require.NoError(t, err)
	assert.Equal(t, roster.StatusActive, e.Status, "confirming never changes the roster")
}

func TestMaxFromConfig(t *testing.T) {
	t.Setenv("TOX_LOTTERY_MAX", "2")
	h := harness(t)
	apitest.StatusIs(t, h.Do(http.MethodPost, "/sorteios", domain.DrawInput{Count: 3}), http.StatusUnprocessableEntity)
	d := draw(t, h, 2)
	assert.Len(t, d.Picks, 2)
}
