package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phttp "toxmanager/internal/platform/net/http"
	kit "toxmanager/internal/platform/testkit"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	assert.Empty(t, b.Name)
	assert.Empty(t, b.Prefix)
	assert.Nil(t, b.Ports)
	assert.Empty(t, b.Mw)

	var r phttp.Router
	assert.Nil(t, b.Subrouter(r))
	kit.MustNotPanic(t, func() { b.Register(r) })
}

func TestBuild_OptionsCopyMiddlewares(t *testing.T) {
	type ports struct{ N int }
	mid := []func(http.Handler) http.Handler{
		func(h http.Handler) http.Handler { return h },
	}
	b := Build(WithName("sorteios"), WithPrefix("/sorteios"), WithMiddlewares(mid...), WithPorts(ports{N: 7}))

	assert.Equal(t, "sorteios", b.Name)
	assert.Equal(t, "/sorteios", b.Prefix)
	assert.Equal(t, ports{N: 7}, b.Ports)
	require.Len(t, b.Mw, 1)

	mid[0] = nil
	assert.NotNil(t, b.Mw[0], "Built.Mw must not alias the caller slice")
}

func TestBase_MountRoutes(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	own := func(r phttp.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("own")) })
	}
	extra := WithRegister(func(r phttp.Router) {
		r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("extra")) })
	})
	sub := WithSubrouter(func(r phttp.Router) phttp.Router {
		r.Use(tag("sub"))
		return r
	})

	m := NewBase(
		[]Option{WithName("collaborators"), WithPrefix("collaborators/")},
		[]Option{WithMiddlewares(tag("mw")), sub, extra},
		own,
	)
	assert.Equal(t, "collaborators", m.Name())
	assert.Equal(t, "/collaborators", m.Prefix())
	assert.Len(t, m.Middlewares(), 1)
	assert.Nil(t, m.Ports())

	root := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(root)

	for path, want := range map[string]string{"/collaborators/": "own", "/collaborators/extra": "extra"} {
		rr := httptest.NewRecorder()
		root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Body.String(), path)
	}
	assert.Equal(t, []string{"mw", "sub", "mw", "sub"}, order)
}

func TestBase_PanicsWithoutNameOrPrefix(t *testing.T) {
	m := NewBase(nil, nil, nil)
	kit.MustPanic(t, func() { _ = m.Name() })
	kit.MustPanic(t, func() { _ = m.Prefix() })
}

type stub struct{ Base }

var _ Module = (*stub)(nil)

func TestBuilder(t *testing.T) {
	var b Builder = func(d Deps, opts ...Option) Module {
		return &stub{Base: NewBase([]Option{WithName("meta"), WithPrefix("/meta")}, opts, nil)}
	}
	m := b(Deps{}, WithPorts("ok"))
	assert.Equal(t, "meta", m.Name())
	assert.Equal(t, "ok", m.Ports())
}

func TestDeps_NowAndLogger(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, Deps{Clock: func() time.Time { return fixed }}.Now())
	assert.WithinDuration(t, time.Now(), Deps{}.Now(), time.Second)
	assert.NotNil(t, Deps{}.Logger("sorteios"))
}
