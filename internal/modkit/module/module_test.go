package module

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	phttp "toxmanager/internal/platform/net/http"
	kit "toxmanager/internal/platform/testkit"
)

type Notifier interface{ Notify(title string) }

type recorder struct{ titles []string }

func (r *recorder) Notify(title string) { r.titles = append(r.titles, title) }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() PortSet           { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

var _ Module = fakeModule{}

func TestPortsOf(t *testing.T) {
	rec := &recorder{}

	_, ok := PortsOf[Notifier](fakeModule{name: "empty"})
	assert.False(t, ok)

	got, ok := PortsOf[Notifier](fakeModule{name: "direct", ports: rec})
	assert.True(t, ok)
	got.Notify("sorteio realizado")
	assert.Equal(t, []string{"sorteio realizado"}, rec.titles)

	type bundle struct {
		Count    int
		Notifier Notifier
		hidden   Notifier
	}
	got, ok = PortsOf[Notifier](fakeModule{name: "bundle", ports: bundle{Count: 1, Notifier: rec}})
	assert.True(t, ok)
	assert.Same(t, rec, got)

	_, ok = PortsOf[Notifier](fakeModule{name: "unexported", ports: bundle{hidden: rec}})
	assert.False(t, ok)

	_, ok = PortsOf[Notifier](fakeModule{name: "scalar", ports: 42})
	assert.False(t, ok)
}

func TestMustPortsOf(t *testing.T) {
	rec := &recorder{}
	assert.Same(t, rec, MustPortsOf[Notifier](fakeModule{name: "notifications", ports: rec}))
	kit.MustPanic(t, func() { _ = MustPortsOf[Notifier](fakeModule{name: "settings"}) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("notifications", &recorder{})
	got, ok := PortsAs[*recorder]("notifications")
	assert.True(t, ok)
	assert.NotNil(t, got)

	_, ok = PortsAs[string]("notifications")
	assert.False(t, ok, "wrong type")
	_, ok = PortsAs[*recorder]("missing")
	assert.False(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Register("sorteios", i)
			_, _ = PortsAs[int]("sorteios")
		}()
	}
	wg.Wait()
	_, ok = PortsAs[int]("sorteios")
	assert.True(t, ok)
	assert.Equal(t, []string{"notifications", "sorteios"}, Names())

	Reset()
	_, ok = PortsAs[*recorder]("notifications")
	assert.False(t, ok)
}
