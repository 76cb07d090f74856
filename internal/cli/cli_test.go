package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxmanager/internal/core/lottery"
	kit "toxmanager/internal/platform/testkit"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRoster(t *testing.T) {
	out, err := run(t, RosterCmd(), "--size", "3", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Carlos Mendes")
	assert.Contains(t, out, "Ativo")
	assert.Contains(t, out, "page 2 of 4, 12 employees")
	assert.NotContains(t, out, "Ana Souza")
}

func TestRoster_Query(t *testing.T) {
	out, err := run(t, RosterCmd(), "--q", "rh", "--sort", "desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Juliana Paes"), strings.Index(out, "Camila Rocha"))
	assert.Contains(t, out, "Férias")
	assert.Contains(t, out, "page 1 of 1, 2 employees")
}

func TestRoster_BadFlags(t *testing.T) {
	_, err := run(t, RosterCmd(), "--sort", "up")
	assert.Error(t, err)
	_, err = run(t, RosterCmd(), "--size", "0")
	assert.Error(t, err)
}

func TestDraw_Seeded(t *testing.T) {
	a, err := run(t, DrawCmd(), "--count", "3", "--seed", "42")
	require.NoError(t, err)
	b, err := run(t, DrawCmd(), "--count", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "3 of 7 eligible employees drawn")
	assert.NotContains(t, a, "Pendente")
}

func TestDraw_Shortfall(t *testing.T) {
	out, err := run(t, DrawCmd(), "--count", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "7 of 7 eligible")
	assert.Contains(t, out, "requested 9, only 7 eligible")
}

func TestDraw_UsesDefaultSourceWithoutSeed(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &lottery.Default, lottery.NewSeeded(42))
	a, err := run(t, DrawCmd(), "--count", "3")
	require.NoError(t, err)

	kit.Swap(t, &lottery.Default, lottery.NewSeeded(42))
	b, err := run(t, DrawCmd(), "--count", "3")
	require.NoError(t, err)

	seeded, err := run(t, DrawCmd(), "--count", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, seeded, a)
}

func TestDraw_BadCount(t *testing.T) {
	_, err := run(t, DrawCmd(), "--count", "0")
	assert.Error(t, err)
}
