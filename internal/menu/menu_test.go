package menu_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/domain"
	"pizzeria/internal/menu"
	"pizzeria/internal/services/catalog"
	"pizzeria/internal/services/toppings"
)

const sample = `
pizzas:
  - label: Hawaiana
    description: Pizza Hawaiana
    cost: "65.00"
toppings:
  - name: jalapenos
    suffix: Jalapeños
    delta: 5.50
`

func writeMenu(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAndApply(t *testing.T) {
	m, err := menu.Load(writeMenu(t, sample))
	require.NoError(t, err)
	require.Len(t, m.Pizzas, 1)
	require.Len(t, m.Toppings, 1)

	cat, tops := catalog.New(), toppings.New()
	require.NoError(t, m.Apply(cat, tops))

	base, err := cat.Build("hawaiana")
	require.NoError(t, err)
	item, err := tops.Apply(base, "jalapenos", "queso-extra")
	require.NoError(t, err)

	assert.Equal(t, "Pizza Hawaiana, with Jalapeños, with Queso Extra", item.Description())
	assert.Equal(t, "80.50", domain.FormatMoney(item.Cost()))
}

func TestParse_Empty(t *testing.T) {
	m, err := menu.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m.Pizzas)
	assert.Empty(t, m.Toppings)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing label":   "pizzas:\n  - description: X\n    cost: '1'\n",
		"missing desc":    "pizzas:\n  - label: x\n    cost: '1'\n",
		"bad cost":        "pizzas:\n  - label: x\n    description: X\n    cost: cheap\n",
		"negative cost":   "pizzas:\n  - label: x\n    description: X\n    cost: '-1'\n",
		"missing suffix":  "toppings:\n  - name: x\n    delta: '1'\n",
		"negative delta":  "toppings:\n  - name: x\n    suffix: X\n    delta: '-0.5'\n",
		"missing topping": "toppings:\n  - suffix: X\n    delta: '1'\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := menu.Parse(strings.NewReader(body))
			require.Error(t, err)
			assert.ErrorIs(t, err, menu.ErrInvalidEntry)

			var merr *menu.Error
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, 0, merr.Index)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := menu.Parse(strings.NewReader("pizzas: [unterminated"))
	require.Error(t, err)
}

func TestApply_Duplicate(t *testing.T) {
	m, err := menu.Parse(strings.NewReader("pizzas:\n  - label: Margarita\n    description: Otra\n    cost: '1'\n"))
	require.NoError(t, err)

	err = m.Apply(catalog.New(), toppings.New())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := menu.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
