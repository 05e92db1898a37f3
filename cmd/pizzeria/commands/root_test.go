package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/domain"
)

const demoOutput = `=== PIZZA ORDERING SYSTEM WITH DESIGN PATTERNS ===

1. Base order created: Pizza Peperoni | Cost: 60.00
2. Final order (with toppings): Pizza Peperoni, with Queso Extra, with Borde Relleno
   Total cost: 85.00

--- STATUS UPDATED: En preparación ---
Notification for Juan Perez: your order is now En preparación.

--- STATUS UPDATED: En el horno ---
Notification for Juan Perez: your order is now En el horno.

--- STATUS UPDATED: Listo para entregar ---
Notification for Juan Perez: your order is now Listo para entregar.
`

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"PIZZERIA_MENU", "PIZZERIA_NOTIFY_POLICY", "PIZZERIA_VERBOSE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_RunsDemo(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, demoOutput, out)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, demoOutput, out)
}

func TestMenu(t *testing.T) {
	out, err := run(t, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Pizza Margarita")
	assert.Contains(t, out, "60.00")
	assert.Contains(t, out, "+15.00")
}

func TestMenu_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"toppings:\n  - name: aceitunas\n    suffix: Aceitunas\n    delta: '3.25'\n"), 0o600))

	out, err := run(t, "menu", "--menu", path)
	require.NoError(t, err)
	assert.Contains(t, out, "aceitunas")
	assert.Contains(t, out, "+3.25")
}

func TestOrder(t *testing.T) {
	out, err := run(t, "order", "PEPERONI", "--with", "queso-extra", "--with", "borde-relleno")
	require.NoError(t, err)
	assert.Contains(t, out, "Order: Pizza Peperoni, with Queso Extra, with Borde Relleno\n")
	assert.Contains(t, out, "Total: 85.00\n")
	assert.Regexp(t, `Ticket: [0-9a-f]{8} \(`, out)
}

func TestOrder_UnknownPizza(t *testing.T) {
	_, err := run(t, "order", "calzone")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}

func TestTrack(t *testing.T) {
	out, err := run(t, "track", "Ana", "Luis", "--status", "En el horno", "--status", "Listo")
	require.NoError(t, err)
	assert.Equal(t, `
--- STATUS UPDATED: En el horno ---
Notification for Ana: your order is now En el horno.
Notification for Luis: your order is now En el horno.

--- STATUS UPDATED: Listo ---
Notification for Ana: your order is now Listo.
Notification for Luis: your order is now Listo.
`, out)
}

func TestTrack_RequiresStatus(t *testing.T) {
	_, err := run(t, "track", "Ana")
	require.Error(t, err)
}

func TestRoot_BadPolicy(t *testing.T) {
	_, err := run(t, "--notify-policy", "retry")
	require.Error(t, err)
}
