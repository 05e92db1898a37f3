package toppings_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/domain"
	"pizzeria/internal/services/catalog"
	"pizzeria/internal/services/toppings"
)

func TestService_ApplyInOrder(t *testing.T) {
	svc := toppings.New()

	item, err := svc.Apply(catalog.Peperoni(), "queso-extra", "Borde-Relleno")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Peperoni, with Queso Extra, with Borde Relleno", item.Description())
	assert.Equal(t, "85.00", domain.FormatMoney(item.Cost()))
}

func TestService_ApplyNothing(t *testing.T) {
	base := catalog.Peperoni()

	item, err := toppings.New().Apply(base)
	require.NoError(t, err)
	assert.Equal(t, base, item)
}

func TestService_ApplyUnknown(t *testing.T) {
	item, err := toppings.New().Apply(catalog.Peperoni(), "queso-extra", "anchoas")
	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrUnknownType)

	var ute *domain.UnknownTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, domain.KindTopping, ute.Kind)
	assert.Equal(t, "anchoas", ute.Label)
}

func TestService_Register(t *testing.T) {
	svc := toppings.New()
	require.NoError(t, svc.Register("Jalapenos", "Jalapeños", decimal.RequireFromString("5.50")))

	tp, ok := svc.Lookup("JALAPENOS")
	require.True(t, ok)
	assert.Equal(t, "jalapenos", tp.Name)

	item, err := svc.Apply(catalog.Margarita(), "jalapenos")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margarita, with Jalapeños", item.Description())
	assert.Equal(t, "55.50", domain.FormatMoney(item.Cost()))
	assert.Equal(t, []string{"borde-relleno", "jalapenos", "queso-extra"}, svc.Names())
}

func TestService_RegisterRejects(t *testing.T) {
	svc := toppings.New()

	assert.ErrorIs(t, svc.Register("queso-extra", "Queso", decimal.NewFromInt(1)), domain.ErrDuplicate)
	assert.ErrorIs(t, svc.Register("", "Queso", decimal.NewFromInt(1)), domain.ErrInvalidItem)
	assert.ErrorIs(t, svc.Register("aceitunas", "", decimal.NewFromInt(1)), domain.ErrInvalidItem)
	assert.ErrorIs(t, svc.Register("aceitunas", "Aceitunas", decimal.NewFromInt(-1)), domain.ErrInvalidItem)
}
