package app

import (
	"fmt"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
	"pizzeria/internal/menu"
	catalogsvc "pizzeria/internal/services/catalog"
	"pizzeria/internal/services/kitchen"
	ordersvc "pizzeria/internal/services/order"
	toppingsvc "pizzeria/internal/services/toppings"
)

// Wire bundles all services for the CLI.
type Wire struct {
	Catalog  *catalogsvc.Service
	Toppings *toppingsvc.Service
	Orders   *ordersvc.Service
	Policy   kitchen.FailurePolicy
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	policy, err := kitchen.ParseFailurePolicy(cfg.NotifyPolicy)
	if err != nil {
		return nil, err
	}

	catalog := catalogsvc.New(catalogsvc.WithLogger(log.Named("catalog")))
	toppings := toppingsvc.New(toppingsvc.WithLogger(log.Named("toppings")))

	// Menu extensions are registered before anything is built.
	if cfg.MenuPath != "" {
		m, err := menu.Load(cfg.MenuPath)
		if err != nil {
			return nil, err
		}
		if err := m.Apply(catalog, toppings); err != nil {
			return nil, err
		}
		log.Debug("menu loaded",
			zap.String("path", cfg.MenuPath),
			zap.Int("pizzas", len(m.Pizzas)),
			zap.Int("toppings", len(m.Toppings)),
		)
	}

	orders := ordersvc.New(catalog, toppings, ordersvc.WithLogger(log.Named("order")))

	return &Wire{
		Catalog:  catalog,
		Toppings: toppings,
		Orders:   orders,
		Policy:   policy,
		Log:      log,
	}, nil
}

// NewKitchen returns a kitchen using the configured failure policy.
func (w *Wire) NewKitchen(listeners ...domain.Listener) *kitchen.Kitchen {
	k := kitchen.New(
		kitchen.WithFailurePolicy(w.Policy),
		kitchen.WithLogger(w.Log.Named("kitchen")),
	)
	for _, l := range listeners {
		k.Register(l)
	}
	return k
}

// String summarises the wiring for debug logs.
func (w *Wire) String() string {
	return fmt.Sprintf("pizzas=%d toppings=%d policy=%s",
		len(w.Catalog.Labels()), len(w.Toppings.Names()), w.Policy)
}
