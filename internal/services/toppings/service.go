package toppings

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"pizzeria/internal/domain"
)

// Topping is a registered layer kind.
type Topping struct {
	Name   string
	Suffix string
	Delta  decimal.Decimal
}

// Wrap applies the topping to item.
func (t Topping) Wrap(item domain.PricedItem) domain.PricedItem {
	return Wrap(item, t.Suffix, t.Delta)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used when layers are applied.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service applies registered layers by name.
type Service struct {
	toppings map[string]Topping
	log      *zap.Logger
}

// New returns a service with queso-extra and borde-relleno registered.
func New(opts ...Option) *Service {
	s := &Service{
		toppings: map[string]Topping{
			"queso-extra":   {Name: "queso-extra", Suffix: "Queso Extra", Delta: decimal.NewFromInt(10)},
			"borde-relleno": {Name: "borde-relleno", Suffix: "Borde Relleno", Delta: decimal.NewFromInt(15)},
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a named layer with a fixed suffix and delta.
func (s *Service) Register(name, suffix string, delta decimal.Decimal) error {
	key := cases.Fold().String(name)
	switch {
	case key == "":
		return fmt.Errorf("toppings: register: empty name: %w", domain.ErrInvalidItem)
	case suffix == "":
		return fmt.Errorf("toppings: register %q: empty suffix: %w", name, domain.ErrInvalidItem)
	case delta.IsNegative():
		return fmt.Errorf("toppings: register %q: negative delta %s: %w", name, delta, domain.ErrInvalidItem)
	}
	if _, exists := s.toppings[key]; exists {
		return fmt.Errorf("toppings: register %q: %w", name, domain.ErrDuplicate)
	}
	s.toppings[key] = Topping{Name: key, Suffix: suffix, Delta: delta}
	s.log.Debug("registered topping", zap.String("name", key))
	return nil
}

// Lookup returns the topping registered under name.
func (s *Service) Lookup(name string) (Topping, bool) {
	t, ok := s.toppings[cases.Fold().String(name)]
	return t, ok
}

// Apply wraps item in the named layers, first name innermost.
// Nothing is wrapped if any name is unknown.
func (s *Service) Apply(item domain.PricedItem, names ...string) (domain.PricedItem, error) {
	selected := make([]Topping, 0, len(names))
	for _, name := range names {
		t, ok := s.Lookup(name)
		if !ok {
			return nil, &domain.UnknownTypeError{Kind: domain.KindTopping, Label: name}
		}
		selected = append(selected, t)
	}
	for _, t := range selected {
		item = t.Wrap(item)
	}
	s.log.Debug("applied toppings",
		zap.Strings("toppings", names),
		zap.String("description", item.Description()),
		zap.String("cost", domain.FormatMoney(item.Cost())),
	)
	return item, nil
}

// Names returns the registered topping names in sorted order.
func (s *Service) Names() []string {
	out := make([]string, 0, len(s.toppings))
	for k := range s.toppings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Compile-time assertion that Service implements domain.ToppingService.
var _ domain.ToppingService = (*Service)(nil)
