package catalog

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"pizzeria/internal/domain"
)

// Constructor builds a fresh base item for one catalog entry.
type Constructor func() domain.PricedItem

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for build and registration events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service maps normalized labels to constructors.
type Service struct {
	ctors map[string]Constructor
	log   *zap.Logger
}

// New returns a catalog seeded with margarita and peperoni.
func New(opts ...Option) *Service {
	s := &Service{
		ctors: map[string]Constructor{
			"margarita": Margarita,
			"peperoni":  Peperoni,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build returns the item registered under label. Matching is case-insensitive.
func (s *Service) Build(label string) (domain.PricedItem, error) {
	ctor, ok := s.ctors[normalize(label)]
	if !ok {
		s.log.Debug("unknown catalog label", zap.String("label", label))
		return nil, &domain.UnknownTypeError{Kind: domain.KindPizza, Label: label}
	}
	item := ctor()
	if err := validate(item); err != nil {
		return nil, fmt.Errorf("catalog: build %q: %w", label, err)
	}
	s.log.Debug("built catalog item",
		zap.String("label", label),
		zap.String("description", item.Description()),
		zap.String("cost", domain.FormatMoney(item.Cost())),
	)
	return item, nil
}

// Register adds a catalog entry under label.
func (s *Service) Register(label string, ctor Constructor) error {
	key := normalize(label)
	if key == "" {
		return fmt.Errorf("catalog: register: empty label: %w", domain.ErrInvalidItem)
	}
	if ctor == nil {
		return fmt.Errorf("catalog: register %q: nil constructor: %w", label, domain.ErrInvalidItem)
	}
	if _, exists := s.ctors[key]; exists {
		return fmt.Errorf("catalog: register %q: %w", label, domain.ErrDuplicate)
	}
	s.ctors[key] = ctor
	s.log.Debug("registered catalog entry", zap.String("label", key))
	return nil
}

// Labels returns the normalized labels in sorted order.
func (s *Service) Labels() []string {
	out := make([]string, 0, len(s.ctors))
	for k := range s.ctors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// normalize folds case only; whitespace and punctuation are kept as given.
func normalize(label string) string {
	return cases.Fold().String(label)
}

// validate enforces the PricedItem contract on freshly built items.
func validate(item domain.PricedItem) error {
	if item == nil {
		return fmt.Errorf("nil item: %w", domain.ErrInvalidItem)
	}
	if item.Description() == "" {
		return fmt.Errorf("empty description: %w", domain.ErrInvalidItem)
	}
	if item.Cost().IsNegative() {
		return fmt.Errorf("negative cost %s: %w", item.Cost(), domain.ErrInvalidItem)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CatalogService.
var _ domain.CatalogService = (*Service)(nil)
