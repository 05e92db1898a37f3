package order

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pizzeria/internal/crypto"
	"pizzeria/internal/domain"
)

// Order is a placed order and its final priced item.
type Order struct {
	domain.Ticket
	Label    domain.Label
	Toppings []domain.ToppingName
	Item     domain.PricedItem
}

// Service assembles orders from a catalog and a topping registry.
type Service struct {
	catalog  domain.CatalogService
	toppings domain.ToppingService
	newID    func() uuid.UUID
	log      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for placed orders.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDSource overrides how order IDs are generated.
func WithIDSource(f func() uuid.UUID) Option {
	return func(s *Service) {
		if f != nil {
			s.newID = f
		}
	}
}

// New returns an order service backed by the given catalog and toppings.
func New(c domain.CatalogService, t domain.ToppingService, opts ...Option) *Service {
	s := &Service{
		catalog:  c,
		toppings: t,
		newID:    uuid.New,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place builds label, applies toppings in order and issues a ticket.
func (s *Service) Place(label string, toppings ...string) (Order, error) {
	base, err := s.catalog.Build(label)
	if err != nil {
		return Order{}, fmt.Errorf("place order: %w", err)
	}
	item, err := s.toppings.Apply(base, toppings...)
	if err != nil {
		return Order{}, fmt.Errorf("place order: %w", err)
	}

	id := s.newID()
	o := Order{
		Ticket:   domain.Ticket{ID: id, Code: crypto.TicketCode(id)},
		Label:    domain.Label(label),
		Toppings: make([]domain.ToppingName, 0, len(toppings)),
		Item:     item,
	}
	for _, t := range toppings {
		o.Toppings = append(o.Toppings, domain.ToppingName(t))
	}
	s.log.Info("order placed",
		zap.Stringer("id", id),
		zap.String("code", o.Code),
		zap.String("total", domain.FormatMoney(item.Cost())),
	)
	return o, nil
}
