package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"pizzeria/internal/domain"
	"pizzeria/internal/services/catalog"
	"pizzeria/internal/services/toppings"
)

// ErrInvalidEntry is wrapped by every validation failure.
var ErrInvalidEntry = errors.New("invalid menu entry")

// Error reports a problem with one menu entry.
type Error struct {
	Section string // "pizzas" or "toppings"
	Index   int
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("menu: %s[%d]: %v", e.Section, e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Menu is the decoded menu file.
type Menu struct {
	Pizzas   []Pizza   `yaml:"pizzas"`
	Toppings []Topping `yaml:"toppings"`
}

// Pizza is an extra catalog entry.
type Pizza struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Cost        string `yaml:"cost"`
}

// Topping is an extra named layer.
type Topping struct {
	Name   string `yaml:"name"`
	Suffix string `yaml:"suffix"`
	Delta  string `yaml:"delta"`
}

// Load reads and validates the menu file at path.
func Load(path string) (*Menu, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("menu: open: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes and validates a menu from r. An empty document is an empty menu.
func Parse(r io.Reader) (*Menu, error) {
	m := &Menu{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("menu: decode: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Apply registers every pizza and topping of m.
func (m *Menu) Apply(cat *catalog.Service, tops *toppings.Service) error {
	for i, p := range m.Pizzas {
		cost, err := amount(p.Cost)
		if err != nil {
			return &Error{Section: "pizzas", Index: i, Err: err}
		}
		item := catalog.NewItem(p.Description, cost)
		if err := cat.Register(p.Label, func() domain.PricedItem { return item }); err != nil {
			return &Error{Section: "pizzas", Index: i, Err: err}
		}
	}
	for i, t := range m.Toppings {
		delta, err := amount(t.Delta)
		if err != nil {
			return &Error{Section: "toppings", Index: i, Err: err}
		}
		if err := tops.Register(t.Name, t.Suffix, delta); err != nil {
			return &Error{Section: "toppings", Index: i, Err: err}
		}
	}
	return nil
}

func (m *Menu) validate() error {
	for i, p := range m.Pizzas {
		var err error
		switch {
		case p.Label == "":
			err = fmt.Errorf("%w: missing label", ErrInvalidEntry)
		case p.Description == "":
			err = fmt.Errorf("%w: missing description", ErrInvalidEntry)
		default:
			_, err = amount(p.Cost)
		}
		if err != nil {
			return &Error{Section: "pizzas", Index: i, Err: err}
		}
	}
	for i, t := range m.Toppings {
		var err error
		switch {
		case t.Name == "":
			err = fmt.Errorf("%w: missing name", ErrInvalidEntry)
		case t.Suffix == "":
			err = fmt.Errorf("%w: missing suffix", ErrInvalidEntry)
		default:
			_, err = amount(t.Delta)
		}
		if err != nil {
			return &Error{Section: "toppings", Index: i, Err: err}
		}
	}
	return nil
}

// amount parses a non-negative decimal string.
func amount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", ErrInvalidEntry, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %s", ErrInvalidEntry, s)
	}
	return d, nil
}
