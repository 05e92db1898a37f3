package kitchen

import (
	"fmt"
	"io"

	"pizzeria/internal/domain"
)

// Customer is a listener that prints every status it receives.
type Customer struct {
	Name string
	Out  io.Writer
}

// NewCustomer returns a customer writing notifications to out.
func NewCustomer(name string, out io.Writer) *Customer {
	return &Customer{Name: name, Out: out}
}

// Notify writes one notification line for status.
func (c *Customer) Notify(status domain.Status) error {
	_, err := fmt.Fprintf(c.Out, "Notification for %s: your order is now %s.\n", c.Name, status)
	return err
}

// ListenerFunc adapts a plain function to domain.Listener.
type ListenerFunc func(domain.Status) error

// Notify calls f(status).
func (f ListenerFunc) Notify(status domain.Status) error { return f(status) }

var (
	_ domain.Listener = (*Customer)(nil)
	_ domain.Listener = ListenerFunc(nil)
)
