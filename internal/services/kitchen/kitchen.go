package kitchen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
)

// FailurePolicy decides whether a listener error stops the fan-out.
type FailurePolicy int

const (
	// Abort stops notifying at the first listener error.
	Abort FailurePolicy = iota
	// Continue notifies every listener and reports all errors together.
	Continue
)

// ErrUnknownPolicy is returned by ParseFailurePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown failure policy")

// ParseFailurePolicy maps "abort" and "continue" to a policy.
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	switch name {
	case "", "abort":
		return Abort, nil
	case "continue":
		return Continue, nil
	default:
		return Abort, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// String returns the flag spelling of the policy.
func (p FailurePolicy) String() string {
	if p == Continue {
		return "continue"
	}
	return "abort"
}

// NotifyError reports a listener that failed to receive a status.
type NotifyError struct {
	Index  int // position in registration order
	Status domain.Status
	Err    error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("kitchen: notify listener %d of %q: %v", e.Index, e.Status, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }

// Option configures a Kitchen.
type Option func(*Kitchen)

// WithFailurePolicy sets what happens after a listener fails.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(k *Kitchen) { k.policy = p }
}

// WithLogger sets the logger used for status changes.
func WithLogger(l *zap.Logger) Option {
	return func(k *Kitchen) {
		if l != nil {
			k.log = l
		}
	}
}

// Kitchen holds the current order status and its listeners.
type Kitchen struct {
	status    domain.Status
	listeners []domain.Listener
	policy    FailurePolicy
	log       *zap.Logger
}

// New returns a kitchen with no status and no listeners.
func New(opts ...Option) *Kitchen {
	k := &Kitchen{log: zap.NewNop()}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Register appends l to the listener list. Duplicates are notified once per
// registration.
func (k *Kitchen) Register(l domain.Listener) {
	k.listeners = append(k.listeners, l)
	k.log.Debug("listener registered", zap.Int("listeners", len(k.listeners)))
}

// SetStatus stores status and notifies every listener in registration order.
func (k *Kitchen) SetStatus(status domain.Status) error {
	k.status = status
	k.log.Debug("status changed",
		zap.Stringer("status", status),
		zap.Int("listeners", len(k.listeners)),
		zap.Stringer("policy", k.policy),
	)

	var errs []error
	for i, l := range k.listeners {
		if err := l.Notify(status); err != nil {
			nerr := &NotifyError{Index: i, Status: status, Err: err}
			k.log.Warn("listener failed", zap.Int("index", i), zap.Error(err))
			if k.policy == Abort {
				return nerr
			}
			errs = append(errs, nerr)
		}
	}
	return errors.Join(errs...)
}

// Status returns the last status set, or the zero Status.
func (k *Kitchen) Status() domain.Status { return k.status }

// Listeners returns the number of registrations.
func (k *Kitchen) Listeners() int { return len(k.listeners) }

// Compile-time assertion that Kitchen implements domain.Broadcaster.
var _ domain.Broadcaster = (*Kitchen)(nil)
