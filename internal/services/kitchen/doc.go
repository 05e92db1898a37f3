// Package kitchen broadcasts order status changes to subscribed listeners.
//
// A Kitchen holds the current status and an ordered list of listeners.
// SetStatus stores the new value and then notifies every listener in
// registration order on the calling goroutine. There is no queueing and no
// rollback: a failing listener never undoes the status change.
//
// What happens after a listener fails is chosen with WithFailurePolicy:
//
//   - Abort (default) stops at the first failure.
//   - Continue notifies everyone and joins all failures.
package kitchen
