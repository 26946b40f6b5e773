package validation

import (
	"fmt"
	"strings"
)

// Notification is a Handler that collects every appended error instead of
// failing fast. Use cases run all checks against a single notification and
// raise one aggregated failure at the end.
type Notification struct {
	errs []Error
}

// NewNotification creates an empty notification.
func NewNotification() *Notification {
	return &Notification{}
}

func (n *Notification) Append(err Error) {
	n.errs = append(n.errs, err)
}

func (n *Notification) AppendHandler(other Handler) {
	if other == nil {
		return
	}
	n.errs = append(n.errs, other.Errors()...)
}

func (n *Notification) Errors() []Error {
	return n.errs
}

func (n *Notification) HasErrors() bool {
	return len(n.errs) > 0
}

// NotificationError is the aggregated validation failure surfaced by use
// cases: a headline message plus the ordered list of everything that failed.
type NotificationError struct {
	Message string
	Errs    []Error
}

// NewNotificationError builds a NotificationError from an accumulated
// notification.
func NewNotificationError(message string, n *Notification) *NotificationError {
	return &NotificationError{Message: message, Errs: n.Errors()}
}

func (e *NotificationError) Error() string {
	if len(e.Errs) == 0 {
		return e.Message
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(msgs, "; "))
}

// Errors returns the individual validation failures in order.
func (e *NotificationError) Errors() []Error {
	return e.Errs
}
