package validation

// Error is a single validation failure message.
type Error struct {
	Message string
}

// NewError creates a validation error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

// Handler accumulates validation errors. Implementations decide whether
// appending stops at the first error or collects everything.
type Handler interface {
	// Append records a single validation error.
	Append(err Error)
	// AppendHandler merges every error held by another handler.
	AppendHandler(other Handler)
	// Errors returns the accumulated errors in append order.
	Errors() []Error
	// HasErrors reports whether any error has been recorded.
	HasErrors() bool
}
