package order

import "fmt"

// ValidationError indicates malformed or missing checkout input. It is
// returned before any store access happens and maps to a client error at
// the boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError indicates the order store was unreachable or rejected
// the operation. The pipeline never retries it and never leaves partial
// order state behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
