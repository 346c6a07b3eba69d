package dataset

import "fmt"

// schemaError signals that an input table is missing a required column.
type schemaError struct{ msg string }

func (e schemaError) Error() string { return e.msg }

// ErrMissingColumn constructs a schemaError for a required column absent
// from the file's header.
func ErrMissingColumn(path, column string) error {
	return schemaError{msg: fmt.Sprintf("%s: required column %q not found", path, column)}
}

// ErrSchema constructs a schemaError with a custom message.
func ErrSchema(msg string) error { return schemaError{msg: msg} }

// IsSchema reports whether err indicates an input table schema problem.
func IsSchema(err error) bool {
	_, ok := err.(schemaError)
	return ok
}
