package predictor

// configurationError signals bad or missing invocation parameters
// (CLI arguments, model artifact locations).
type configurationError struct{ msg string }

func (e configurationError) Error() string { return e.msg }

// ErrConfiguration constructs a configurationError.
func ErrConfiguration(msg string) error { return configurationError{msg: msg} }

// IsConfiguration reports whether err indicates an invocation/configuration problem.
func IsConfiguration(err error) bool {
	_, ok := err.(configurationError)
	return ok
}

// inferenceError signals that the underlying model rejected the input or the
// backend invocation failed.
type inferenceError struct{ msg string }

func (e inferenceError) Error() string { return e.msg }

// ErrInference constructs an inferenceError.
func ErrInference(msg string) error { return inferenceError{msg: msg} }

// IsInference reports whether err indicates a model/backend failure.
func IsInference(err error) bool {
	_, ok := err.(inferenceError)
	return ok
}
