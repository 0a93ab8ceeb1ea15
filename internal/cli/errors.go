package cli

// serviceError marks a failure reported by the services, to be shown
// through the user message table rather than verbatim.
type serviceError struct {
	err error
}

func (e *serviceError) Error() string { return e.err.Error() }

func (e *serviceError) Unwrap() error { return e.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &serviceError{err: err}
}
