package agent

// ValidationError rejects a run before the engine is ever invoked. The user
// must correct the input and trigger a new run.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RunFailure wraps an engine error. The engine's message text is surfaced
// verbatim as the failure summary; there is no retry and no partial result
// salvage. A GIF artifact the failed run left behind may still be shown,
// labeled as a failure trace.
type RunFailure struct {
	Err error
}

func (e *RunFailure) Error() string {
	return e.Err.Error()
}

func (e *RunFailure) Unwrap() error {
	return e.Err
}
