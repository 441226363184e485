package domain

// ValidationError reports a user-correctable input problem. It is
// returned to the caller as a message and never crosses the operation
// boundary as anything fatal.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) ValidationError {
	return ValidationError{Reason: reason}
}

func (e ValidationError) Error() string {
	return e.Reason
}
