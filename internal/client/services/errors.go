package services

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrPermission = errors.New("permission denied")
)

// Error is a failure whose Message is ready to be shown to the user.
// Err keeps the underlying cause for errors.Is/As and logging.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func userError(msg string, err error) error {
	return &Error{Message: msg, Err: err}
}

// Message extracts the user-facing text of err.
func Message(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}
