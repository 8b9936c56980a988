package remote

import "errors"

var (
	// ErrUnreachable indicates the trip service could not be contacted.
	ErrUnreachable = errors.New("trip service unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("remote request timed out")

	// ErrInvalidResponse indicates the response body could not be parsed
	// into the expected envelope.
	ErrInvalidResponse = errors.New("invalid remote response format")

	// ErrRejected indicates a well-formed response with success:false.
	// Use Reject to attach the server-provided message.
	ErrRejected = errors.New("request rejected by trip service")
)

// Reject wraps ErrRejected with the server-provided message, substituting
// a generic one when the server sent none.
func Reject(message string) error {
	if message == "" {
		message = "the request could not be completed"
	}
	return &rejectError{message: message}
}

type rejectError struct {
	message string
}

func (e *rejectError) Error() string { return e.message }

func (e *rejectError) Unwrap() error { return ErrRejected }

// RejectMessage extracts the server message from an ErrRejected chain,
// or returns the empty string for other errors.
func RejectMessage(err error) string {
	var re *rejectError
	if errors.As(err, &re) {
		return re.message
	}
	return ""
}
