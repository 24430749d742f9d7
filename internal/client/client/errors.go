package client

import (
	"errors"
	"net"
	"net/http"
	"net/url"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// User-facing messages for failures that never reached the HTTP layer.
const (
	MsgConnection         = "connection error: check your internet connection and that the server is available"
	MsgInvalidResponse    = "invalid server response, please try again"
	MsgUnexpected         = "an unexpected error occurred, please try again"
	MsgUnknown            = "unknown error"
	MsgIncompleteResponse = "invalid API response: required fields are missing"
)

// Kind classifies an APIError by cause.
type Kind int

const (
	KindUnexpected Kind = iota
	KindTransport
	KindParse
	KindServer
	KindValidation
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	case KindProtocol:
		return "protocol"
	default:
		return "unexpected"
	}
}

// APIError is the single error shape produced by the pipeline.
// StatusCode 0 is reserved for client-side failures.
type APIError struct {
	Message    string
	StatusCode int
	Kind       Kind
	// Errors holds every error string the body carried, in document order.
	Errors []string
	// FieldErrors is set when the body carried errors keyed by field.
	FieldErrors map[string][]string

	err error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.err }

// Is matches the package sentinels: ErrUnavailable for transport failures and
// ErrUnauthorized for 401 responses.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindTransport
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// NewProtocolError reports a 2xx response that lacks fields the client needs.
func NewProtocolError(message string) *APIError {
	if message == "" {
		message = MsgIncompleteResponse
	}
	return &APIError{Message: message, StatusCode: http.StatusInternalServerError, Kind: KindProtocol}
}

func newTransportError(err error) *APIError {
	return &APIError{Message: MsgConnection, Kind: KindTransport, err: err}
}

func newParseError(err error) *APIError {
	return &APIError{Message: MsgInvalidResponse, Kind: KindParse, err: err}
}

func newUnexpectedError(err error) *APIError {
	msg := MsgUnexpected
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Message: msg, Kind: KindUnexpected, err: err}
}

// normalize maps any error to an *APIError. An *APIError is returned unchanged.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if isTransport(err) {
		return newTransportError(err)
	}
	return newUnexpectedError(err)
}

func isTransport(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr)
}

// AsAPIError reports whether err is (or wraps) an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err is a connectivity failure.
func IsNetworkError(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Kind == KindTransport
	}
	return err != nil && isTransport(err)
}

// RequiresReauth reports whether the session must be re-established.
func RequiresReauth(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// ValidationErrors returns the first message per field. A body that carried a
// plain error list is reported under "general".
func ValidationErrors(err error) map[string]string {
	result := make(map[string]string)
	apiErr, ok := AsAPIError(err)
	if !ok {
		return result
	}
	if len(apiErr.FieldErrors) > 0 {
		for field, msgs := range apiErr.FieldErrors {
			if len(msgs) > 0 {
				result[field] = msgs[0]
			}
		}
		return result
	}
	if len(apiErr.Errors) > 0 {
		result["general"] = apiErr.Errors[0]
	}
	return result
}
