package postmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// ErrorKind is the stable, machine-readable name of an API error.
type ErrorKind string

// Error kinds returned by the API layer.
const (
	KindPostmarkError       ErrorKind = "PostmarkError"
	KindInvalidAPIKey       ErrorKind = "InvalidAPIKeyError"
	KindAPIInput            ErrorKind = "ApiInputError"
	KindInactiveRecipients  ErrorKind = "InactiveRecipientsError"
	KindInvalidEmailRequest ErrorKind = "InvalidEmailRequestError"
	KindRateLimitExceeded   ErrorKind = "RateLimitExceededError"
	KindInternalServer      ErrorKind = "InternalServerError"
	KindServiceUnavailable  ErrorKind = "ServiceUnavailablerError"
	KindUnknown             ErrorKind = "UnknownError"
)

// Provider error codes that refine an ApiInputError.
const (
	ErrorCodeInvalidEmailRequest = 300
	ErrorCodeInactiveRecipient   = 406
	ErrorCodeInvalidAPIToken     = 10
)

// Sentinel errors matched by errors.Is against *Error.
var (
	ErrInvalidAPIKey       = errors.New("invalid API key")
	ErrAPIInput            = errors.New("API input error")
	ErrInactiveRecipients  = errors.New("inactive recipients")
	ErrInvalidEmailRequest = errors.New("invalid email request")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrInternalServer      = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Configuration errors.
var (
	ErrTokenRequired      = errors.New("a valid API token must be provided")
	ErrRequestHostMissing = errors.New("request host is required")
	ErrNATSURLRequired    = errors.New("NATS URL is required")
	ErrSubjectRequired    = errors.New("NATS subject is required")
)

// ErrCallPanicked is returned by a Future whose call panicked.
var ErrCallPanicked = errors.New("call panicked")

// Error is the single error shape produced for every failed API call, whether
// the provider answered with a structured error body or the request never
// completed.
type Error struct {
	Kind       ErrorKind `json:"kind"                 yaml:"kind"`
	Code       int       `json:"code"                 yaml:"code"`
	StatusCode int       `json:"status_code"          yaml:"status_code"`
	Message    string    `json:"message"              yaml:"message"`
	Recipients []string  `json:"recipients,omitempty" yaml:"recipients,omitempty"`

	// Err is the transport failure, if the request did not complete.
	Err error `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s (status: %d, code: %d)", e.Kind, e.Message, e.StatusCode, e.Code)
}

// Unwrap returns the underlying transport failure, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for the sentinel errors above.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindInvalidAPIKey:
		return target == ErrInvalidAPIKey
	case KindAPIInput:
		return target == ErrAPIInput
	case KindInactiveRecipients:
		return target == ErrInactiveRecipients || target == ErrAPIInput
	case KindInvalidEmailRequest:
		return target == ErrInvalidEmailRequest || target == ErrAPIInput
	case KindRateLimitExceeded:
		return target == ErrRateLimited
	case KindInternalServer:
		return target == ErrInternalServer
	case KindServiceUnavailable:
		return target == ErrServiceUnavailable
	case KindPostmarkError, KindUnknown:
		return false
	}

	return false
}

// ErrorResponse is the provider's error body.
type ErrorResponse struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

var inactiveRecipientsPattern = regexp.MustCompile(`(?i)(?:Found inactive addresses:|these inactive addresses:)\s*(.+?)\.?(?:\s+Inactive recipients are|\n|$)`)

// NewResponseError builds an *Error from a non-2xx response.
func NewResponseError(statusCode int, body []byte) *Error {
	message := http.StatusText(statusCode)
	code := 0

	var resp ErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &resp) == nil {
		code = resp.ErrorCode
		if resp.Message != "" {
			message = resp.Message
		}
	}

	apiErr := &Error{
		Kind:       kindForStatus(statusCode),
		Code:       code,
		StatusCode: statusCode,
		Message:    message,
	}

	if apiErr.Kind == KindAPIInput {
		switch code {
		case ErrorCodeInactiveRecipient:
			apiErr.Kind = KindInactiveRecipients
			apiErr.Recipients = ParseInactiveRecipients(message)
		case ErrorCodeInvalidEmailRequest:
			apiErr.Kind = KindInvalidEmailRequest
		}
	}

	return apiErr
}

// NewTransportError wraps a failure that prevented a response from being read.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindPostmarkError,
		Message: err.Error(),
		Err:     err,
	}
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindInvalidAPIKey
	case http.StatusNotFound:
		return KindPostmarkError
	case http.StatusUnprocessableEntity:
		return KindAPIInput
	case http.StatusTooManyRequests:
		return KindRateLimitExceeded
	case http.StatusInternalServerError:
		return KindInternalServer
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	default:
		return KindUnknown
	}
}

// ParseInactiveRecipients extracts the address list from an inactive
// recipient error message.
func ParseInactiveRecipients(message string) []string {
	match := inactiveRecipientsPattern.FindStringSubmatch(message)
	if len(match) < 2 {
		return nil
	}

	var recipients []string

	for _, address := range strings.Split(match[1], ",") {
		address = strings.TrimSpace(address)
		if address != "" {
			recipients = append(recipients, address)
		}
	}

	return recipients
}

// AsError returns the *Error in err's chain, or nil.
func AsError(err error) *Error {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return nil
}

// KindOf returns the kind of the *Error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	if apiErr := AsError(err); apiErr != nil {
		return apiErr.Kind
	}

	return ""
}

// IsInvalidAPIKey checks if the error reports a rejected token.
func IsInvalidAPIKey(err error) bool {
	return errors.Is(err, ErrInvalidAPIKey)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := AsError(err)

	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if the error is a 429 from the API.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
