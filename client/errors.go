package client

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthInvalid indicates the credential itself is no longer usable
	// (401 from the backend, or locally-detected expiry/corruption).
	ErrAuthInvalid = errors.New("authentication invalid")
	// ErrForbidden indicates access was denied for a reason other than
	// invalid credentials, e.g. a premium entitlement. The session must
	// be preserved.
	ErrForbidden = errors.New("access forbidden")
	// ErrTransient indicates a network failure, server 5xx, or malformed
	// response body. The session must be preserved.
	ErrTransient = errors.New("transient failure")
	// ErrMutationFailed indicates a non-2xx response on a mutation
	// endpoint for a reason other than invalid credentials.
	ErrMutationFailed = errors.New("mutation failed")
)

// premiumRequiredCode is the body marker the backend uses to flag
// entitlement-gated 403s.
const premiumRequiredCode = "premium_required"

// APIError is a classified backend error. It wraps one of the sentinel
// errors above so callers can branch with errors.Is.
type APIError struct {
	Status     int
	Code       string
	Message    string
	UpgradeURL string

	kind error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

// PremiumRequired reports whether the error is an entitlement-gated 403.
func (e *APIError) PremiumRequired() bool {
	return e.Status == 403 && e.Code == premiumRequiredCode
}

// classifyStatus maps a non-2xx status plus its decoded error body into
// the error taxonomy shared by the session manager and every optimistic
// mutation. 403 is never treated as an auth failure: the backend uses it
// for entitlement errors and a logout there would punish paying users.
func classifyStatus(status int, body errorBody) error {
	e := &APIError{
		Status:     status,
		Code:       body.Code(),
		Message:    body.Message(),
		UpgradeURL: body.UpgradeURL,
	}
	switch {
	case status == 401:
		e.kind = ErrAuthInvalid
	case status == 403:
		e.kind = ErrForbidden
	case status >= 500:
		e.kind = ErrTransient
	default:
		e.kind = ErrMutationFailed
	}
	return e
}

// errorBody is the backend's error envelope. Older endpoints use
// "message" where newer ones use "error"; both are accepted.
type errorBody struct {
	Err        string `json:"error"`
	Msg        string `json:"message"`
	UpgradeURL string `json:"upgradeUrl"`
}

func (b errorBody) Code() string { return b.Err }

func (b errorBody) Message() string {
	if b.Msg != "" {
		return b.Msg
	}
	return b.Err
}
