package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independent of transport.
type Kind string

const (
	KindValidation           Kind = "validation"
	KindNotFound             Kind = "not_found"
	KindConflict             Kind = "conflict"
	KindIncompatibleResource Kind = "incompatible_resource"
	KindInsufficientBalance  Kind = "insufficient_balance"
	KindInvariantViolation   Kind = "invariant_violation"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindInternal             Kind = "internal"
	KindUnimplemented        Kind = "unimplemented"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind and Reason are stable and machine readable; Message is meant for people.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Is matches failures by Kind and Reason so callers can compare against sentinels.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind == other.Kind && e.Reason == other.Reason
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation returns a rejection for malformed or out-of-policy input.
func Validation(reason, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Reason:  reason,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// ConflictWithReason returns a conflict carrying a stable reason code.
func ConflictWithReason(reason, message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Reason:  reason,
		Message: message,
	}
}

// IncompatibleResource returns a rejection for a room or therapist that cannot serve the service.
func IncompatibleResource(reason, message string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindIncompatibleResource,
		Reason:  reason,
		Message: message,
	}
}

// InsufficientBalance returns a rejection for exhausted credits or gift certificates.
func InsufficientBalance(reason, message string) error {
	return &Failure{
		Code:    http.StatusPaymentRequired,
		Kind:    KindInsufficientBalance,
		Reason:  reason,
		Message: message,
	}
}

// InvariantViolation reports an internal consistency defect. It must never be corrected silently.
func InvariantViolation(reason, message string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindInvariantViolation,
		Reason:  reason,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the Kind of err, or KindInternal for anything that is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// GetReason returns the stable reason code of err, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
