package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"spa/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Kind:    failure.KindConflict,
		Reason:  failure.ReasonRoomNotAvailable,
		Message: "room is not available",
	}

	if f.Error() != "room is not available" {
		t.Errorf("expected error message to be 'room is not available', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		kind   failure.Kind
		reason string
	}{
		{
			name:   "validation",
			err:    failure.Validation(failure.ReasonDurationOutOfBounds, "duration out of bounds"),
			code:   http.StatusBadRequest,
			kind:   failure.KindValidation,
			reason: failure.ReasonDurationOutOfBounds,
		},
		{
			name:   "not found",
			err:    failure.NotFound("booking not found"),
			code:   http.StatusNotFound,
			kind:   failure.KindNotFound,
			reason: failure.ReasonNotFound,
		},
		{
			name:   "conflict with reason",
			err:    failure.ConflictWithReason(failure.ReasonTherapistNotAvailable, "therapist busy"),
			code:   http.StatusConflict,
			kind:   failure.KindConflict,
			reason: failure.ReasonTherapistNotAvailable,
		},
		{
			name:   "incompatible resource",
			err:    failure.IncompatibleResource(failure.ReasonRoomLacksCapability, "room cannot host service"),
			code:   http.StatusUnprocessableEntity,
			kind:   failure.KindIncompatibleResource,
			reason: failure.ReasonRoomLacksCapability,
		},
		{
			name:   "insufficient balance",
			err:    failure.InsufficientBalance(failure.ReasonInsufficientCredits, "no credits left"),
			code:   http.StatusPaymentRequired,
			kind:   failure.KindInsufficientBalance,
			reason: failure.ReasonInsufficientCredits,
		},
		{
			name:   "invariant violation",
			err:    failure.InvariantViolation(failure.ReasonDepositExceedsTotal, "deposit exceeds total"),
			code:   http.StatusInternalServerError,
			kind:   failure.KindInvariantViolation,
			reason: failure.ReasonDepositExceedsTotal,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("missing api key"),
			code: http.StatusUnauthorized,
			kind: failure.KindUnauthorized,
		},
		{
			name: "forbidden",
			err:  failure.Forbidden("Access denied"),
			code: http.StatusForbidden,
			kind: failure.KindForbidden,
		},
		{
			name: "unimplemented",
			err:  failure.Unimplemented("Refund"),
			code: http.StatusNotImplemented,
			kind: failure.KindUnimplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if got := failure.GetKind(tt.err); got != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got)
			}

			if got := failure.GetReason(tt.err); got != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, got)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.BadRequest(errors.New("validation failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest || f.Message != "validation failed" || f.Kind != failure.KindValidation {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.InternalError(errors.New("database connection failed"))
	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create booking: %w", failure.Conflict("taken")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKindDefaultsToInternal(t *testing.T) {
	if failure.GetKind(errors.New("boom")) != failure.KindInternal {
		t.Error("plain errors must be reported as internal")
	}

	if failure.GetReason(errors.New("boom")) != "" {
		t.Error("plain errors carry no reason")
	}
}

func TestIsMatchesKindAndReason(t *testing.T) {
	err := fmt.Errorf("reschedule: %w", failure.ConflictWithReason(failure.ReasonRoomNotAvailable, "room R is busy"))
	sentinel := &failure.Failure{Kind: failure.KindConflict, Reason: failure.ReasonRoomNotAvailable}

	if !errors.Is(err, sentinel) {
		t.Error("expected wrapped failure to match sentinel with the same kind and reason")
	}

	other := &failure.Failure{Kind: failure.KindConflict, Reason: failure.ReasonTherapistNotAvailable}
	if errors.Is(err, other) {
		t.Error("different reason must not match")
	}

	if !failure.IsKind(err, failure.KindConflict) {
		t.Error("IsKind must unwrap")
	}
}
