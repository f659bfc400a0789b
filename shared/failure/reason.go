package failure

// Stable reason codes returned alongside a Kind.
const (
	ReasonNotFound = "NOT_FOUND"

	ReasonIntervalMissing      = "INTERVAL_MISSING"
	ReasonIntervalInvalid      = "INTERVAL_INVALID"
	ReasonDurationOutOfBounds  = "DURATION_OUT_OF_BOUNDS"
	ReasonStartInPast          = "START_IN_PAST"
	ReasonAdvanceLimitExceeded = "ADVANCE_LIMIT_EXCEEDED"
	ReasonNotesTooLong         = "NOTES_TOO_LONG"
	ReasonInvalidTransition    = "INVALID_STATUS_TRANSITION"
	ReasonNotStarted           = "APPOINTMENT_NOT_STARTED"
	ReasonPolicyInvalid        = "POLICY_INVALID"

	ReasonTherapistNotAvailable = "THERAPIST_NOT_AVAILABLE"
	ReasonRoomNotAvailable      = "ROOM_NOT_AVAILABLE"
	ReasonConcurrentBooking     = "CONCURRENT_BOOKING"

	ReasonRoomLacksCapability      = "ROOM_LACKS_CAPABILITY"
	ReasonTherapistNotQualified    = "THERAPIST_NOT_QUALIFIED"
	ReasonServiceNotCreditEligible = "SERVICE_NOT_CREDIT_ELIGIBLE"
	ReasonGiftCertificateInactive  = "GIFT_CERTIFICATE_INACTIVE"
	ReasonGiftCertificateExpired   = "GIFT_CERTIFICATE_EXPIRED"
	ReasonGiftCertificateLocation  = "GIFT_CERTIFICATE_LOCATION_MISMATCH"
	ReasonGiftCertificateExhausted = "GIFT_CERTIFICATE_EXHAUSTED"
	ReasonInsufficientCredits      = "INSUFFICIENT_CREDITS"
	ReasonMembershipInactive       = "MEMBERSHIP_INACTIVE"
	ReasonDepositExceedsTotal      = "DEPOSIT_EXCEEDS_TOTAL"
	ReasonNegativeAmount           = "NEGATIVE_AMOUNT"
	ReasonNonPositiveBasePrice     = "NON_POSITIVE_BASE_PRICE"
	ReasonNegativeBalance          = "NEGATIVE_BALANCE"
	ReasonUnknownResourceKind      = "UNKNOWN_RESOURCE_KIND"
)
