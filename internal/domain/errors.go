package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindNotFound            ErrorKind = "not_found"
	KindPaymentRequirements ErrorKind = "payment_requirements"
	KindPrecondition        ErrorKind = "precondition"
	KindInvalidState        ErrorKind = "invalid_state"
	KindAuthorization       ErrorKind = "authorization"
	KindRetryLimit          ErrorKind = "retry_limit"
	KindUpstream            ErrorKind = "upstream"
)

// DomainError carries the error taxonomy of the orchestrator. Validation and
// precondition errors are returned to the caller and never persisted on an
// order; upstream failures during payment processing are persisted as the
// order's error message.
type DomainError struct {
	Kind    ErrorKind
	Message string
	// Missing lists unmet payment requirements, set only for
	// KindPaymentRequirements.
	Missing []string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

func ValidationError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func PaymentRequirementsError(missing []string) *DomainError {
	return &DomainError{
		Kind:    KindPaymentRequirements,
		Message: "payment requirements not met, please bind: " + strings.Join(missing, " or "),
		Missing: missing,
	}
}

func PreconditionError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

func InvalidStateError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func AuthorizationError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func RetryLimitExceededError(orderID string) *DomainError {
	return &DomainError{Kind: KindRetryLimit, Message: fmt.Sprintf("order %s reached the maximum of %d retry attempts", orderID, MaxRetryCount)}
}

// UpstreamError wraps a failure of the escrow provider or the store,
// preserving the original cause.
func UpstreamError(message string, cause error) *DomainError {
	return &DomainError{Kind: KindUpstream, Message: message, Err: cause}
}

func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func IsKind(err error, kind ErrorKind) bool {
	if de, ok := AsDomainError(err); ok {
		return de.Kind == kind
	}
	return false
}
