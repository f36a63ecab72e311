// Package eligibility checks a buyer's bound payment capabilities. The
// check is read-only and has to be re-run at order creation and again at
// payment time, since bindings can change in between.
package eligibility

import (
	"github.com/workwork/workwork-order-service/internal/domain"
)

const (
	RequirementWallet        = "wallet"
	RequirementPaymentMethod = "paymentMethod"
)

type Result struct {
	CanPay              bool
	HasWallet           bool
	HasPaymentMethod    bool
	MissingRequirements []string
}

type Validator interface {
	Validate(buyerID string) (*Result, error)
}

type DefaultValidator struct {
	Users domain.UserDirectory
}

func NewDefaultValidator(users domain.UserDirectory) *DefaultValidator {
	return &DefaultValidator{Users: users}
}

// Validate reports whether the buyer can pay. A bound settlement wallet or a
// bound traditional payment credential is each sufficient on its own.
func (v *DefaultValidator) Validate(buyerID string) (*Result, error) {
	bindings, err := v.Users.GetPaymentBindings(buyerID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		HasWallet:        bindings.HasWallet,
		HasPaymentMethod: bindings.HasPaymentMethod,
		CanPay:           bindings.HasWallet || bindings.HasPaymentMethod,
	}
	if !result.CanPay {
		result.MissingRequirements = []string{RequirementWallet, RequirementPaymentMethod}
	}
	return result, nil
}
