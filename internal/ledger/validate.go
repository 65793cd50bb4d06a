package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const maxNameLength = 255

// ValidateCreateAccount checks account-creation input before any storage
// write. The opening amount may be zero but never negative.
func ValidateCreateAccount(name string, openingAmount decimal.Decimal) error {
	if name == "" {
		return NewValidationError("name", "name is required")
	}
	if len(name) > maxNameLength {
		return NewValidationError("name", "name exceeds 255 characters")
	}
	if openingAmount.IsNegative() {
		return NewValidationError("openingAmount", "opening amount must not be negative")
	}
	return nil
}

// ValidateRecordTransaction checks transaction input, including the
// cross-field rule: outflows require a subcategory, inflows must not carry
// one (inflows fund the to-budget pool instead).
func ValidateRecordTransaction(amount decimal.Decimal, isInflow bool, payee string, subcategoryID uuid.NullUUID) error {
	if !amount.IsPositive() {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if payee == "" {
		return NewValidationError("payee", "payee is required")
	}
	if isInflow && subcategoryID.Valid {
		return NewValidationError("subcategoryID", "inflow transactions must not reference a subcategory")
	}
	if !isInflow && !subcategoryID.Valid {
		return NewValidationError("subcategoryID", "outflow transactions require a subcategory")
	}
	return nil
}

// ValidateAllocateBudget checks allocation input.
func ValidateAllocateBudget(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	return nil
}

// ValidateMoveBudget checks a budget move between two subcategories.
func ValidateMoveBudget(fromID, toID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if fromID == toID {
		return NewValidationError("toSubcategoryID", "source and destination subcategories must differ")
	}
	return nil
}
