package kernel

import (
	"strings"

	"tableside/internal/pkg/errs"
)

// ErrTableNumberIsNotConstructed indicates that a TableNumber was not created
// through NewTableNumber. This error is returned when validating a zero-value
// TableNumber.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError("table number must be created via NewTableNumber")

// TableNumber is a value object identifying the physical table an order
// belongs to. Guests type it in free-form, so the constructor trims
// surrounding whitespace and rejects empty input.
//
// The zero value of TableNumber is invalid and must be constructed using
// NewTableNumber. TableNumber is immutable and safe for concurrent use.
//
// Example usage:
//
//	table, err := kernel.NewTableNumber(" 5 ")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(table.String()) // "5"
type TableNumber struct {
	value string

	guard ConstructorGuard
}

// NewTableNumber creates a TableNumber from raw guest input.
// The input is trimmed; an empty result is rejected with a
// ValueIsRequiredError.
func NewTableNumber(raw string) (TableNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TableNumber{}, errs.NewValueIsRequiredError("table number")
	}

	return TableNumber{
		value: trimmed,
		guard: NewConstructorGuard(),
	}, nil
}

// Validate ensures the TableNumber was created through NewTableNumber.
// Returns ErrTableNumberIsNotConstructed for zero-value instances.
func (t TableNumber) Validate() error {
	return t.guard.Validate(ErrTableNumberIsNotConstructed)
}

// String returns the trimmed table identifier.
func (t TableNumber) String() string {
	return t.value
}

// IsEqual compares two table numbers by their trimmed value.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.value == other.value
}
