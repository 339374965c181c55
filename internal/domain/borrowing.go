package domain

const (
	// DefaultDurationDays is the initial loan duration.
	DefaultDurationDays = 14
	// ExtensionStepDays is the only permitted extension increment.
	ExtensionStepDays = 14
	// MaxDurationDays caps the duration at one extension.
	MaxDurationDays = 28
)

// Borrowing is an active loan linking one customer to one medium. A medium
// has at most one active borrowing; its presence is the "unavailable"
// signal. Returning the medium deletes the record.
type Borrowing struct {
	ID           int32  `json:"id"`
	CustomerID   int32  `json:"customer_id"`
	MediumID     int32  `json:"medium_id"`
	LendDate     string `json:"lend_date"`
	DurationDays int32  `json:"duration_days"`

	// Hydrated by lookup, not ownership.
	Customer *Customer `json:"customer,omitempty"`
	Medium   *Medium   `json:"medium,omitempty"`

	// Derived lifecycle fields, populated on read.
	DueDate    string `json:"due_date,omitempty"`
	IsExtended bool   `json:"is_extended"`
	IsOverdue  bool   `json:"is_overdue"`
}
