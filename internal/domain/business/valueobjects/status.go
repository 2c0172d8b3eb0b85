package valueobjects

import "fmt"

// Status is the moderation state of a business listing.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusPending:   true,
	StatusSuspended: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether an admin may move a listing to target.
// Admins may override any state, including re-applying the current one.
func (s Status) CanTransitionTo(target Status) bool {
	return s.IsValid() && target.IsValid()
}

func NewStatus(str string) (Status, error) {
	s := Status(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid business status: %s", str)
	}
	return s, nil
}

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusSuspended}
}
