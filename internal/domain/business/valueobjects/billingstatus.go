package valueobjects

import "fmt"

// BillingStatus is the canonical, uppercase billing state used for storage
// and filtering.
type BillingStatus string

const (
	BillingStatusTrial     BillingStatus = "TRIAL"
	BillingStatusActive    BillingStatus = "ACTIVE"
	BillingStatusExpired   BillingStatus = "EXPIRED"
	BillingStatusCancelled BillingStatus = "CANCELLED"
)

var validBillingStatuses = map[BillingStatus]bool{
	BillingStatusTrial:     true,
	BillingStatusActive:    true,
	BillingStatusExpired:   true,
	BillingStatusCancelled: true,
}

// legacyBillingAliases maps deprecated lowercase values still present in
// older rows to their canonical equivalent.
var legacyBillingAliases = map[string]BillingStatus{
	"trial":     BillingStatusTrial,
	"paid":      BillingStatusActive,
	"overdue":   BillingStatusExpired,
	"cancelled": BillingStatusCancelled,
}

func (b BillingStatus) String() string {
	return string(b)
}

func (b BillingStatus) IsValid() bool {
	return validBillingStatuses[b]
}

// NewBillingStatus accepts only canonical values. It is the constructor for
// filters, where a legacy alias must be rejected rather than mapped.
func NewBillingStatus(str string) (BillingStatus, error) {
	b := BillingStatus(str)
	if !b.IsValid() {
		if _, legacy := legacyBillingAliases[str]; legacy {
			return "", fmt.Errorf("legacy billing status %q is not accepted here, use %q", str, legacyBillingAliases[str])
		}
		return "", fmt.Errorf("invalid billing status: %s", str)
	}
	return b, nil
}

// ParseStoredBillingStatus reads a persisted value, mapping legacy aliases
// to their canonical value.
func ParseStoredBillingStatus(str string) (BillingStatus, error) {
	if b := BillingStatus(str); b.IsValid() {
		return b, nil
	}
	if b, ok := legacyBillingAliases[str]; ok {
		return b, nil
	}
	return "", fmt.Errorf("invalid stored billing status: %s", str)
}

// IsLegacyBillingAlias reports whether str is a deprecated lowercase alias.
func IsLegacyBillingAlias(str string) bool {
	_, ok := legacyBillingAliases[str]
	return ok
}

func BillingStatuses() []BillingStatus {
	return []BillingStatus{BillingStatusTrial, BillingStatusActive, BillingStatusExpired, BillingStatusCancelled}
}
