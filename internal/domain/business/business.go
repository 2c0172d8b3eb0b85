package business

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/biztime"
	"github.com/pawpath/pawpath/internal/shared/errors"
)

// Business is a directory listing as seen by the admin surface.
type Business struct {
	id                  uint
	name                string
	contactEmail        string
	status              vo.Status
	plan                vo.Plan
	billingStatus       vo.BillingStatus
	storedBillingStatus string
	placesCount         int
	leadsCount          int
	leadsLast30Days     int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewBusiness(
	name string,
	contactEmail string,
	status vo.Status,
	plan vo.Plan,
	billingStatus vo.BillingStatus,
) (*Business, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("business name is required")
	}
	if len(name) > 200 {
		return nil, errors.NewValidationError("business name exceeds maximum length of 200 characters")
	}
	contactEmail = strings.TrimSpace(contactEmail)
	if contactEmail != "" {
		if _, err := mail.ParseAddress(contactEmail); err != nil {
			return nil, errors.NewValidationError("invalid contact email", contactEmail)
		}
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid business status", status.String())
	}
	if !plan.IsValid() {
		return nil, errors.NewValidationError("invalid plan", plan.String())
	}
	if !billingStatus.IsValid() {
		return nil, errors.NewValidationError("invalid billing status", billingStatus.String())
	}

	now := biztime.NowUTC()
	return &Business{
		name:                name,
		contactEmail:        contactEmail,
		status:              status,
		plan:                plan,
		billingStatus:       billingStatus,
		storedBillingStatus: billingStatus.String(),
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructBusiness rebuilds a business from persistence. storedBilling
// may be a legacy lowercase alias; it is kept verbatim for display and
// mapped to its canonical value.
func ReconstructBusiness(
	id uint,
	name string,
	contactEmail string,
	status string,
	plan string,
	storedBilling string,
	placesCount, leadsCount, leadsLast30Days int,
	createdAt, updatedAt time.Time,
) (*Business, error) {
	if id == 0 {
		return nil, fmt.Errorf("business ID cannot be zero")
	}
	s, err := vo.NewStatus(status)
	if err != nil {
		return nil, err
	}
	p, err := vo.NewPlan(plan)
	if err != nil {
		return nil, err
	}
	b, err := vo.ParseStoredBillingStatus(storedBilling)
	if err != nil {
		return nil, err
	}

	return &Business{
		id:                  id,
		name:                name,
		contactEmail:        contactEmail,
		status:              s,
		plan:                p,
		billingStatus:       b,
		storedBillingStatus: storedBilling,
		placesCount:         placesCount,
		leadsCount:          leadsCount,
		leadsLast30Days:     leadsLast30Days,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

// ChangeStatus applies an admin status override. Re-applying the current
// status is accepted and only touches updatedAt.
func (b *Business) ChangeStatus(status vo.Status) error {
	if !b.status.CanTransitionTo(status) {
		return errors.NewValidationError("invalid business status", status.String())
	}
	b.status = status
	b.updatedAt = biztime.NowUTC()
	return nil
}

// SetCounts sets the derived counters, used when seeding.
func (b *Business) SetCounts(places, leads, leadsLast30Days int) error {
	if places < 0 || leads < 0 || leadsLast30Days < 0 {
		return errors.NewValidationError("counts must not be negative")
	}
	if leadsLast30Days > leads {
		return errors.NewValidationError("leads in the last 30 days cannot exceed total leads")
	}
	b.placesCount = places
	b.leadsCount = leads
	b.leadsLast30Days = leadsLast30Days
	return nil
}

func (b *Business) SetID(id uint) {
	b.id = id
}

func (b *Business) ID() uint {
	return b.id
}

func (b *Business) Name() string {
	return b.name
}

func (b *Business) ContactEmail() string {
	return b.contactEmail
}

func (b *Business) Status() vo.Status {
	return b.status
}

func (b *Business) Plan() vo.Plan {
	return b.plan
}

func (b *Business) BillingStatus() vo.BillingStatus {
	return b.billingStatus
}

// StoredBillingStatus is the raw persisted value, possibly a legacy alias.
func (b *Business) StoredBillingStatus() string {
	return b.storedBillingStatus
}

func (b *Business) PlacesCount() int {
	return b.placesCount
}

func (b *Business) LeadsCount() int {
	return b.leadsCount
}

func (b *Business) LeadsLast30Days() int {
	return b.leadsLast30Days
}

func (b *Business) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Business) UpdatedAt() time.Time {
	return b.updatedAt
}
