package business

import (
	"strings"

	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/errors"
)

// ListFilter holds optional listing predicates. A nil field places no
// constraint; all set fields are combined with AND.
type ListFilter struct {
	Status        *vo.Status
	Plan          *vo.Plan
	BillingStatus *vo.BillingStatus
	Search        *string
}

// NewListFilter parses raw filter values. Nil inputs mean "not provided".
func NewListFilter(status, plan, billingStatus, search *string) (ListFilter, error) {
	var f ListFilter

	if status != nil {
		s, err := vo.NewStatus(*status)
		if err != nil {
			return ListFilter{}, errors.NewValidationError("invalid status filter", err.Error())
		}
		f.Status = &s
	}
	if plan != nil {
		p, err := vo.NewPlan(*plan)
		if err != nil {
			return ListFilter{}, errors.NewValidationError("invalid plan filter", err.Error())
		}
		f.Plan = &p
	}
	if billingStatus != nil {
		b, err := vo.NewBillingStatus(*billingStatus)
		if err != nil {
			return ListFilter{}, errors.NewValidationError("invalid billingStatus filter", err.Error())
		}
		f.BillingStatus = &b
	}
	if search != nil {
		term := strings.TrimSpace(*search)
		if len(term) > 200 {
			return ListFilter{}, errors.NewValidationError("invalid search filter", "search must be at most 200 characters")
		}
		if term != "" {
			f.Search = &term
		}
	}

	return f, nil
}
