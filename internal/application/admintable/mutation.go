package admintable

import (
	"github.com/pawpath/pawpath/internal/application/business/dto"
)

// PendingMutation is an optimistic status change applied to the local
// snapshot. It remembers the row it replaced so a failed request can be
// undone.
type PendingMutation struct {
	ID      uint
	Prior   *dto.BusinessSummary
	Applied *dto.BusinessSummary
}

func newPendingMutation(prior *dto.BusinessSummary, status string) *PendingMutation {
	applied := *prior
	applied.Status = status
	return &PendingMutation{ID: prior.ID, Prior: prior, Applied: &applied}
}

// replace swaps the row whose pointer is from for to. It reports false
// when the row is no longer in items, e.g. after a refetch.
func replace(items []*dto.BusinessSummary, from, to *dto.BusinessSummary) ([]*dto.BusinessSummary, bool) {
	for i, item := range items {
		if item == from {
			next := make([]*dto.BusinessSummary, len(items))
			copy(next, items)
			next[i] = to
			return next, true
		}
	}
	return items, false
}

func findByID(items []*dto.BusinessSummary, id uint) *dto.BusinessSummary {
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	return nil
}
