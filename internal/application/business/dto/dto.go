package dto

import (
	"time"

	"github.com/pawpath/pawpath/internal/domain/business"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/mapper"
)

// BusinessSummary is one admin table row. Status, plan and billingStatus
// carry canonical values; planLabel and billingColor are display only.
type BusinessSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	ContactEmail    string    `json:"contactEmail"`
	Status          string    `json:"status"`
	Plan            string    `json:"plan"`
	PlanLabel       string    `json:"planLabel"`
	BillingStatus   string    `json:"billingStatus"`
	BillingColor    string    `json:"billingColor"`
	PlacesCount     int       `json:"placesCount"`
	LeadsCount      int       `json:"leadsCount"`
	LeadsLast30Days int       `json:"leadsLast30Days"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListBusinessesRequest uses nil for "no filter". Limit and Offset are
// taken as given and validated, never clamped.
type ListBusinessesRequest struct {
	Status        *string
	Plan          *string
	BillingStatus *string
	Search        *string
	Limit         int
	Offset        int
}

type ListBusinessesResponse struct {
	Businesses []*BusinessSummary `json:"businesses"`
	Total      int64              `json:"total"`
}

type UpdateBusinessStatusRequest struct {
	ID     uint
	Status string
}

func ToBusinessSummary(b *business.Business) *BusinessSummary {
	if b == nil {
		return nil
	}
	return &BusinessSummary{
		ID:              b.ID(),
		Name:            b.Name(),
		ContactEmail:    b.ContactEmail(),
		Status:          b.Status().String(),
		Plan:            b.Plan().String(),
		PlanLabel:       vo.PlanLabel(b.Plan()),
		BillingStatus:   b.BillingStatus().String(),
		BillingColor:    string(vo.BillingColorFor(b.StoredBillingStatus())),
		PlacesCount:     b.PlacesCount(),
		LeadsCount:      b.LeadsCount(),
		LeadsLast30Days: b.LeadsLast30Days(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func ToBusinessSummaries(list []*business.Business) []*BusinessSummary {
	return mapper.MapSlice(list, ToBusinessSummary)
}
