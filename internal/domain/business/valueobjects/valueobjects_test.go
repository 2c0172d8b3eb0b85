package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := NewStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, bad := range []string{"", "Active", "deleted"} {
		_, err := NewStatus(bad)
		assert.Error(t, err, bad)
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, StatusActive.CanTransitionTo("archived"))
}

func TestNewPlan_KeepsFreeAndStarterDistinct(t *testing.T) {
	free, err := NewPlan("FREE")
	require.NoError(t, err)
	starter, err := NewPlan("STARTER")
	require.NoError(t, err)

	assert.NotEqual(t, free, starter)
	assert.Equal(t, PlanLabel(free), PlanLabel(starter))

	_, err = NewPlan("pro")
	assert.Error(t, err)
}

func TestNewBillingStatus_RejectsLegacyAliases(t *testing.T) {
	for _, b := range BillingStatuses() {
		_, err := NewBillingStatus(b.String())
		assert.NoError(t, err)
	}

	for _, alias := range []string{"trial", "paid", "overdue", "cancelled"} {
		_, err := NewBillingStatus(alias)
		require.Error(t, err, alias)
		assert.Contains(t, err.Error(), "legacy")
	}

	_, err := NewBillingStatus("Active")
	assert.Error(t, err)
}

func TestParseStoredBillingStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want BillingStatus
	}{
		{"TRIAL", BillingStatusTrial},
		{"trial", BillingStatusTrial},
		{"paid", BillingStatusActive},
		{"overdue", BillingStatusExpired},
		{"cancelled", BillingStatusCancelled},
		{"CANCELLED", BillingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStoredBillingStatus(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStoredBillingStatus("refunded")
	assert.Error(t, err)
	assert.True(t, IsLegacyBillingAlias("paid"))
	assert.False(t, IsLegacyBillingAlias("ACTIVE"))
}

func TestDisplayMapping(t *testing.T) {
	assert.Equal(t, "Starter", PlanLabel(PlanFree))
	assert.Equal(t, "Starter", PlanLabel(PlanStarter))
	assert.Equal(t, "Pro", PlanLabel(PlanPro))
	assert.Equal(t, "Enterprise", PlanLabel(PlanEnterprise))

	pairs := map[string]string{"TRIAL": "trial", "ACTIVE": "paid", "EXPIRED": "overdue", "CANCELLED": "cancelled"}
	for canonical, legacy := range pairs {
		assert.Equal(t, BillingColorFor(canonical), BillingColorFor(legacy), canonical)
	}
	assert.Equal(t, BillingColorGreen, BillingColorFor("paid"))
	assert.Equal(t, BillingColorGray, BillingColorFor("unknown"))
}
