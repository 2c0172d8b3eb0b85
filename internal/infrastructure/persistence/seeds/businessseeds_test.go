package seeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
)

const fixtureYAML = `
businesses:
  - name: Happy Tails Grooming
    contact_email: hello@happytails.example
    status: active
    plan: PRO
    billing_status: ACTIVE
    places_count: 3
  - name: Old Town Vets
    contact_email: desk@oldtown.example
    plan: STARTER
    billing_status: paid
`

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.BusinessModel{}))
	return db
}

func TestParseBusinessFixtures(t *testing.T) {
	fixtures, err := ParseBusinessFixtures(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, fixtures, 2)
	assert.Equal(t, "PRO", fixtures[0].Plan)
	assert.Equal(t, 3, fixtures[0].PlacesCount)
	assert.Equal(t, "paid", fixtures[1].BillingStatus)
}

func TestParseBusinessFixtures_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", "businesses:\n  - plan: PRO\n"},
		{"unknown plan", "businesses:\n  - name: A\n    plan: GOLD\n"},
		{"unknown billing", "businesses:\n  - name: A\n    billing_status: refunded\n"},
		{"unknown field", "businesses:\n  - name: A\n    tier: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBusinessFixtures(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestSeedBusinesses_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	fixtures, err := ParseBusinessFixtures(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	created, err := SeedBusinesses(db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = SeedBusinesses(db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var rows []models.BusinessModel
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "pending", rows[1].Status)
	assert.Equal(t, "paid", rows[1].BillingStatus)
}
