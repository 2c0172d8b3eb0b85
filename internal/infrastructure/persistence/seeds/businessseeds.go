package seeds

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
)

// BusinessFixture is one row of a seed file. billing_status is stored as
// written so fixtures can reproduce legacy data.
type BusinessFixture struct {
	Name            string `yaml:"name"`
	ContactEmail    string `yaml:"contact_email"`
	Status          string `yaml:"status"`
	Plan            string `yaml:"plan"`
	BillingStatus   string `yaml:"billing_status"`
	PlacesCount     int    `yaml:"places_count"`
	LeadsCount      int    `yaml:"leads_count"`
	LeadsLast30Days int    `yaml:"leads_last_30_days"`
}

type businessFile struct {
	Businesses []BusinessFixture `yaml:"businesses"`
}

// ParseBusinessFixtures decodes a YAML document with a top level
// "businesses" list and validates every row.
func ParseBusinessFixtures(r io.Reader) ([]BusinessFixture, error) {
	var file businessFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i, f := range file.Businesses {
		if f.Name == "" {
			return nil, fmt.Errorf("fixture %d: name is required", i)
		}
		if f.Status != "" {
			if _, err := valueobjects.NewStatus(f.Status); err != nil {
				return nil, fmt.Errorf("fixture %d: %w", i, err)
			}
		}
		if f.Plan != "" {
			if _, err := valueobjects.NewPlan(f.Plan); err != nil {
				return nil, fmt.Errorf("fixture %d: %w", i, err)
			}
		}
		if f.BillingStatus != "" {
			if _, err := valueobjects.ParseStoredBillingStatus(f.BillingStatus); err != nil {
				return nil, fmt.Errorf("fixture %d: %w", i, err)
			}
		}
	}
	return file.Businesses, nil
}

// SeedBusinesses inserts fixtures that are not present yet, matching on
// name and contact email. It returns the number of rows created.
func SeedBusinesses(db *gorm.DB, fixtures []BusinessFixture) (int, error) {
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, f := range fixtures {
			model := models.BusinessModel{
				Name:            f.Name,
				ContactEmail:    f.ContactEmail,
				Status:          f.Status,
				Plan:            f.Plan,
				BillingStatus:   f.BillingStatus,
				PlacesCount:     f.PlacesCount,
				LeadsCount:      f.LeadsCount,
				LeadsLast30Days: f.LeadsLast30Days,
			}
			var existing int64
			if err := tx.Model(&models.BusinessModel{}).
				Where("name = ? AND contact_email = ?", model.Name, model.ContactEmail).
				Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to look up business %q: %w", f.Name, err)
			}
			if existing > 0 {
				continue
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to seed business %q: %w", f.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
