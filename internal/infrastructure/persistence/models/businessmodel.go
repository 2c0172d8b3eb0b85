package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/db"
)

// BusinessModel stores billing_status verbatim; older rows may hold the
// legacy lowercase aliases. NameFolded and EmailFolded hold the case-folded
// search text and are maintained by BeforeSave.
type BusinessModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:200;not null;index"`
	ContactEmail    string `gorm:"size:255;not null;default:''"`
	NameFolded      string `gorm:"size:400;not null;default:''"`
	EmailFolded     string `gorm:"size:510;not null;default:''"`
	Status          string `gorm:"size:20;not null;default:'pending';index"`
	Plan            string `gorm:"size:20;not null;default:'FREE';index"`
	BillingStatus   string `gorm:"size:20;not null;default:'TRIAL';index"`
	PlacesCount     int    `gorm:"not null;default:0"`
	LeadsCount      int    `gorm:"not null;default:0"`
	LeadsLast30Days int    `gorm:"column:leads_last_30_days;not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BusinessModel) TableName() string {
	return constants.TableBusinesses
}

func (b *BusinessModel) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = "pending"
	}
	if b.Plan == "" {
		b.Plan = "FREE"
	}
	if b.BillingStatus == "" {
		b.BillingStatus = "TRIAL"
	}
	return nil
}

func (b *BusinessModel) BeforeSave(tx *gorm.DB) error {
	b.NameFolded = db.FoldCase(b.Name)
	b.EmailFolded = db.FoldCase(b.ContactEmail)
	return nil
}
