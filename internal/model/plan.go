package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodUnit is the PayPal t3 value.
type PeriodUnit string

const (
	PeriodDay   PeriodUnit = "D"
	PeriodWeek  PeriodUnit = "W"
	PeriodMonth PeriodUnit = "M"
	PeriodYear  PeriodUnit = "Y"
)

func (u PeriodUnit) Valid() bool {
	switch u {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Plan is a subscription offered on the storefront.
type Plan struct {
	ID          string          `gorm:"primaryKey;size:64;not null"` // item_number
	Name        string          `gorm:"size:127;not null"`           // item_name
	Description string          `gorm:"size:255"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"` // a3, billed every period
	Period      int             `gorm:"not null"`                    // p3
	Unit        PeriodUnit      `gorm:"size:1;not null"`             // t3
	Currency    string          `gorm:"size:8;not null"`
	Position    int             `gorm:"index;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldOverrides maps the plan onto PayPal subscription fields.
func (p *Plan) FieldOverrides() map[string]string {
	return map[string]string{
		"item_name":     p.Name,
		"item_number":   p.ID,
		"a3":            p.Amount.StringFixed(2),
		"p3":            strconv.Itoa(p.Period),
		"t3":            string(p.Unit),
		"currency_code": p.Currency,
	}
}
