package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestPlanFieldOverrides(t *testing.T) {
	p := &Plan{
		ID:       "hat_monthly",
		Name:     "Baseball Hat Monthly",
		Amount:   decimal.RequireFromString("3.9"),
		Period:   1,
		Unit:     PeriodMonth,
		Currency: "EUR",
	}

	want := map[string]string{
		"item_name":     "Baseball Hat Monthly",
		"item_number":   "hat_monthly",
		"a3":            "3.90",
		"p3":            "1",
		"t3":            "M",
		"currency_code": "EUR",
	}
	if diff := cmp.Diff(want, p.FieldOverrides()); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestPeriodUnitValid(t *testing.T) {
	for _, u := range []PeriodUnit{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		if !u.Valid() {
			t.Fatalf("%q should be valid", u)
		}
	}
	if PeriodUnit("X").Valid() {
		t.Fatal("X should be invalid")
	}
}
