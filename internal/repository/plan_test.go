package repository

import (
	"context"
	"errors"
	"paypal-subscribe/internal/client"
	"paypal-subscribe/internal/config"
	"testing"

	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) PlanRepository {
	t.Helper()
	db, err := client.InitDB(config.Database{Driver: "sqlite", URL: ":memory:"})
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return NewPlanRepository(db)
}

func TestPlanRepositorySeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 2; i++ {
		if err := repo.Seed(ctx); err != nil {
			t.Fatalf("Seed #%d: %v", i+1, err)
		}
	}

	plans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var ids []string
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	want := []string{"hat_monthly", "gloves_weekly", "vip_yearly"}
	if len(ids) != len(want) {
		t.Fatalf("List ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("List ids = %v, want %v", ids, want)
		}
	}
}

func TestPlanRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	plan, err := repo.FindByID(ctx, "hat_monthly")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got := plan.Amount.StringFixed(2); got != "3.99" {
		t.Fatalf("Amount = %s, want 3.99", got)
	}
	if plan.Unit != "M" || plan.Period != 1 {
		t.Fatalf("period = %d%s, want 1M", plan.Period, plan.Unit)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("FindByID(missing) = %v, want %v", err, gorm.ErrRecordNotFound)
	}
}
