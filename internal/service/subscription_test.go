package service

import (
	"context"
	"errors"
	"paypal-subscribe/internal/model"
	"paypal-subscribe/internal/subscribe"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakePlanRepo struct {
	plans map[string]*model.Plan
	err   error
	finds int
}

func (r *fakePlanRepo) Seed(ctx context.Context) error { return nil }

func (r *fakePlanRepo) FindByID(ctx context.Context, planID string) (*model.Plan, error) {
	r.finds++
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.plans[planID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) List(ctx context.Context) ([]*model.Plan, error) {
	var out []*model.Plan
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, r.err
}

func newTestService(t *testing.T, repo *fakePlanRepo) SubscriptionService {
	t.Helper()
	forms, err := subscribe.NewFormBuilder(subscribe.Config{
		Endpoint: "https://www.sandbox.paypal.com/cgi-bin/webscr",
		Fields: []subscribe.Field{
			{Name: "business", Value: "seller@example.com"},
			{Name: "item_name", Value: "Default"},
			{Name: "a3", Value: "0.00"},
			{Name: "p3", Value: "1"},
			{Name: "t3", Value: "M"},
			{Name: "currency_code", Value: "USD"},
			{Name: "return", Value: "ok"},
			{Name: "cancel_return", Value: "cancel"},
			{Name: "notify_url", Value: "notify"},
		},
	}, subscribe.RouteFunc(func(name string) (string, error) {
		return "https://shop.example/" + name, nil
	}), subscribe.AssetFunc(func(name string) (string, error) {
		return "/assets/" + name, nil
	}))
	if err != nil {
		t.Fatalf("NewFormBuilder: %v", err)
	}
	return NewSubscriptionService(forms, repo)
}

func TestPlanForm(t *testing.T) {
	repo := &fakePlanRepo{plans: map[string]*model.Plan{
		"hat_monthly": {
			ID: "hat_monthly", Name: "Baseball Hat Monthly", Amount: decimal.RequireFromString("3.99"),
			Period: 1, Unit: model.PeriodMonth, Currency: "EUR",
		},
	}}
	svc := newTestService(t, repo)

	html, err := svc.PlanForm(context.Background(), "hat_monthly", subscribe.Options{
		Image:  "subscribe.gif",
		Fields: map[string]string{"currency_code": "GBP", "item_name": ""},
	})
	if err != nil {
		t.Fatalf("PlanForm: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`name="item_name" value="Baseball Hat Monthly"`,
		`name="a3" value="3.99"`,
		`name="currency_code" value="GBP"`,
		`name="return" value="https://shop.example/ok"`,
		`src="/assets/subscribe.gif"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("form missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "item_number") {
		t.Fatalf("unconfigured field rendered:\n%s", out)
	}
}

func TestPlanFormErrors(t *testing.T) {
	svc := newTestService(t, &fakePlanRepo{})
	_, err := svc.PlanForm(context.Background(), "missing", subscribe.Options{Image: "x.gif"})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("got %v, want %v", err, ErrPlanNotFound)
	}

	dbErr := errors.New("db down")
	svc = newTestService(t, &fakePlanRepo{err: dbErr})
	if _, err := svc.GetPlan(context.Background(), "x"); !errors.Is(err, dbErr) || errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("got %v, want wrapped %v", err, dbErr)
	}
}

func TestFormForPlanSkipsLookup(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := newTestService(t, repo)

	plan := &model.Plan{
		ID: "gloves_weekly", Name: "Gloves Weekly", Amount: decimal.RequireFromString("1.49"),
		Period: 1, Unit: model.PeriodWeek, Currency: "USD",
	}
	html, err := svc.FormForPlan(plan, subscribe.Options{Button: true, Value: "Subscribe"})
	if err != nil {
		t.Fatalf("FormForPlan: %v", err)
	}
	if !strings.Contains(string(html), `name="item_name" value="Gloves Weekly"`) {
		t.Fatalf("form missing plan name:\n%s", html)
	}
	if repo.finds != 0 {
		t.Fatalf("FindByID called %d times, want 0", repo.finds)
	}

	repo.plans = map[string]*model.Plan{plan.ID: plan}
	if _, err := svc.PlanForm(context.Background(), plan.ID, subscribe.Options{Button: true}); err != nil {
		t.Fatalf("PlanForm: %v", err)
	}
	if repo.finds != 1 {
		t.Fatalf("FindByID called %d times, want 1", repo.finds)
	}
}
