package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"paypal-subscribe/internal/model"
	"paypal-subscribe/internal/repository"
	"paypal-subscribe/internal/subscribe"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type SubscriptionService interface {
	ListPlans(ctx context.Context) ([]*model.Plan, error)
	GetPlan(ctx context.Context, planID string) (*model.Plan, error)
	PlanForm(ctx context.Context, planID string, opts subscribe.Options) (template.HTML, error)
	FormForPlan(plan *model.Plan, opts subscribe.Options) (template.HTML, error)
	FuncMap() template.FuncMap
	Endpoint() string
}

type subscriptionServiceImpl struct {
	forms    *subscribe.FormBuilder
	planRepo repository.PlanRepository
}

func NewSubscriptionService(
	forms *subscribe.FormBuilder,
	planRepo repository.PlanRepository,
) SubscriptionService {
	return &subscriptionServiceImpl{
		forms:    forms,
		planRepo: planRepo,
	}
}

func (s *subscriptionServiceImpl) ListPlans(ctx context.Context) ([]*model.Plan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *subscriptionServiceImpl) GetPlan(ctx context.Context, planID string) (*model.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	if err != nil {
		return nil, fmt.Errorf("find plan %s: %w", planID, err)
	}
	return plan, nil
}

// PlanForm renders the subscribe form of a plan. Field overrides given in
// opts take precedence over the plan's own values.
func (s *subscriptionServiceImpl) PlanForm(ctx context.Context, planID string, opts subscribe.Options) (template.HTML, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return "", err
	}

	return s.FormForPlan(plan, opts)
}

// FormForPlan renders the form of an already loaded plan.
func (s *subscriptionServiceImpl) FormForPlan(plan *model.Plan, opts subscribe.Options) (template.HTML, error) {
	fields := plan.FieldOverrides()
	for k, v := range opts.Fields {
		if v != "" {
			fields[k] = v
		}
	}
	opts.Fields = fields

	form, err := s.forms.BuildForm(opts)
	if err != nil {
		return "", fmt.Errorf("build form for plan %s: %w", plan.ID, err)
	}
	return form, nil
}

func (s *subscriptionServiceImpl) FuncMap() template.FuncMap {
	return s.forms.FuncMap()
}

func (s *subscriptionServiceImpl) Endpoint() string {
	return s.forms.Endpoint()
}
