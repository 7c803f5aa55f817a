package repository

import (
	"context"
	"paypal-subscribe/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, planID string) (*model.Plan, error)
	List(ctx context.Context) ([]*model.Plan, error)
}

type planRepoImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepoImpl{
		db: db,
	}
}

func (r *planRepoImpl) Seed(ctx context.Context) error {
	plans := []model.Plan{
		{ID: "hat_monthly", Name: "Baseball Hat Monthly", Description: "A new hat every month", Amount: decimal.RequireFromString("3.99"), Period: 1, Unit: model.PeriodMonth, Currency: "USD", Position: 1},
		{ID: "gloves_weekly", Name: "Gloves Weekly", Description: "Fresh gloves every week", Amount: decimal.RequireFromString("1.49"), Period: 1, Unit: model.PeriodWeek, Currency: "USD", Position: 2},
		{ID: "vip_yearly", Name: "VIP Yearly", Description: "Everything, billed once a year", Amount: decimal.RequireFromString("99"), Period: 1, Unit: model.PeriodYear, Currency: "USD", Position: 3},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&plans).Error
}

func (r *planRepoImpl) FindByID(ctx context.Context, planID string) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).
		Where("id = ?", planID).
		First(&plan).Error

	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *planRepoImpl) List(ctx context.Context) ([]*model.Plan, error) {
	var plans []*model.Plan
	err := r.db.WithContext(ctx).
		Order("position, id").
		Find(&plans).
		Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}
