package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/gen/ent"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/utils"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.BusinessPlan) (*entity.BusinessPlan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BusinessPlan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type planRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPlanRepository(entc *ent.Client, log *slog.Logger) PlanRepository {
	return &planRepo{ent: entc, log: log}
}

func (r *planRepo) Create(ctx context.Context, plan *entity.BusinessPlan) (*entity.BusinessPlan, error) {
	builder := r.ent.BusinessPlan.
		Create().
		SetOwnerID(plan.OwnerID).
		SetTitle(plan.Title).
		SetObjectKey(plan.ObjectKey).
		SetPageCount(plan.PageCount).
		SetSizeBytes(plan.SizeBytes).
		SetStatus(string(constants.PlanStatusUploaded))
	if plan.ContentHash != nil {
		builder = builder.SetContentHash(*plan.ContentHash)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("plan create failed", "owner_id", plan.OwnerID, "err", err)
		return nil, err
	}
	r.log.Info("plan created", "plan_id", row.ID, "owner_id", row.OwnerID, "pages", row.PageCount)
	return utils.ToBusinessPlan(row), nil
}

func (r *planRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BusinessPlan, error) {
	row, err := r.ent.BusinessPlan.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("plan %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToBusinessPlan(row), nil
}

func (r *planRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessPlan, error) {
	rows, err := r.ent.BusinessPlan.Query().
		Where(businessplan.OwnerID(ownerID)).
		Order(businessplan.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	plans := make([]*entity.BusinessPlan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, utils.ToBusinessPlan(row))
	}
	return plans, nil
}

func (r *planRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.BusinessPlan.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("plan %s: %w", id, common.ErrNotFound)
		}
		return err
	}
	r.log.Info("plan deleted", "plan_id", id)
	return nil
}
