package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/revlytic/bplan/pkg/adapters"
	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/revlytic/bplan/pkg/models/store"
	"github.com/revlytic/bplan/pkg/services/projection"
	planstore "github.com/revlytic/bplan/pkg/store/sqlite/plan"
	sharestore "github.com/revlytic/bplan/pkg/store/sqlite/share"
)

// ManagementService is the single entry point the editor, exporter and shared
// viewer go through. Every projection it hands out comes from the same engine
// call, so the three surfaces can never disagree on a figure.
type ManagementService interface {
	CreatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error)
	GetPlan(ctx context.Context, id string) (domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	UpdatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error

	UpsertYear(ctx context.Context, planID string, year domain.YearAssumptions) error
	GetYears(ctx context.Context, planID string) ([]domain.YearAssumptions, error)
	DeleteYear(ctx context.Context, planID string, year int) error

	// ProjectPlan loads the stored assumptions and runs the engine for every
	// year in calendar order.
	ProjectPlan(ctx context.Context, planID string) (domain.Plan, []domain.YearOutcome, error)
	// PreviewYear computes a single year from unsaved editor state.
	PreviewYear(ctx context.Context, plan domain.Plan, year domain.YearAssumptions) (domain.YearResult, error)

	CreateShareLink(ctx context.Context, planID string) (domain.ShareLink, error)
	ResolveShareLink(ctx context.Context, token string) (string, error)
}

type managementService struct {
	plans  planstore.Store
	shares sharestore.Store
	now    func() time.Time
}

func NewManagementService(plans planstore.Store, shares sharestore.Store) ManagementService {
	return &managementService{
		plans:  plans,
		shares: shares,
		now:    time.Now,
	}
}

func (s *managementService) CreatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	now := s.now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if err := s.plans.CreatePlan(ctx, adapters.MapDomainPlanToStore(plan)); err != nil {
		return domain.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (s *managementService) GetPlan(ctx context.Context, id string) (domain.Plan, error) {
	record, err := s.plans.GetPlan(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan: %w", err)
	}
	return adapters.MapStorePlanToDomain(*record), nil
}

func (s *managementService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	records, err := s.plans.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	plans := make([]domain.Plan, 0, len(records))
	for _, record := range records {
		plans = append(plans, adapters.MapStorePlanToDomain(record))
	}
	return plans, nil
}

func (s *managementService) UpdatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	plan.UpdatedAt = s.now().UTC()
	if err := s.plans.UpdatePlan(ctx, adapters.MapDomainPlanToStore(plan)); err != nil {
		return domain.Plan{}, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

func (s *managementService) DeletePlan(ctx context.Context, id string) error {
	if err := s.shares.DeleteByPlan(ctx, id); err != nil {
		return fmt.Errorf("delete plan shares: %w", err)
	}
	if err := s.plans.DeletePlan(ctx, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

func (s *managementService) UpsertYear(ctx context.Context, planID string, year domain.YearAssumptions) error {
	record, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("upsert year: %w", err)
	}

	// Seed the plan-level default when the editor has not set a per-year
	// investment; the engine itself only ever reads the per-year figure.
	if year.InitialInvestment == 0 && record.InitialInvestment > 0 {
		year.InitialInvestment = record.InitialInvestment
	}

	if err := s.plans.UpsertYear(ctx, adapters.MapDomainYearToStore(planID, year)); err != nil {
		return fmt.Errorf("upsert year: %w", err)
	}
	return nil
}

func (s *managementService) GetYears(ctx context.Context, planID string) ([]domain.YearAssumptions, error) {
	records, err := s.plans.GetYears(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("get years: %w", err)
	}

	years := make([]domain.YearAssumptions, 0, len(records))
	for _, record := range records {
		years = append(years, adapters.MapStoreYearToDomain(record))
	}
	return years, nil
}

func (s *managementService) DeleteYear(ctx context.Context, planID string, year int) error {
	if err := s.plans.DeleteYear(ctx, planID, year); err != nil {
		return fmt.Errorf("delete year: %w", err)
	}
	return nil
}

func (s *managementService) ProjectPlan(
	ctx context.Context,
	planID string,
) (domain.Plan, []domain.YearOutcome, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return domain.Plan{}, nil, err
	}
	years, err := s.GetYears(ctx, planID)
	if err != nil {
		return domain.Plan{}, nil, err
	}
	return plan, projection.ComputePlan(plan, years), nil
}

func (s *managementService) PreviewYear(
	_ context.Context,
	plan domain.Plan,
	year domain.YearAssumptions,
) (domain.YearResult, error) {
	return projection.ComputeYear(plan, year)
}

func (s *managementService) CreateShareLink(ctx context.Context, planID string) (domain.ShareLink, error) {
	// Verify the plan exists so a dangling token is never handed out.
	if _, err := s.plans.GetPlan(ctx, planID); err != nil {
		return domain.ShareLink{}, fmt.Errorf("create share link: %w", err)
	}

	record := store.ShareLinkRecord{
		Token:     uuid.NewString(),
		PlanID:    planID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.shares.Create(ctx, record); err != nil {
		return domain.ShareLink{}, fmt.Errorf("create share link: %w", err)
	}
	return adapters.MapShareLinkStoreToDomain(record), nil
}

func (s *managementService) ResolveShareLink(ctx context.Context, token string) (string, error) {
	record, err := s.shares.Resolve(ctx, token)
	if err != nil {
		return "", fmt.Errorf("resolve share link: %w", err)
	}
	return record.PlanID, nil
}
