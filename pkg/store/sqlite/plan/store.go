package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/revlytic/bplan/pkg/models/store"
	"github.com/revlytic/bplan/pkg/store/sqlite"
)

// Store persists business plans and their per-year assumptions.
type Store interface {
	CreatePlan(ctx context.Context, record store.PlanRecord) error
	GetPlan(ctx context.Context, id string) (*store.PlanRecord, error)
	ListPlans(ctx context.Context) ([]store.PlanRecord, error)
	UpdatePlan(ctx context.Context, record store.PlanRecord) error
	DeletePlan(ctx context.Context, id string) error

	UpsertYear(ctx context.Context, record store.YearAssumptionsRecord) error
	GetYears(ctx context.Context, planID string) ([]store.YearAssumptionsRecord, error)
	DeleteYear(ctx context.Context, planID string, year int) error
}

type planStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &planStore{db: db}, nil
}

const planColumns = `id, name, currency, stars, room_count, opening_days,
	has_spa, has_restaurant, has_congress, start_year, projection_years,
	initial_investment, created_at, updated_at`

func (s *planStore) CreatePlan(ctx context.Context, record store.PlanRecord) error {
	query := `
		INSERT INTO plans (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.exec(ctx, query,
		record.ID, record.Name, record.Currency, record.Stars,
		record.RoomCount, record.OpeningDaysPerYear,
		record.HasSpa, record.HasRestaurant, record.HasCongressCenter,
		record.StartYear, record.ProjectionYears, record.InitialInvestment,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan %s: %w", record.ID, err)
	}
	return nil
}

func (s *planStore) GetPlan(ctx context.Context, id string) (*store.PlanRecord, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`

	var record store.PlanRecord
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.Name, &record.Currency, &record.Stars,
		&record.RoomCount, &record.OpeningDaysPerYear,
		&record.HasSpa, &record.HasRestaurant, &record.HasCongressCenter,
		&record.StartYear, &record.ProjectionYears, &record.InitialInvestment,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", id, sqlite.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select plan %s: %w", id, err)
	}
	return &record, nil
}

func (s *planStore) ListPlans(ctx context.Context) ([]store.PlanRecord, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	records := make([]store.PlanRecord, 0)
	for rows.Next() {
		var record store.PlanRecord
		err := rows.Scan(
			&record.ID, &record.Name, &record.Currency, &record.Stars,
			&record.RoomCount, &record.OpeningDaysPerYear,
			&record.HasSpa, &record.HasRestaurant, &record.HasCongressCenter,
			&record.StartYear, &record.ProjectionYears, &record.InitialInvestment,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *planStore) UpdatePlan(ctx context.Context, record store.PlanRecord) error {
	query := `
		UPDATE plans SET name = ?, currency = ?, stars = ?, room_count = ?,
			opening_days = ?, has_spa = ?, has_restaurant = ?, has_congress = ?,
			start_year = ?, projection_years = ?, initial_investment = ?,
			updated_at = ?
		WHERE id = ?`

	result, err := s.exec(ctx, query,
		record.Name, record.Currency, record.Stars, record.RoomCount,
		record.OpeningDaysPerYear,
		record.HasSpa, record.HasRestaurant, record.HasCongressCenter,
		record.StartYear, record.ProjectionYears, record.InitialInvestment,
		record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("update plan %s: %w", record.ID, err)
	}
	return requireRow(result, record.ID)
}

func (s *planStore) DeletePlan(ctx context.Context, id string) error {
	result, err := s.exec(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return requireRow(result, id)
}

const yearColumns = `plan_id, year,
	occupancy_rate_pct, average_daily_rate,
	fb_revenue_pct, spa_revenue_pct, congress_revenue_pct, other_revenue_pct,
	room_cost_pct, fb_cost_pct, spa_cost_pct, congress_cost_pct,
	ota_share_pct, ota_commission_pct,
	staff_cost_monthly, rent_cost_monthly, utilities_cost_monthly,
	maintenance_cost_monthly, insurance_cost_monthly, marketing_cost_monthly,
	admin_cost_monthly, other_fixed_monthly,
	initial_investment, depreciation_years, loan_amount,
	loan_interest_rate_pct, tax_rate_pct`

func (s *planStore) UpsertYear(ctx context.Context, record store.YearAssumptionsRecord) error {
	query := `
		INSERT INTO plan_years (` + yearColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (plan_id, year) DO UPDATE SET
			occupancy_rate_pct = excluded.occupancy_rate_pct,
			average_daily_rate = excluded.average_daily_rate,
			fb_revenue_pct = excluded.fb_revenue_pct,
			spa_revenue_pct = excluded.spa_revenue_pct,
			congress_revenue_pct = excluded.congress_revenue_pct,
			other_revenue_pct = excluded.other_revenue_pct,
			room_cost_pct = excluded.room_cost_pct,
			fb_cost_pct = excluded.fb_cost_pct,
			spa_cost_pct = excluded.spa_cost_pct,
			congress_cost_pct = excluded.congress_cost_pct,
			ota_share_pct = excluded.ota_share_pct,
			ota_commission_pct = excluded.ota_commission_pct,
			staff_cost_monthly = excluded.staff_cost_monthly,
			rent_cost_monthly = excluded.rent_cost_monthly,
			utilities_cost_monthly = excluded.utilities_cost_monthly,
			maintenance_cost_monthly = excluded.maintenance_cost_monthly,
			insurance_cost_monthly = excluded.insurance_cost_monthly,
			marketing_cost_monthly = excluded.marketing_cost_monthly,
			admin_cost_monthly = excluded.admin_cost_monthly,
			other_fixed_monthly = excluded.other_fixed_monthly,
			initial_investment = excluded.initial_investment,
			depreciation_years = excluded.depreciation_years,
			loan_amount = excluded.loan_amount,
			loan_interest_rate_pct = excluded.loan_interest_rate_pct,
			tax_rate_pct = excluded.tax_rate_pct`

	_, err := s.exec(ctx, query,
		record.PlanID, record.Year,
		record.OccupancyRatePct, record.AverageDailyRate,
		record.FBRevenuePct, record.SpaRevenuePct, record.CongressRevenuePct, record.OtherRevenuePct,
		record.RoomCostPct, record.FBCostPct, record.SpaCostPct, record.CongressCostPct,
		record.OTASharePct, record.OTACommissionPct,
		record.StaffCostMonthly, record.RentCostMonthly, record.UtilitiesCostMonthly,
		record.MaintenanceCostMonthly, record.InsuranceCostMonthly, record.MarketingCostMonthly,
		record.AdminCostMonthly, record.OtherFixedMonthly,
		record.InitialInvestment, record.DepreciationYears, record.LoanAmount,
		record.LoanInterestRatePct, record.TaxRatePct,
	)
	if err != nil {
		return fmt.Errorf("upsert year %d for plan %s: %w", record.Year, record.PlanID, err)
	}
	return nil
}

func (s *planStore) GetYears(ctx context.Context, planID string) ([]store.YearAssumptionsRecord, error) {
	query := `SELECT ` + yearColumns + ` FROM plan_years WHERE plan_id = ? ORDER BY year`

	rows, err := s.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("list years for plan %s: %w", planID, err)
	}
	defer rows.Close()

	records := make([]store.YearAssumptionsRecord, 0)
	for rows.Next() {
		var record store.YearAssumptionsRecord
		err := rows.Scan(
			&record.PlanID, &record.Year,
			&record.OccupancyRatePct, &record.AverageDailyRate,
			&record.FBRevenuePct, &record.SpaRevenuePct, &record.CongressRevenuePct, &record.OtherRevenuePct,
			&record.RoomCostPct, &record.FBCostPct, &record.SpaCostPct, &record.CongressCostPct,
			&record.OTASharePct, &record.OTACommissionPct,
			&record.StaffCostMonthly, &record.RentCostMonthly, &record.UtilitiesCostMonthly,
			&record.MaintenanceCostMonthly, &record.InsuranceCostMonthly, &record.MarketingCostMonthly,
			&record.AdminCostMonthly, &record.OtherFixedMonthly,
			&record.InitialInvestment, &record.DepreciationYears, &record.LoanAmount,
			&record.LoanInterestRatePct, &record.TaxRatePct,
		)
		if err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *planStore) DeleteYear(ctx context.Context, planID string, year int) error {
	result, err := s.exec(ctx, `DELETE FROM plan_years WHERE plan_id = ? AND year = ?`, planID, year)
	if err != nil {
		return fmt.Errorf("delete year %d for plan %s: %w", year, planID, err)
	}
	return requireRow(result, planID)
}

func (s *planStore) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if tx := sqlite.GetTransaction(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return s.db.ExecContext(ctx, query, args...)
}

func requireRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %s: %w", id, sqlite.ErrNotFound)
	}
	return nil
}
