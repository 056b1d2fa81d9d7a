package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const PlansSchema = `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'EUR',
		stars INTEGER NOT NULL DEFAULT 0,
		room_count INTEGER NOT NULL,
		opening_days INTEGER NOT NULL,
		has_spa INTEGER NOT NULL DEFAULT 0,
		has_restaurant INTEGER NOT NULL DEFAULT 0,
		has_congress INTEGER NOT NULL DEFAULT 0,
		start_year INTEGER NOT NULL,
		projection_years INTEGER NOT NULL,
		initial_investment REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

const PlanYearsSchema = `
	CREATE TABLE IF NOT EXISTS plan_years (
		plan_id TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		occupancy_rate_pct REAL NOT NULL DEFAULT 0,
		average_daily_rate REAL NOT NULL DEFAULT 0,
		fb_revenue_pct REAL NOT NULL DEFAULT 0,
		spa_revenue_pct REAL NOT NULL DEFAULT 0,
		congress_revenue_pct REAL NOT NULL DEFAULT 0,
		other_revenue_pct REAL NOT NULL DEFAULT 0,
		room_cost_pct REAL NOT NULL DEFAULT 0,
		fb_cost_pct REAL NOT NULL DEFAULT 0,
		spa_cost_pct REAL NOT NULL DEFAULT 0,
		congress_cost_pct REAL NOT NULL DEFAULT 0,
		ota_share_pct REAL NOT NULL DEFAULT 0,
		ota_commission_pct REAL NOT NULL DEFAULT 0,
		staff_cost_monthly REAL NOT NULL DEFAULT 0,
		rent_cost_monthly REAL NOT NULL DEFAULT 0,
		utilities_cost_monthly REAL NOT NULL DEFAULT 0,
		maintenance_cost_monthly REAL NOT NULL DEFAULT 0,
		insurance_cost_monthly REAL NOT NULL DEFAULT 0,
		marketing_cost_monthly REAL NOT NULL DEFAULT 0,
		admin_cost_monthly REAL NOT NULL DEFAULT 0,
		other_fixed_monthly REAL NOT NULL DEFAULT 0,
		initial_investment REAL NOT NULL DEFAULT 0,
		depreciation_years INTEGER NOT NULL DEFAULT 0,
		loan_amount REAL NOT NULL DEFAULT 0,
		loan_interest_rate_pct REAL NOT NULL DEFAULT 0,
		tax_rate_pct REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, year)
	);
`

const ShareLinksSchema = `
	CREATE TABLE IF NOT EXISTS share_links (
		token TEXT PRIMARY KEY,
		plan_id TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	PlansSchema,
	PlanYearsSchema,
	ShareLinksSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (and if needed creates) the plan database and applies the
// schema. modernc.org/sqlite registers the pure-Go "sqlite" driver.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return db, nil
}
