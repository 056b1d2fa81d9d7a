package share

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/revlytic/bplan/pkg/models/store"
	"github.com/revlytic/bplan/pkg/store/sqlite"
)

// Store persists the tokens behind read-only shared projection links.
type Store interface {
	Create(ctx context.Context, record store.ShareLinkRecord) error
	Resolve(ctx context.Context, token string) (*store.ShareLinkRecord, error)
	DeleteByPlan(ctx context.Context, planID string) error
}

type shareStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &shareStore{db: db}, nil
}

func (s *shareStore) Create(ctx context.Context, record store.ShareLinkRecord) error {
	query := `INSERT INTO share_links (token, plan_id, created_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, record.Token, record.PlanID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert share link for plan %s: %w", record.PlanID, err)
	}
	return nil
}

func (s *shareStore) Resolve(ctx context.Context, token string) (*store.ShareLinkRecord, error) {
	query := `SELECT token, plan_id, created_at FROM share_links WHERE token = ?`

	var record store.ShareLinkRecord
	err := s.db.QueryRowContext(ctx, query, token).
		Scan(&record.Token, &record.PlanID, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("share link: %w", sqlite.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve share link: %w", err)
	}
	return &record, nil
}

func (s *shareStore) DeleteByPlan(ctx context.Context, planID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM share_links WHERE plan_id = ?`, planID)
	if err != nil {
		return fmt.Errorf("delete share links for plan %s: %w", planID, err)
	}
	return nil
}
