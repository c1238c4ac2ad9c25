package postgres

import (
	"context"
	"errors"
	"fmt"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adSubmissionSelect = `SELECT a.id, a.ad_name, a.ad_description, a.maximum_issuance,
	a.accessible_from, a.accessible_until, a.contact_email, a.contact_person_name,
	a.status, a.created_by_id, ad.username, a.created_at, a.updated_at
	FROM ad_submissions a
	LEFT JOIN admins ad ON ad.id = a.created_by_id`

// AdSubmissionRepo implements ports.AdSubmissionRepository.
type AdSubmissionRepo struct {
	pool Pool
}

// NewAdSubmissionRepo creates a new AdSubmissionRepo.
func NewAdSubmissionRepo(pool Pool) *AdSubmissionRepo {
	return &AdSubmissionRepo{pool: pool}
}

func scanAdSubmission(row pgx.Row) (*domain.AdSubmission, error) {
	a := &domain.AdSubmission{}
	err := row.Scan(
		&a.ID, &a.AdName, &a.AdDescription, &a.MaximumIssuance,
		&a.AccessibleFrom, &a.AccessibleUntil, &a.ContactEmail, &a.ContactPersonName,
		&a.Status, &a.CreatedByID, &a.CreatedByUsername, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create inserts a new ad submission.
func (r *AdSubmissionRepo) Create(ctx context.Context, a *domain.AdSubmission) error {
	query := `INSERT INTO ad_submissions (id, ad_name, ad_description, maximum_issuance, accessible_from, accessible_until,
			contact_email, contact_person_name, status, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.AdName, a.AdDescription, a.MaximumIssuance, a.AccessibleFrom, a.AccessibleUntil,
		a.ContactEmail, a.ContactPersonName, a.Status, a.CreatedByID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ad submission: %w", err)
	}
	return nil
}

// GetByID fetches a submission with its creator username.
func (r *AdSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdSubmission, error) {
	a, err := scanAdSubmission(r.pool.QueryRow(ctx, adSubmissionSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ad submission by id: %w", err)
	}
	return a, nil
}

// List returns all submissions, newest first.
func (r *AdSubmissionRepo) List(ctx context.Context) ([]domain.AdSubmission, error) {
	rows, err := r.pool.Query(ctx, adSubmissionSelect+` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ad submissions: %w", err)
	}
	defer rows.Close()

	subs := []domain.AdSubmission{}
	for rows.Next() {
		a, err := scanAdSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ad submission: %w", err)
		}
		subs = append(subs, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ad submissions: %w", err)
	}
	return subs, nil
}

// UpdateStatus sets the status of a submission.
func (r *AdSubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdSubmissionStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ad_submissions SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return false, fmt.Errorf("update ad submission status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a submission.
func (r *AdSubmissionRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ad_submissions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ad submission: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus aggregates submission counts in a single pass.
func (r *AdSubmissionRepo) CountByStatus(ctx context.Context) (*domain.AdSubmissionStats, error) {
	query := `SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'ACTIVE'),
			COUNT(*) FILTER (WHERE status = 'REJECTED'),
			COUNT(*) FILTER (WHERE status = 'EXPIRED')
		FROM ad_submissions`

	s := &domain.AdSubmissionStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.Total, &s.Pending, &s.Approved, &s.Active, &s.Rejected, &s.Expired,
	)
	if err != nil {
		return nil, fmt.Errorf("count ad submissions by status: %w", err)
	}
	return s, nil
}
