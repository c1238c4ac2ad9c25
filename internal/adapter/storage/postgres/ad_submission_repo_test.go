package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdSubmission() *domain.AdSubmission {
	now := truncNow()
	adminID := uuid.New()
	return &domain.AdSubmission{
		ID:                uuid.New(),
		AdName:            "Summer Drop",
		AdDescription:     "Exclusive summer offer for holders",
		MaximumIssuance:   500,
		AccessibleFrom:    now,
		AccessibleUntil:   now.Add(72 * time.Hour),
		ContactEmail:      "ads@example.com",
		ContactPersonName: "Jo",
		Status:            domain.AdStatusPending,
		CreatedByID:       &adminID,
		CreatedByUsername: strPtr("admin"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func adSubmissionColumns() []string {
	return []string{"id", "ad_name", "ad_description", "maximum_issuance", "accessible_from", "accessible_until",
		"contact_email", "contact_person_name", "status", "created_by_id", "username", "created_at", "updated_at"}
}

func addAdSubmissionRow(rows *pgxmock.Rows, a *domain.AdSubmission) *pgxmock.Rows {
	return rows.AddRow(
		a.ID, a.AdName, a.AdDescription, a.MaximumIssuance, a.AccessibleFrom, a.AccessibleUntil,
		a.ContactEmail, a.ContactPersonName, a.Status, a.CreatedByID, a.CreatedByUsername, a.CreatedAt, a.UpdatedAt,
	)
}

func TestAdSubmissionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)
	a := newTestAdSubmission()

	mock.ExpectExec("INSERT INTO ad_submissions").
		WithArgs(a.ID, a.AdName, a.AdDescription, a.MaximumIssuance, a.AccessibleFrom, a.AccessibleUntil,
			a.ContactEmail, a.ContactPersonName, a.Status, a.CreatedByID, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdSubmissionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)
	a := newTestAdSubmission()

	mock.ExpectQuery("SELECT .+ FROM ad_submissions a LEFT JOIN admins").
		WithArgs(a.ID).
		WillReturnRows(addAdSubmissionRow(pgxmock.NewRows(adSubmissionColumns()), a))

	got, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.AdName, got.AdName)
	assert.Equal(t, domain.AdStatusPending, got.Status)
	require.NotNil(t, got.CreatedByUsername)
	assert.Equal(t, "admin", *got.CreatedByUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdSubmissionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ad_submissions").WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdSubmissionRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)
	newer := newTestAdSubmission()
	older := newTestAdSubmission()
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	rows := pgxmock.NewRows(adSubmissionColumns())
	addAdSubmissionRow(rows, newer)
	addAdSubmissionRow(rows, older)

	mock.ExpectQuery("SELECT .+ ORDER BY a.created_at DESC").WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdSubmissionRepo_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ad_submissions").
		WillReturnRows(pgxmock.NewRows(adSubmissionColumns()))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdSubmissionRepo_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"updated", 1, true},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewAdSubmissionRepo(mock)
			id := uuid.New()

			mock.ExpectExec("UPDATE ad_submissions SET status").
				WithArgs(id, domain.AdStatusApproved).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.UpdateStatus(context.Background(), id, domain.AdStatusApproved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAdSubmissionRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM ad_submissions").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	ok, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec("DELETE FROM ad_submissions").
		WillReturnError(errors.New("fk violation"))

	_, err = repo.Delete(context.Background(), id)
	assert.Error(t, err)
}

func TestAdSubmissionRepo_CountByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdSubmissionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ad_submissions").
		WillReturnRows(pgxmock.NewRows([]string{"total", "pending", "approved", "active", "rejected", "expired"}).
			AddRow(int64(10), int64(4), int64(2), int64(1), int64(2), int64(1)))

	stats, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.AdSubmissionStats{Total: 10, Pending: 4, Approved: 2, Active: 1, Rejected: 2, Expired: 1}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
