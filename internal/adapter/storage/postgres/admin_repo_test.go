package postgres

import (
	"context"
	"testing"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditLog() *domain.AuditLog {
	adminID := uuid.New()
	return &domain.AuditLog{
		ID:           uuid.New(),
		AdminID:      &adminID,
		Action:       domain.AuditActionAdStatusChanged,
		ResourceType: "ad_submission",
		ResourceID:   uuid.New().String(),
		Details:      `{"status":"APPROVED"}`,
		IPAddress:    "127.0.0.1",
		CreatedAt:    truncNow(),
	}
}

func TestAdminRepo_EnsureByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminRepo(mock)
	id := uuid.New()
	now := truncNow()

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs(pgxmock.AnyArg(), "admin", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "created_at"}).AddRow(id, "admin", now))

	a, err := repo.EnsureByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "admin", a.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, username, created_at FROM admins").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "created_at"}).AddRow(id, "ops", truncNow()))

	a, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "ops", a.Username)

	mock.ExpectQuery("SELECT id, username, created_at FROM admins").
		WillReturnError(pgx.ErrNoRows)

	a, err = repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, a)
}
