package service

import (
	"context"
	"io"
	"testing"
	"time"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionAdStatusChanged {
				t.Errorf("expected AD_STATUS_CHANGED, got %s", log.Action)
			}
			close(done)
			return nil
		},
	)

	adminID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	svc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		AdminID:      &adminID,
		Action:       domain.AuditActionAdStatusChanged,
		ResourceType: "ad_submission",
		ResourceID:   uuid.New().String(),
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})
	cancel() // request finished; the write must not be cancelled with it

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionFlowMount,
		ResourceType: "issuance_flow",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}

func TestSpawn_RecoversPanic(t *testing.T) {
	done := make(chan struct{})
	spawn(newTestLogger(), "boom", func() error {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}
}
