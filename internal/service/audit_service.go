package service

import (
	"context"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	spawn(s.log, "audit", func() error {
		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress)
		if entry.AdminID != nil {
			ev = ev.Str("admin_id", entry.AdminID.String())
		}
		ev.Msg("audit")

		if s.repo == nil {
			return nil
		}
		return s.repo.Create(context.WithoutCancel(ctx), entry)
	})
}
