package service

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const csvTimeLayout = "2006-01-02 15:04"

var csvHeader = []string{
	"Ad Name", "Description", "Max Issuance", "From", "Until",
	"Contact Email", "Contact Person", "Status", "Created At", "Created By",
}

type adSubmissionService struct {
	repo ports.AdSubmissionRepository
	log  zerolog.Logger
}

// NewAdSubmissionService creates a new ad submission service.
func NewAdSubmissionService(repo ports.AdSubmissionRepository, log zerolog.Logger) ports.AdSubmissionService {
	return &adSubmissionService{repo: repo, log: log}
}

func validateAdSubmission(in ports.CreateAdSubmissionInput) error {
	switch {
	case len([]rune(strings.TrimSpace(in.AdName))) < 3:
		return apperror.Validation("Ad name must be at least 3 characters")
	case len([]rune(strings.TrimSpace(in.AdDescription))) < 10:
		return apperror.Validation("Description must be at least 10 characters")
	case in.MaximumIssuance <= 0:
		return apperror.Validation("Maximum issuance must be a positive number")
	case strings.TrimSpace(in.ContactEmail) == "":
		return apperror.Validation("Contact email is required")
	case len([]rune(strings.TrimSpace(in.ContactPersonName))) < 2:
		return apperror.Validation("Contact person name must be at least 2 characters")
	case !in.AccessibleUntil.After(in.AccessibleFrom):
		return apperror.ErrInvalidDateRange()
	}
	return nil
}

// Create validates and stores a new PENDING submission.
func (s *adSubmissionService) Create(ctx context.Context, in ports.CreateAdSubmissionInput) (*domain.AdSubmission, error) {
	if err := validateAdSubmission(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &domain.AdSubmission{
		ID:                uuid.New(),
		AdName:            strings.TrimSpace(in.AdName),
		AdDescription:     strings.TrimSpace(in.AdDescription),
		MaximumIssuance:   in.MaximumIssuance,
		AccessibleFrom:    in.AccessibleFrom,
		AccessibleUntil:   in.AccessibleUntil,
		ContactEmail:      strings.TrimSpace(in.ContactEmail),
		ContactPersonName: strings.TrimSpace(in.ContactPersonName),
		Status:            domain.AdStatusPending,
		CreatedByID:       in.CreatedByID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("ad_submission_id", sub.ID.String()).Str("ad_name", sub.AdName).Msg("ad submission created")
	return sub, nil
}

func (s *adSubmissionService) List(ctx context.Context) ([]domain.AdSubmission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if subs == nil {
		subs = []domain.AdSubmission{}
	}
	return subs, nil
}

func (s *adSubmissionService) Get(ctx context.Context, id uuid.UUID) (*domain.AdSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if sub == nil {
		return nil, apperror.ErrNotFound("Ad submission")
	}
	return sub, nil
}

// UpdateStatus moves a submission to any known status and returns the updated row.
func (s *adSubmissionService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdSubmissionStatus) (*domain.AdSubmission, error) {
	if !status.IsValid() {
		return nil, apperror.ErrInvalidStatus(string(status))
	}

	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !ok {
		return nil, apperror.ErrNotFound("Ad submission")
	}

	s.log.Info().Str("ad_submission_id", id.String()).Str("status", string(status)).Msg("ad submission status updated")
	return s.Get(ctx, id)
}

func (s *adSubmissionService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("Ad submission")
	}
	return nil
}

func (s *adSubmissionService) Stats(ctx context.Context) (*domain.AdSubmissionStats, error) {
	stats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return stats, nil
}

// ExportCSV renders every submission, newest first. The header row is bare
// and every data cell is quoted.
func (s *adSubmissionService) ExportCSV(ctx context.Context, now time.Time) (string, []byte, error) {
	subs, err := s.List(ctx)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	for _, sub := range subs {
		createdBy := "N/A"
		if sub.CreatedByUsername != nil && *sub.CreatedByUsername != "" {
			createdBy = *sub.CreatedByUsername
		}
		row := []string{
			sub.AdName,
			sub.AdDescription,
			strconv.Itoa(sub.MaximumIssuance),
			sub.AccessibleFrom.Format(csvTimeLayout),
			sub.AccessibleUntil.Format(csvTimeLayout),
			sub.ContactEmail,
			sub.ContactPersonName,
			string(sub.Status),
			sub.CreatedAt.Format(csvTimeLayout),
			createdBy,
		}
		buf.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quoteCSV(cell))
		}
	}

	filename := "ad-submissions-" + now.Format("2006-01-02") + ".csv"
	return filename, buf.Bytes(), nil
}

func quoteCSV(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
